package domain

// WorkerRecord is a static listing entry describing a service professional.
// Records are seeded once at startup and never mutated.
type WorkerRecord struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Profession     string   `json:"profession"`
	Rating         float64  `json:"rating"`
	TotalReviews   int      `json:"total_reviews"`
	Location       string   `json:"location"`
	Experience     int      `json:"experience"`
	HourlyRate     int      `json:"hourly_rate"`
	ProfilePicture string   `json:"profile_picture"`
	Skills         []string `json:"skills"`
	Bio            string   `json:"bio"`
	IsVerified     bool     `json:"is_verified"`
	ResponseTime   string   `json:"response_time"`
}

// Sort keys accepted by the discovery engine.
const (
	SortByRating     = "rating"
	SortByReviews    = "reviews"
	SortByExperience = "experience"
	SortByPriceLow   = "price_low"
	SortByPriceHigh  = "price_high"
)

// FilterAll is the sentinel selector value matching every record.
const FilterAll = "all"

// FilterQuery is the ephemeral set of search/filter/sort parameters driving
// the discovery engine. A zero MinRating and "all" selectors match
// unconditionally.
type FilterQuery struct {
	Search     string  `json:"search" form:"search"`
	Profession string  `json:"profession" form:"profession"`
	Location   string  `json:"location" form:"location"`
	MinRating  float64 `json:"min_rating" form:"min_rating"`
	SortBy     string  `json:"sort_by" form:"sort_by"`
}

// DefaultFilterQuery returns the query produced by "clear filters".
func DefaultFilterQuery() FilterQuery {
	return FilterQuery{
		Search:     "",
		Profession: FilterAll,
		Location:   FilterAll,
		MinRating:  0,
		SortBy:     SortByRating,
	}
}

type WorkerRepository interface {
	List() []WorkerRecord
	GetByID(id string) (*WorkerRecord, error)
}

type DiscoveryUsecase interface {
	Search(query FilterQuery) []WorkerRecord
	GetWorker(id string) (*WorkerRecord, error)
	Professions() []string
	Locations() []string
}
