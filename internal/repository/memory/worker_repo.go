package memory

import (
	"go-workerconnect-backend/internal/domain"
)

type workerRepo struct {
	workers []domain.WorkerRecord
}

// NewWorkerRepository returns the static worker listing store. Records are
// seeded once and never mutated; List hands out copies of the slice header
// only, callers must not modify the backing array.
func NewWorkerRepository() domain.WorkerRepository {
	return &workerRepo{workers: seedWorkers()}
}

func (r *workerRepo) List() []domain.WorkerRecord {
	out := make([]domain.WorkerRecord, len(r.workers))
	copy(out, r.workers)
	return out
}

func (r *workerRepo) GetByID(id string) (*domain.WorkerRecord, error) {
	for i := range r.workers {
		if r.workers[i].ID == id {
			w := r.workers[i]
			return &w, nil
		}
	}
	return nil, domain.ErrNotFound
}

func seedWorkers() []domain.WorkerRecord {
	return []domain.WorkerRecord{
		{
			ID:             "1",
			Name:           "Rajesh Kumar",
			Profession:     "Plumber",
			Rating:         4.8,
			TotalReviews:   127,
			Location:       "Mumbai, Maharashtra",
			Experience:     5,
			HourlyRate:     300,
			ProfilePicture: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Skills:         []string{"Pipe Fitting", "Leak Repair", "Bathroom Installation"},
			Bio:            "Experienced plumber with 5+ years in residential and commercial work.",
			IsVerified:     true,
			ResponseTime:   "Usually responds within 2 hours",
		},
		{
			ID:             "2",
			Name:           "Amit Singh",
			Profession:     "Electrician",
			Rating:         4.9,
			TotalReviews:   89,
			Location:       "Delhi, India",
			Experience:     7,
			HourlyRate:     400,
			ProfilePicture: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Skills:         []string{"Wiring", "Panel Installation", "Lighting"},
			Bio:            "Licensed electrician specializing in residential electrical systems.",
			IsVerified:     true,
			ResponseTime:   "Usually responds within 1 hour",
		},
		{
			ID:             "3",
			Name:           "Priya Sharma",
			Profession:     "House Cleaner",
			Rating:         4.7,
			TotalReviews:   156,
			Location:       "Bangalore, Karnataka",
			Experience:     3,
			HourlyRate:     250,
			ProfilePicture: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			Skills:         []string{"Deep Cleaning", "Kitchen Cleaning", "Bathroom Cleaning"},
			Bio:            "Professional house cleaner with attention to detail.",
			IsVerified:     true,
			ResponseTime:   "Usually responds within 3 hours",
		},
		{
			ID:             "4",
			Name:           "Vikram Patel",
			Profession:     "Carpenter",
			Rating:         4.6,
			TotalReviews:   78,
			Location:       "Pune, Maharashtra",
			Experience:     8,
			HourlyRate:     350,
			ProfilePicture: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
			Skills:         []string{"Furniture Making", "Cabinet Installation", "Wood Repair"},
			Bio:            "Master carpenter with expertise in custom furniture and repairs.",
			IsVerified:     false,
			ResponseTime:   "Usually responds within 4 hours",
		},
		{
			ID:             "5",
			Name:           "Sunita Devi",
			Profession:     "Painter",
			Rating:         4.5,
			TotalReviews:   92,
			Location:       "Chennai, Tamil Nadu",
			Experience:     4,
			HourlyRate:     280,
			ProfilePicture: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Skills:         []string{"Interior Painting", "Exterior Painting", "Wall Texturing"},
			Bio:            "Professional painter specializing in residential painting services.",
			IsVerified:     true,
			ResponseTime:   "Usually responds within 2 hours",
		},
		{
			ID:             "6",
			Name:           "Mohammed Ali",
			Profession:     "Gardener",
			Rating:         4.4,
			TotalReviews:   45,
			Location:       "Hyderabad, Telangana",
			Experience:     6,
			HourlyRate:     200,
			ProfilePicture: "https://images.unsplash.com/photo-1507038732509-8dfe0e84d454?w=150&h=150&fit=crop&crop=face",
			Skills:         []string{"Lawn Care", "Plant Maintenance", "Garden Design"},
			Bio:            "Experienced gardener with knowledge of local plants and climate.",
			IsVerified:     true,
			ResponseTime:   "Usually responds within 5 hours",
		},
	}
}
