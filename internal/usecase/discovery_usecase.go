package usecase

import (
	"sort"
	"strings"

	"go-workerconnect-backend/internal/domain"
)

type discoveryUsecase struct {
	workers domain.WorkerRepository
}

func NewDiscoveryUsecase(workers domain.WorkerRepository) domain.DiscoveryUsecase {
	return &discoveryUsecase{workers: workers}
}

// Search filters and sorts the worker listing. Pure: identical queries yield
// identical results, and the repository's records are never mutated.
func (u *discoveryUsecase) Search(query domain.FilterQuery) []domain.WorkerRecord {
	return SearchWorkers(u.workers.List(), query)
}

func (u *discoveryUsecase) GetWorker(id string) (*domain.WorkerRecord, error) {
	return u.workers.GetByID(id)
}

// Professions returns the filter options for the profession selector,
// "all" first, then each distinct profession in listing order.
func (u *discoveryUsecase) Professions() []string {
	out := []string{domain.FilterAll}
	seen := map[string]bool{}
	for _, w := range u.workers.List() {
		if !seen[w.Profession] {
			seen[w.Profession] = true
			out = append(out, w.Profession)
		}
	}
	return out
}

// Locations returns the filter options for the location selector. Only the
// city part of each record's location is offered, matching the substring
// semantics of the location filter.
func (u *discoveryUsecase) Locations() []string {
	out := []string{domain.FilterAll}
	seen := map[string]bool{}
	for _, w := range u.workers.List() {
		city := w.Location
		if idx := strings.Index(city, ","); idx >= 0 {
			city = city[:idx]
		}
		city = strings.TrimSpace(city)
		if !seen[city] {
			seen[city] = true
			out = append(out, city)
		}
	}
	return out
}

// SearchWorkers applies the four conjunctive filter predicates and then one
// of the five sort modes. Ties keep their original listing order, so the
// sort must be stable.
func SearchWorkers(workers []domain.WorkerRecord, query domain.FilterQuery) []domain.WorkerRecord {
	filtered := make([]domain.WorkerRecord, 0, len(workers))
	for _, w := range workers {
		if matchesSearch(&w, query.Search) &&
			matchesProfession(&w, query.Profession) &&
			matchesLocation(&w, query.Location) &&
			w.Rating >= query.MinRating {
			filtered = append(filtered, w)
		}
	}

	sort.SliceStable(filtered, comparatorFor(query.SortBy, filtered))
	return filtered
}

// matchesSearch checks the free-text term against name, profession, and each
// skill entry, case-insensitively. An empty term matches everything.
func matchesSearch(w *domain.WorkerRecord, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(w.Name), needle) ||
		strings.Contains(strings.ToLower(w.Profession), needle) {
		return true
	}
	for _, skill := range w.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

// matchesProfession requires exact equality unless the sentinel is selected.
func matchesProfession(w *domain.WorkerRecord, profession string) bool {
	return profession == domain.FilterAll || profession == "" || w.Profession == profession
}

// matchesLocation is a case-insensitive substring match, so "Mumbai" matches
// "Mumbai, Maharashtra".
func matchesLocation(w *domain.WorkerRecord, location string) bool {
	if location == domain.FilterAll || location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(w.Location), strings.ToLower(location))
}

// comparatorFor selects the less function for the requested sort key. An
// unknown key compares nothing, leaving the filtered order as-is.
func comparatorFor(sortBy string, ws []domain.WorkerRecord) func(i, j int) bool {
	switch sortBy {
	case domain.SortByRating:
		return func(i, j int) bool { return ws[i].Rating > ws[j].Rating }
	case domain.SortByReviews:
		return func(i, j int) bool { return ws[i].TotalReviews > ws[j].TotalReviews }
	case domain.SortByExperience:
		return func(i, j int) bool { return ws[i].Experience > ws[j].Experience }
	case domain.SortByPriceLow:
		return func(i, j int) bool { return ws[i].HourlyRate < ws[j].HourlyRate }
	case domain.SortByPriceHigh:
		return func(i, j int) bool { return ws[i].HourlyRate > ws[j].HourlyRate }
	default:
		return func(i, j int) bool { return false }
	}
}
