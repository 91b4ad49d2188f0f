package usecase_test

import (
	"strings"
	"testing"

	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/internal/repository/memory"
	"go-workerconnect-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func newDiscovery() (domain.DiscoveryUsecase, []domain.WorkerRecord) {
	repo := memory.NewWorkerRepository()
	return usecase.NewDiscoveryUsecase(repo), repo.List()
}

func TestSearchDefaults(t *testing.T) {
	uc, all := newDiscovery()

	t.Run("Default query returns every worker sorted by rating descending", func(t *testing.T) {
		results := uc.Search(domain.DefaultFilterQuery())
		assert.Len(t, results, len(all))
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Rating, results[i].Rating)
		}
	})

	t.Run("Identical queries yield identical output", func(t *testing.T) {
		query := domain.FilterQuery{Search: "repair", Profession: "all", Location: "all", SortBy: domain.SortByReviews}
		first := uc.Search(query)
		second := uc.Search(query)
		assert.Equal(t, first, second)
	})
}

func TestSearchTextMatch(t *testing.T) {
	uc, all := newDiscovery()

	t.Run("Term matches name, profession, or a skill, case-insensitively", func(t *testing.T) {
		query := domain.DefaultFilterQuery()
		query.Search = "CLEAN"
		results := uc.Search(query)

		assert.NotEmpty(t, results)
		for _, w := range results {
			assert.True(t, textMatches(w, "clean"), "worker %s should not be in results", w.Name)
		}

		// Completeness: every matching record is present
		matching := 0
		for _, w := range all {
			if textMatches(w, "clean") {
				matching++
			}
		}
		assert.Len(t, results, matching)
	})

	t.Run("Unmatched term yields an empty result, not an error", func(t *testing.T) {
		query := domain.DefaultFilterQuery()
		query.Search = "astronaut"
		assert.Empty(t, uc.Search(query))
	})
}

func TestSearchFilters(t *testing.T) {
	uc, _ := newDiscovery()

	t.Run("Profession filter requires exact equality", func(t *testing.T) {
		query := domain.DefaultFilterQuery()
		query.Profession = "Plumber"
		results := uc.Search(query)
		assert.Len(t, results, 1)
		assert.Equal(t, "Rajesh Kumar", results[0].Name)

		// Lower-cased value does not match: the filter is case-sensitive
		query.Profession = "plumber"
		assert.Empty(t, uc.Search(query))
	})

	t.Run("Location filter is a case-insensitive substring match", func(t *testing.T) {
		query := domain.DefaultFilterQuery()
		query.Location = "mumbai"
		results := uc.Search(query)
		assert.Len(t, results, 1)
		assert.Equal(t, "Mumbai, Maharashtra", results[0].Location)
	})

	t.Run("Raising the rating threshold never grows the result set", func(t *testing.T) {
		query := domain.DefaultFilterQuery()
		prev := len(uc.Search(query))
		for _, threshold := range []float64{3, 4, 4.5, 4.8, 5} {
			query.MinRating = threshold
			got := uc.Search(query)
			assert.LessOrEqual(t, len(got), prev)
			for _, w := range got {
				assert.GreaterOrEqual(t, w.Rating, threshold)
			}
			prev = len(got)
		}
	})
}

func TestSearchSorting(t *testing.T) {
	uc, _ := newDiscovery()

	cases := []struct {
		sortBy string
		check  func(a, b domain.WorkerRecord) bool
	}{
		{domain.SortByRating, func(a, b domain.WorkerRecord) bool { return a.Rating >= b.Rating }},
		{domain.SortByReviews, func(a, b domain.WorkerRecord) bool { return a.TotalReviews >= b.TotalReviews }},
		{domain.SortByExperience, func(a, b domain.WorkerRecord) bool { return a.Experience >= b.Experience }},
		{domain.SortByPriceLow, func(a, b domain.WorkerRecord) bool { return a.HourlyRate <= b.HourlyRate }},
		{domain.SortByPriceHigh, func(a, b domain.WorkerRecord) bool { return a.HourlyRate >= b.HourlyRate }},
	}

	for _, tc := range cases {
		t.Run("Adjacent pairs ordered for "+tc.sortBy, func(t *testing.T) {
			query := domain.DefaultFilterQuery()
			query.SortBy = tc.sortBy
			results := uc.Search(query)
			assert.NotEmpty(t, results)
			for i := 1; i < len(results); i++ {
				assert.True(t, tc.check(results[i-1], results[i]))
			}
		})
	}

	t.Run("Unknown sort key keeps the filtered order", func(t *testing.T) {
		query := domain.DefaultFilterQuery()
		query.SortBy = "bogus"
		results := uc.Search(query)
		_, all := newDiscovery()
		assert.Equal(t, all, results)
	})

	t.Run("Ties keep original listing order", func(t *testing.T) {
		workers := []domain.WorkerRecord{
			{ID: "a", Rating: 4.5},
			{ID: "b", Rating: 4.5},
			{ID: "c", Rating: 4.9},
		}
		query := domain.DefaultFilterQuery()
		results := usecase.SearchWorkers(workers, query)
		assert.Equal(t, []string{"c", "a", "b"}, []string{results[0].ID, results[1].ID, results[2].ID})
	})
}

func TestFilterOptions(t *testing.T) {
	uc, _ := newDiscovery()

	professions := uc.Professions()
	assert.Equal(t, "all", professions[0])
	assert.Contains(t, professions, "Electrician")

	locations := uc.Locations()
	assert.Equal(t, "all", locations[0])
	// Only the city part is offered, matching the substring filter semantics
	assert.Contains(t, locations, "Mumbai")
	assert.NotContains(t, locations, "Mumbai, Maharashtra")
}

func textMatches(w domain.WorkerRecord, needle string) bool {
	if containsFold(w.Name, needle) || containsFold(w.Profession, needle) {
		return true
	}
	for _, s := range w.Skills {
		if containsFold(s, needle) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
