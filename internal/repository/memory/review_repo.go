package memory

import (
	"context"

	"go-workerconnect-backend/internal/domain"
)

type reviewRepo struct {
	reviews []domain.Review
}

// NewReviewRepository returns the static review store.
func NewReviewRepository() domain.ReviewRepository {
	return &reviewRepo{reviews: seedReviews()}
}

func (r *reviewRepo) ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.WorkerID == workerID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func seedReviews() []domain.Review {
	return []domain.Review{
		{
			ID:           "1",
			BookingID:    "1",
			CustomerID:   "1",
			WorkerID:     "1",
			CustomerName: "John Customer",
			Rating:       5,
			Comment:      "Excellent work! Rajesh was very professional and fixed the problem quickly. Highly recommended.",
			CreatedAt:    mustParseTime("2024-01-16T09:30:00.000Z"),
			IsAnonymous:  false,
		},
		{
			ID:           "2",
			BookingID:    "2",
			CustomerID:   "2",
			WorkerID:     "1",
			CustomerName: "Sarah Wilson",
			Rating:       4,
			Comment:      "Good service, arrived on time and completed the work efficiently.",
			CreatedAt:    mustParseTime("2024-01-14T14:20:00.000Z"),
			IsAnonymous:  true,
		},
	}
}
