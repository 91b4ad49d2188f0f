package usecase

import (
	"context"

	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/apperror"
)

type reviewUsecase struct {
	reviews domain.ReviewRepository
}

func NewReviewUsecase(reviews domain.ReviewRepository) domain.ReviewUsecase {
	return &reviewUsecase{reviews: reviews}
}

func (u *reviewUsecase) ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error) {
	reviews, err := u.reviews.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Anonymous reviewers are masked before the record leaves the usecase.
	for i := range reviews {
		if reviews[i].IsAnonymous {
			reviews[i].CustomerName = "Anonymous"
			reviews[i].CustomerID = ""
		}
	}
	return reviews, nil
}
