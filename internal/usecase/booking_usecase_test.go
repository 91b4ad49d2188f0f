package usecase_test

import (
	"context"
	"testing"

	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/internal/repository/memory"
	"go-workerconnect-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestListBookings(t *testing.T) {
	uc := usecase.NewBookingUsecase(memory.NewBookingRepository())
	ctx := context.Background()

	customer := &domain.Identity{ID: "1", Role: domain.RoleCustomer}
	worker := &domain.Identity{ID: "2", Role: domain.RoleWorker}

	t.Run("Customers see their own requests", func(t *testing.T) {
		bookings, err := uc.ListForIdentity(ctx, customer, "all")
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
		for _, b := range bookings {
			assert.Equal(t, "1", b.CustomerID)
		}
	})

	t.Run("Workers see requests addressed to them", func(t *testing.T) {
		bookings, err := uc.ListForIdentity(ctx, worker, "all")
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, "Electrical Wiring", bookings[0].Service)
	})

	t.Run("Status tab filters exactly", func(t *testing.T) {
		bookings, err := uc.ListForIdentity(ctx, customer, domain.BookingStatusApproved)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, domain.BookingStatusApproved, bookings[0].Status)

		bookings, err = uc.ListForIdentity(ctx, customer, domain.BookingStatusCancelled)
		assert.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("Unauthenticated callers are rejected", func(t *testing.T) {
		_, err := uc.ListForIdentity(ctx, nil, "all")
		assert.Error(t, err)
	})
}

func TestListReviews(t *testing.T) {
	uc := usecase.NewReviewUsecase(memory.NewReviewRepository())
	ctx := context.Background()

	t.Run("Anonymous reviewers are masked", func(t *testing.T) {
		reviews, err := uc.ListByWorker(ctx, "1")
		assert.NoError(t, err)
		assert.Len(t, reviews, 2)

		assert.Equal(t, "John Customer", reviews[0].CustomerName)
		assert.Equal(t, "Anonymous", reviews[1].CustomerName)
		assert.Empty(t, reviews[1].CustomerID)
	})

	t.Run("Unknown worker has no reviews", func(t *testing.T) {
		reviews, err := uc.ListByWorker(ctx, "99")
		assert.NoError(t, err)
		assert.Empty(t, reviews)
	})
}
