package usecase

import (
	"context"

	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/apperror"
)

type bookingUsecase struct {
	bookings domain.BookingRepository
}

func NewBookingUsecase(bookings domain.BookingRepository) domain.BookingUsecase {
	return &bookingUsecase{bookings: bookings}
}

func (u *bookingUsecase) ListForIdentity(ctx context.Context, identity *domain.Identity, statusTab string) ([]domain.BookingRecord, error) {
	if identity == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	all, err := u.bookings.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := make([]domain.BookingRecord, 0, len(all))
	for _, b := range all {
		var roleMatch bool
		if identity.IsWorker() {
			roleMatch = b.WorkerID == identity.ID
		} else {
			roleMatch = b.CustomerID == identity.ID
		}

		statusMatch := statusTab == "" || statusTab == "all" || b.Status == statusTab
		if roleMatch && statusMatch {
			out = append(out, b)
		}
	}
	return out, nil
}
