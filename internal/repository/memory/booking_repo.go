package memory

import (
	"context"
	"time"

	"go-workerconnect-backend/internal/domain"
)

type bookingRepo struct {
	bookings []domain.BookingRecord
}

// NewBookingRepository returns the static service-request store. Ids inside
// the records reference identities and workers loosely; they are not
// validated for existence.
func NewBookingRepository() domain.BookingRepository {
	return &bookingRepo{bookings: seedBookings()}
}

func (r *bookingRepo) List(ctx context.Context) ([]domain.BookingRecord, error) {
	out := make([]domain.BookingRecord, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("memory: bad seed timestamp: " + value)
	}
	return t
}

func seedBookings() []domain.BookingRecord {
	return []domain.BookingRecord{
		{
			ID:            "1",
			CustomerID:    "1",
			WorkerID:      "1",
			CustomerName:  "John Customer",
			WorkerName:    "Rajesh Kumar",
			Service:       "Bathroom Pipe Repair",
			Description:   "Need to fix leaking pipes in the main bathroom. Water is dripping from the ceiling.",
			ScheduledDate: mustParseTime("2024-01-15T10:00:00.000Z"),
			Status:        domain.BookingStatusApproved,
			Price:         1500,
			Location:      "Bandra West, Mumbai",
			CreatedAt:     mustParseTime("2024-01-10T08:30:00.000Z"),
		},
		{
			ID:            "2",
			CustomerID:    "1",
			WorkerID:      "2",
			CustomerName:  "John Customer",
			WorkerName:    "Amit Singh",
			Service:       "Electrical Wiring",
			Description:   "Install new electrical outlets in the kitchen and living room.",
			ScheduledDate: mustParseTime("2024-01-20T14:00:00.000Z"),
			Status:        domain.BookingStatusPending,
			Price:         2500,
			Location:      "Andheri East, Mumbai",
			CreatedAt:     mustParseTime("2024-01-12T16:45:00.000Z"),
		},
	}
}
