package domain

import (
	"context"
	"time"
)

// Review is customer feedback left against a completed booking. Anonymous
// reviews keep the customer id internally but never expose the name.
type Review struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	CustomerID   string    `json:"customer_id"`
	WorkerID     string    `json:"worker_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	IsAnonymous  bool      `json:"is_anonymous"`
}

type ReviewRepository interface {
	ListByWorker(ctx context.Context, workerID string) ([]Review, error)
}

type ReviewUsecase interface {
	ListByWorker(ctx context.Context, workerID string) ([]Review, error)
}
