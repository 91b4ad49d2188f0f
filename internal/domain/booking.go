package domain

import (
	"context"
	"time"
)

// Booking lifecycle statuses. Cancellation is a status transition, bookings
// are never physically deleted.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingRecord links a customer and a worker with status and schedule.
// CustomerName and WorkerName are denormalized display copies; the ids are
// references only and are not validated for existence.
type BookingRecord struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	WorkerID      string    `json:"worker_id"`
	CustomerName  string    `json:"customer_name"`
	WorkerName    string    `json:"worker_name"`
	Service       string    `json:"service"`
	Description   string    `json:"description"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Price         int       `json:"price"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingRepository interface {
	List(ctx context.Context) ([]BookingRecord, error)
}

type BookingUsecase interface {
	// ListForIdentity returns the bookings visible to the given identity:
	// customers see bookings they requested, workers see requests addressed
	// to them. statusTab is "all" or an exact status.
	ListForIdentity(ctx context.Context, identity *Identity, statusTab string) ([]BookingRecord, error)
}
