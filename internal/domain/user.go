package domain

import (
	"context"
	"errors"
	"time"
)

// Roles accepted by login and registration.
const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid email, password, or role")
	ErrSessionCorrupt     = errors.New("stored session snapshot is malformed")
)

// Identity is the authenticated user's profile. One Identity is held per
// session; the serialized JSON form is the persisted session snapshot.
type Identity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Phone          string `json:"phone,omitempty"`
	Location       string `json:"location,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	// Worker specific fields
	Profession    string   `json:"profession,omitempty"`
	Experience    int      `json:"experience,omitempty"`
	Bio           string   `json:"bio,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	AadharNumber  string   `json:"aadhar_number,omitempty"`
	WorkPortfolio []string `json:"work_portfolio,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	TotalReviews  int      `json:"total_reviews,omitempty"`
}

// IsWorker reports whether the identity registered as a service worker.
func (i *Identity) IsWorker() bool {
	return i.Role == RoleWorker
}

// Session pairs an Identity snapshot with the opaque id it is stored under.
type Session struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionRepository is the durable key-value store holding session snapshots.
// Get returns ErrNotFound for an absent key and ErrSessionCorrupt when the
// stored payload cannot be decoded.
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// RegisterInput is the canonical field set handed to Register. Handlers and
// the registration workflow build it from their own typed forms. Text fields
// are free text: only the role is constrained, nothing rejects an unusual
// name, email, or phone.
type RegisterInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role" validate:"omitempty,oneof=customer worker"`
	Phone        string   `json:"phone"`
	Location     string   `json:"location"`
	Profession   string   `json:"profession"`
	Experience   int      `json:"experience"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	AadharNumber string   `json:"aadhar_number"`
}

// AuthResult carries the identity adopted as current plus the signed token
// that references its persisted snapshot.
type AuthResult struct {
	Identity *Identity `json:"user"`
	Token    string    `json:"token"`
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password, role string) (*AuthResult, error)
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Restore(ctx context.Context, sessionID string) (*Identity, error)
}
