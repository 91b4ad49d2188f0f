package usecase

import (
	"context"
	"errors"
	"time"

	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/apperror"
	"go-workerconnect-backend/pkg/logger"
	"go-workerconnect-backend/pkg/token"

	"github.com/google/uuid"
)

// The fixed credential allow-list. Present as literal data, one entry per
// role; login succeeds only on an exact triple match.
type credential struct {
	Email    string
	Password string
	Role     string
}

var allowList = []credential{
	{Email: "admin", Password: "12345678", Role: domain.RoleCustomer},
	{Email: "worker", Password: "12345678", Role: domain.RoleWorker},
}

type authUsecase struct {
	sessions domain.SessionRepository
	tokens   *token.Manager
}

func NewAuthUsecase(sessions domain.SessionRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{sessions: sessions, tokens: tokens}
}

func (u *authUsecase) Login(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
	var matched bool
	for _, cred := range allowList {
		if cred.Email == email && cred.Password == password && cred.Role == role {
			matched = true
			break
		}
	}
	if !matched {
		// Failure is a plain result; any existing session stays untouched.
		return nil, domain.ErrInvalidCredentials
	}

	identity := demoIdentity(email, role)
	return u.createSession(ctx, identity)
}

func (u *authUsecase) Register(ctx context.Context, input *domain.RegisterInput) (*domain.AuthResult, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	// Registration always succeeds: there is no identity registry to check
	// uniqueness against, only session snapshots.
	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		Phone:        input.Phone,
		Location:     input.Location,
		Profession:   input.Profession,
		Experience:   input.Experience,
		Bio:          input.Bio,
		Skills:       input.Skills,
		AadharNumber: input.AadharNumber,
	}
	return u.createSession(ctx, identity)
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	// Idempotent: deleting an absent session is a no-op, not an error.
	if sessionID == "" {
		return nil
	}
	return u.sessions.Delete(ctx, sessionID)
}

func (u *authUsecase) Restore(ctx context.Context, sessionID string) (*domain.Identity, error) {
	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, domain.ErrSessionCorrupt) {
			// Treat a malformed snapshot as "no session": drop the corrupt
			// key and report a diagnostic instead of propagating the parse
			// failure.
			logger.Log.Warn("Discarding corrupt session snapshot", "session_id", sessionID)
			_ = u.sessions.Delete(ctx, sessionID)
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	// The snapshot is adopted verbatim, credentials are not re-validated.
	return &session.Identity, nil
}

func (u *authUsecase) createSession(ctx context.Context, identity *domain.Identity) (*domain.AuthResult, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		Identity:  *identity,
		CreatedAt: time.Now(),
	}
	if err := u.sessions.Save(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}

	signed, err := u.tokens.Issue(session.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Identity: identity, Token: signed}, nil
}

// demoIdentity synthesizes the fixed demonstration profile for an allow-list
// login. These literal values are part of the contract; there is no real
// profile store behind them.
func demoIdentity(email, role string) *domain.Identity {
	if role == domain.RoleWorker {
		return &domain.Identity{
			ID:             "2",
			Name:           "Mike Worker",
			Email:          email,
			Role:           domain.RoleWorker,
			Phone:          "+91 8765432109",
			Location:       "Delhi, India",
			ProfilePicture: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Profession:     "Plumber",
			Experience:     5,
			Bio:            "Experienced plumber with 5+ years in residential and commercial work.",
			Skills:         []string{"Pipe Fitting", "Leak Repair", "Bathroom Installation"},
			Rating:         4.8,
			TotalReviews:   127,
		}
	}
	return &domain.Identity{
		ID:             "1",
		Name:           "John Customer",
		Email:          email,
		Role:           domain.RoleCustomer,
		Phone:          "+91 9876543210",
		Location:       "Mumbai, Maharashtra",
		ProfilePicture: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
	}
}
