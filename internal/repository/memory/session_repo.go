package memory

import (
	"context"
	"sync"

	"go-workerconnect-backend/internal/domain"
)

type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionRepository returns an in-memory session store. Used as the
// startup fallback when Redis is unconfigured, and as the test double.
func NewSessionRepository() domain.SessionRepository {
	return &sessionRepo{sessions: make(map[string]domain.Session)}
}

func (r *sessionRepo) Save(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
