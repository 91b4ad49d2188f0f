package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-workerconnect-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Session snapshots live under a fixed key prefix; absence of the key means
// "no active session" for that id.
const sessionKeyPrefix = "workerconnect:session:"

type sessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository returns a Redis-backed session store. Snapshots are
// stored as JSON and expire after ttl.
func NewSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionRepository {
	return &sessionRepo{client: client, ttl: ttl}
}

func (r *sessionRepo) Save(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.ID, payload, r.ttl).Err()
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		// The stored snapshot is trusted on restore, so a decode failure
		// means the payload was corrupted outside this process.
		return nil, domain.ErrSessionCorrupt
	}
	return &session, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}
