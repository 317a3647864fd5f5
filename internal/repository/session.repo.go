package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"chat-service/pkg/cache"
	"chat-service/pkg/xerrors"
)

const sessionNamespace = "chat_session"

// SessionRepository keeps login sessions in Redis with a sliding TTL.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(c *cache.Cache, ttl time.Duration) *SessionRepository {
	return &SessionRepository{cache: c, ttl: ttl}
}

func (r *SessionRepository) Save(ctx context.Context, userID, token string) error {
	return r.cache.Set(ctx, sessionNamespace, userID, token, r.ttl)
}

// Lookup returns the stored token for a user and refreshes its TTL.
func (r *SessionRepository) Lookup(ctx context.Context, userID string) (string, error) {
	token, err := r.cache.Get(ctx, sessionNamespace, userID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", xerrors.ErrSessionExpired
		}
		return "", err
	}
	_ = r.cache.Set(ctx, sessionNamespace, userID, token, r.ttl)
	return token, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	return r.cache.Delete(ctx, sessionNamespace, userID)
}
