package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fitlead/internal/models/db_models"
	"fitlead/pkg/utils"
)

const redisSessionPrefix = "fitlead:session:"

var errSessionExpired = errors.New("session expires before it could be stored")

// redisSessionRepository keeps sessions as JSON values whose key TTL matches
// the session expiry, so redis evicts them on its own.
type redisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) SessionRepository {
	return &redisSessionRepository{client: client}
}

func redisStorageError(err error) error {
	return fmt.Errorf("%w: %w", utils.ErrStorage, err)
}

func (r *redisSessionRepository) Create(ctx context.Context, session *db_models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return redisStorageError(err)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return redisStorageError(errSessionExpired)
	}
	if err := r.client.Set(ctx, redisSessionPrefix+session.Token, payload, ttl).Err(); err != nil {
		return redisStorageError(err)
	}
	return nil
}

func (r *redisSessionRepository) Find(ctx context.Context, token string, now time.Time) (*db_models.Session, error) {
	raw, err := r.client.Get(ctx, redisSessionPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, redisStorageError(err)
	}

	var session db_models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, redisStorageError(err)
	}
	if session.Expired(now) {
		return nil, nil
	}
	return &session, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, redisSessionPrefix+token).Err(); err != nil {
		return redisStorageError(err)
	}
	return nil
}

func (r *redisSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
