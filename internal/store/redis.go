package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

const redisOpTimeout = 2 * time.Second

// RedisStore persists the payload under a single Redis key. It exists
// for shared environments where the builder session should follow the
// user across machines; the file tiers remain the default.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed store from a redis:// URL.
func NewRedisStore(url, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if key == "" {
		key = "formcanvas:session"
	}
	return &RedisStore{client: redis.NewClient(opts), key: key}, nil
}

// Name identifies the tier in logs.
func (s *RedisStore) Name() string {
	return "redis"
}

// Save writes the payload. Sessions are working state, not archives, so
// the key carries no TTL.
func (s *RedisStore) Save(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return apperrors.NewStorageError(s.Name(), "save", err)
	}
	return nil
}

// Load reads the payload; a missing key means no payload yet.
func (s *RedisStore) Load() ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewStorageError(s.Name(), "load", err)
	}
	return data, true, nil
}

// Clear removes the payload.
func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return apperrors.NewStorageError(s.Name(), "clear", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
