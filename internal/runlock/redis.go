package runlock

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"dad-circles-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:embed release.lua
var releaseScript string

const (
	keyPrefix  = "dadcircles:runlock:"
	DefaultTTL = 15 * time.Minute
)

// RedisLocker shares the run lock between every process pointed at the same Redis
type RedisLocker struct {
	client  *redis.Client
	ttl     time.Duration
	release *redis.Script
}

// NewRedisLocker creates a locker whose keys expire after ttl if a holder dies
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLocker{
		client:  client,
		ttl:     ttl,
		release: redis.NewScript(releaseScript),
	}
}

// NewRedisClient parses a redis:// URL and verifies the server answers
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// TryAcquire implements Locker
func (l *RedisLocker) TryAcquire(ctx context.Context, name string) (func(), error) {
	key := keyPrefix + name
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, ErrHeld
	}

	return func() {
		// the caller's context may already be cancelled when releasing
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.release.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			logger.New().WithField("key", key).WithError(err).Warn("failed to release run lock")
		}
	}, nil
}
