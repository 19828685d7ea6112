package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter stores admitted events as expiring Redis keys so the window survives restarts
// and is shared between instances. Expiry follows the Redis server clock.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a limiter whose keys live under prefix.
func NewRedisLimiter(client *redis.Client, window time.Duration, prefix string) *RedisLimiter {
	return &RedisLimiter{client: client, window: window, prefix: prefix}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.prefix+":"+key, 1, l.window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record event: %w", err)
	}
	return ok, nil
}
