package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vpndash/vpndash/internal/shared/biztime"
)

// RedisRateLimiter keeps one INCR counter per key and window. Instances sharing
// the same Redis share the budget.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	clock  biztime.Clock
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		clock:  biztime.SystemClock{},
	}
}

// WithClock replaces the time source, used by tests.
func (l *RedisRateLimiter) WithClock(clock biztime.Clock) *RedisRateLimiter {
	l.clock = clock
	return l
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := l.clock.Now()
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, windowBucket(now, l.window))

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{Allowed: true}, fmt.Errorf("failed to count request: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window+time.Second).Err(); err != nil {
			return Result{Allowed: true}, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}

	remaining := int64(l.limit) - count
	if remaining < 0 {
		remaining = 0
	}

	if count > int64(l.limit) {
		return Result{Allowed: false, Remaining: 0, RetryAfter: retryAfter(now, l.window)}, nil
	}
	return Result{Allowed: true, Remaining: remaining}, nil
}
