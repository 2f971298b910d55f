package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/vpndash/vpndash/internal/shared/biztime"
)

// MemoryRateLimiter is the single-process fallback used when Redis is disabled.
type MemoryRateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	clock  biztime.Clock
	bucket int64
	counts map[string]int64
}

func NewMemoryRateLimiter(limit int, window time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		limit:  limit,
		window: window,
		clock:  biztime.SystemClock{},
		counts: make(map[string]int64),
	}
}

// WithClock replaces the time source, used by tests.
func (l *MemoryRateLimiter) WithClock(clock biztime.Clock) *MemoryRateLimiter {
	l.clock = clock
	return l
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := l.clock.Now()
	bucket := windowBucket(now, l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	// a new window drops every counter of the previous one
	if bucket != l.bucket {
		l.bucket = bucket
		l.counts = make(map[string]int64)
	}
	l.counts[key]++
	count := l.counts[key]

	if count > int64(l.limit) {
		return Result{Allowed: false, RetryAfter: retryAfter(now, l.window)}, nil
	}
	return Result{Allowed: true, Remaining: int64(l.limit) - count}, nil
}
