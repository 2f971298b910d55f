package ratelimit

import (
	"context"
	"time"
)

// Result describes one counted request.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter counts requests per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

func windowBucket(now time.Time, window time.Duration) int64 {
	return now.Unix() / int64(window.Seconds())
}

func retryAfter(now time.Time, window time.Duration) time.Duration {
	w := int64(window.Seconds())
	next := (now.Unix()/w + 1) * w
	return time.Unix(next, 0).Sub(now).Truncate(time.Second) + time.Second
}
