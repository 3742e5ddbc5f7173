package redis

import (
	"context"
	"fmt"
	"time"
)

// Limiter is a fixed-window counter shared by every server instance.
type Limiter struct {
	client *Client
	limit  int
	window time.Duration
}

// NewLimiter allows at most limit hits per key within each window.
func NewLimiter(client *Client, limit int, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: limit, window: window}
}

// Allow counts one hit for key. When the window is exhausted it returns false
// and the time until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := l.client.Key("ratelimit", key)

	pipe := l.client.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("redis: limiter %s: %w", key, err)
	}

	remaining := ttl.Val()
	// A key without expiry was just created; the window starts now.
	if remaining < 0 {
		if err := l.client.rdb.PExpire(ctx, k, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("redis: limiter %s: expire: %w", key, err)
		}
		remaining = l.window
	}

	if incr.Val() <= int64(l.limit) {
		return true, 0, nil
	}
	return false, remaining, nil
}
