package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/heartmarshall/decision-rooms/pkg/ctxutil"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter keeps in-process token buckets. It backs throttling when no
// shared limiter is configured, so limits are per instance.
type RateLimiter struct {
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per client.
// scope separates buckets of different routes sharing one limiter.
func (rl *RateLimiter) Limit(scope string, maxPerMinute int) Middleware {
	return Throttle(rl.PerMinute(maxPerMinute), scope, slog.Default())
}

// PerMinute returns a view of the limiter with the given capacity, refilled
// evenly over a minute. It satisfies the same contract as the Redis limiter.
func (rl *RateLimiter) PerMinute(maxPerMinute int) *BucketLimiter {
	capacity := float64(maxPerMinute)
	return &BucketLimiter{rl: rl, capacity: capacity, perSecond: capacity / 60}
}

// BucketLimiter takes tokens from the buckets of a RateLimiter.
type BucketLimiter struct {
	rl        *RateLimiter
	capacity  float64
	perSecond float64
}

// Allow takes a token for key. When none is left it reports how long until
// the next one refills. It never fails.
func (l *BucketLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	now := time.Now()
	val, _ := l.rl.buckets.LoadOrStore(key, &bucket{tokens: l.capacity, lastRefill: now})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(l.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*l.perSecond)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0, nil
	}
	if l.perSecond <= 0 {
		return false, time.Minute, nil
	}
	wait := time.Duration((1 - b.tokens) / l.perSecond * float64(time.Second))
	return false, wait, nil
}

// clientKey identifies the caller: the user ID when authenticated,
// otherwise the remote address (rewritten by RealIP upstream).
func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	return "ip:" + r.RemoteAddr
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.lastRefill)
				b.mu.Unlock()
				if idle > bucketIdleTTL {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
