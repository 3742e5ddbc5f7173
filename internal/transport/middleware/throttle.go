package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"
)

type windowLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// Throttle limits requests per client with a shared fixed-window limiter
// (Redis in production). When the limiter is unreachable the request is let
// through and the failure is logged; throttling never decides business outcomes.
func Throttle(limiter windowLimiter, scope string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retryAfter, err := limiter.Allow(r.Context(), scope+":"+clientKey(r))
			if err != nil {
				logger.WarnContext(r.Context(), "throttle unavailable",
					slog.String("scope", scope),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				secs := int(math.Ceil(retryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeMessage(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
