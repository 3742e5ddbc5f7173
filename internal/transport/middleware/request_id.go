package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/pkg/ctxutil"
)

// RequestIDHeader is echoed on every response and honoured on requests.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that propagates the incoming request ID or
// generates a new one.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
