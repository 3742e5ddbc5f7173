package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/decision-rooms/internal/config"
	"github.com/heartmarshall/decision-rooms/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires together. AuthLimit and
// VoteLimit are optional.
type RouterDeps struct {
	Logger         *slog.Logger
	CORS           config.CORSConfig
	RequestTimeout time.Duration

	Authenticate middleware.Middleware
	AuthLimit    middleware.Middleware
	VoteLimit    middleware.Middleware

	Auth      *AuthHandler
	Decisions *DecisionHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		chimw.RealIP,
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		d.Authenticate,
		middleware.Logger(d.Logger),
	)
	if d.RequestTimeout > 0 {
		r.Use(chimw.Timeout(d.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Decision Rooms backend is running"))
	})
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(orPass(d.AuthLimit))
		r.Post("/register", d.Auth.Register)
		r.Post("/login", d.Auth.Login)
	})

	r.Route("/api/decisions", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Post("/", d.Decisions.Create)
		r.Get("/", d.Decisions.List)
		r.Get("/{id}", d.Decisions.Get)
		r.With(orPass(d.VoteLimit)).Post("/{id}/vote", d.Decisions.Vote)
		r.Get("/{id}/tally", d.Decisions.Tally)
	})

	return r
}

func orPass(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return middleware.Chain()
	}
	return mw
}
