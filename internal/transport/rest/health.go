package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// pinger defines the minimal interface for component health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

const (
	componentDatabase = "database"
	componentRedis    = "redis"

	statusOK       = "ok"
	statusDown     = "down"
	statusDegraded = "degraded"
)

// HealthHandler serves health check endpoints. The database is required;
// Redis, when configured, only backs throttling and its loss degrades the
// service without taking it down.
type HealthHandler struct {
	db      pinger
	redis   pinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// WithRedis adds Redis to the reported components.
func (h *HealthHandler) WithRedis(redis pinger) *HealthHandler {
	h.redis = redis
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    statusDown,
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings every component concurrently with
// latency measurement and includes version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]pinger{componentDatabase: h.db}
	if h.redis != nil {
		checks[componentRedis] = h.redis
	}

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(checks))
		g          errgroup.Group
	)
	for name, p := range checks {
		g.Go(func() error {
			st := check(ctx, p)
			mu.Lock()
			components[name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	overall := statusOK
	status := http.StatusOK
	switch {
	case components[componentDatabase].Status != statusOK:
		overall = statusDown
		status = http.StatusServiceUnavailable
	case h.redis != nil && components[componentRedis].Status != statusOK:
		overall = statusDegraded
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func check(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}
