//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/decision-rooms/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/decision-rooms/internal/app"
	"github.com/heartmarshall/decision-rooms/internal/config"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// setupTestServer starts the full HTTP stack against the shared test database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{RequestTimeout: 10 * time.Second},
		Auth: config.AuthConfig{
			JWTSecret:        "e2e-secret-that-is-at-least-32-characters",
			JWTIssuer:        "decision-rooms-e2e",
			AccessTokenTTL:   time.Hour,
			PasswordHashCost: 4,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "http://localhost:3000",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{
			AuthPerMinute:   1000,
			VotePerMinute:   1000,
			CleanupInterval: time.Minute,
		},
	}

	handler, cleanup, err := app.NewHandler(t.Context(), cfg, logger, pool)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// call sends a JSON request and returns the status and raw body.
func (ts *testServer) call(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// callJSON is call with the body decoded into a map.
func (ts *testServer) callJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	status, raw := ts.call(t, method, path, body, token)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return status, out
}

// registerAndLogin creates a fresh user and returns its username and token.
func registerAndLogin(t *testing.T, ts *testServer) (string, string) {
	t.Helper()

	username := "user_" + uuid.NewString()[:8]
	creds := map[string]string{"username": username, "password": "password123"}

	status, _ := ts.callJSON(t, http.MethodPost, "/api/auth/register", creds, "")
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.callJSON(t, http.MethodPost, "/api/auth/login", creds, "")
	require.Equal(t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	return username, token
}

// createRoom creates a room through the API and returns its decoded "room" object.
func createRoom(t *testing.T, ts *testServer, token string, deadline time.Time, options ...string) map[string]any {
	t.Helper()

	if len(options) == 0 {
		options = []string{"Option A", "Option B"}
	}
	status, body := ts.callJSON(t, http.MethodPost, "/api/decisions", map[string]any{
		"title":       "Room " + uuid.NewString()[:8],
		"explanation": "What should we do?",
		"options":     options,
		"deadline":    deadline.UTC().Format(time.RFC3339),
	}, token)
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	room, ok := body["room"].(map[string]any)
	require.True(t, ok, "expected room in response")
	return room
}

// optionIDs returns the option ids of a decoded room in display order.
func optionIDs(t *testing.T, room map[string]any) []string {
	t.Helper()

	opts, ok := room["options"].([]any)
	require.True(t, ok, "expected options array")
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		ids = append(ids, o.(map[string]any)["id"].(string))
	}
	return ids
}
