package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/decision-rooms/internal/adapter/postgres"
	roomrepo "github.com/heartmarshall/decision-rooms/internal/adapter/postgres/room"
	userrepo "github.com/heartmarshall/decision-rooms/internal/adapter/postgres/user"
	voterepo "github.com/heartmarshall/decision-rooms/internal/adapter/postgres/vote"
	"github.com/heartmarshall/decision-rooms/internal/adapter/redis"
	"github.com/heartmarshall/decision-rooms/internal/auth"
	"github.com/heartmarshall/decision-rooms/internal/config"
	"github.com/heartmarshall/decision-rooms/internal/domain"
	authsvc "github.com/heartmarshall/decision-rooms/internal/service/auth"
	"github.com/heartmarshall/decision-rooms/internal/service/ballot"
	roomsvc "github.com/heartmarshall/decision-rooms/internal/service/room"
	"github.com/heartmarshall/decision-rooms/internal/service/tally"
	"github.com/heartmarshall/decision-rooms/internal/transport/middleware"
	"github.com/heartmarshall/decision-rooms/internal/transport/rest"
)

// NewHandler wires repositories, services and transport into the HTTP API.
// The returned cleanup releases the rate limiter and the Redis connection.
//
// Redis is optional: if it is not configured or unreachable at startup the
// vote throttle falls back to the in-process limiter.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func(), error) {
	// Repositories.
	users := userrepo.New(pool)
	rooms := roomrepo.New(pool)
	votes := voterepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	clock := domain.SystemClock{}
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtMgr, clock, cfg.Auth)
	roomService := roomsvc.NewService(logger, rooms, votes, txm, clock)
	tallyService := tally.NewService(logger, rooms, votes, txm, clock)
	ballotService := ballot.NewService(logger, rooms, votes, tallyService, clock)

	// Throttling.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	cleanup := []func(){limiter.Stop}

	health := rest.NewHealthHandler(pool, Version)
	voteLimit := limiter.Limit("vote", cfg.RateLimit.VotePerMinute)

	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.WarnContext(ctx, "redis unavailable, using in-process vote throttle",
				slog.String("error", err.Error()),
			)
		} else {
			cleanup = append(cleanup, func() { _ = client.Close() })
			health.WithRedis(client)
			voteLimit = middleware.Throttle(
				redis.NewLimiter(client, cfg.Redis.VoteLimit, cfg.Redis.VoteWindow),
				"vote", logger,
			)
			logger.InfoContext(ctx, "redis vote throttle enabled",
				slog.Int("limit", cfg.Redis.VoteLimit),
				slog.Duration("window", cfg.Redis.VoteWindow),
			)
		}
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		CORS:           cfg.CORS,
		RequestTimeout: cfg.Server.RequestTimeout,
		Authenticate:   middleware.Auth(authService),
		AuthLimit:      limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
		VoteLimit:      voteLimit,
		Auth:           rest.NewAuthHandler(authService, logger),
		Decisions:      rest.NewDecisionHandler(roomService, ballotService, tallyService, logger),
		Health:         health,
	})

	return handler, func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}, nil
}
