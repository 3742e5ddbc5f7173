package config

import (
	"regexp"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings. Origins and patterns are comma-separated.
type CORSConfig struct {
	AllowedOrigins        string `yaml:"allowed_origins"         env:"CORS_ALLOWED_ORIGINS"         env-default:"http://localhost:3000"`
	AllowedOriginPatterns string `yaml:"allowed_origin_patterns" env:"CORS_ALLOWED_ORIGIN_PATTERNS"`
	AllowedMethods        string `yaml:"allowed_methods"         env:"CORS_ALLOWED_METHODS"         env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders        string `yaml:"allowed_headers"         env:"CORS_ALLOWED_HEADERS"         env-default:"Authorization,Content-Type"`
	AllowCredentials      bool   `yaml:"allow_credentials"       env:"CORS_ALLOW_CREDENTIALS"       env-default:"true"`
	MaxAge                int    `yaml:"max_age"                 env:"CORS_MAX_AGE"                 env-default:"86400"`

	// OriginPatterns is compiled from AllowedOriginPatterns during validation.
	OriginPatterns []*regexp.Regexp `yaml:"-" env:"-"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"SERVER_REQUEST_TIMEOUT"  env-default:"15s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"decision-rooms"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"1h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RedisConfig holds the optional Redis connection used for distributed vote throttling.
// An empty URL disables Redis and the in-process limiter is used instead.
type RedisConfig struct {
	URL        string        `yaml:"url"         env:"REDIS_URL"`
	KeyPrefix  string        `yaml:"key_prefix"  env:"REDIS_KEY_PREFIX"  env-default:"decision-rooms"`
	VoteLimit  int           `yaml:"vote_limit"  env:"REDIS_VOTE_LIMIT"  env-default:"10"`
	VoteWindow time.Duration `yaml:"vote_window" env:"REDIS_VOTE_WINDOW" env-default:"1m"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool { return c.URL != "" }

// RateLimitConfig holds per-IP limits for unauthenticated endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	VotePerMinute   int           `yaml:"vote_per_minute"  env:"RATE_LIMIT_VOTE_PER_MINUTE" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}
