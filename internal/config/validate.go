package config

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}
	if c.RateLimit.VotePerMinute <= 0 {
		return fmt.Errorf("rate_limit.vote_per_minute must be > 0 (got %d)", c.RateLimit.VotePerMinute)
	}

	if c.Redis.Enabled() {
		if c.Redis.VoteLimit <= 0 {
			return fmt.Errorf("redis.vote_limit must be > 0 (got %d)", c.Redis.VoteLimit)
		}
		if c.Redis.VoteWindow <= 0 {
			return fmt.Errorf("redis.vote_window must be > 0 (got %v)", c.Redis.VoteWindow)
		}
	}

	patterns, err := ParseOriginPatterns(c.CORS.AllowedOriginPatterns)
	if err != nil {
		return fmt.Errorf("cors.allowed_origin_patterns: %w", err)
	}
	c.CORS.OriginPatterns = patterns

	return nil
}

// ParseOriginPatterns compiles a comma-separated list of origin regular
// expressions (e.g. `^https://.*\.vercel\.app$`). An empty string returns a nil slice.
func ParseOriginPatterns(raw string) ([]*regexp.Regexp, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	patterns := make([]*regexp.Regexp, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	return patterns, nil
}
