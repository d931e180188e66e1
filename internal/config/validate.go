package config

import (
	"fmt"
	"strings"
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

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Dashboard.validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	return nil
}

func (d *DashboardConfig) validate() error {
	if d.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be > 0 (got %d)", d.RateLimitPerMinute)
	}
	if d.ActivityFeedMax <= 0 {
		return fmt.Errorf("activity_feed_max must be > 0 (got %d)", d.ActivityFeedMax)
	}
	return nil
}
