package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  jwt_issuer: "portal-test"

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "https://portal.example.com, https://admin.example.com"

content:
  strict_transitions: true

dashboard:
  rate_limit_per_minute: 30
  activity_feed_max: 50
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if got := cfg.Server.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("server.Addr() = %q", got)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// Auth
	if cfg.Auth.JWTIssuer != "portal-test" {
		t.Errorf("auth.jwt_issuer = %q", cfg.Auth.JWTIssuer)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// CORS
	origins := cfg.CORS.Origins()
	if len(origins) != 2 || origins[1] != "https://admin.example.com" {
		t.Errorf("cors.Origins() = %v", origins)
	}

	// Content / dashboard
	if !cfg.Content.StrictTransitions {
		t.Error("content.strict_transitions should be true")
	}
	if cfg.Dashboard.RateLimitPerMinute != 30 {
		t.Errorf("dashboard.rate_limit_per_minute = %d, want 30", cfg.Dashboard.RateLimitPerMinute)
	}
	if cfg.Dashboard.ActivityFeedMax != 50 {
		t.Errorf("dashboard.activity_feed_max = %d, want 50", cfg.Dashboard.ActivityFeedMax)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CONTENT_STRICT_TRANSITIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Content.StrictTransitions {
		t.Error("content.strict_transitions should be overridden to false")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)

	// Unset CONFIG_PATH so the fallback kicks in and the file is just absent.
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Auth.JWTIssuer != "companyportal" {
		t.Errorf("auth.jwt_issuer = %q, want companyportal (default)", cfg.Auth.JWTIssuer)
	}
	if cfg.Content.StrictTransitions {
		t.Error("content.strict_transitions should default to false")
	}
	if cfg.Dashboard.RateLimitPerMinute != 60 {
		t.Errorf("dashboard.rate_limit_per_minute = %d, want 60 (default)", cfg.Dashboard.RateLimitPerMinute)
	}
	if cfg.CORS.AllowedMethods != "GET,POST,PUT,DELETE,OPTIONS" {
		t.Errorf("cors.allowed_methods = %q", cfg.CORS.AllowedMethods)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_JWTSecretTooShort(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short JWT secret")
	}
}

func TestValidate_JWTSecretEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty JWT secret")
	}
}

func TestValidate_AccessTokenTTLZero(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.AccessTokenTTL = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero access token TTL")
	}
}

func TestValidate_PortOutOfRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.Server.Port = port

		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_MinConnsExceedMax(t *testing.T) {
	cfg := validConfig()
	cfg.Database.MinConns = 30
	cfg.Database.MaxConns = 10

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when min_conns > max_conns")
	}
}

func TestValidate_UnknownLogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestValidate_Dashboard_RateLimitZero(t *testing.T) {
	cfg := validConfig()
	cfg.Dashboard.RateLimitPerMinute = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for RateLimitPerMinute = 0")
	}
}

func TestValidate_Dashboard_ActivityFeedMaxNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Dashboard.ActivityFeedMax = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative ActivityFeedMax")
	}
}

func TestCORSConfig_Origins_TrimsAndSkipsEmpty(t *testing.T) {
	t.Parallel()

	c := CORSConfig{AllowedOrigins: " https://a.example , ,https://b.example,"}
	got := c.Origins()

	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("Origins() = %v", got)
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{
			DSN:      "postgres://u:p@localhost:5432/testdb",
			MaxConns: 25,
			MinConns: 5,
		},
		Auth: AuthConfig{
			JWTSecret:      "this-is-a-very-long-jwt-secret-for-testing-32+",
			JWTIssuer:      "companyportal",
			AccessTokenTTL: 15 * time.Minute,
		},
		Log: LogConfig{Level: "info", Format: "json"},
		Dashboard: DashboardConfig{
			RateLimitPerMinute: 60,
			ActivityFeedMax:    100,
		},
	}
}

func TestLoadFile_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", "/ignored/when/path/given.yaml")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn from env", cfg.Log.Level)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090 from yaml", cfg.Server.Port)
	}
	if cfg.Database.ApplicationName != "companyportal" {
		t.Errorf("database.application_name = %q, want default", cfg.Database.ApplicationName)
	}
}

func TestLoadFile_MissingPath(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
