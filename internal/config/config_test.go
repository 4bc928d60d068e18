package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "sparkmatch")
	t.Setenv("DB_NAME", "sparkmatch")
	t.Setenv("JWT_ACCESS_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadUsesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("unexpected default server port: %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Fatalf("unexpected read timeout: %v", cfg.Server.ReadTimeout)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Fatalf("unexpected ssl mode: %q", cfg.Database.SSLMode)
	}
	if cfg.Feed.CandidateLimit != 20 {
		t.Fatalf("unexpected candidate limit: %d", cfg.Feed.CandidateLimit)
	}
	if cfg.Storage.Bucket != "profile-photos" {
		t.Fatalf("unexpected bucket: %q", cfg.Storage.Bucket)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FEED_CANDIDATE_LIMIT", "50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("unexpected server port: %d", cfg.Server.Port)
	}
	if cfg.Feed.CandidateLimit != 50 {
		t.Fatalf("unexpected candidate limit: %d", cfg.Feed.CandidateLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_SECRET", "short")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for short JWT secret")
	}
}

func TestValidateRequiresDatabaseHost(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for missing database host")
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5433, User: "app", Password: "secret",
		DBName: "sparkmatch", SSLMode: "require",
	}
	want := "host=db port=5433 user=app password=secret dbname=sparkmatch sslmode=require"
	if got := cfg.GetDSN(); got != want {
		t.Fatalf("unexpected DSN:\n got %q\nwant %q", got, want)
	}
}
