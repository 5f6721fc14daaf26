package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// pin the asserted variables so ambient env cannot leak in
	for _, key := range []string{"PORT", "TOKEN_TTL", "JWT_SECRET", "ES_PROJECTS_INDEX"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Errorf("TokenTTL = %v, want 168h", cfg.TokenTTL)
	}
	if cfg.JWTSecret != "" {
		t.Errorf("JWTSecret has a default; it must be provisioned explicitly")
	}
	if cfg.ESProjectsIndex != "projects" {
		t.Errorf("ESProjectsIndex = %q, want projects", cfg.ESProjectsIndex)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_MAX_CONNS", "25")

	cfg := Load()
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q, want s3cret", cfg.JWTSecret)
	}
	if cfg.DBMaxConns != 25 {
		t.Errorf("DBMaxConns = %d, want 25", cfg.DBMaxConns)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	t.Setenv("DB_MAX_CONNS", "many")

	cfg := Load()
	if cfg.TokenTTL != 168*time.Hour {
		t.Errorf("TokenTTL = %v, want default 168h", cfg.TokenTTL)
	}
	if cfg.DBMaxConns != 10 {
		t.Errorf("DBMaxConns = %d, want default 10", cfg.DBMaxConns)
	}
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "site")

	cfg := Load()
	want := "postgres://app:pw@db.internal:5433/site?sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Errorf("PostgresDSN() = %q, want %q", got, want)
	}
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.org, https://b.org ,")

	cfg := Load()
	got := cfg.CORSOrigins()
	if len(got) != 2 || got[0] != "https://a.org" || got[1] != "https://b.org" {
		t.Errorf("CORSOrigins() = %v", got)
	}
}
