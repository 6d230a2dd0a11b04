package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.APIPort)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("expected default session TTL 12h, got %s", cfg.SessionTTL)
	}
	if cfg.LatencyFactor != 1.0 {
		t.Fatalf("expected default latency factor 1.0, got %f", cfg.LatencyFactor)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DATABASE", "kiosk_test")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("API_PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("KIOSK_LATENCY_FACTOR", "0")

	cfg := Load()
	if cfg.MongoURI != "mongodb://mongo:27017" {
		t.Fatalf("expected MONGO_URI override, got %s", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "kiosk_test" {
		t.Fatalf("expected MONGO_DATABASE override, got %s", cfg.MongoDatabase)
	}
	if cfg.RedisAddr != "redis:6380" {
		t.Fatalf("expected REDIS_ADDR override, got %s", cfg.RedisAddr)
	}
	if cfg.APIPort != "9090" {
		t.Fatalf("expected API_PORT override, got %s", cfg.APIPort)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected SESSION_TTL 30m, got %s", cfg.SessionTTL)
	}
	if cfg.LatencyFactor != 0 {
		t.Fatalf("expected KIOSK_LATENCY_FACTOR 0, got %f", cfg.LatencyFactor)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	cfg := Load()
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("expected fallback TTL 12h, got %s", cfg.SessionTTL)
	}
}
