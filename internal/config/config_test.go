package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("STATE_DB_PATH", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.APIBaseURL != defaultBaseURL {
		t.Fatalf("APIBaseURL=%q, want %q", cfg.APIBaseURL, defaultBaseURL)
	}
	if cfg.StateDBPath != defaultStateDBPath {
		t.Fatalf("StateDBPath=%q, want %q", cfg.StateDBPath, defaultStateDBPath)
	}
	if cfg.HTTPTimeout != defaultTimeout {
		t.Fatalf("HTTPTimeout=%s, want %s", cfg.HTTPTimeout, defaultTimeout)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel=%q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://printshop.example.com/api")
	t.Setenv("STATE_DB_PATH", "/tmp/state.db")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.APIBaseURL != "https://printshop.example.com/api" {
		t.Fatalf("APIBaseURL=%q", cfg.APIBaseURL)
	}
	if cfg.StateDBPath != "/tmp/state.db" {
		t.Fatalf("StateDBPath=%q", cfg.StateDBPath)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("HTTPTimeout=%s, want 5s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel=%q, want debug", cfg.LogLevel)
	}
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://printshop.example.com/api")
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg := Load()

	if cfg.HTTPTimeout != defaultTimeout {
		t.Fatalf("HTTPTimeout=%s, want default %s", cfg.HTTPTimeout, defaultTimeout)
	}
}

func TestLoad_NegativeTimeoutFallsBack(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://printshop.example.com/api")
	t.Setenv("HTTP_TIMEOUT", "-3s")

	cfg := Load()

	if cfg.HTTPTimeout != defaultTimeout {
		t.Fatalf("HTTPTimeout=%s, want default %s", cfg.HTTPTimeout, defaultTimeout)
	}
}
