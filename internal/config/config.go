package config

import (
	"log"
	"os"
	"time"
)

const (
	defaultBaseURL     = "http://localhost:8080/api"
	defaultStateDBPath = "./console.db"
	defaultTimeout     = 30 * time.Second
	defaultLogLevel    = "info"
)

// Config holds console configuration sourced from environment variables.
type Config struct {
	// APIBaseURL is the backend root including the /api prefix.
	APIBaseURL string
	// StateDBPath locates the local sqlite state database that persists
	// the session between runs.
	StateDBPath string
	// HTTPTimeout bounds every backend call.
	HTTPTimeout time.Duration
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; real deployments should use
	// real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		StateDBPath: os.Getenv("STATE_DB_PATH"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		HTTPTimeout: defaultTimeout,
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Printf("warning: invalid HTTP_TIMEOUT %q, using %s", raw, defaultTimeout)
		} else {
			cfg.HTTPTimeout = d
		}
	}

	if cfg.APIBaseURL == "" {
		log.Printf("warning: API_BASE_URL is not set, using %s", defaultBaseURL)
		cfg.APIBaseURL = defaultBaseURL
	}
	if cfg.StateDBPath == "" {
		cfg.StateDBPath = defaultStateDBPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg
}
