// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// GeminiAPIKey is the credential for the generation oracle. Required:
	// its absence is a configuration error reported at startup, before any
	// network call is ever attempted.
	GeminiAPIKey string

	// GeminiModel is the oracle model name.
	// Defaults to "gemini-3-pro-preview".
	GeminiModel string

	// GeminiBaseURL overrides the oracle endpoint. Empty means the
	// production Generative Language API; tests point it at a local server.
	GeminiBaseURL string

	// OracleTimeout is the hard client-side deadline per solve call.
	// Defaults to 90s. Accepts Go duration syntax ("2m", "45s").
	OracleTimeout time.Duration

	// RedisAddr enables the solve cache when set (host:port).
	// Empty disables caching entirely.
	RedisAddr string

	// RedisPassword is the optional Redis AUTH password.
	RedisPassword string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-3-pro-preview"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	timeout, err := time.ParseDuration(getEnv("ORACLE_TIMEOUT", "90s"))
	if err != nil {
		return Config{}, fmt.Errorf("ORACLE_TIMEOUT is not a valid duration: %w", err)
	}
	cfg.OracleTimeout = timeout

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
