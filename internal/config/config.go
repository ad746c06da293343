// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the CommutePro server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// AppEnv is "dev" or "prod". Defaults to "dev". Dev logs coloured text
	// and serves plain cookies; prod logs JSON and marks cookies Secure.
	AppEnv string

	// LogLevel is the minimum log level. Defaults to info.
	// Valid values: debug, info, warn, error.
	LogLevel slog.Level

	// CORSOrigins is the list of origins allowed to call /api.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SessionTTL is how long an untouched wizard session is kept. Defaults to 24h.
	SessionTTL time.Duration

	// SessionMax caps the number of sessions held in memory. Defaults to 10000.
	SessionMax int

	// MaxBodyBytes limits request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64
}

// IsProd reports whether the server runs in production mode.
func (c Config) IsProd() bool { return c.AppEnv == "prod" }

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable that holds an invalid value.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "dev"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var invalid []string

	switch cfg.AppEnv {
	case "dev", "prod":
	default:
		invalid = append(invalid, fmt.Sprintf("APP_ENV=%q (allowed: dev, prod)", cfg.AppEnv))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		invalid = append(invalid, fmt.Sprintf("LOG_LEVEL=%q (allowed: debug, info, warn, error)", os.Getenv("LOG_LEVEL")))
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		invalid = append(invalid, fmt.Sprintf("SESSION_TTL=%q (want a positive duration such as 24h)", os.Getenv("SESSION_TTL")))
	}
	cfg.SessionTTL = ttl

	maxSessions, err := strconv.Atoi(getEnv("SESSION_MAX", "10000"))
	if err != nil || maxSessions <= 0 {
		invalid = append(invalid, fmt.Sprintf("SESSION_MAX=%q (want a positive integer)", os.Getenv("SESSION_MAX")))
	}
	cfg.SessionMax = maxSessions

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "65536"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, fmt.Sprintf("MAX_BODY_BYTES=%q (want a positive integer)", os.Getenv("MAX_BODY_BYTES")))
	}
	cfg.MaxBodyBytes = maxBody

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, "; "))
	}

	return cfg, nil
}

// getEnv returns the trimmed value of the environment variable named by key,
// or fallback if the variable is not set or is blank.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
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
