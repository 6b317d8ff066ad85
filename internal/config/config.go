// Package config reads runtime settings from SKINADVISOR_* environment
// variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds process-wide settings shared by the CLI and HTTP server.
type Config struct {
	Addr              string
	CatalogPath       string // empty uses the embedded catalog
	LogUseCases       bool
	LogLevel          slog.Level
	ReadTimeoutMs     int
	WriteTimeoutMs    int
	ShutdownTimeoutMs int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:              ":8080",
		LogLevel:          slog.LevelInfo,
		ReadTimeoutMs:     5000,
		WriteTimeoutMs:    10000,
		ShutdownTimeoutMs: 5000,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or malformed values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("SKINADVISOR_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SKINADVISOR_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("SKINADVISOR_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SKINADVISOR_LOG_LEVEL"); v != "" {
		if lvl, ok := parseLevel(v); ok {
			cfg.LogLevel = lvl
		}
	}
	applyMillisEnv(&cfg.ReadTimeoutMs, "SKINADVISOR_READ_TIMEOUT_MS")
	applyMillisEnv(&cfg.WriteTimeoutMs, "SKINADVISOR_WRITE_TIMEOUT_MS")
	applyMillisEnv(&cfg.ShutdownTimeoutMs, "SKINADVISOR_SHUTDOWN_TIMEOUT_MS")

	return cfg
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMs) * time.Millisecond
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutMs) * time.Millisecond
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMs) * time.Millisecond
}

func parseLevel(s string) (slog.Level, bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}

func applyMillisEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}
