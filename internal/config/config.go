// Package config reads server configuration from the process environment.
//
// A .env file in the working directory is loaded first if present (handy for
// local development); real environment variables win over it. Every problem
// is collected and reported at once, before any listener or database handle
// exists, so a misconfigured deploy fails at startup instead of at bind time.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
)

// Defaults for optional settings.
const (
	DefaultPreferencesDBPath = "data/preferences.db"
	DefaultLogLevel          = "info"
)

// Config holds everything cmd/server needs to build the server.
type Config struct {
	Port              int
	DatabaseURL       string // Postgres, used for the version endpoint
	PreferencesDBPath string // SQLite file holding preference profiles
	CatalogPath       string // optional YAML override of the built-in catalog
	AllowedOrigins    []string
	LogLevel          slog.Level
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv to look variables up.
// The returned error joins one apperror.ValidationFailed per bad variable.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DatabaseURL:       strings.TrimSpace(getenv("DATABASE_URL")),
		PreferencesDBPath: strings.TrimSpace(getenv("PREFERENCES_DB_PATH")),
		CatalogPath:       strings.TrimSpace(getenv("CATALOG_PATH")),
		AllowedOrigins:    splitList(getenv("CORS_ALLOWED_ORIGINS")),
	}
	if cfg.PreferencesDBPath == "" {
		cfg.PreferencesDBPath = DefaultPreferencesDBPath
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	var errs []error

	port, err := parsePort(getenv("PORT"))
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Port = port

	if cfg.DatabaseURL == "" {
		errs = append(errs, apperror.ValidationFailed("DATABASE_URL", "DATABASE_URL is required"))
	}

	level, err := parseLevel(getenv("LOG_LEVEL"))
	if err != nil {
		errs = append(errs, err)
	}
	cfg.LogLevel = level

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func parsePort(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperror.ValidationFailed("PORT", "PORT is required")
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return 0, apperror.ValidationFailed("PORT",
			fmt.Sprintf("PORT must be an integer between 1 and 65535, got %q", raw))
	}
	return port, nil
}

func parseLevel(raw string) (slog.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultLogLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, apperror.ValidationFailed("LOG_LEVEL",
			fmt.Sprintf("LOG_LEVEL must be debug, info, warn or error, got %q", raw))
	}
	return level, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
