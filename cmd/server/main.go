// Package main is the entry point for the Food Profiler API server.
//
// main only reads configuration, creates the logger and hands both to
// internal/server. All real logic lives in internal/.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AdanChavez79/Food-Profiler/internal/config"
	"github.com/AdanChavez79/Food-Profiler/internal/server"
)

func main() {
	// Bootstrap logger until we know the configured level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// === 1. READ AND VALIDATE CONFIGURATION ===
	// Missing PORT or DATABASE_URL is fatal here, before anything binds.
	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// === 2. SET UP LOGGING ===
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// === 3. PREPARE THE PREFERENCES DATABASE DIRECTORY ===
	dbDir := filepath.Dir(cfg.PreferencesDBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		logger.Error("failed to create database directory",
			slog.String("dir", dbDir),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// === 4. CREATE AND START THE SERVER ===
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start() blocks until the server is shut down (via Ctrl+C or SIGTERM)
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
