// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the composition root: New opens the databases, loads the catalog,
// builds services and handlers, and maps them to routes. Nothing else in the
// tree constructs concrete dependencies.
//
// DEPENDENCY FLOW:
//
//	catalog.Load       → MealService       → MealHandler
//	sqlite.New         → PreferenceService → PreferenceHandler
//	postgres.New       → VersionService    → VersionHandler
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/AdanChavez79/Food-Profiler/internal/catalog"
	"github.com/AdanChavez79/Food-Profiler/internal/config"
	"github.com/AdanChavez79/Food-Profiler/internal/handler"
	"github.com/AdanChavez79/Food-Profiler/internal/middleware"
	"github.com/AdanChavez79/Food-Profiler/internal/repository/postgres"
	sqliteRepo "github.com/AdanChavez79/Food-Profiler/internal/repository/sqlite"
	"github.com/AdanChavez79/Food-Profiler/internal/service"
)

// Server represents the HTTP server and all its dependencies.
//
// It owns both database pools and closes them when Start returns.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	prefDB *sqliteRepo.DB
	pgDB   *postgres.DB
	meals  *catalog.Catalog
}

// New creates a new Server with the given config.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	meals, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	prefDB, err := sqliteRepo.New(cfg.PreferencesDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening preferences database: %w", err)
	}

	pgDB, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		prefDB.Close()
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		prefDB: prefDB,
		pgDB:   pgDB,
		meals:  meals,
	}
	s.setupRoutes()

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTES:
// GET    /                                          → database version
// GET    /api/meals                                 → recommendations
// GET    /api/meals/featured                        → today's pick
// GET    /api/meals/{id}                            → meal detail
// POST   /api/profiles                              → create preference profile
// GET    /api/profiles/{id}/preferences             → snapshot
// PUT    /api/profiles/{id}/preferences             → replace with draft
// POST   /api/profiles/{id}/preferences/{section}   → add value
// DELETE /api/profiles/{id}/preferences/{section}   → remove ?value=
//
// Middleware runs in the order it is added.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	versionHandler := handler.NewVersionHandler(service.NewVersionService(s.pgDB, s.logger))
	mealHandler := handler.NewMealHandler(service.NewMealService(s.meals, s.logger), s.logger)
	preferenceHandler := handler.NewPreferenceHandler(service.NewPreferenceService(s.prefDB, s.logger), s.logger)

	s.router.Get("/", versionHandler.HandleVersion)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/meals", mealHandler.HandleList)
		r.Get("/meals/featured", mealHandler.HandleFeatured)
		r.Get("/meals/{id}", mealHandler.HandleDetail)

		r.Post("/profiles", preferenceHandler.HandleCreateProfile)
		r.Route("/profiles/{id}/preferences", func(r chi.Router) {
			r.Get("/", preferenceHandler.HandleGet)
			r.Put("/", preferenceHandler.HandleReplace)
			r.Post("/{section}", preferenceHandler.HandleAdd)
			r.Delete("/{section}", preferenceHandler.HandleRemove)
		})
	})
}

// Close releases both database pools.
func (s *Server) Close() error {
	return errors.Join(s.prefDB.Close(), s.pgDB.Close())
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30 seconds and closes the databases.
func (s *Server) Start() error {
	defer func() {
		if err := s.Close(); err != nil {
			s.logger.Error("closing databases", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("preferences_db", s.config.PreferencesDBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
