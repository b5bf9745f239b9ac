package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AdanChavez79/Food-Profiler/internal/repository"
)

// ErrVersionUnavailable is returned when the database version cannot be read.
// The underlying driver error is logged, never returned, so connection
// details cannot leak into a response.
var ErrVersionUnavailable = errors.New("database version unavailable")

// VersionService backs the GET / health endpoint.
type VersionService struct {
	reader repository.VersionReader
	logger *slog.Logger
}

// NewVersionService creates a VersionService.
func NewVersionService(reader repository.VersionReader, logger *slog.Logger) *VersionService {
	return &VersionService{
		reader: reader,
		logger: logger,
	}
}

// Version returns the database server version string.
func (s *VersionService) Version(ctx context.Context) (string, error) {
	version, err := s.reader.Version(ctx)
	if err != nil {
		s.logger.Error("failed to read database version", slog.String("error", err.Error()))
		return "", ErrVersionUnavailable
	}
	return version, nil
}
