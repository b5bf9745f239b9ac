// Package repository declares the persistence interfaces the services depend on.
// Implementations live in subpackages (sqlite, postgres).
package repository

import (
	"context"

	"github.com/AdanChavez79/Food-Profiler/internal/model"
)

// PreferenceRepository stores preference profiles.
// GetProfile and UpdateProfile return apperror.ErrNotFound for unknown ids.
type PreferenceRepository interface {
	CreateProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, id string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id string, edit EditFunc) (*model.Profile, error)
}

// EditFunc changes prefs in place and reports whether anything changed.
// UpdateProfile calls it with the profile locked against other writers and
// persists prefs only when it returns true.
type EditFunc func(prefs *model.Preferences) bool

// VersionReader reports the database server version string.
type VersionReader interface {
	Version(ctx context.Context) (string, error)
}
