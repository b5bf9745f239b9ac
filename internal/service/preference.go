package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
	"github.com/AdanChavez79/Food-Profiler/internal/model"
	"github.com/AdanChavez79/Food-Profiler/internal/preference"
	"github.com/AdanChavez79/Food-Profiler/internal/repository"
)

// PreferenceService edits and persists preference profiles.
//
// Every mutation runs inside repository.UpdateProfile: the stored snapshot is
// rebuilt into a preference.Store, the edit is applied, and the new snapshot is
// written back under the same lock. The store never sees the repository; the
// repository never sees the rules.
type PreferenceService struct {
	repo   repository.PreferenceRepository
	logger *slog.Logger
}

// NewPreferenceService creates a PreferenceService.
func NewPreferenceService(repo repository.PreferenceRepository, logger *slog.Logger) *PreferenceService {
	return &PreferenceService{
		repo:   repo,
		logger: logger,
	}
}

// AddResult is the outcome of Add: the current snapshot and whether the value
// was accepted. Rejected values (blank or duplicate) leave the profile unchanged.
type AddResult struct {
	Accepted    bool              `json:"accepted"`
	Preferences model.Preferences `json:"preferences"`
}

// CreateProfile stores a new profile seeded with initial, normalised through
// the store rules (trimmed, blank and duplicate entries dropped).
func (s *PreferenceService) CreateProfile(ctx context.Context, initial model.Preferences) (*model.Profile, error) {
	profile := &model.Profile{Preferences: preference.New(initial).Snapshot()}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		s.logger.Error("failed to create profile", slog.String("error", err.Error()))
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	s.logger.Info("profile created", slog.String("id", profile.ID))
	return profile, nil
}

// Get returns the profile's current snapshot.
func (s *PreferenceService) Get(ctx context.Context, profileID string) (model.Preferences, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return model.Preferences{}, err
	}
	return profile.Preferences, nil
}

// Add appends value to section. Duplicates (ignoring case) and blanks are
// accepted silently as no-ops, reported through AddResult.Accepted.
func (s *PreferenceService) Add(ctx context.Context, profileID string, section model.Section, value string) (AddResult, error) {
	var accepted bool
	profile, err := s.update(ctx, profileID, func(prefs *model.Preferences) bool {
		store := preference.New(*prefs)
		accepted = store.Add(section, value)
		*prefs = store.Snapshot()
		return accepted
	})
	if err != nil {
		return AddResult{}, err
	}

	if accepted {
		s.logger.Info("preference added",
			slog.String("profile", profile.ID),
			slog.String("section", string(section)),
		)
	}
	return AddResult{Accepted: accepted, Preferences: profile.Preferences}, nil
}

// Remove deletes the stored entry exactly equal to value. Missing values are
// not an error.
func (s *PreferenceService) Remove(ctx context.Context, profileID string, section model.Section, value string) (model.Preferences, error) {
	var removed bool
	profile, err := s.update(ctx, profileID, func(prefs *model.Preferences) bool {
		store := preference.New(*prefs)
		removed = store.Remove(section, value)
		*prefs = store.Snapshot()
		return removed
	})
	if err != nil {
		return model.Preferences{}, err
	}

	if removed {
		s.logger.Info("preference removed",
			slog.String("profile", profile.ID),
			slog.String("section", string(section)),
		)
	}
	return profile.Preferences, nil
}

// Replace saves a draft the client edited locally (the "Save" button).
// The draft is normalised through the store rules before it is stored.
func (s *PreferenceService) Replace(ctx context.Context, profileID string, draft model.Preferences) (model.Preferences, error) {
	profile, err := s.update(ctx, profileID, func(prefs *model.Preferences) bool {
		*prefs = preference.New(draft).Snapshot()
		return true
	})
	if err != nil {
		return model.Preferences{}, err
	}

	s.logger.Info("preferences replaced", slog.String("profile", profile.ID))
	return profile.Preferences, nil
}

func (s *PreferenceService) load(ctx context.Context, profileID string) (*model.Profile, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, apperror.ValidationFailed("id", "profile ID is required")
	}

	profile, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		// NotFound is already an apperror; let it through untouched.
		return nil, err
	}
	return profile, nil
}

func (s *PreferenceService) update(ctx context.Context, profileID string, edit repository.EditFunc) (*model.Profile, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, apperror.ValidationFailed("id", "profile ID is required")
	}

	profile, err := s.repo.UpdateProfile(ctx, profileID, edit)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.logger.Error("failed to save profile",
			slog.String("id", profileID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}
