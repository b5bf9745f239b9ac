// Package service contains the business logic layer of the application.
//
// Handlers parse HTTP and call services; services validate input, run the pure
// core (recommend, preference) and talk to repositories through interfaces.
// Nothing in this package knows about HTTP status codes.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
	"github.com/AdanChavez79/Food-Profiler/internal/catalog"
	"github.com/AdanChavez79/Food-Profiler/internal/model"
	"github.com/AdanChavez79/Food-Profiler/internal/recommend"
)

const (
	DefaultRecommendationCount = 10
	MaxRecommendationCount     = 50
)

// MealService serves recommendations derived from the catalog.
type MealService struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewMealService creates a MealService over cat.
func NewMealService(cat *catalog.Catalog, logger *slog.Logger) *MealService {
	return &MealService{
		catalog: cat,
		logger:  logger,
	}
}

// Recommendations returns count meals, index 0 being the featured meal.
// A count of 0 means DefaultRecommendationCount.
func (s *MealService) Recommendations(ctx context.Context, count int) ([]model.Meal, error) {
	if count == 0 {
		count = DefaultRecommendationCount
	}
	if count > MaxRecommendationCount {
		return nil, apperror.ValidationFailed("count",
			fmt.Sprintf("count must be %d or less", MaxRecommendationCount))
	}

	meals, err := recommend.Generate(count, s.catalog.Template, s.catalog.Names)
	if err != nil {
		return nil, fmt.Errorf("generating recommendations: %w", err)
	}
	return meals, nil
}

// Featured returns today's pick: the first recommendation.
func (s *MealService) Featured(ctx context.Context) (model.Meal, error) {
	meals, err := recommend.Generate(1, s.catalog.Template, s.catalog.Names)
	if err != nil {
		return model.Meal{}, fmt.Errorf("generating featured meal: %w", err)
	}
	return meals[0], nil
}

// Detail promotes the recommendation with the given id to a detail record.
// Only ids from the default-size list are addressable.
func (s *MealService) Detail(ctx context.Context, id string) (model.DetailMeal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.DetailMeal{}, apperror.ValidationFailed("id", "meal ID is required")
	}

	meals, err := s.Recommendations(ctx, DefaultRecommendationCount)
	if err != nil {
		return model.DetailMeal{}, err
	}
	for _, m := range meals {
		if m.ID == id {
			return recommend.ToDetail(m), nil
		}
	}

	s.logger.Debug("meal not in recommendations", slog.String("id", id))
	return model.DetailMeal{}, apperror.NotFound("meal", id)
}
