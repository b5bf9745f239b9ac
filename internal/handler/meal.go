package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
	"github.com/AdanChavez79/Food-Profiler/internal/model"
)

// MealProvider is the subset of service.MealService the handler uses.
type MealProvider interface {
	Recommendations(ctx context.Context, count int) ([]model.Meal, error)
	Featured(ctx context.Context) (model.Meal, error)
	Detail(ctx context.Context, id string) (model.DetailMeal, error)
}

// MealHandler serves the recommendation endpoints.
type MealHandler struct {
	svc    MealProvider
	logger *slog.Logger
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(svc MealProvider, logger *slog.Logger) *MealHandler {
	return &MealHandler{svc: svc, logger: logger}
}

// HandleList returns the ordered recommendation list. Index 0 is today's pick.
//
// HTTP: GET /api/meals?count=10
func (h *MealHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("invalid count parameter", slog.String("count", raw))
			writeError(w, apperror.ValidationFailed("count", "count must be an integer"))
			return
		}
		if n == 0 {
			// An explicit zero is a bad request, not "use the default".
			h.logger.Warn("invalid count parameter", slog.String("count", raw))
			writeError(w, apperror.InvalidArgument("count", "count must be at least 1, got 0"))
			return
		}
		count = n
	}

	meals, err := h.svc.Recommendations(r.Context(), count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

// HandleFeatured returns the featured meal alone.
//
// HTTP: GET /api/meals/featured
func (h *MealHandler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	meal, err := h.svc.Featured(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

// HandleDetail returns one recommendation promoted to a detail record.
//
// HTTP: GET /api/meals/{id}
func (h *MealHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
