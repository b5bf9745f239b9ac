package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
	"github.com/AdanChavez79/Food-Profiler/internal/model"
	"github.com/AdanChavez79/Food-Profiler/internal/service"
)

// PreferenceEditor is the subset of service.PreferenceService the handler uses.
type PreferenceEditor interface {
	CreateProfile(ctx context.Context, initial model.Preferences) (*model.Profile, error)
	Get(ctx context.Context, profileID string) (model.Preferences, error)
	Add(ctx context.Context, profileID string, section model.Section, value string) (service.AddResult, error)
	Remove(ctx context.Context, profileID string, section model.Section, value string) (model.Preferences, error)
	Replace(ctx context.Context, profileID string, draft model.Preferences) (model.Preferences, error)
}

// PreferenceHandler serves the preference editor endpoints.
type PreferenceHandler struct {
	svc    PreferenceEditor
	logger *slog.Logger
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(svc PreferenceEditor, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{svc: svc, logger: logger}
}

// addRequest is the body of POST /api/profiles/{id}/preferences/{section}.
type addRequest struct {
	Value string `json:"value"`
}

// HandleCreateProfile creates a profile, optionally seeded with preferences.
//
// HTTP: POST /api/profiles
// REQUEST BODY (optional): {"likes": [...], "dislikes": [...], "allergies": [...]}
func (h *PreferenceHandler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var initial model.Preferences
	if err := decodeOptionalJSON(w, r, &initial); err != nil {
		h.logger.Warn("invalid profile JSON")
		writeError(w, err)
		return
	}

	profile, err := h.svc.CreateProfile(r.Context(), initial)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// HandleGet returns the profile's preferences.
//
// HTTP: GET /api/profiles/{id}/preferences
func (h *PreferenceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// HandleReplace saves a locally edited draft.
//
// HTTP: PUT /api/profiles/{id}/preferences
func (h *PreferenceHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	var draft model.Preferences
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, err)
		return
	}

	prefs, err := h.svc.Replace(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// HandleAdd adds one value to a section.
//
// HTTP: POST /api/profiles/{id}/preferences/{section}
// REQUEST BODY: {"value": "Pasta"}
// RESPONSE: {"accepted": true, "preferences": {...}}. Blank and duplicate
// values are not errors; they come back with accepted=false.
func (h *PreferenceHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	section, err := model.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req addRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.svc.Add(r.Context(), chi.URLParam(r, "id"), section, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleRemove removes the stored entry exactly equal to ?value=.
//
// HTTP: DELETE /api/profiles/{id}/preferences/{section}?value=Peanuts
func (h *PreferenceHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	section, err := model.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query()
	if !query.Has("value") {
		writeError(w, apperror.ValidationFailed("value", "value query parameter is required"))
		return
	}

	prefs, err := h.svc.Remove(r.Context(), chi.URLParam(r, "id"), section, query.Get("value"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
