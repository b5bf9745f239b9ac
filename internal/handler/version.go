package handler

import (
	"context"
	"net/http"
)

// VersionProvider is what VersionHandler needs from the service layer.
type VersionProvider interface {
	Version(ctx context.Context) (string, error)
}

// VersionHandler serves the root health endpoint.
// Failures are logged by the service; the handler only maps them to a 500.
type VersionHandler struct {
	svc VersionProvider
}

// NewVersionHandler creates a new VersionHandler.
func NewVersionHandler(svc VersionProvider) *VersionHandler {
	return &VersionHandler{svc: svc}
}

// VersionResponse is the body of GET /.
type VersionResponse struct {
	Version string `json:"version"`
}

// HandleVersion returns the database server version.
//
// HTTP: GET /
// RESPONSE: 200 {"version": "PostgreSQL 16.2 ..."}, or a generic 500.
func (h *VersionHandler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.svc.Version(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, VersionResponse{Version: version})
}
