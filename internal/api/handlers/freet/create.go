package freet

import (
	"encoding/json"
	"net/http"

	"Fritter/internal/api/middleware"
	"Fritter/internal/core/freets"
	"Fritter/internal/core/visibility"
)

// Handler serves the freet endpoints
type Handler struct {
	service freets.Service
}

// NewHandler creates a new freet handler
func NewHandler(service freets.Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// HandleCreate creates a new freet authored by the session viewer
// POST /api/freets
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetViewerID(r)
	if viewerID == nil {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "You must be signed in to create a freet")
		return
	}

	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Request body must be valid JSON")
		return
	}

	level, err := visibility.ParseLevel(body.Visibility)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	created, err := h.service.CreateFreet(r.Context(), freets.CreateFreetRequest{
		AuthorID:   *viewerID,
		Content:    body.Content,
		Visibility: level,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
