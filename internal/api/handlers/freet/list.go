package freet

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Fritter/internal/api/middleware"
)

// HandleList returns the freets visible to the session viewer
// GET /api/freets            — the feed, most recently modified first
// GET /api/freets?author=bob — bob's freets, storage order
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetViewerID(r)

	if author := r.URL.Query().Get("author"); author != "" {
		results, err := h.service.ListByAuthor(r.Context(), author, viewerID)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, results)
		return
	}

	results, err := h.service.ListAll(r.Context(), viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// HandleGet returns a single freet by id, with no visibility filtering
// GET /api/freets/{freetID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "freetID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "freetID must be an integer")
		return
	}

	freet, err := h.service.GetFreet(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if freet == nil {
		writeError(w, http.StatusNotFound, "NotFound", "No freet with that id")
		return
	}

	writeJSON(w, http.StatusOK, freet)
}
