package freet

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Fritter/internal/api/middleware"
)

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

// HandleDelete removes a single freet. Deleting a freet that doesn't
// exist is a normal outcome, reported as deleted:false.
// DELETE /api/freets/{freetID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if middleware.GetViewerID(r) == nil {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "You must be signed in to delete freets")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "freetID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "freetID must be an integer")
		return
	}

	deleted, err := h.service.DeleteFreet(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Deleted: deleted})
}

// HandleDeleteMine removes every freet authored by the session viewer
// DELETE /api/freets
func (h *Handler) HandleDeleteMine(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetViewerID(r)
	if viewerID == nil {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "You must be signed in to delete freets")
		return
	}

	if err := h.service.DeleteAllByAuthor(r.Context(), *viewerID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
