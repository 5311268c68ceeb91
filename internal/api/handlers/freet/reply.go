package freet

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Fritter/internal/api/middleware"
)

type replyRequest struct {
	Content string `json:"content"`
}

// HandleReply records the session viewer's reply on a freet, overwriting
// any earlier reply they left on it
// PUT /api/freets/{freetID}/replies
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetViewerID(r)
	if viewerID == nil {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "You must be signed in to reply")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "freetID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "freetID must be an integer")
		return
	}

	var body replyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Request body must be valid JSON")
		return
	}

	updated, err := h.service.AddReply(r.Context(), id, *viewerID, body.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
