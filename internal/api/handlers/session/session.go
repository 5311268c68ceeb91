package session

import (
	"encoding/json"
	"log"
	"net/http"

	"Fritter/internal/api/middleware"
	"Fritter/internal/core/users"
)

// Handler establishes and clears the viewer identity held in the session
// cookie. Credential verification is out of scope for this service; the
// handler only binds a username to a session so listings can be evaluated
// for that viewer.
type Handler struct {
	identity    *middleware.SessionIdentity
	userService users.Service
}

// NewHandler creates a new session handler
func NewHandler(identity *middleware.SessionIdentity, userService users.Service) *Handler {
	return &Handler{identity: identity, userService: userService}
}

type signInRequest struct {
	Username string `json:"username"`
}

type signInResponse struct {
	User *users.User `json:"user"`
}

// HandleSignIn binds the named user to the session
// POST /api/session
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var body signInRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Request body must be valid JSON", http.StatusBadRequest)
		return
	}

	user, err := h.userService.GetByUsername(r.Context(), body.Username)
	if err != nil {
		if users.IsNotFound(err) {
			http.Error(w, "No user with that username", http.StatusNotFound)
			return
		}
		log.Printf("ERROR: Session sign-in failed: %v", err)
		http.Error(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	if err := h.identity.SetViewer(w, r, user.ID); err != nil {
		log.Printf("ERROR: Failed to save session: %v", err)
		http.Error(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(signInResponse{User: user}); err != nil {
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}

// HandleSignOut clears the session identity
// DELETE /api/session
func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.ClearViewer(w, r); err != nil {
		log.Printf("ERROR: Failed to clear session: %v", err)
		http.Error(w, "An error occurred", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
