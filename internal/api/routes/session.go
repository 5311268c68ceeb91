package routes

import (
	"github.com/go-chi/chi/v5"

	"Fritter/internal/api/handlers/session"
	"Fritter/internal/api/middleware"
	"Fritter/internal/core/users"
)

// RegisterSessionRoutes registers the session identity endpoints
func RegisterSessionRoutes(r chi.Router, identity *middleware.SessionIdentity, userService users.Service) {
	h := session.NewHandler(identity, userService)

	r.Post("/api/session", h.HandleSignIn)
	r.Delete("/api/session", h.HandleSignOut)
}
