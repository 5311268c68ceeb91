package routes

import (
	"github.com/go-chi/chi/v5"

	"Fritter/internal/api/handlers/freet"
	"Fritter/internal/core/freets"
)

// RegisterFreetRoutes registers the freet endpoints
func RegisterFreetRoutes(r chi.Router, freetService freets.Service) {
	h := freet.NewHandler(freetService)

	r.Route("/api/freets", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Delete("/", h.HandleDeleteMine)

		r.Route("/{freetID}", func(r chi.Router) {
			r.Get("/", h.HandleGet)
			r.Delete("/", h.HandleDelete)
			r.Put("/replies", h.HandleReply)
		})
	})
}
