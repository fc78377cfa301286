package chat

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers chat routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/chat", func(r chi.Router) {
		r.Post("/ask", h.Ask)

		r.Route("/history/{patient_id}", func(r chi.Router) {
			r.Get("/", h.GetHistory)
			r.Delete("/", h.DeleteHistory)
		})
	})
}
