package vitals

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers vitals routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/vitals", func(r chi.Router) {
		r.Post("/", h.RecordVitals)

		r.Route("/{patient_id}", func(r chi.Router) {
			r.Get("/", h.GetHistory)
			r.Get("/latest", h.GetLatestAssessment)
		})
	})
}
