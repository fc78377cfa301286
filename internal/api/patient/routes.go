package patient

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers patient routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/patients", func(r chi.Router) {
		r.Post("/", h.CreatePatient)
		r.Get("/", h.ListPatients)

		r.Route("/{patient_id}", func(r chi.Router) {
			r.Get("/", h.GetPatient)
			r.Put("/", h.UpdatePatient)
			r.Delete("/", h.DeletePatient)
		})
	})
}
