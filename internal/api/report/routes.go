package report

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers report routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/reports", func(r chi.Router) {
		r.Post("/generate", h.GenerateReport)
		r.Get("/{patient_id}", h.ListReports)
		r.Get("/download/{report_id}", h.DownloadReport)
	})
}
