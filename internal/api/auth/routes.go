package auth

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers public auth routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers auth routes behind the auth middleware
func RegisterProtectedRoutes(r chi.Router, h *Handler) {
	r.Get("/auth/me", h.Me)
}
