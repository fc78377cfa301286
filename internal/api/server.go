package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	authapi "github.com/matcare/pregnancy-backend/internal/api/auth"
	chatapi "github.com/matcare/pregnancy-backend/internal/api/chat"
	"github.com/matcare/pregnancy-backend/internal/api/middleware"
	patientapi "github.com/matcare/pregnancy-backend/internal/api/patient"
	reportapi "github.com/matcare/pregnancy-backend/internal/api/report"
	vitalsapi "github.com/matcare/pregnancy-backend/internal/api/vitals"
	"github.com/matcare/pregnancy-backend/internal/repository"
)

// RouterDeps bundles everything SetupRouter needs.
type RouterDeps struct {
	AuthHandler    *authapi.Handler
	PatientHandler *patientapi.Handler
	VitalsHandler  *vitalsapi.Handler
	ChatHandler    *chatapi.Handler
	ReportHandler  *reportapi.Handler
	Tokens         middleware.TokenVerifier
	UserRepo       repository.UserRepository
	UserCacheTTL   time.Duration
	Logger         *zap.Logger
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(deps.Logger))          // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		authapi.RegisterRoutes(r, deps.AuthHandler)

		// Everything else requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Tokens, deps.UserRepo, deps.UserCacheTTL))

			authapi.RegisterProtectedRoutes(r, deps.AuthHandler)
			patientapi.RegisterRoutes(r, deps.PatientHandler)
			vitalsapi.RegisterRoutes(r, deps.VitalsHandler)
			chatapi.RegisterRoutes(r, deps.ChatHandler)
			reportapi.RegisterRoutes(r, deps.ReportHandler)
		})
	})

	return r
}
