package vitals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/api/middleware"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/logger"
)

type Handler struct {
	usecase VitalsUsecase
}

func NewHandler(usecase VitalsUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// RecordVitals handles POST /vitals
func (h *Handler) RecordVitals(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RecordVitals")

	var req entity.RecordVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	assessment, err := h.usecase.RecordVitals(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "vitals recorded successfully",
		zap.String("vital_id", assessment.VitalID),
		zap.String("risk_level", string(assessment.RiskLevel)),
	)
	h.respondJSON(w, http.StatusCreated, assessment)
}

// GetHistory handles GET /vitals/{patient_id}
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID := chi.URLParam(r, "patient_id")

	ctx = logger.AddFields(ctx,
		zap.String("patient_id", patientID),
		zap.String("action", "GetVitalsHistory"),
	)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	readings, err := h.usecase.GetHistory(ctx, middleware.UserID(ctx), patientID, limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	resp := entity.VitalsHistoryResponse{Vitals: make([]*entity.VitalsHistoryEntry, 0, len(readings))}
	for i := range readings {
		resp.Vitals = append(resp.Vitals, toHistoryEntry(&readings[i]))
	}

	h.respondJSON(w, http.StatusOK, &resp)
}

// GetLatestAssessment handles GET /vitals/{patient_id}/latest
func (h *Handler) GetLatestAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID := chi.URLParam(r, "patient_id")

	ctx = logger.AddFields(ctx,
		zap.String("patient_id", patientID),
		zap.String("action", "GetLatestAssessment"),
	)

	assessment, err := h.usecase.GetLatestAssessment(ctx, middleware.UserID(ctx), patientID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, assessment)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrPatientNotFound) || errors.Is(err, entity.ErrAssessmentNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	} else if errors.Is(err, entity.ErrNoVitalsRecorded) {
		h.respondError(ctx, w, http.StatusNotFound, entity.ErrNoVitalsRecorded.Error(), err)
	} else if errors.Is(err, entity.ErrInvalidVitals) || errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
