package patient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/api/middleware"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/logger"
)

type Handler struct {
	usecase PatientUsecase
}

func NewHandler(usecase PatientUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// CreatePatient handles POST /patients
func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreatePatient")

	var req entity.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	patient, err := h.usecase.CreatePatient(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "patient created successfully", zap.String("patient_id", patient.ID))
	h.respondJSON(w, http.StatusCreated, patient)
}

// ListPatients handles GET /patients
func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListPatients")

	patients, err := h.usecase.ListPatients(ctx, middleware.UserID(ctx))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	resp := entity.ListPatientsResponse{Patients: make([]*entity.Patient, 0, len(patients))}
	for i := range patients {
		resp.Patients = append(resp.Patients, &patients[i])
	}

	h.respondJSON(w, http.StatusOK, &resp)
}

// GetPatient handles GET /patients/{patient_id}
func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID := chi.URLParam(r, "patient_id")

	ctx = logger.AddFields(ctx,
		zap.String("patient_id", patientID),
		zap.String("action", "GetPatient"),
	)

	patient, err := h.usecase.GetPatient(ctx, middleware.UserID(ctx), patientID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, patient)
}

// UpdatePatient handles PUT /patients/{patient_id}
func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID := chi.URLParam(r, "patient_id")

	ctx = logger.AddFields(ctx,
		zap.String("patient_id", patientID),
		zap.String("action", "UpdatePatient"),
	)

	var req entity.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	patient, err := h.usecase.UpdatePatient(ctx, middleware.UserID(ctx), patientID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "patient updated successfully")
	h.respondJSON(w, http.StatusOK, patient)
}

// DeletePatient handles DELETE /patients/{patient_id}
func (h *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID := chi.URLParam(r, "patient_id")

	ctx = logger.AddFields(ctx,
		zap.String("patient_id", patientID),
		zap.String("action", "DeletePatient"),
	)

	if err := h.usecase.DeletePatient(ctx, middleware.UserID(ctx), patientID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "patient deleted successfully")
	h.respondJSON(w, http.StatusOK, &entity.DeletePatientResponse{
		Status: "deleted",
	})
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
	if errors.Is(err, entity.ErrPatientNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
