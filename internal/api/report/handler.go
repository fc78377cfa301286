package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/api/middleware"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/logger"
)

type Handler struct {
	usecase ReportUsecase
}

func NewHandler(usecase ReportUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GenerateReport handles POST /reports/generate
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateReport")

	var req entity.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	report, err := h.usecase.GenerateReport(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "report generated successfully", zap.String("report_id", report.ID))
	h.respondJSON(w, http.StatusCreated, toReportResponse(report))
}

// ListReports handles GET /reports/{patient_id}
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID := chi.URLParam(r, "patient_id")

	ctx = logger.AddFields(ctx,
		zap.String("patient_id", patientID),
		zap.String("action", "ListReports"),
	)

	reports, err := h.usecase.ListReports(ctx, middleware.UserID(ctx), patientID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	resp := entity.ListReportsResponse{Reports: make([]*entity.ReportResponse, 0, len(reports))}
	for i := range reports {
		resp.Reports = append(resp.Reports, toReportResponse(&reports[i]))
	}

	h.respondJSON(w, http.StatusOK, &resp)
}

// DownloadReport handles GET /reports/download/{report_id}
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportID := chi.URLParam(r, "report_id")

	ctx = logger.AddFields(ctx,
		zap.String("report_id", reportID),
		zap.String("action", "DownloadReport"),
	)

	report, err := h.usecase.GetReportFile(ctx, middleware.UserID(ctx), reportID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "serving report file", zap.String("path", report.Path))

	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(report.Path)+`"`)
	http.ServeFile(w, r, report.Path)
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
	if errors.Is(err, entity.ErrPatientNotFound) || errors.Is(err, entity.ErrReportNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	} else if errors.Is(err, entity.ErrReportFileMissing) {
		h.respondError(ctx, w, http.StatusGone, entity.ErrReportFileMissing.Error(), err)
	} else if errors.Is(err, entity.ErrUnsupportedFormat) {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
