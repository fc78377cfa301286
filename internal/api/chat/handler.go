package chat

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
	usecase ChatUsecase
}

func NewHandler(usecase ChatUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Ask handles POST /chat/ask
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Ask")

	var req entity.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	answer, err := h.usecase.Ask(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "question answered successfully",
		zap.String("conversation_id", answer.ConversationID),
	)
	h.respondJSON(w, http.StatusOK, answer)
}

// GetHistory handles GET /chat/history/{patient_id}
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID := chi.URLParam(r, "patient_id")

	ctx = logger.AddFields(ctx,
		zap.String("patient_id", patientID),
		zap.String("action", "GetChatHistory"),
	)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	sessionID := r.URL.Query().Get("session_id")

	conversations, err := h.usecase.GetHistory(ctx, middleware.UserID(ctx), patientID, sessionID, limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	resp := entity.ConversationHistoryResponse{
		Conversations: make([]*entity.ConversationHistoryEntry, 0, len(conversations)),
	}
	for i := range conversations {
		resp.Conversations = append(resp.Conversations, toHistoryEntry(&conversations[i]))
	}

	h.respondJSON(w, http.StatusOK, &resp)
}

// DeleteHistory handles DELETE /chat/history/{patient_id}
func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID := chi.URLParam(r, "patient_id")

	ctx = logger.AddFields(ctx,
		zap.String("patient_id", patientID),
		zap.String("action", "DeleteChatHistory"),
	)

	deleted, err := h.usecase.DeleteHistory(ctx, middleware.UserID(ctx), patientID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "chat history deleted successfully", zap.Int("deleted_count", deleted))
	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":        "deleted",
		"deleted_count": deleted,
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
	} else if errors.Is(err, entity.ErrQueryFailed) {
		h.respondError(ctx, w, http.StatusBadGateway, "guideline service unavailable", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
