package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/validator"
	"github.com/matcare/pregnancy-backend/internal/repository"
)

const defaultHistoryLimit = 50

// ChatUsecase implements the guideline question flow
type ChatUsecase struct {
	conversationRepo repository.ConversationRepository
	patients         PatientAccess
	answerer         Answerer
	validator        *validator.Validator
	logger           *zap.Logger
}

// NewUsecase creates a new chat use case
func NewUsecase(
	conversationRepo repository.ConversationRepository,
	patients PatientAccess,
	answerer Answerer,
	validator *validator.Validator,
	logger *zap.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		conversationRepo: conversationRepo,
		patients:         patients,
		answerer:         answerer,
		validator:        validator,
		logger:           logger,
	}
}

// Ask routes a question through the retrieval pipeline and persists
// the turn. A missing session ID starts a new session.
func (uc *ChatUsecase) Ask(ctx context.Context, userID string, req *entity.AskRequest) (*entity.AskResponse, error) {
	if err := uc.validator.ValidateAsk(req); err != nil {
		return nil, err
	}

	if _, err := uc.patients.GetPatient(ctx, userID, req.PatientID); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	answer, err := uc.answerer.Ask(ctx, req.Question)
	if err != nil {
		return nil, err
	}

	conv, err := uc.conversationRepo.CreateConversation(ctx, entity.Conversation{
		PatientID: req.PatientID,
		Question:  req.Question,
		Answer:    answer.Answer,
		Sources:   answer.Sources,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "question answered",
		zap.String("patient_id", req.PatientID),
		zap.String("conversation_id", conv.ID),
		zap.Int("source_count", len(answer.Sources)),
	)

	return &entity.AskResponse{
		ConversationID: conv.ID,
		Answer:         answer.Answer,
		Sources:        answer.Sources,
		SessionID:      sessionID,
	}, nil
}

// GetHistory returns past turns for a patient, newest first. An empty
// sessionID returns all sessions.
func (uc *ChatUsecase) GetHistory(ctx context.Context, userID, patientID, sessionID string, limit int) ([]entity.Conversation, error) {
	if _, err := uc.patients.GetPatient(ctx, userID, patientID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if sessionID != "" {
		return uc.conversationRepo.ListConversationsBySession(ctx, patientID, sessionID, limit)
	}
	return uc.conversationRepo.ListConversations(ctx, patientID, limit)
}

// DeleteHistory removes the full chat log for a patient.
func (uc *ChatUsecase) DeleteHistory(ctx context.Context, userID, patientID string) (int, error) {
	if _, err := uc.patients.GetPatient(ctx, userID, patientID); err != nil {
		return 0, err
	}

	deleted, err := uc.conversationRepo.DeleteConversations(ctx, patientID)
	if err != nil {
		return 0, err
	}

	ctxzap.Info(ctx, "chat history deleted",
		zap.String("patient_id", patientID),
		zap.Int("deleted_count", deleted),
	)

	return deleted, nil
}
