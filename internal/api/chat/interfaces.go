package chat

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

type ChatUsecase interface {
	Ask(ctx context.Context, userID string, req *entity.AskRequest) (*entity.AskResponse, error)
	GetHistory(ctx context.Context, userID, patientID, sessionID string, limit int) ([]entity.Conversation, error)
	DeleteHistory(ctx context.Context, userID, patientID string) (int, error)
}
