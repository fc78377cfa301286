package chat

import "github.com/matcare/pregnancy-backend/internal/entity"

func toHistoryEntry(conv *entity.Conversation) *entity.ConversationHistoryEntry {
	return &entity.ConversationHistoryEntry{
		ConversationID: conv.ID,
		Question:       conv.Question,
		Answer:         conv.Answer,
		Sources:        conv.Sources,
		CreatedAt:      conv.CreatedAt,
	}
}
