package entity

import "time"

type AskRequest struct {
	PatientID string `json:"patient_id"`
	Question  string `json:"question"`
	SessionID string `json:"session_id,omitempty"`
}

type AskResponse struct {
	ConversationID string           `json:"conversation_id"`
	Answer         string           `json:"answer"`
	Sources        []SourceCitation `json:"sources"`
	SessionID      string           `json:"session_id"`
}

type ConversationHistoryEntry struct {
	ConversationID string           `json:"conversation_id"`
	Question       string           `json:"question"`
	Answer         string           `json:"answer"`
	Sources        []SourceCitation `json:"sources"`
	CreatedAt      time.Time        `json:"created_at"`
}

type ConversationHistoryResponse struct {
	Conversations []*ConversationHistoryEntry `json:"conversations"`
}
