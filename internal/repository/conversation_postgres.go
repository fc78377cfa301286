package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

// ConversationRepository defines the interface for conversation persistence
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conv entity.Conversation) (*entity.Conversation, error)
	ListConversations(ctx context.Context, patientID string, limit int) ([]entity.Conversation, error)
	ListConversationsBySession(ctx context.Context, patientID, sessionID string, limit int) ([]entity.Conversation, error)
	DeleteConversations(ctx context.Context, patientID string) (int, error)
}

var _ ConversationRepository = &ConversationPostgres{}

// ConversationPostgres implements ConversationRepository using PostgreSQL
type ConversationPostgres struct {
	db *pgxpool.Pool
}

func NewConversationPostgres(db *pgxpool.Pool) *ConversationPostgres {
	return &ConversationPostgres{db: db}
}

const conversationColumns = `id, patient_id, question, answer, sources, session_id, created_at`

func scanConversation(row pgx.Row) (*entity.Conversation, error) {
	var (
		c           entity.Conversation
		sourcesJSON []byte
	)
	err := row.Scan(&c.ID, &c.PatientID, &c.Question, &c.Answer, &sourcesJSON, &c.SessionID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sourcesJSON, &c.Sources); err != nil {
		return nil, fmt.Errorf("decode sources: %w", err)
	}
	return &c, nil
}

func (r *ConversationPostgres) CreateConversation(ctx context.Context, conv entity.Conversation) (*entity.Conversation, error) {
	sourcesJSON, err := json.Marshal(conv.Sources)
	if err != nil {
		return nil, fmt.Errorf("encode sources: %w", err)
	}

	query := `
		INSERT INTO conversations (patient_id, question, answer, sources, session_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + conversationColumns

	created, err := scanConversation(r.db.QueryRow(ctx, query,
		conv.PatientID, conv.Question, conv.Answer, sourcesJSON, conv.SessionID,
	))
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	return created, nil
}

func (r *ConversationPostgres) ListConversations(ctx context.Context, patientID string, limit int) ([]entity.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.queryConversations(ctx, query, patientID, limit)
}

func (r *ConversationPostgres) ListConversationsBySession(ctx context.Context, patientID, sessionID string, limit int) ([]entity.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE patient_id = $1 AND session_id = $3 ORDER BY created_at DESC LIMIT $2`
	return r.queryConversations(ctx, query, patientID, limit, sessionID)
}

func (r *ConversationPostgres) queryConversations(ctx context.Context, query string, args ...any) ([]entity.Conversation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []entity.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		conversations = append(conversations, *conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}

	return conversations, nil
}

// DeleteConversations removes the full chat history for a patient and
// returns the number of deleted turns.
func (r *ConversationPostgres) DeleteConversations(ctx context.Context, patientID string) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM conversations WHERE patient_id = $1`, patientID)
	if err != nil {
		return 0, fmt.Errorf("delete conversations: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
