package chat

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

// Answerer is the retrieval pipeline surface used by the chat flow.
type Answerer interface {
	Ask(ctx context.Context, question string) (*entity.RAGAnswer, error)
}

// PatientAccess checks ownership before any chat operation.
type PatientAccess interface {
	GetPatient(ctx context.Context, userID, patientID string) (*entity.Patient, error)
}
