package vitals

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

// RiskEvaluator maps one reading to a risk result.
type RiskEvaluator interface {
	Assess(reading entity.VitalsReading) entity.RiskResult
}

// PatientAccess checks ownership before any vitals operation.
type PatientAccess interface {
	GetPatient(ctx context.Context, userID, patientID string) (*entity.Patient, error)
}
