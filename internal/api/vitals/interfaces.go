package vitals

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

type VitalsUsecase interface {
	RecordVitals(ctx context.Context, userID string, req *entity.RecordVitalsRequest) (*entity.AssessmentResponse, error)
	GetHistory(ctx context.Context, userID, patientID string, limit int) ([]entity.VitalsReading, error)
	GetLatestAssessment(ctx context.Context, userID, patientID string) (*entity.RiskAssessment, error)
}
