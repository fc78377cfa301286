package vitals

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/validator"
	"github.com/matcare/pregnancy-backend/internal/repository"
)

const defaultHistoryLimit = 50

// VitalsUsecase implements vitals recording and risk assessment logic
type VitalsUsecase struct {
	vitalsRepo     repository.VitalsRepository
	assessmentRepo repository.AssessmentRepository
	patients       PatientAccess
	evaluator      RiskEvaluator
	validator      *validator.Validator
	logger         *zap.Logger
}

// NewUsecase creates a new vitals use case
func NewUsecase(
	vitalsRepo repository.VitalsRepository,
	assessmentRepo repository.AssessmentRepository,
	patients PatientAccess,
	evaluator RiskEvaluator,
	validator *validator.Validator,
	logger *zap.Logger,
) *VitalsUsecase {
	return &VitalsUsecase{
		vitalsRepo:     vitalsRepo,
		assessmentRepo: assessmentRepo,
		patients:       patients,
		evaluator:      evaluator,
		validator:      validator,
		logger:         logger,
	}
}

// RecordVitals persists one reading, runs the risk evaluation on it
// and persists the resulting assessment. The reading and the
// assessment are stored even when no warnings fire, so history stays
// complete.
func (uc *VitalsUsecase) RecordVitals(ctx context.Context, userID string, req *entity.RecordVitalsRequest) (*entity.AssessmentResponse, error) {
	if err := uc.validator.ValidateRecordVitals(req); err != nil {
		return nil, err
	}

	if _, err := uc.patients.GetPatient(ctx, userID, req.PatientID); err != nil {
		return nil, err
	}

	reading, err := uc.vitalsRepo.CreateReading(ctx, entity.VitalsReading{
		PatientID:   req.PatientID,
		BPSystolic:  req.BPSystolic,
		BPDiastolic: req.BPDiastolic,
		HeartRate:   req.HeartRate,
		Glucose:     req.Glucose,
		Hemoglobin:  req.Hemoglobin,
		Weight:      req.Weight,
	})
	if err != nil {
		return nil, err
	}

	result := uc.evaluator.Assess(*reading)

	assessment, err := uc.assessmentRepo.CreateAssessment(ctx, entity.RiskAssessment{
		PatientID:       req.PatientID,
		VitalID:         &reading.ID,
		Level:           result.Level,
		Warnings:        result.Warnings,
		Recommendations: result.Recommendations,
		Interpretation:  result.Interpretation,
	})
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "vitals recorded and assessed",
		zap.String("patient_id", req.PatientID),
		zap.String("vital_id", reading.ID),
		zap.String("risk_level", string(result.Level)),
	)

	return &entity.AssessmentResponse{
		AssessmentID:    assessment.ID,
		VitalID:         reading.ID,
		RiskLevel:       result.Level,
		Warnings:        result.Warnings,
		Recommendations: result.Recommendations,
		Interpretation:  result.Interpretation,
		VitalsAnalyzed:  reading,
	}, nil
}

// GetHistory returns readings for a patient, newest first.
func (uc *VitalsUsecase) GetHistory(ctx context.Context, userID, patientID string, limit int) ([]entity.VitalsReading, error) {
	if _, err := uc.patients.GetPatient(ctx, userID, patientID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return uc.vitalsRepo.ListReadings(ctx, patientID, limit)
}

// GetLatestAssessment returns the most recent risk assessment.
func (uc *VitalsUsecase) GetLatestAssessment(ctx context.Context, userID, patientID string) (*entity.RiskAssessment, error) {
	if _, err := uc.patients.GetPatient(ctx, userID, patientID); err != nil {
		return nil, err
	}
	return uc.assessmentRepo.GetLatestAssessment(ctx, patientID)
}
