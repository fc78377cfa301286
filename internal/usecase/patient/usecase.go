package patient

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/validator"
	"github.com/matcare/pregnancy-backend/internal/repository"
)

// PatientUsecase implements patient profile business logic
type PatientUsecase struct {
	patientRepo repository.PatientRepository
	validator   *validator.Validator
	logger      *zap.Logger
}

// NewUsecase creates a new patient use case
func NewUsecase(
	patientRepo repository.PatientRepository,
	validator *validator.Validator,
	logger *zap.Logger,
) *PatientUsecase {
	return &PatientUsecase{
		patientRepo: patientRepo,
		validator:   validator,
		logger:      logger,
	}
}

func (uc *PatientUsecase) CreatePatient(ctx context.Context, userID string, req *entity.CreatePatientRequest) (*entity.Patient, error) {
	if err := uc.validator.ValidateCreatePatient(req); err != nil {
		return nil, err
	}

	patient, err := uc.patientRepo.CreatePatient(ctx, entity.Patient{
		UserID:          userID,
		Name:            req.Name,
		Age:             req.Age,
		BloodGroup:      req.BloodGroup,
		GestationalWeek: req.GestationalWeek,
		DueDate:         req.DueDate,
		MedicalHistory:  req.MedicalHistory,
	})
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "patient created", zap.String("patient_id", patient.ID))

	return patient, nil
}

// GetPatient returns a patient owned by the given user. A patient that
// exists but belongs to someone else is reported as not found.
func (uc *PatientUsecase) GetPatient(ctx context.Context, userID, patientID string) (*entity.Patient, error) {
	patient, err := uc.patientRepo.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.UserID != userID {
		return nil, entity.ErrPatientNotFound
	}
	return patient, nil
}

func (uc *PatientUsecase) ListPatients(ctx context.Context, userID string) ([]entity.Patient, error) {
	return uc.patientRepo.ListPatientsByUser(ctx, userID)
}

// UpdatePatient applies a partial update. Only fields present in the
// request change; the rest keep their stored values.
func (uc *PatientUsecase) UpdatePatient(ctx context.Context, userID, patientID string, req *entity.UpdatePatientRequest) (*entity.Patient, error) {
	if err := uc.validator.ValidateUpdatePatient(req); err != nil {
		return nil, err
	}

	patient, err := uc.GetPatient(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = req.Age
	}
	if req.BloodGroup != nil {
		patient.BloodGroup = req.BloodGroup
	}
	if req.GestationalWeek != nil {
		patient.GestationalWeek = req.GestationalWeek
	}
	if req.DueDate != nil {
		patient.DueDate = req.DueDate
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = req.MedicalHistory
	}

	updated, err := uc.patientRepo.UpdatePatient(ctx, *patient)
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "patient updated", zap.String("patient_id", patientID))

	return updated, nil
}

// DeletePatient soft-deletes a patient profile. Vitals, assessments
// and conversations are preserved for audit.
func (uc *PatientUsecase) DeletePatient(ctx context.Context, userID, patientID string) error {
	if _, err := uc.GetPatient(ctx, userID, patientID); err != nil {
		return err
	}

	if err := uc.patientRepo.DeactivatePatient(ctx, patientID); err != nil {
		return err
	}

	ctxzap.Info(ctx, "patient deactivated", zap.String("patient_id", patientID))

	return nil
}
