package patient

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, userID string, req *entity.CreatePatientRequest) (*entity.Patient, error)
	GetPatient(ctx context.Context, userID, patientID string) (*entity.Patient, error)
	ListPatients(ctx context.Context, userID string) ([]entity.Patient, error)
	UpdatePatient(ctx context.Context, userID, patientID string, req *entity.UpdatePatientRequest) (*entity.Patient, error)
	DeletePatient(ctx context.Context, userID, patientID string) error
}
