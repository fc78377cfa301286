package report

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
	domainreport "github.com/matcare/pregnancy-backend/internal/report"
)

// DocumentGenerator renders a report file from gathered patient data.
type DocumentGenerator interface {
	Generate(ctx context.Context, in domainreport.Input) (*domainreport.Output, error)
}

// PatientAccess checks ownership before any report operation.
type PatientAccess interface {
	GetPatient(ctx context.Context, userID, patientID string) (*entity.Patient, error)
}
