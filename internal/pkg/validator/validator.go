package validator

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

const minPasswordLength = 8

// Validator checks incoming requests before they reach business logic.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateRegister(req *entity.RegisterRequest) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email", entity.ErrMissingField)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: email %q is not a valid address", entity.ErrInvalidParameter, req.Email)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", entity.ErrInvalidParameter, minPasswordLength)
	}
	if req.Age != nil && (*req.Age < 12 || *req.Age > 120) {
		return fmt.Errorf("%w: age must be between 12 and 120", entity.ErrInvalidParameter)
	}
	return nil
}

func (v *Validator) ValidateLogin(req *entity.LoginRequest) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email", entity.ErrMissingField)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateCreatePatient(req *entity.CreatePatientRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if req.Age != nil && (*req.Age < 12 || *req.Age > 120) {
		return fmt.Errorf("%w: age must be between 12 and 120", entity.ErrInvalidParameter)
	}
	if req.GestationalWeek != nil && (*req.GestationalWeek < 1 || *req.GestationalWeek > 45) {
		return fmt.Errorf("%w: gestational_week must be between 1 and 45", entity.ErrInvalidParameter)
	}
	return nil
}

func (v *Validator) ValidateUpdatePatient(req *entity.UpdatePatientRequest) error {
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("%w: name must not be empty", entity.ErrInvalidParameter)
	}
	if req.Age != nil && (*req.Age < 12 || *req.Age > 120) {
		return fmt.Errorf("%w: age must be between 12 and 120", entity.ErrInvalidParameter)
	}
	if req.GestationalWeek != nil && (*req.GestationalWeek < 1 || *req.GestationalWeek > 45) {
		return fmt.Errorf("%w: gestational_week must be between 1 and 45", entity.ErrInvalidParameter)
	}
	return nil
}

// ValidateRecordVitals rejects readings that are present but outside
// physiological bounds. Absent fields are fine: absence means the
// measurement was not taken.
func (v *Validator) ValidateRecordVitals(req *entity.RecordVitalsRequest) error {
	if req.PatientID == "" {
		return fmt.Errorf("%w: patient_id", entity.ErrMissingField)
	}
	if !hasAnyMeasurement(req) {
		return fmt.Errorf("%w: at least one measurement is required", entity.ErrInvalidVitals)
	}

	if req.BPSystolic != nil && (*req.BPSystolic < 40 || *req.BPSystolic > 300) {
		return fmt.Errorf("%w: bp_systolic out of range", entity.ErrInvalidVitals)
	}
	if req.BPDiastolic != nil && (*req.BPDiastolic < 20 || *req.BPDiastolic > 200) {
		return fmt.Errorf("%w: bp_diastolic out of range", entity.ErrInvalidVitals)
	}
	if req.HeartRate != nil && (*req.HeartRate < 20 || *req.HeartRate > 250) {
		return fmt.Errorf("%w: heart_rate out of range", entity.ErrInvalidVitals)
	}
	if req.Glucose != nil && (*req.Glucose < 10 || *req.Glucose > 600) {
		return fmt.Errorf("%w: glucose out of range", entity.ErrInvalidVitals)
	}
	if req.Hemoglobin != nil && (*req.Hemoglobin < 2 || *req.Hemoglobin > 25) {
		return fmt.Errorf("%w: hemoglobin out of range", entity.ErrInvalidVitals)
	}
	if req.Weight != nil && (*req.Weight < 20 || *req.Weight > 300) {
		return fmt.Errorf("%w: weight out of range", entity.ErrInvalidVitals)
	}
	return nil
}

func hasAnyMeasurement(req *entity.RecordVitalsRequest) bool {
	return req.BPSystolic != nil || req.BPDiastolic != nil || req.HeartRate != nil ||
		req.Glucose != nil || req.Hemoglobin != nil || req.Weight != nil
}

func (v *Validator) ValidateAsk(req *entity.AskRequest) error {
	if req.PatientID == "" {
		return fmt.Errorf("%w: patient_id", entity.ErrMissingField)
	}
	if req.Question == "" {
		return fmt.Errorf("%w: question", entity.ErrMissingField)
	}
	// session_id lands in a UUID column; catch malformed ids here
	// instead of letting the insert fail.
	if req.SessionID != "" {
		if _, err := uuid.Parse(req.SessionID); err != nil {
			return fmt.Errorf("%w: session_id must be a UUID", entity.ErrInvalidParameter)
		}
	}
	return nil
}

func (v *Validator) ValidateGenerateReport(req *entity.GenerateReportRequest) error {
	if req.PatientID == "" {
		return fmt.Errorf("%w: patient_id", entity.ErrMissingField)
	}
	switch req.Format {
	case "", entity.FormatPDF, entity.FormatDOCX, entity.FormatMarkdown:
		return nil
	default:
		return fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, req.Format)
	}
}
