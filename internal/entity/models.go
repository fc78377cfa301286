package entity

import (
	"fmt"
	"time"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

func (rl RiskLevel) Validate() error {
	switch rl {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return nil
	default:
		return fmt.Errorf("unknown risk level: %s", rl)
	}
}

type User struct {
	ID           string     `json:"user_id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Age          *int       `json:"age,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type Patient struct {
	ID              string     `json:"patient_id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Age             *int       `json:"age,omitempty"`
	BloodGroup      *string    `json:"blood_group,omitempty"`
	GestationalWeek *int       `json:"gestational_week,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	MedicalHistory  *string    `json:"medical_history,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// VitalsReading is a single immutable measurement record. A nil field
// means the measurement was not taken, which is different from zero.
type VitalsReading struct {
	ID          string    `json:"vital_id"`
	PatientID   string    `json:"patient_id"`
	BPSystolic  *int      `json:"bp_systolic,omitempty"`
	BPDiastolic *int      `json:"bp_diastolic,omitempty"`
	HeartRate   *int      `json:"heart_rate,omitempty"`
	Glucose     *float64  `json:"glucose,omitempty"`
	Hemoglobin  *float64  `json:"hemoglobin,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// RiskResult is the outcome of evaluating one vitals reading.
// It is a pure function of the reading and the configured thresholds.
type RiskResult struct {
	Level           RiskLevel
	Score           int
	Warnings        []string
	Recommendations []string
	Interpretation  string
}

type RiskAssessment struct {
	ID              string    `json:"assessment_id"`
	PatientID       string    `json:"patient_id"`
	VitalID         *string   `json:"vital_id,omitempty"`
	Level           RiskLevel `json:"risk_level"`
	Warnings        []string  `json:"warnings"`
	Recommendations []string  `json:"recommendations"`
	Interpretation  string    `json:"clinical_interpretation"`
	AssessedAt      time.Time `json:"assessed_at"`
}

// Conversation is one turn of the question/answer log for a patient.
// Turns are append-only.
type Conversation struct {
	ID        string           `json:"conversation_id"`
	PatientID string           `json:"patient_id"`
	Question  string           `json:"question"`
	Answer    string           `json:"answer"`
	Sources   []SourceCitation `json:"sources"`
	SessionID string           `json:"session_id"`
	CreatedAt time.Time        `json:"created_at"`
}

type Report struct {
	ID          string         `json:"report_id"`
	PatientID   string         `json:"patient_id"`
	Path        string         `json:"report_path"`
	Type        string         `json:"report_type"`
	Metadata    ReportMetadata `json:"metadata"`
	GeneratedAt time.Time      `json:"generated_at"`
}

type ReportMetadata struct {
	PatientName     string    `json:"patient_name"`
	GestationalWeek *int      `json:"gestational_week,omitempty"`
	RiskLevel       RiskLevel `json:"risk_level"`
}

const ReportTypePregnancyAssessment = "pregnancy_assessment"
