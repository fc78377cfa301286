package entity

import "time"

// RecordVitalsRequest carries one set of measurements. Omitted fields
// stay nil and are excluded from risk checks.
type RecordVitalsRequest struct {
	PatientID   string   `json:"patient_id"`
	BPSystolic  *int     `json:"bp_systolic,omitempty"`
	BPDiastolic *int     `json:"bp_diastolic,omitempty"`
	HeartRate   *int     `json:"heart_rate,omitempty"`
	Glucose     *float64 `json:"glucose,omitempty"`
	Hemoglobin  *float64 `json:"hemoglobin,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
}

type AssessmentResponse struct {
	AssessmentID    string         `json:"assessment_id"`
	VitalID         string         `json:"vital_id"`
	RiskLevel       RiskLevel      `json:"risk_level"`
	Warnings        []string       `json:"warnings"`
	Recommendations []string       `json:"recommendations"`
	Interpretation  string         `json:"clinical_interpretation"`
	VitalsAnalyzed  *VitalsReading `json:"vitals_analyzed"`
}

type VitalsHistoryEntry struct {
	VitalID     string    `json:"vital_id"`
	BPSystolic  *int      `json:"bp_systolic,omitempty"`
	BPDiastolic *int      `json:"bp_diastolic,omitempty"`
	HeartRate   *int      `json:"heart_rate,omitempty"`
	Glucose     *float64  `json:"glucose,omitempty"`
	Hemoglobin  *float64  `json:"hemoglobin,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type VitalsHistoryResponse struct {
	Vitals []*VitalsHistoryEntry `json:"vitals"`
}
