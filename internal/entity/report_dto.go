package entity

import "time"

type ReportFormat string

const (
	FormatPDF      ReportFormat = "pdf"
	FormatDOCX     ReportFormat = "docx"
	FormatMarkdown ReportFormat = "md"
)

type GenerateReportRequest struct {
	PatientID string       `json:"patient_id"`
	Format    ReportFormat `json:"format,omitempty"`
}

type ReportResponse struct {
	ReportID    string         `json:"report_id"`
	ReportPath  string         `json:"report_path"`
	ReportType  string         `json:"report_type"`
	Metadata    ReportMetadata `json:"metadata"`
	GeneratedAt time.Time      `json:"generated_at"`
}

type ListReportsResponse struct {
	Reports []*ReportResponse `json:"reports"`
}

// ReportDocument is the fixed seven-section layout consumed by the
// formatters. The section content is assembled by the report
// generator; formatters only render it.
type ReportDocument struct {
	Title       string
	PatientInfo ReportPatientInfo
	Symptoms    []string
	VitalSigns  ReportVitalSigns
	Risk        ReportRiskSection
	Guideline   ReportGuidelineSection
	Action      ReportActionPlan
	Disclaimer  string
}

type ReportPatientInfo struct {
	Name           string
	Age            string
	GestationalAge string
	VisitDate      string
}

type ReportVitalSigns struct {
	BloodPressure string
	Hemoglobin    string
	Glucose       string
	HeartRate     string
}

type ReportRiskSection struct {
	Level          RiskLevel
	Conditions     []string
	Interpretation string
}

type ReportGuidelineSection struct {
	RetrievedSource string
	Summary         string
}

type ReportActionPlan struct {
	ImmediateAction  string
	MonitoringPlan   string
	ReferralRequired string
}
