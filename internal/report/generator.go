package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/formatter"
)

const (
	reportTitle      = "Pregnancy Health Assessment Report"
	reportDisclaimer = "This report is generated automatically from recorded vitals and retrieved " +
		"clinical guidelines. It does not replace professional medical advice. Always consult a " +
		"qualified healthcare provider."

	guidelineSummaryMaxLen = 300
	notRecordedValue       = "Not recorded"
)

// symptomKeywords are scanned against the patient's recent questions
// to fill the symptoms section.
var symptomKeywords = []string{"headache", "pain", "swelling", "nausea"}

// Input carries everything the generator needs. LatestVitals and
// LatestAssessment are nil when the patient has no history yet; the
// report still renders with placeholder values.
type Input struct {
	Patient          entity.Patient
	LatestVitals     *entity.VitalsReading
	LatestAssessment *entity.RiskAssessment
	Conversations    []entity.Conversation
	Format           entity.ReportFormat
}

// Output is the rendered file plus the metadata to persist.
type Output struct {
	Path     string
	Metadata entity.ReportMetadata
}

// Generator assembles the seven-section report document and renders
// it to disk in the requested format.
type Generator struct {
	cfg     config.ReportConfig
	factory *formatter.Factory
	now     func() time.Time
}

func NewGenerator(cfg config.ReportConfig) *Generator {
	return &Generator{
		cfg:     cfg,
		factory: formatter.NewFactory(),
		now:     time.Now,
	}
}

func (g *Generator) Generate(ctx context.Context, in Input) (*Output, error) {
	format := in.Format
	if format == "" {
		format = entity.ReportFormat(g.cfg.DefaultFormat)
	}

	fmtr, err := g.factory.Create(format)
	if err != nil {
		return nil, err
	}

	doc := g.buildDocument(in)

	content, err := fmtr.Format(doc)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}

	filename := fmt.Sprintf("Pregnancy_Report_%s%s", g.now().Format("20060102_150405"), fmtr.FileExtension())
	path := filepath.Join(g.cfg.OutputDir, filename)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("write report file: %w", err)
	}

	ctxzap.Info(ctx, "report generated",
		zap.String("path", path),
		zap.String("format", string(format)),
	)

	metadata := entity.ReportMetadata{
		PatientName:     in.Patient.Name,
		GestationalWeek: in.Patient.GestationalWeek,
		RiskLevel:       riskLevelOf(in.LatestAssessment),
	}

	return &Output{Path: path, Metadata: metadata}, nil
}

func (g *Generator) buildDocument(in Input) *entity.ReportDocument {
	return &entity.ReportDocument{
		Title:       reportTitle,
		PatientInfo: patientInfo(in.Patient, g.now()),
		Symptoms:    detectSymptoms(in.Conversations),
		VitalSigns:  vitalSigns(in.LatestVitals),
		Risk:        riskSection(in.LatestAssessment),
		Guideline:   guidelineSection(in.Conversations),
		Action:      actionPlan(riskLevelOf(in.LatestAssessment)),
		Disclaimer:  reportDisclaimer,
	}
}

func patientInfo(patient entity.Patient, visitedAt time.Time) entity.ReportPatientInfo {
	age := notRecordedValue
	if patient.Age != nil {
		age = fmt.Sprintf("%d years", *patient.Age)
	}

	gestational := notRecordedValue
	if patient.GestationalWeek != nil {
		gestational = fmt.Sprintf("%d weeks", *patient.GestationalWeek)
	}

	return entity.ReportPatientInfo{
		Name:           patient.Name,
		Age:            age,
		GestationalAge: gestational,
		VisitDate:      visitedAt.Format("2006-01-02"),
	}
}

// detectSymptoms scans the patient's recent questions for known
// symptom keywords. Matching is case insensitive and deduplicated.
func detectSymptoms(conversations []entity.Conversation) []string {
	seen := make(map[string]bool)
	var symptoms []string
	for _, conv := range conversations {
		question := strings.ToLower(conv.Question)
		for _, keyword := range symptomKeywords {
			if strings.Contains(question, keyword) && !seen[keyword] {
				seen[keyword] = true
				symptoms = append(symptoms, "Patient mentioned: "+keyword)
			}
		}
	}
	return symptoms
}

func vitalSigns(vitals *entity.VitalsReading) entity.ReportVitalSigns {
	signs := entity.ReportVitalSigns{
		BloodPressure: notRecordedValue,
		Hemoglobin:    notRecordedValue,
		Glucose:       notRecordedValue,
		HeartRate:     notRecordedValue,
	}
	if vitals == nil {
		return signs
	}

	if vitals.BPSystolic != nil && vitals.BPDiastolic != nil {
		signs.BloodPressure = fmt.Sprintf("%d/%d mmHg", *vitals.BPSystolic, *vitals.BPDiastolic)
	}
	if vitals.Hemoglobin != nil {
		signs.Hemoglobin = fmt.Sprintf("%g g/dL", *vitals.Hemoglobin)
	}
	if vitals.Glucose != nil {
		signs.Glucose = fmt.Sprintf("%g mg/dL", *vitals.Glucose)
	}
	if vitals.HeartRate != nil {
		signs.HeartRate = fmt.Sprintf("%d bpm", *vitals.HeartRate)
	}
	return signs
}

func riskLevelOf(assessment *entity.RiskAssessment) entity.RiskLevel {
	if assessment == nil {
		return entity.RiskLevelLow
	}
	return assessment.Level
}

func riskSection(assessment *entity.RiskAssessment) entity.ReportRiskSection {
	if assessment == nil {
		return entity.ReportRiskSection{
			Level:          entity.RiskLevelLow,
			Interpretation: "No risk assessment on record for this patient.",
		}
	}
	return entity.ReportRiskSection{
		Level:          assessment.Level,
		Conditions:     assessment.Warnings,
		Interpretation: assessment.Interpretation,
	}
}

// guidelineSection summarizes the most recent answered question. The
// conversations are expected newest first.
func guidelineSection(conversations []entity.Conversation) entity.ReportGuidelineSection {
	if len(conversations) == 0 {
		return entity.ReportGuidelineSection{
			RetrievedSource: "WHO antenatal care guidelines",
			Summary:         "No guideline consultations on record.",
		}
	}

	latest := conversations[0]
	source := "WHO antenatal care guidelines"
	if len(latest.Sources) > 0 {
		source = latest.Sources[0].Source
	}

	summary := latest.Answer
	if runes := []rune(summary); len(runes) > guidelineSummaryMaxLen {
		summary = string(runes[:guidelineSummaryMaxLen])
	}

	return entity.ReportGuidelineSection{
		RetrievedSource: source,
		Summary:         summary,
	}
}

func actionPlan(level entity.RiskLevel) entity.ReportActionPlan {
	switch level {
	case entity.RiskLevelHigh:
		return entity.ReportActionPlan{
			ImmediateAction:  "Refer to a specialist for urgent evaluation.",
			MonitoringPlan:   "Daily monitoring of blood pressure and glucose until reviewed.",
			ReferralRequired: "Yes",
		}
	case entity.RiskLevelMedium:
		return entity.ReportActionPlan{
			ImmediateAction:  "Schedule a follow-up consultation within one week.",
			MonitoringPlan:   "Monitor vitals twice weekly and record symptoms.",
			ReferralRequired: "If symptoms persist",
		}
	default:
		return entity.ReportActionPlan{
			ImmediateAction:  "Continue routine antenatal care.",
			MonitoringPlan:   "Monitor vitals at regular antenatal visits.",
			ReferralRequired: "No",
		}
	}
}
