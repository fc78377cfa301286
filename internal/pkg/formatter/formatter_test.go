package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

func sampleDocument() *entity.ReportDocument {
	return &entity.ReportDocument{
		Title: "Pregnancy Health Assessment Report",
		PatientInfo: entity.ReportPatientInfo{
			Name:           "Asha Verma",
			Age:            "29",
			GestationalAge: "Week 24",
			VisitDate:      "2025-06-15",
		},
		Symptoms: []string{"headache", "swelling"},
		VitalSigns: entity.ReportVitalSigns{
			BloodPressure: "150/95 mmHg",
			Hemoglobin:    "10.2 g/dL",
			Glucose:       "Not recorded",
			HeartRate:     "88 bpm",
		},
		Risk: entity.ReportRiskSection{
			Level:          entity.RiskLevelHigh,
			Conditions:     []string{"Elevated blood pressure detected (150/95)."},
			Interpretation: "High risk indicators present. Clinical review advised.",
		},
		Guideline: entity.ReportGuidelineSection{
			RetrievedSource: "who_guidelines.pdf",
			Summary:         "Persistent headache with hypertension warrants assessment for pre-eclampsia.",
		},
		Action: entity.ReportActionPlan{
			ImmediateAction:  "Refer to a specialist for evaluation.",
			MonitoringPlan:   "Daily blood pressure monitoring.",
			ReferralRequired: "Yes",
		},
		Disclaimer: "This report is generated from recorded data and guideline excerpts. It does not replace clinical judgement.",
	}
}

func TestFactory_Create(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		format    entity.ReportFormat
		extension string
	}{
		{entity.FormatPDF, ".pdf"},
		{entity.FormatDOCX, ".docx"},
		{entity.FormatMarkdown, ".md"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			f, err := factory.Create(tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.extension, f.FileExtension())
			assert.NotEmpty(t, f.ContentType())
		})
	}
}

func TestFactory_UnsupportedFormat(t *testing.T) {
	_, err := NewFactory().Create(entity.ReportFormat("rtf"))
	require.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}

func TestMarkdownFormatter_RendersAllSections(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(sampleDocument())
	require.NoError(t, err)

	text := string(out)
	for _, heading := range []string{
		"Patient Information",
		"Symptoms Reported",
		"Vital Signs",
		"Risk Assessment",
		"Guideline Reference",
		"Recommended Action Plan",
		"Disclaimer",
	} {
		assert.Contains(t, text, "## "+heading)
	}
	assert.True(t, strings.HasPrefix(text, "# Pregnancy Health Assessment Report"))
	assert.Contains(t, text, "150/95 mmHg")
}

func TestMarkdownFormatter_EmptySymptomsPlaceholder(t *testing.T) {
	doc := sampleDocument()
	doc.Symptoms = nil
	doc.Risk.Conditions = nil

	out, err := NewMarkdownFormatter().Format(doc)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "No symptoms reported in recent consultations.")
	assert.Contains(t, text, "No risk conditions detected.")
}

func TestPDFFormatter_ProducesDocument(t *testing.T) {
	out, err := NewPDFFormatter().Format(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out[:4]), "%PDF"))
}
