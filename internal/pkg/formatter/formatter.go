package formatter

import (
	"fmt"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

// Formatter renders the fixed seven-section report layout into one
// output format.
type Formatter interface {
	Format(doc *entity.ReportDocument) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ReportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}
}

// sections flattens the document into ordered heading/body pairs so
// the three formatters render identical content.
type section struct {
	Heading string
	Lines   []string
}

func sections(doc *entity.ReportDocument) []section {
	symptoms := doc.Symptoms
	if len(symptoms) == 0 {
		symptoms = []string{"No symptoms reported in recent consultations."}
	}

	conditions := doc.Risk.Conditions
	if len(conditions) == 0 {
		conditions = []string{"No risk conditions detected."}
	}

	return []section{
		{
			Heading: "Patient Information",
			Lines: []string{
				"Name: " + doc.PatientInfo.Name,
				"Age: " + doc.PatientInfo.Age,
				"Gestational Age: " + doc.PatientInfo.GestationalAge,
				"Visit Date: " + doc.PatientInfo.VisitDate,
			},
		},
		{
			Heading: "Symptoms Reported",
			Lines:   symptoms,
		},
		{
			Heading: "Vital Signs",
			Lines: []string{
				"Blood Pressure: " + doc.VitalSigns.BloodPressure,
				"Hemoglobin: " + doc.VitalSigns.Hemoglobin,
				"Glucose: " + doc.VitalSigns.Glucose,
				"Heart Rate: " + doc.VitalSigns.HeartRate,
			},
		},
		{
			Heading: "Risk Assessment",
			Lines: append(
				[]string{"Risk Level: " + string(doc.Risk.Level)},
				append(conditions, "Clinical Interpretation: "+doc.Risk.Interpretation)...,
			),
		},
		{
			Heading: "Guideline Reference",
			Lines: []string{
				"Source: " + doc.Guideline.RetrievedSource,
				doc.Guideline.Summary,
			},
		},
		{
			Heading: "Recommended Action Plan",
			Lines: []string{
				"Immediate Action: " + doc.Action.ImmediateAction,
				"Monitoring Plan: " + doc.Action.MonitoringPlan,
				"Referral Required: " + doc.Action.ReferralRequired,
			},
		},
		{
			Heading: "Disclaimer",
			Lines:   []string{doc.Disclaimer},
		},
	}
}
