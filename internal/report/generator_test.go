package report

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	g := NewGenerator(config.ReportConfig{
		OutputDir:     t.TempDir(),
		DefaultFormat: "md",
	})
	g.now = func() time.Time {
		return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	}
	return g
}

func fullInput() Input {
	return Input{
		Patient: entity.Patient{
			ID:              "p1",
			Name:            "Asha Verma",
			Age:             intPtr(29),
			GestationalWeek: intPtr(24),
		},
		LatestVitals: &entity.VitalsReading{
			BPSystolic:  intPtr(150),
			BPDiastolic: intPtr(95),
			HeartRate:   intPtr(92),
			Glucose:     floatPtr(110),
			Hemoglobin:  floatPtr(11.5),
		},
		LatestAssessment: &entity.RiskAssessment{
			Level:          entity.RiskLevelHigh,
			Warnings:       []string{"High Blood Pressure detected (150/95). Possible Pre-eclampsia risk."},
			Interpretation: "Critical values detected. Immediate attention required.",
		},
		Conversations: []entity.Conversation{
			{
				Question: "I have a headache and some swelling, is that normal?",
				Answer:   "Persistent headache with swelling can indicate pre-eclampsia and should be evaluated promptly.",
				Sources:  []entity.SourceCitation{{Source: "who_anc.pdf", Page: 14}},
			},
		},
		Format: entity.FormatMarkdown,
	}
}

func TestGenerate_WritesTimestampedFile(t *testing.T) {
	g := testGenerator(t)

	out, err := g.Generate(context.Background(), fullInput())
	require.NoError(t, err)

	assert.Contains(t, out.Path, "Pregnancy_Report_20250615_103000.md")
	_, statErr := os.Stat(out.Path)
	require.NoError(t, statErr)
}

func TestGenerate_SevenSections(t *testing.T) {
	g := testGenerator(t)

	out, err := g.Generate(context.Background(), fullInput())
	require.NoError(t, err)

	content, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	text := string(content)

	for _, heading := range []string{
		"Patient Information",
		"Symptoms Reported",
		"Vital Signs",
		"Risk Assessment",
		"Guideline Reference",
		"Recommended Action Plan",
		"Disclaimer",
	} {
		assert.Contains(t, text, heading)
	}

	assert.Contains(t, text, "Asha Verma")
	assert.Contains(t, text, "150/95 mmHg")
	assert.Contains(t, text, "Risk Level: High")
	assert.Contains(t, text, "Refer to a specialist")
	assert.Contains(t, text, "who_anc.pdf")
}

func TestGenerate_SymptomDetection(t *testing.T) {
	g := testGenerator(t)

	out, err := g.Generate(context.Background(), fullInput())
	require.NoError(t, err)

	content, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "Patient mentioned: headache")
	assert.Contains(t, text, "Patient mentioned: swelling")
	assert.NotContains(t, text, "Patient mentioned: nausea")
}

func TestGenerate_EmptyHistoryUsesPlaceholders(t *testing.T) {
	g := testGenerator(t)

	out, err := g.Generate(context.Background(), Input{
		Patient: entity.Patient{ID: "p2", Name: "New Patient"},
		Format:  entity.FormatMarkdown,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "Not recorded")
	assert.Contains(t, text, "No symptoms reported in recent consultations.")
	assert.Contains(t, text, "No guideline consultations on record.")
	assert.Contains(t, text, "Risk Level: Low")
	assert.Equal(t, entity.RiskLevelLow, out.Metadata.RiskLevel)
}

func TestGenerate_GuidelineSummaryTruncated(t *testing.T) {
	g := testGenerator(t)

	in := fullInput()
	in.Conversations[0].Answer = strings.Repeat("a", 600)

	out, err := g.Generate(context.Background(), in)
	require.NoError(t, err)

	content, err := os.ReadFile(out.Path)
	require.NoError(t, err)

	assert.Contains(t, string(content), strings.Repeat("a", 300))
	assert.NotContains(t, string(content), strings.Repeat("a", 301))
}

func TestGenerate_GuidelineSummaryTruncationMultiByte(t *testing.T) {
	g := testGenerator(t)

	// 400 two-byte runes; truncating bytes instead of runes would
	// leave a dangling half rune at the 300 mark.
	in := fullInput()
	in.Conversations[0].Answer = strings.Repeat("é", 400)

	out, err := g.Generate(context.Background(), in)
	require.NoError(t, err)

	content, err := os.ReadFile(out.Path)
	require.NoError(t, err)

	assert.True(t, utf8.Valid(content))
	assert.Contains(t, string(content), strings.Repeat("é", 300))
	assert.NotContains(t, string(content), strings.Repeat("é", 301))
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	g := testGenerator(t)

	in := fullInput()
	in.Format = entity.ReportFormat("rtf")

	_, err := g.Generate(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}

func TestGenerate_DefaultFormatFromConfig(t *testing.T) {
	g := testGenerator(t)

	in := fullInput()
	in.Format = ""

	out, err := g.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.Path, ".md"))
}

func TestGenerate_Metadata(t *testing.T) {
	g := testGenerator(t)

	out, err := g.Generate(context.Background(), fullInput())
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", out.Metadata.PatientName)
	require.NotNil(t, out.Metadata.GestationalWeek)
	assert.Equal(t, 24, *out.Metadata.GestationalWeek)
	assert.Equal(t, entity.RiskLevelHigh, out.Metadata.RiskLevel)
}
