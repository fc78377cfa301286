package risk

import (
	"fmt"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
)

// Evaluator maps a vitals reading to a risk level and warning list by
// threshold comparison. The score is a monotonic step function, not a
// weighted clinical score; this is a deliberate simplification.
type Evaluator struct {
	thresholds config.RiskConfig
}

// NewEvaluator fails when the threshold set is missing or invalid.
// Running with a broken threshold set would silently disable checks,
// so this is a fatal configuration error.
func NewEvaluator(thresholds config.RiskConfig) (*Evaluator, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("risk thresholds: %w", err)
	}
	return &Evaluator{thresholds: thresholds}, nil
}

// Assess evaluates one reading. Pure: no side effects, deterministic
// for a given reading and threshold set. A nil field means the
// measurement was not taken and its check is skipped entirely; it is
// never defaulted to zero.
func (e *Evaluator) Assess(reading entity.VitalsReading) entity.RiskResult {
	var warnings []string
	score := 0

	// Blood pressure: one combined warning for either bound.
	systolicHigh := reading.BPSystolic != nil && *reading.BPSystolic >= e.thresholds.BPSystolicHigh
	diastolicHigh := reading.BPDiastolic != nil && *reading.BPDiastolic >= e.thresholds.BPDiastolicHigh
	if systolicHigh || diastolicHigh {
		warnings = append(warnings, fmt.Sprintf(
			"High Blood Pressure detected (%s/%s). Possible Pre-eclampsia risk.",
			formatIntReading(reading.BPSystolic), formatIntReading(reading.BPDiastolic)))
		score += 2
	}

	if reading.Glucose != nil && *reading.Glucose >= e.thresholds.GlucoseHigh {
		warnings = append(warnings, fmt.Sprintf(
			"High Glucose level (%g mg/dL). Gestational Diabetes risk.", *reading.Glucose))
		score += 2
	}

	// Tachycardia and bradycardia are mutually exclusive by the
	// threshold ordering (low < high is enforced at construction).
	if reading.HeartRate != nil {
		hr := *reading.HeartRate
		switch {
		case hr >= e.thresholds.HeartRateHigh:
			warnings = append(warnings, fmt.Sprintf("Tachycardia detected (%d bpm).", hr))
			score++
		case hr > 0 && hr <= e.thresholds.HeartRateLow:
			warnings = append(warnings, fmt.Sprintf("Bradycardia detected (%d bpm).", hr))
			score++
		}
	}

	level := levelForScore(score)

	return entity.RiskResult{
		Level:           level,
		Score:           score,
		Warnings:        warnings,
		Recommendations: recommendationsFor(level),
		Interpretation:  interpretationFor(level),
	}
}

func levelForScore(score int) entity.RiskLevel {
	switch {
	case score >= 2:
		return entity.RiskLevelHigh
	case score == 1:
		return entity.RiskLevelMedium
	default:
		return entity.RiskLevelLow
	}
}

func interpretationFor(level entity.RiskLevel) string {
	switch level {
	case entity.RiskLevelHigh:
		return "Critical values detected. Immediate attention required."
	case entity.RiskLevelMedium:
		return "Abnormal values detected. Monitoring recommended."
	default:
		return "Vitals are within normal limits."
	}
}

func recommendationsFor(level entity.RiskLevel) []string {
	switch level {
	case entity.RiskLevelHigh:
		return []string{
			"Consult Obstetrician immediately",
			"Daily BP/Glucose monitoring",
			"Referral Required: Yes - Urgent",
		}
	case entity.RiskLevelMedium:
		return []string{
			"Schedule follow-up within 1 week",
			"Weekly monitoring",
		}
	default:
		return []string{
			"Continue regular antenatal visits",
		}
	}
}

// formatIntReading renders an optional measurement for a warning
// message, using "?" when the value was not taken.
func formatIntReading(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}
