package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
)

func defaultThresholds() config.RiskConfig {
	return config.RiskConfig{
		BPSystolicHigh:  140,
		BPDiastolicHigh: 90,
		GlucoseHigh:     140,
		HeartRateHigh:   100,
		HeartRateLow:    60,
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestNewEvaluator_InvalidThresholds(t *testing.T) {
	tests := []struct {
		name       string
		thresholds config.RiskConfig
	}{
		{
			name:       "all zero",
			thresholds: config.RiskConfig{},
		},
		{
			name: "negative glucose",
			thresholds: config.RiskConfig{
				BPSystolicHigh:  140,
				BPDiastolicHigh: 90,
				GlucoseHigh:     -1,
				HeartRateHigh:   100,
				HeartRateLow:    60,
			},
		},
		{
			name: "heart rate bounds inverted",
			thresholds: config.RiskConfig{
				BPSystolicHigh:  140,
				BPDiastolicHigh: 90,
				GlucoseHigh:     140,
				HeartRateHigh:   60,
				HeartRateLow:    100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEvaluator(tt.thresholds)
			require.Error(t, err)
		})
	}
}

func TestAssess_HighRisk(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	result := ev.Assess(entity.VitalsReading{
		BPSystolic:  intPtr(150),
		BPDiastolic: intPtr(95),
		HeartRate:   intPtr(75),
		Glucose:     floatPtr(100),
	})

	assert.Equal(t, entity.RiskLevelHigh, result.Level)
	assert.Equal(t, 2, result.Score)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "High Blood Pressure detected (150/95). Possible Pre-eclampsia risk.", result.Warnings[0])
	assert.Contains(t, result.Recommendations, "Consult Obstetrician immediately")
	assert.Equal(t, "Critical values detected. Immediate attention required.", result.Interpretation)
}

func TestAssess_MediumRisk(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	result := ev.Assess(entity.VitalsReading{
		BPSystolic:  intPtr(120),
		BPDiastolic: intPtr(80),
		HeartRate:   intPtr(110),
		Glucose:     floatPtr(100),
	})

	assert.Equal(t, entity.RiskLevelMedium, result.Level)
	assert.Equal(t, 1, result.Score)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Tachycardia detected (110 bpm).", result.Warnings[0])
	assert.Equal(t, "Abnormal values detected. Monitoring recommended.", result.Interpretation)
}

func TestAssess_LowRisk(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	result := ev.Assess(entity.VitalsReading{
		BPSystolic:  intPtr(120),
		BPDiastolic: intPtr(80),
		HeartRate:   intPtr(75),
		Glucose:     floatPtr(100),
	})

	assert.Equal(t, entity.RiskLevelLow, result.Level)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{"Continue regular antenatal visits"}, result.Recommendations)
	assert.Equal(t, "Vitals are within normal limits.", result.Interpretation)
}

func TestAssess_MissingMeasurementsSkipChecks(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	// Nothing measured: no check fires, even though a zero heart rate
	// would count as bradycardia if it were treated as a value.
	result := ev.Assess(entity.VitalsReading{})

	assert.Equal(t, entity.RiskLevelLow, result.Level)
	assert.Empty(t, result.Warnings)
}

func TestAssess_SystolicOnlyBP(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	result := ev.Assess(entity.VitalsReading{
		BPSystolic: intPtr(160),
	})

	assert.Equal(t, entity.RiskLevelHigh, result.Level)
	assert.Equal(t, 2, result.Score)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "High Blood Pressure detected (160/?). Possible Pre-eclampsia risk.", result.Warnings[0])
}

func TestAssess_BothBPBoundsOneWarning(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	// Both bounds exceeded still yields a single combined warning and
	// a single score increment.
	result := ev.Assess(entity.VitalsReading{
		BPSystolic:  intPtr(160),
		BPDiastolic: intPtr(100),
	})

	assert.Equal(t, 2, result.Score)
	assert.Len(t, result.Warnings, 1)
}

func TestAssess_GlucoseAtThreshold(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	result := ev.Assess(entity.VitalsReading{
		Glucose: floatPtr(140),
	})

	assert.Equal(t, entity.RiskLevelHigh, result.Level)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "High Glucose level (140 mg/dL). Gestational Diabetes risk.", result.Warnings[0])
}

func TestAssess_Bradycardia(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	result := ev.Assess(entity.VitalsReading{
		HeartRate: intPtr(50),
	})

	assert.Equal(t, entity.RiskLevelMedium, result.Level)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Bradycardia detected (50 bpm).", result.Warnings[0])
}

func TestAssess_AllChecksFire(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	result := ev.Assess(entity.VitalsReading{
		BPSystolic:  intPtr(160),
		BPDiastolic: intPtr(100),
		HeartRate:   intPtr(120),
		Glucose:     floatPtr(200),
	})

	assert.Equal(t, entity.RiskLevelHigh, result.Level)
	assert.Equal(t, 5, result.Score)
	assert.Len(t, result.Warnings, 3)
}

func TestAssess_Deterministic(t *testing.T) {
	ev, err := NewEvaluator(defaultThresholds())
	require.NoError(t, err)

	reading := entity.VitalsReading{
		BPSystolic:  intPtr(150),
		BPDiastolic: intPtr(95),
		Glucose:     floatPtr(150),
	}

	first := ev.Assess(reading)
	second := ev.Assess(reading)

	assert.Equal(t, first, second)
}
