package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidateRegister(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     entity.RegisterRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  entity.RegisterRequest{Email: "asha@example.com", Password: "supersecret", Name: "Asha"},
		},
		{
			name:    "missing email",
			req:     entity.RegisterRequest{Password: "supersecret", Name: "Asha"},
			wantErr: entity.ErrMissingField,
		},
		{
			name:    "malformed email",
			req:     entity.RegisterRequest{Email: "not-an-email", Password: "supersecret", Name: "Asha"},
			wantErr: entity.ErrInvalidParameter,
		},
		{
			name:    "short password",
			req:     entity.RegisterRequest{Email: "asha@example.com", Password: "short", Name: "Asha"},
			wantErr: entity.ErrInvalidParameter,
		},
		{
			name:    "implausible age",
			req:     entity.RegisterRequest{Email: "asha@example.com", Password: "supersecret", Name: "Asha", Age: intPtr(200)},
			wantErr: entity.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegister(&tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRecordVitals(t *testing.T) {
	v := NewValidator()

	t.Run("valid partial reading", func(t *testing.T) {
		err := v.ValidateRecordVitals(&entity.RecordVitalsRequest{
			PatientID:  "p1",
			BPSystolic: intPtr(120),
		})
		assert.NoError(t, err)
	})

	t.Run("missing patient id", func(t *testing.T) {
		err := v.ValidateRecordVitals(&entity.RecordVitalsRequest{BPSystolic: intPtr(120)})
		assert.ErrorIs(t, err, entity.ErrMissingField)
	})

	t.Run("no measurements at all", func(t *testing.T) {
		err := v.ValidateRecordVitals(&entity.RecordVitalsRequest{PatientID: "p1"})
		assert.ErrorIs(t, err, entity.ErrInvalidVitals)
	})

	t.Run("out of range values", func(t *testing.T) {
		tests := []entity.RecordVitalsRequest{
			{PatientID: "p1", BPSystolic: intPtr(500)},
			{PatientID: "p1", BPDiastolic: intPtr(5)},
			{PatientID: "p1", HeartRate: intPtr(300)},
			{PatientID: "p1", Glucose: floatPtr(1000)},
			{PatientID: "p1", Hemoglobin: floatPtr(0.5)},
			{PatientID: "p1", Weight: floatPtr(500)},
		}
		for _, req := range tests {
			assert.ErrorIs(t, v.ValidateRecordVitals(&req), entity.ErrInvalidVitals)
		}
	})
}

func TestValidateAsk(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateAsk(&entity.AskRequest{PatientID: "p1", Question: "Is nausea normal?"}))
	assert.ErrorIs(t, v.ValidateAsk(&entity.AskRequest{Question: "q"}), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateAsk(&entity.AskRequest{PatientID: "p1"}), entity.ErrMissingField)

	t.Run("session id format", func(t *testing.T) {
		require.NoError(t, v.ValidateAsk(&entity.AskRequest{
			PatientID: "p1",
			Question:  "q",
			SessionID: "7b9e6c1a-3f6c-4b2e-9d2a-8f1e5c3b7a90",
		}))
		assert.ErrorIs(t, v.ValidateAsk(&entity.AskRequest{
			PatientID: "p1",
			Question:  "q",
			SessionID: "not-a-uuid",
		}), entity.ErrInvalidParameter)
	})
}

func TestValidateCreatePatient(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateCreatePatient(&entity.CreatePatientRequest{Name: "Asha", GestationalWeek: intPtr(20)}))
	assert.ErrorIs(t, v.ValidateCreatePatient(&entity.CreatePatientRequest{}), entity.ErrMissingField)
	assert.ErrorIs(t,
		v.ValidateCreatePatient(&entity.CreatePatientRequest{Name: "Asha", GestationalWeek: intPtr(60)}),
		entity.ErrInvalidParameter,
	)
}

func TestValidateGenerateReport(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateGenerateReport(&entity.GenerateReportRequest{PatientID: "p1"}))
	require.NoError(t, v.ValidateGenerateReport(&entity.GenerateReportRequest{PatientID: "p1", Format: entity.FormatDOCX}))
	assert.ErrorIs(t, v.ValidateGenerateReport(&entity.GenerateReportRequest{}), entity.ErrMissingField)
	assert.ErrorIs(t,
		v.ValidateGenerateReport(&entity.GenerateReportRequest{PatientID: "p1", Format: "rtf"}),
		entity.ErrUnsupportedFormat,
	)
}
