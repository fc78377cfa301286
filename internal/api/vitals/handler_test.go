package vitals

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

type stubUsecase struct {
	assessment *entity.AssessmentResponse
	readings   []entity.VitalsReading
	latest     *entity.RiskAssessment
	err        error
}

func (s *stubUsecase) RecordVitals(ctx context.Context, userID string, req *entity.RecordVitalsRequest) (*entity.AssessmentResponse, error) {
	return s.assessment, s.err
}

func (s *stubUsecase) GetHistory(ctx context.Context, userID, patientID string, limit int) ([]entity.VitalsReading, error) {
	return s.readings, s.err
}

func (s *stubUsecase) GetLatestAssessment(ctx context.Context, userID, patientID string) (*entity.RiskAssessment, error) {
	return s.latest, s.err
}

func newTestRouter(uc VitalsUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func TestRecordVitals_Success(t *testing.T) {
	hr := 110
	uc := &stubUsecase{
		assessment: &entity.AssessmentResponse{
			AssessmentID:   "a1",
			VitalID:        "v1",
			RiskLevel:      entity.RiskLevelMedium,
			Warnings:       []string{"Tachycardia detected (110 bpm)."},
			Interpretation: "Abnormal values detected. Monitoring recommended.",
			VitalsAnalyzed: &entity.VitalsReading{ID: "v1", HeartRate: &hr},
		},
	}

	body, _ := json.Marshal(entity.RecordVitalsRequest{PatientID: "p1", HeartRate: &hr})
	req := httptest.NewRequest(http.MethodPost, "/vitals/", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp entity.AssessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a1", resp.AssessmentID)
	assert.Equal(t, entity.RiskLevelMedium, resp.RiskLevel)
	require.NotNil(t, resp.VitalsAnalyzed)
	assert.Equal(t, "v1", resp.VitalsAnalyzed.ID)
}

func TestRecordVitals_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/vitals/", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	newTestRouter(&stubUsecase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordVitals_ValidationError(t *testing.T) {
	uc := &stubUsecase{err: entity.ErrInvalidVitals}

	body, _ := json.Marshal(entity.RecordVitalsRequest{PatientID: "p1"})
	req := httptest.NewRequest(http.MethodPost, "/vitals/", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordVitals_UnknownPatient(t *testing.T) {
	uc := &stubUsecase{err: entity.ErrPatientNotFound}

	body, _ := json.Marshal(entity.RecordVitalsRequest{PatientID: "ghost"})
	req := httptest.NewRequest(http.MethodPost, "/vitals/", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHistory_Success(t *testing.T) {
	sys := 120
	uc := &stubUsecase{
		readings: []entity.VitalsReading{
			{ID: "v2", PatientID: "p1", BPSystolic: &sys, RecordedAt: time.Now()},
			{ID: "v1", PatientID: "p1", RecordedAt: time.Now().Add(-time.Hour)},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/vitals/p1/?limit=10", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.VitalsHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Vitals, 2)
	assert.Equal(t, "v2", resp.Vitals[0].VitalID)
}

func TestGetLatestAssessment_NoneRecorded(t *testing.T) {
	uc := &stubUsecase{err: entity.ErrAssessmentNotFound}

	req := httptest.NewRequest(http.MethodGet, "/vitals/p1/latest", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
