package chat

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
	answer        *entity.AskResponse
	conversations []entity.Conversation
	deleted       int
	err           error

	lastPatientID string
	lastSessionID string
}

func (s *stubUsecase) Ask(ctx context.Context, userID string, req *entity.AskRequest) (*entity.AskResponse, error) {
	s.lastPatientID = req.PatientID
	return s.answer, s.err
}

func (s *stubUsecase) GetHistory(ctx context.Context, userID, patientID, sessionID string, limit int) ([]entity.Conversation, error) {
	s.lastPatientID = patientID
	s.lastSessionID = sessionID
	return s.conversations, s.err
}

func (s *stubUsecase) DeleteHistory(ctx context.Context, userID, patientID string) (int, error) {
	s.lastPatientID = patientID
	return s.deleted, s.err
}

func newTestRouter(uc ChatUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func TestAsk_Success(t *testing.T) {
	uc := &stubUsecase{
		answer: &entity.AskResponse{
			ConversationID: "c1",
			Answer:         "Mild swelling of the feet is common in the third trimester.",
			Sources: []entity.SourceCitation{
				{Source: "who_guidelines.pdf", Page: 12, Content: "Lower limb oedema affects many pregnant women."},
			},
			SessionID: "s1",
		},
	}

	body, _ := json.Marshal(entity.AskRequest{PatientID: "p1", Question: "Is swelling normal?"})
	req := httptest.NewRequest(http.MethodPost, "/chat/ask", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "c1", resp.ConversationID)
	assert.Equal(t, "s1", resp.SessionID)
	require.Len(t, resp.Sources, 1)
	assert.Equal(t, "who_guidelines.pdf", resp.Sources[0].Source)
	assert.Equal(t, "p1", uc.lastPatientID)
}

func TestAsk_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/chat/ask", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	newTestRouter(&stubUsecase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAsk_MissingQuestion(t *testing.T) {
	uc := &stubUsecase{err: entity.ErrMissingField}

	body, _ := json.Marshal(entity.AskRequest{PatientID: "p1"})
	req := httptest.NewRequest(http.MethodPost, "/chat/ask", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAsk_PipelineUnavailable(t *testing.T) {
	uc := &stubUsecase{err: entity.ErrQueryFailed}

	body, _ := json.Marshal(entity.AskRequest{PatientID: "p1", Question: "Is swelling normal?"})
	req := httptest.NewRequest(http.MethodPost, "/chat/ask", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp entity.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "guideline service unavailable", resp.Message)
}

func TestAsk_UnknownPatient(t *testing.T) {
	uc := &stubUsecase{err: entity.ErrPatientNotFound}

	body, _ := json.Marshal(entity.AskRequest{PatientID: "ghost", Question: "Is swelling normal?"})
	req := httptest.NewRequest(http.MethodPost, "/chat/ask", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHistory_SessionFilter(t *testing.T) {
	uc := &stubUsecase{
		conversations: []entity.Conversation{
			{ID: "c2", PatientID: "p1", Question: "q2", Answer: "a2", CreatedAt: time.Now()},
			{ID: "c1", PatientID: "p1", Question: "q1", Answer: "a1", CreatedAt: time.Now().Add(-time.Minute)},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/chat/history/p1/?session_id=s1&limit=5", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p1", uc.lastPatientID)
	assert.Equal(t, "s1", uc.lastSessionID)

	var resp entity.ConversationHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Conversations, 2)
	assert.Equal(t, "c2", resp.Conversations[0].ConversationID)
}

func TestDeleteHistory_Success(t *testing.T) {
	uc := &stubUsecase{deleted: 4}

	req := httptest.NewRequest(http.MethodDelete, "/chat/history/p1/", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp["status"])
	assert.Equal(t, float64(4), resp["deleted_count"])
}
