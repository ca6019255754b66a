package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"archetype-quiz/internal/domain"
	"archetype-quiz/internal/service"
)

type mockResultRepo struct {
	bySession map[string]domain.QuizResult
	saveErr   error
}

func newMockResultRepo() *mockResultRepo {
	return &mockResultRepo{bySession: make(map[string]domain.QuizResult)}
}

func (m *mockResultRepo) Save(_ context.Context, result domain.QuizResult) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.bySession[result.SessionID] = result
	return nil
}

func (m *mockResultRepo) GetBySessionID(_ context.Context, sessionID string) (domain.QuizResult, error) {
	result, ok := m.bySession[sessionID]
	if !ok {
		return domain.QuizResult{}, pgx.ErrNoRows
	}
	return result, nil
}

func newQuizRouter(results *mockResultRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	resolver := service.NewArchetypeResolver(service.ArchetypeProfiles(), service.DefaultResolverConfig)
	handler := NewQuizHandler(zap.NewNop(), resolver, service.QuestionBank(), results, nil)

	r := gin.New()
	r.GET("/quiz/questions", handler.GetQuestions)
	r.POST("/quiz/submit", handler.SubmitQuiz)
	r.GET("/quiz/results/:session_id", handler.GetResult)
	return r
}

func TestSubmitQuiz_ScoresAndPersistsResult(t *testing.T) {
	results := newMockResultRepo()
	r := newQuizRouter(results)

	body, _ := json.Marshal(map[string]any{
		"session_id": "sess-1",
		"answers": map[string]int{
			"st-plan-day":    5,
			"mo-consistency": 5,
			"co-deep-dive":   1,
			"ta-single-task": 1,
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/quiz/submit", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		SessionID string            `json:"session_id"`
		Scores    domain.AxisScores `json:"scores"`
		Archetype struct {
			Primary         domain.ArchetypeProfile `json:"primary"`
			ConfidenceLevel string                  `json:"confidence_level"`
		} `json:"archetype"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.SessionID != "sess-1" {
		t.Fatalf("expected session id echoed, got %q", resp.SessionID)
	}
	if resp.Scores.Structure != 100 || resp.Scores.Cognitive != 0 {
		t.Fatalf("unexpected scores: %+v", resp.Scores)
	}
	if resp.Archetype.Primary.ID == "" || resp.Archetype.ConfidenceLevel == "" {
		t.Fatalf("expected resolved archetype, got %+v", resp.Archetype)
	}

	stored, ok := results.bySession["sess-1"]
	if !ok || stored.ArchetypeID != resp.Archetype.Primary.ID {
		t.Fatalf("expected persisted result matching response, got %+v", stored)
	}
}

func TestSubmitQuiz_RejectsUnknownQuestionID(t *testing.T) {
	r := newQuizRouter(newMockResultRepo())

	body, _ := json.Marshal(map[string]any{
		"answers": map[string]int{"made-up-question": 3},
	})
	req := httptest.NewRequest(http.MethodPost, "/quiz/submit", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown question id, got %d", rec.Code)
	}
}

func TestGetResult_NotFound(t *testing.T) {
	r := newQuizRouter(newMockResultRepo())

	req := httptest.NewRequest(http.MethodGet, "/quiz/results/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetQuestions_ReturnsBank(t *testing.T) {
	r := newQuizRouter(newMockResultRepo())

	req := httptest.NewRequest(http.MethodGet, "/quiz/questions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Questions []domain.Question `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Questions) != 16 {
		t.Fatalf("expected 16 questions, got %d", len(resp.Questions))
	}
}
