package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"archetype-quiz/internal/service"
)

func newPlaybookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	matcher := service.NewToolMatcher(service.ToolCatalog(), service.ToolAliases())
	handler := NewPlaybookHandler(zap.NewNop(), service.ArchetypeProfiles(), service.ToolCatalog(), matcher)

	r := gin.New()
	r.GET("/playbook/:archetype_id", handler.GetPlaybook)
	r.POST("/playbook/annotations", handler.Annotate)
	return r
}

func TestGetPlaybook_ReturnsProfileAndTools(t *testing.T) {
	r := newPlaybookRouter()

	req := httptest.NewRequest(http.MethodGet, "/playbook/structured-achiever", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Profile struct {
			ID string `json:"id"`
		} `json:"profile"`
		Tools []struct {
			ID string `json:"id"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Profile.ID != "structured-achiever" || len(resp.Tools) == 0 {
		t.Fatalf("expected profile with tools, got %+v", resp)
	}
}

func TestGetPlaybook_UnknownArchetype(t *testing.T) {
	r := newPlaybookRouter()

	req := httptest.NewRequest(http.MethodGet, "/playbook/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAnnotate_ReturnsInsertionMap(t *testing.T) {
	r := newPlaybookRouter()

	body, _ := json.Marshal(map[string]any{
		"archetype_id": "structured-achiever",
		"blocks": []map[string]any{
			{"type": "paragraph", "body": "No tools here"},
			{"type": "paragraph", "body": "Capture everything in Todoist first"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/playbook/annotations", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Insertions map[string][]string `json:"insertions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if tools, ok := resp.Insertions["1"]; !ok || len(tools) != 1 || tools[0] != "todoist" {
		t.Fatalf("expected todoist at block 1, got %+v", resp.Insertions)
	}
}
