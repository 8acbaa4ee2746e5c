package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/psychmaster/psychmaster/internal/handler/chat"
	"github.com/psychmaster/psychmaster/internal/service/ai"
	"github.com/psychmaster/psychmaster/internal/service/assessment"
	chatService "github.com/psychmaster/psychmaster/internal/service/chat"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	aiSvc, err := ai.New(context.Background(), nil)
	if err != nil {
		t.Fatalf("ai service: %v", err)
	}
	assessSvc, err := assessment.NewService(context.Background(), nil, assessment.Config{})
	if err != nil {
		t.Fatalf("assessment service: %v", err)
	}

	return NewRouter(Deps{
		Chat:        chat.New(chatService.NewService(nil), aiSvc, assessSvc),
		CORSOrigins: []string{"*"},
		AIEnabled:   aiSvc.Enabled(),
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" || body["service"] != ServiceName || body["ai_enabled"] != false {
		t.Fatalf("unexpected health body %v", body)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS header")
	}
}

func TestRoot(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/", nil))

	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "Hello World") {
		t.Fatalf("unexpected root response %d %s", resp.Code, resp.Body.String())
	}
}

func TestChatRoutesMounted(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello"}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
