package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reactor-staging/internal/observability"
	"reactor-staging/internal/reactor"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestNewRouterHealthEndpoint(t *testing.T) {
	observability.Logger = zap.NewNop()

	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterReactorRunSetsHeaderAndOmitsRequestIDInBody(t *testing.T) {
	observability.Logger = zap.NewNop()
	if err := reactor.InitMetrics(); err != nil {
		t.Fatalf("initializing reactor metrics: %v", err)
	}

	router := NewRouter()
	body := []byte(`{"ha":-40000,"hb":-60000,"ca":50,"cb":50,"fa0":40,"ke":100000,"t0":300,"t_op":400,"t_cool":350,"x_target":0.8}`)
	req := httptest.NewRequest(http.MethodPost, "/reactor/run", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}

	stages, ok := payload["stages"].([]any)
	if !ok || len(stages) < 1 || len(stages) > 5 {
		t.Fatalf("expected between 1 and 5 stages, got %#v", payload["stages"])
	}
}
