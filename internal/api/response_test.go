package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/logger"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	api.WriteJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, data)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	ct := rec.Header().Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var result map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result["key"] != "value" {
		t.Errorf("key = %q, want %q", result["key"], "value")
	}
}

func TestWriteJSONStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	api.WriteJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusCreated, map[string]int{"id": 1})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "application/json")

	api.WriteText(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "classDiagram")

	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if rec.Body.String() != "classDiagram" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "classDiagram")
	}
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteFailureLogsToRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logger.WithContext(req.Context(), zap.New(core).With(zap.String("correlation_id", "abc"))))

	api.WriteJSON(failingWriter{httptest.NewRecorder()}, req, http.StatusOK, map[string]string{"k": "v"})
	api.WriteText(failingWriter{httptest.NewRecorder()}, req, http.StatusOK, "classDiagram")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.ContextMap()["correlation_id"] != "abc" {
			t.Errorf("entry %q missing correlation_id: %v", e.Message, e.ContextMap())
		}
	}
}

func TestCollectionNil(t *testing.T) {
	rec := httptest.NewRecorder()
	api.WriteJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, api.Collection[string](nil))

	if got := strings.TrimSpace(rec.Body.String()); got != `{"results":[]}` {
		t.Errorf("body = %s, want {\"results\":[]}", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Shop"}`))
	if err := api.DecodeJSON(req, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Name != "Shop" {
		t.Errorf("name = %q, want Shop", body.Name)
	}

	for _, input := range []string{"", "{", `{"nmae":"Shop"}`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(input))
		err := api.DecodeJSON(req, &body)
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("DecodeJSON(%q) = %v, want InvalidArgument", input, err)
		}
	}
}
