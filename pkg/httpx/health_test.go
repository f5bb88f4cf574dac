package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingStub struct{ err error }

func (p pingStub) Ping(context.Context) error { return p.err }

func TestHealthHandler_AllOK(t *testing.T) {
	h := HealthHandler(HealthChecks{
		Database:  pingStub{},
		BlobStore: pingStub{},
		EventBus:  pingStub{},
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected ok, got %q", body["status"])
	}
}

func TestHealthHandler_MemoryBackend(t *testing.T) {
	h := HealthHandler(HealthChecks{
		Database:  nil,
		BlobStore: pingStub{},
		EventBus:  pingStub{},
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["database"] != "memory" {
		t.Fatalf("expected memory, got %q", body["database"])
	}
}

func TestHealthHandler_Degraded(t *testing.T) {
	h := HealthHandler(HealthChecks{
		Database:  pingStub{},
		BlobStore: pingStub{err: errors.New("stat: no such file or directory")},
		EventBus:  pingStub{},
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "degraded" || body["blob_store"] != "unreachable" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "https://app.example.com", []string{"https://app.example.com"}},
		{"multiple with spaces", "https://a.com, https://b.com", []string{"https://a.com", "https://b.com"}},
		{"wildcard", "*", []string{"*"}},
		{"empty falls back to wildcard", "", []string{"*"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOrigins(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("parseOrigins(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("parseOrigins(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}
