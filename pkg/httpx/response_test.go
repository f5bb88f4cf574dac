package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]int{"id": 7})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if nosniff := w.Header().Get("X-Content-Type-Options"); nosniff != "nosniff" {
		t.Fatalf("expected nosniff header, got %q", nosniff)
	}
	var body map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["id"] != 7 {
		t.Fatalf("expected id 7, got %d", body["id"])
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusNotFound, "item not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "item not found" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("pq: connection refused at 10.0.0.5")

	tests := []struct {
		name         string
		status       int
		isProduction bool
		want         string
	}{
		{"production 500 sanitized", http.StatusInternalServerError, true, "Internal Server Error"},
		{"production 400 kept", http.StatusBadRequest, true, err.Error()},
		{"development 500 kept", http.StatusInternalServerError, false, err.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeError(err, tt.status, tt.isProduction); got != tt.want {
				t.Fatalf("SafeError = %q, want %q", got, tt.want)
			}
		})
	}
}
