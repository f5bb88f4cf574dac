package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/inventoryd/pkg/blobstore"
	"github.com/ghuser/inventoryd/pkg/logger"
	invdomain "github.com/ghuser/inventoryd/services/inventory/domain"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrValidation", invdomain.ErrValidation, http.StatusBadRequest},
		{"ErrItemNotFound", invdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrPhotoNotFound", invdomain.ErrPhotoNotFound, http.StatusNotFound},
		{"blob ErrNotFound", blobstore.ErrNotFound, http.StatusNotFound},
		{"ErrRepository", invdomain.ErrRepository, http.StatusInternalServerError},
		{"blob ErrWrite", blobstore.ErrWrite, http.StatusInternalServerError},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", invdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrValidation", fmt.Errorf("%w: empty name", invdomain.ErrValidation), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, got)
			}
		})
	}
}

func TestWrite_JSONBody(t *testing.T) {
	wr := NewWriter(logger.Discard(), false)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/inventory/1", nil)

	wr.Write(w, r, invdomain.ErrItemNotFound)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWrite_ProductionSanitizes5xx(t *testing.T) {
	wr := NewWriter(logger.Discard(), true)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/inventory", nil)

	wr.Write(w, r, fmt.Errorf("%w: dial tcp: connection refused", invdomain.ErrRepository))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected opaque message, got %q", body["error"])
	}
}

func TestWrite_ProductionKeeps4xxDetail(t *testing.T) {
	wr := NewWriter(logger.Discard(), true)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/register", nil)

	wr.Write(w, r, fmt.Errorf("%w: item name must not be empty", invdomain.ErrValidation))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == http.StatusText(http.StatusBadRequest) {
		t.Fatal("4xx detail should not be sanitized")
	}
}
