package validator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type testRequest struct {
	Name        string `json:"name" validate:"required,max=10"`
	Description string `json:"description" validate:"omitempty,max=20"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      testRequest
		wantErr bool
	}{
		{"valid", testRequest{Name: "Laptop"}, false},
		{"missing required", testRequest{}, true},
		{"name too long", testRequest{Name: "0123456789x"}, true},
		{"optional within limit", testRequest{Name: "x", Description: "short"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors_UsesJSONFieldNames(t *testing.T) {
	err := Validate(&testRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := FormatValidationErrors(err)
	if _, ok := fields["name"]; !ok {
		t.Fatalf("expected json tag name 'name' as key, got %v", fields)
	}
	if fields["name"] != "This field is required" {
		t.Fatalf("unexpected message %q", fields["name"])
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name":"Laptop"}`))

		req, ok := ValidateRequest[testRequest](w, r)
		if !ok {
			t.Fatalf("expected ok, body: %s", w.Body.String())
		}
		if req.Name != "Laptop" {
			t.Fatalf("expected Laptop, got %q", req.Name)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name":`))

		if _, ok := ValidateRequest[testRequest](w, r); ok {
			t.Fatal("expected failure")
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("failing validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"description":"x"}`))

		if _, ok := ValidateRequest[testRequest](w, r); ok {
			t.Fatal("expected failure")
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error != "Validation failed" {
			t.Fatalf("unexpected error message %q", body.Error)
		}
		if _, ok := body.Fields["name"]; !ok {
			t.Fatalf("expected field error for name, got %v", body.Fields)
		}
	})
}
