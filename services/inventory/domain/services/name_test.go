package services

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"simple name", "Laptop", false},
		{"unicode name", "Škarje za živo mejo", false},
		{"name with inner spaces", "USB-C dock 90W", false},
		{"max length", strings.Repeat("a", 255), false},
		{"empty", "", true},
		{"whitespace only", "   \t ", true},
		{"too long", strings.Repeat("a", 256), true},
		{"control character", "bad\x00name", true},
		{"newline", "two\nlines", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
