// Package services contains stateless domain services for the inventory
// bounded context. Domain services enforce business rules that operate
// purely on domain types and have zero external dependencies beyond stdlib
// and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"
)

const maxNameLength = 255

// ValidateName enforces the rules for an item name:
//   - Must not be empty or only whitespace
//   - Must not exceed 255 bytes
//   - Must not contain control characters (Unicode category Cc)
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("item name must not be empty")
	}

	if len(name) > maxNameLength {
		return fmt.Errorf("item name must not exceed %d characters", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
	}

	return nil
}
