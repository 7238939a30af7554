package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Shared Validation
// ------------------------------

// ValidateID checks that a resource id is a positive integer. The backend
// keys every resource by serial id, so zero and negative values can never
// refer to anything.
func ValidateID(id int, field string) error {
	if id <= 0 {
		return fmt.Errorf("%s must be a positive integer, got %d", field, id)
	}
	return nil
}

// ValidateCompanyName checks the one required field of a prospect.
func ValidateCompanyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("company_name is required")
	}
	return nil
}
