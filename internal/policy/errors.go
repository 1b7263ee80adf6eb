package policy

import "strings"

// ValidationError lists every problem found while building a Registry.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid notification policy: " + strings.Join(e.Problems, "; ")
}

// IsValidation reports whether err is a policy validation failure.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// unregisteredError is the panic value of MustLookup.
type unregisteredError struct{ typeName string }

func (e unregisteredError) Error() string { return "entity type not registered: " + e.typeName }
