package tracking

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by writes to an entity that has been closed.
	ErrClosed = errors.New("tracking: entity is closed")
	// ErrSnapshot is returned by writes to a snapshot.
	ErrSnapshot = errors.New("tracking: snapshot is read-only")
)

// FieldTypeError reports a by-name write with a value of the wrong type.
type FieldTypeError struct {
	Type  string
	Field string
	Want  string
	Got   any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s.%s: want %s, got %T", e.Type, e.Field, e.Want, e.Got)
}

// UnknownFieldError reports a by-name write to a field the type does not have.
type UnknownFieldError struct {
	Type  string
	Field string
}

func (e *UnknownFieldError) Error() string { return "unknown field " + e.Type + "." + e.Field }

// IsUnknownField reports whether err is an UnknownFieldError.
func IsUnknownField(err error) bool {
	var target *UnknownFieldError
	return errors.As(err, &target)
}

// unresolvedTargetError is the panic value of Bind when a routing target does
// not resolve to an entity.
type unresolvedTargetError struct {
	typeName string
	slot     string
}

func (e unresolvedTargetError) Error() string {
	return fmt.Sprintf("%s: routing target %q does not resolve to an entity", e.typeName, e.slot)
}
