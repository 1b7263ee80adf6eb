package tracking

import (
	"fmt"
	"reflect"
	"time"

	"notifier/pkg/types"
)

// Set writes v into dst, the storage of field name on the entity owning s.
//
// Writes to fields outside the type's notifiable set, writes made before
// Bind, and writes made while a notification cycle for the same entity is in
// flight are plain assignments. Any other write snapshots the entity, assigns,
// and notifies every routing target in policy order with the live entity as
// updated and the snapshot as original. Writing the current value again still
// notifies.
//
// The first observer error stops delivery and is returned. The assignment is
// kept.
func Set[V any](s *Subject, name string, dst *V, v V) error {
	s.mu.Lock()
	switch {
	case s.frozen:
		s.mu.Unlock()
		return ErrSnapshot
	case s.closed:
		s.mu.Unlock()
		return ErrClosed
	case !s.bound || s.internal || !s.entry.Notifiable(name):
		*dst = v
		s.mu.Unlock()
		return nil
	}

	s.internal = true
	old := *dst
	original := s.self.Snapshot()
	*dst = v
	targets := s.targets
	self := s.self
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.internal = false
		s.mu.Unlock()
	}()
	return dispatch(targets, self, original, UpdateMessage(name, old, v))
}

// Assign is the by-name counterpart of Set for callers holding an untyped
// value. It fails with a FieldTypeError when value is not a V; nil is
// accepted for pointer fields.
func Assign[V any](s *Subject, name string, dst *V, value any) error {
	var v V
	ok := true
	if value == nil {
		ok = reflect.TypeOf(dst).Elem().Kind() == reflect.Pointer
	} else {
		v, ok = value.(V)
	}
	if !ok {
		return &FieldTypeError{Type: s.typeName, Field: name, Want: fmt.Sprintf("%T", *dst), Got: value}
	}
	return Set(s, name, dst, v)
}

// UpdateMessage renders the message of a field update notification.
func UpdateMessage(field string, from, to any) string {
	return fmt.Sprintf("%s Updated from %s to %s", field, FormatValue(from), FormatValue(to))
}

// FormatValue renders a field value for notification messages. Booleans
// render as True/False and absent values as None.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case *time.Time:
		if x == nil {
			return "None"
		}
		return x.Format(time.RFC3339)
	case time.Time:
		return x.Format(time.RFC3339)
	case *string:
		if x == nil {
			return "None"
		}
		return *x
	}
	return fmt.Sprintf("%v", v)
}

// ActionOf classifies a notification by which side of it is present.
func ActionOf(updated, original Entity) types.Action {
	switch {
	case original == nil:
		return types.ActionCreate
	case updated == nil:
		return types.ActionDelete
	default:
		return types.ActionUpdate
	}
}
