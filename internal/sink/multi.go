package sink

import (
	"errors"

	"notifier/internal/tracking"
)

// Multi fans notifications out to several observers. An entity holds a single
// observer, so Multi is how more than one sink sees its notifications.
type Multi struct {
	observers []tracking.Observer
}

// NewMulti creates a Multi forwarding to all non-nil observers.
func NewMulti(observers ...tracking.Observer) *Multi {
	filtered := make([]tracking.Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &Multi{observers: filtered}
}

// Update delivers to every observer even when one fails and joins the errors.
func (m *Multi) Update(updated, original tracking.Entity, typeName, message string) error {
	var errs []error
	for _, obs := range m.observers {
		if err := obs.Update(updated, original, typeName, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Noop discards notifications.
type Noop struct{}

func (Noop) Update(updated, original tracking.Entity, typeName, message string) error { return nil }
