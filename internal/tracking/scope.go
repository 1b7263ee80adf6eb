package tracking

import (
	"errors"
	"sync"
)

// Scope owns a set of entities and closes them together. Pair it with defer
// so every entity is disposed of on every exit path:
//
//	var sc tracking.Scope
//	defer sc.Close()
//	c := tracking.Track(&sc, cat.NewCompany(opts))
type Scope struct {
	mu       sync.Mutex
	entities []Entity
	closed   bool
}

// Track registers e with sc and returns it. Entities tracked after sc was
// closed are closed immediately.
func Track[E Entity](sc *Scope, e E) E {
	sc.mu.Lock()
	if sc.closed {
		sc.mu.Unlock()
		_ = e.Close()
		return e
	}
	sc.entities = append(sc.entities, e)
	sc.mu.Unlock()
	return e
}

// Close closes the tracked entities in reverse order, so relations are
// disposed of before the entities they reference. Every entity is closed even
// when an earlier one fails; the errors are joined.
func (sc *Scope) Close() error {
	sc.mu.Lock()
	if sc.closed {
		sc.mu.Unlock()
		return nil
	}
	sc.closed = true
	entities := sc.entities
	sc.entities = nil
	sc.mu.Unlock()

	var errs []error
	for i := len(entities) - 1; i >= 0; i-- {
		if err := entities[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of entities sc currently tracks.
func (sc *Scope) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.entities)
}
