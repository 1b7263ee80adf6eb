package tracking

import (
	"sync"

	"github.com/google/uuid"

	"notifier/internal/policy"
	"notifier/pkg/types"
)

// Subject is the embeddable base of a tracked entity. It owns the single
// observer slot and the per-instance state consulted on every write.
type Subject struct {
	mu       sync.Mutex
	id       uuid.UUID
	typeName string
	self     Trackable
	entry    policy.Entry
	targets  []Entity
	observer Observer

	notifyOnCreate bool
	bound          bool
	frozen         bool
	internal       bool // set while a notification cycle is running
	closed         bool
}

// Bind attaches the policy of self's type to the Subject embedded in self.
// Constructors call it once every field holds its initial value; writes made
// before Bind are plain assignments.
//
// Bind panics when the type is not registered or when a routing target does
// not resolve to an entity: both are schema errors.
func (s *Subject) Bind(self Trackable, reg *policy.Registry) {
	typeName := self.TypeName()
	entry := reg.MustLookup(typeName)
	targets := make([]Entity, 0, len(entry.NotifyOn))
	for _, t := range entry.NotifyOn {
		switch t := t.(type) {
		case policy.Self:
			targets = append(targets, self)
		case policy.Relation:
			rel, ok := self.Relation(t.Slot)
			if !ok || rel == nil {
				panic(unresolvedTargetError{typeName: typeName, slot: t.Slot})
			}
			targets = append(targets, rel)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = uuid.New()
	s.typeName = typeName
	s.self = self
	s.entry = entry
	s.targets = targets
	s.notifyOnCreate = entry.Has(types.ActionCreate)
	s.bound = true
}

// Freeze initializes s as the Subject of a snapshot taken from src. A frozen
// Subject shares src's identity but has no observer and rejects writes.
func (s *Subject) Freeze(src *Subject) {
	s.id = src.id
	s.typeName = src.typeName
	s.frozen = true
}

// ID returns the entity identifier assigned by Bind.
func (s *Subject) ID() uuid.UUID { return s.id }

// Frozen reports whether s belongs to a snapshot.
func (s *Subject) Frozen() bool { return s.frozen }

// Closed reports whether Close has run.
func (s *Subject) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Attach makes o the entity's only observer, replacing any previous one.
// When the type's policy declares create notifiable, o immediately receives
// (self, nil, type, "Attach observer").
func (s *Subject) Attach(o Observer) error {
	s.mu.Lock()
	s.observer = o
	create := s.notifyOnCreate && !s.frozen
	self := s.self
	typeName := s.typeName
	s.mu.Unlock()

	if !create || o == nil {
		return nil
	}
	return o.Update(self, nil, typeName, "Attach observer")
}

// Detach clears the observer slot. The slot holds at most one observer, so
// it is cleared whatever o is: a stale observer calling Detach after another
// one was attached also detaches the newer one.
func (s *Subject) Detach(o Observer) {
	s.mu.Lock()
	s.observer = nil
	s.mu.Unlock()
}

// Notify hands a notification to the attached observer. Without an observer
// the notification is dropped.
func (s *Subject) Notify(updated, original Entity, message string) error {
	s.mu.Lock()
	obs := s.observer
	s.mu.Unlock()

	typeName := s.describedType(updated, original)
	if obs == nil {
		zlog.Debug().Str("receiver", s.typeName).Str("type", typeName).Str("msg", message).Msg("notification dropped: no observer")
		return nil
	}
	return obs.Update(updated, original, typeName, message)
}

// Close disposes of the entity. When the type's policy declares delete
// notifiable, every routing target receives (nil, self, type, "<Type> is
// deleted"). Only the first call has any effect.
func (s *Subject) Close() error {
	s.mu.Lock()
	if !s.bound || s.frozen || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	fire := s.entry.Has(types.ActionDelete)
	targets := s.targets
	self := s.self
	s.mu.Unlock()

	zlog.Debug().Str("type", s.typeName).Str("id", s.id.String()).Bool("notify", fire).Msg("entity closed")
	if !fire {
		return nil
	}
	return dispatch(targets, nil, self, s.typeName+" is deleted")
}

func (s *Subject) describedType(updated, original Entity) string {
	switch {
	case updated != nil:
		return updated.TypeName()
	case original != nil:
		return original.TypeName()
	default:
		return s.typeName
	}
}

// dispatch notifies targets in order and stops at the first observer error.
func dispatch(targets []Entity, updated, original Entity, message string) error {
	for _, t := range targets {
		if err := t.Notify(updated, original, message); err != nil {
			return err
		}
	}
	return nil
}
