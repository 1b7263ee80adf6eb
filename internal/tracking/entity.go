// Package tracking implements field-level change notification for tracked
// entities.
//
// A tracked entity embeds Subject and routes each field write through Set.
// When the entity's policy marks the field notifiable, Set snapshots the
// entity, performs the write and delivers (updated, original) to every
// routing target's observer before returning. Creation is observed when an
// observer is attached and deletion when the entity is closed.
//
// Delivery is synchronous on the caller's goroutine. An entity is meant to
// have a single writer at a time; callers sharing one across goroutines must
// serialize writes themselves.
package tracking

import "github.com/google/uuid"

// Observer receives notifications from the entities it is attached to.
// updated is nil for deletions and original is nil for creations. typeName is
// the type of the entity the notification describes, which differs from the
// receiving entity's type when the notification was routed through a relation.
//
// A returned error is not handled: it is passed back to the caller of the
// write, Attach or Close that triggered the notification.
type Observer interface {
	Update(updated, original Entity, typeName, message string) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(updated, original Entity, typeName, message string) error

func (f ObserverFunc) Update(updated, original Entity, typeName, message string) error {
	return f(updated, original, typeName, message)
}

// Entity is the surface every tracked entity exposes. Subject provides the
// subscription and lifecycle methods; concrete types provide the rest.
type Entity interface {
	ID() uuid.UUID
	TypeName() string
	Attach(Observer) error
	Detach(Observer)
	Notify(updated, original Entity, message string) error
	Close() error
	// Snapshot returns a frozen, independent copy of the entity's state.
	Snapshot() Entity
	// Fields returns the entity's field values keyed by field name.
	Fields() map[string]any
}

// Trackable is implemented by concrete entity types bound to a Subject.
type Trackable interface {
	Entity
	// Relation returns the entity held in a relation slot.
	Relation(slot string) (Entity, bool)
}
