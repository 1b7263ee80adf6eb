package catalog

import (
	"time"

	"notifier/internal/tracking"
)

// EventOpts holds the initial values of an Event.
type EventOpts struct {
	CrawlableOpts
	StartDate   time.Time
	EndDate     *time.Time
	Description *string
	Location    *string
}

// Event is a tracked event.
type Event struct {
	crawlable
	startDate   time.Time
	endDate     *time.Time
	description *string
	location    *string
}

// NewEvent constructs an Event. Construction does not notify.
func (c *Catalog) NewEvent(o EventOpts) *Event {
	e := &Event{
		startDate:   o.StartDate,
		endDate:     cloneTime(o.EndDate),
		description: cloneString(o.Description),
		location:    cloneString(o.Location),
	}
	e.init(o.CrawlableOpts)
	e.Bind(e, c.reg)
	return e
}

func (e *Event) TypeName() string     { return TypeEvent }
func (e *Event) StartDate() time.Time { return e.startDate }
func (e *Event) EndDate() *time.Time  { return cloneTime(e.endDate) }
func (e *Event) Description() *string { return cloneString(e.description) }
func (e *Event) Location() *string    { return cloneString(e.location) }

func (e *Event) SetStartDate(v time.Time) error {
	return tracking.Set(&e.Subject, FieldStartDate, &e.startDate, v)
}

func (e *Event) SetEndDate(v *time.Time) error {
	return tracking.Set(&e.Subject, FieldEndDate, &e.endDate, cloneTime(v))
}

func (e *Event) SetDescription(v *string) error {
	return tracking.Set(&e.Subject, FieldDescription, &e.description, cloneString(v))
}

func (e *Event) SetLocation(v *string) error {
	return tracking.Set(&e.Subject, FieldLocation, &e.location, cloneString(v))
}

// SetField writes a field by name.
func (e *Event) SetField(name string, value any) error {
	switch name {
	case FieldStartDate:
		return tracking.Assign(&e.Subject, name, &e.startDate, value)
	case FieldEndDate:
		return tracking.Assign(&e.Subject, name, &e.endDate, own(value))
	case FieldDescription:
		return tracking.Assign(&e.Subject, name, &e.description, own(value))
	case FieldLocation:
		return tracking.Assign(&e.Subject, name, &e.location, own(value))
	}
	if ok, err := e.setField(name, value); ok {
		return err
	}
	return unknownField(TypeEvent, name)
}

func (e *Event) Relation(string) (tracking.Entity, bool) { return nil, false }

func (e *Event) Snapshot() tracking.Entity {
	cp := &Event{
		startDate:   e.startDate,
		endDate:     cloneTime(e.endDate),
		description: cloneString(e.description),
		location:    cloneString(e.location),
	}
	cp.copyFrom(&e.crawlable)
	return cp
}

func (e *Event) Fields() map[string]any {
	f := e.fields()
	f[FieldStartDate] = e.startDate
	f[FieldEndDate] = cloneTime(e.endDate)
	f[FieldDescription] = cloneString(e.description)
	f[FieldLocation] = cloneString(e.location)
	return f
}

func (e *Event) String() string { return describe(TypeEvent, e.ID(), e.Fields()) }
