package catalog

import "notifier/internal/tracking"

// CompanyForEventOpts holds the initial values of a CompanyForEvent. Event is
// required.
type CompanyForEventOpts struct {
	Event         *Event
	Company       *Company
	IsDeleted     bool
	IsBlacklisted bool
}

// CompanyForEvent links a company to an event it takes part in.
// Notifications are routed to the event. The relation references both sides
// without owning them.
type CompanyForEvent struct {
	tracking.Subject
	event         *Event
	company       *Company
	isDeleted     bool
	isBlacklisted bool
}

// NewCompanyForEvent constructs a CompanyForEvent. Construction does not notify.
func (c *Catalog) NewCompanyForEvent(o CompanyForEventOpts) *CompanyForEvent {
	e := &CompanyForEvent{event: o.Event, company: o.Company, isDeleted: o.IsDeleted, isBlacklisted: o.IsBlacklisted}
	e.Bind(e, c.reg)
	return e
}

func (e *CompanyForEvent) TypeName() string    { return TypeCompanyForEvent }
func (e *CompanyForEvent) Event() *Event       { return e.event }
func (e *CompanyForEvent) Company() *Company   { return e.company }
func (e *CompanyForEvent) IsDeleted() bool     { return e.isDeleted }
func (e *CompanyForEvent) IsBlacklisted() bool { return e.isBlacklisted }

func (e *CompanyForEvent) SetIsDeleted(v bool) error {
	return tracking.Set(&e.Subject, FieldIsDeleted, &e.isDeleted, v)
}

func (e *CompanyForEvent) SetIsBlacklisted(v bool) error {
	return tracking.Set(&e.Subject, FieldIsBlacklisted, &e.isBlacklisted, v)
}

// SetField writes a field by name.
func (e *CompanyForEvent) SetField(name string, value any) error {
	switch name {
	case FieldIsDeleted:
		return tracking.Assign(&e.Subject, name, &e.isDeleted, value)
	case FieldIsBlacklisted:
		return tracking.Assign(&e.Subject, name, &e.isBlacklisted, value)
	case SlotEvent, SlotCompany:
		return relationReadOnlyError{typeName: TypeCompanyForEvent, slot: name}
	}
	return unknownField(TypeCompanyForEvent, name)
}

func (e *CompanyForEvent) Relation(slot string) (tracking.Entity, bool) {
	switch {
	case slot == SlotEvent && e.event != nil:
		return e.event, true
	case slot == SlotCompany && e.company != nil:
		return e.company, true
	}
	return nil, false
}

func (e *CompanyForEvent) Snapshot() tracking.Entity {
	cp := &CompanyForEvent{event: e.event, company: e.company, isDeleted: e.isDeleted, isBlacklisted: e.isBlacklisted}
	cp.Freeze(&e.Subject)
	return cp
}

func (e *CompanyForEvent) Fields() map[string]any {
	return map[string]any{
		SlotEvent:          relationID(e.event),
		SlotCompany:        relationID(e.company),
		FieldIsDeleted:     e.isDeleted,
		FieldIsBlacklisted: e.isBlacklisted,
	}
}

func (e *CompanyForEvent) String() string { return describe(TypeCompanyForEvent, e.ID(), e.Fields()) }

// CompanyForWebinarOpts holds the initial values of a CompanyForWebinar.
// Webinar is required.
type CompanyForWebinarOpts struct {
	Webinar       *Webinar
	Company       *Company
	IsDeleted     bool
	IsBlacklisted bool
}

// CompanyForWebinar links a company to a webinar. Notifications are routed to
// the webinar.
type CompanyForWebinar struct {
	tracking.Subject
	webinar       *Webinar
	company       *Company
	isDeleted     bool
	isBlacklisted bool
}

// NewCompanyForWebinar constructs a CompanyForWebinar. Construction does not notify.
func (c *Catalog) NewCompanyForWebinar(o CompanyForWebinarOpts) *CompanyForWebinar {
	e := &CompanyForWebinar{webinar: o.Webinar, company: o.Company, isDeleted: o.IsDeleted, isBlacklisted: o.IsBlacklisted}
	e.Bind(e, c.reg)
	return e
}

func (e *CompanyForWebinar) TypeName() string    { return TypeCompanyForWebinar }
func (e *CompanyForWebinar) Webinar() *Webinar   { return e.webinar }
func (e *CompanyForWebinar) Company() *Company   { return e.company }
func (e *CompanyForWebinar) IsDeleted() bool     { return e.isDeleted }
func (e *CompanyForWebinar) IsBlacklisted() bool { return e.isBlacklisted }

func (e *CompanyForWebinar) SetIsDeleted(v bool) error {
	return tracking.Set(&e.Subject, FieldIsDeleted, &e.isDeleted, v)
}

func (e *CompanyForWebinar) SetIsBlacklisted(v bool) error {
	return tracking.Set(&e.Subject, FieldIsBlacklisted, &e.isBlacklisted, v)
}

// SetField writes a field by name.
func (e *CompanyForWebinar) SetField(name string, value any) error {
	switch name {
	case FieldIsDeleted:
		return tracking.Assign(&e.Subject, name, &e.isDeleted, value)
	case FieldIsBlacklisted:
		return tracking.Assign(&e.Subject, name, &e.isBlacklisted, value)
	case SlotWebinar, SlotCompany:
		return relationReadOnlyError{typeName: TypeCompanyForWebinar, slot: name}
	}
	return unknownField(TypeCompanyForWebinar, name)
}

func (e *CompanyForWebinar) Relation(slot string) (tracking.Entity, bool) {
	switch {
	case slot == SlotWebinar && e.webinar != nil:
		return e.webinar, true
	case slot == SlotCompany && e.company != nil:
		return e.company, true
	}
	return nil, false
}

func (e *CompanyForWebinar) Snapshot() tracking.Entity {
	cp := &CompanyForWebinar{webinar: e.webinar, company: e.company, isDeleted: e.isDeleted, isBlacklisted: e.isBlacklisted}
	cp.Freeze(&e.Subject)
	return cp
}

func (e *CompanyForWebinar) Fields() map[string]any {
	return map[string]any{
		SlotWebinar:        relationID(e.webinar),
		SlotCompany:        relationID(e.company),
		FieldIsDeleted:     e.isDeleted,
		FieldIsBlacklisted: e.isBlacklisted,
	}
}

func (e *CompanyForWebinar) String() string {
	return describe(TypeCompanyForWebinar, e.ID(), e.Fields())
}

// CompanyCompetitorOpts holds the initial values of a CompanyCompetitor.
// Company is required.
type CompanyCompetitorOpts struct {
	Company    *Company
	Competitor *Company
	IsDeleted  bool
}

// CompanyCompetitor records that Competitor competes with Company.
// Notifications are routed to Company.
type CompanyCompetitor struct {
	tracking.Subject
	company    *Company
	competitor *Company
	isDeleted  bool
}

// NewCompanyCompetitor constructs a CompanyCompetitor. Construction does not notify.
func (c *Catalog) NewCompanyCompetitor(o CompanyCompetitorOpts) *CompanyCompetitor {
	e := &CompanyCompetitor{company: o.Company, competitor: o.Competitor, isDeleted: o.IsDeleted}
	e.Bind(e, c.reg)
	return e
}

func (e *CompanyCompetitor) TypeName() string     { return TypeCompanyCompetitor }
func (e *CompanyCompetitor) Company() *Company    { return e.company }
func (e *CompanyCompetitor) Competitor() *Company { return e.competitor }
func (e *CompanyCompetitor) IsDeleted() bool      { return e.isDeleted }

func (e *CompanyCompetitor) SetIsDeleted(v bool) error {
	return tracking.Set(&e.Subject, FieldIsDeleted, &e.isDeleted, v)
}

// SetField writes a field by name.
func (e *CompanyCompetitor) SetField(name string, value any) error {
	switch name {
	case FieldIsDeleted:
		return tracking.Assign(&e.Subject, name, &e.isDeleted, value)
	case SlotCompany, SlotCompetitor:
		return relationReadOnlyError{typeName: TypeCompanyCompetitor, slot: name}
	}
	return unknownField(TypeCompanyCompetitor, name)
}

func (e *CompanyCompetitor) Relation(slot string) (tracking.Entity, bool) {
	switch {
	case slot == SlotCompany && e.company != nil:
		return e.company, true
	case slot == SlotCompetitor && e.competitor != nil:
		return e.competitor, true
	}
	return nil, false
}

func (e *CompanyCompetitor) Snapshot() tracking.Entity {
	cp := &CompanyCompetitor{company: e.company, competitor: e.competitor, isDeleted: e.isDeleted}
	cp.Freeze(&e.Subject)
	return cp
}

func (e *CompanyCompetitor) Fields() map[string]any {
	return map[string]any{
		SlotCompany:    relationID(e.company),
		SlotCompetitor: relationID(e.competitor),
		FieldIsDeleted: e.isDeleted,
	}
}

func (e *CompanyCompetitor) String() string {
	return describe(TypeCompanyCompetitor, e.ID(), e.Fields())
}
