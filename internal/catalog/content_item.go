package catalog

import "notifier/internal/tracking"

// ContentItemOpts holds the initial values of a ContentItem. Company is
// required.
type ContentItemOpts struct {
	CrawlableOpts
	Company *Company
	Snippet *string
}

// ContentItem is a piece of content published by a company. Its
// notifications are routed to the company.
type ContentItem struct {
	crawlable
	company *Company
	snippet *string
}

// NewContentItem constructs a ContentItem. Construction does not notify.
func (c *Catalog) NewContentItem(o ContentItemOpts) *ContentItem {
	e := &ContentItem{company: o.Company, snippet: cloneString(o.Snippet)}
	e.init(o.CrawlableOpts)
	e.Bind(e, c.reg)
	return e
}

func (e *ContentItem) TypeName() string  { return TypeContentItem }
func (e *ContentItem) Company() *Company { return e.company }
func (e *ContentItem) Snippet() *string  { return cloneString(e.snippet) }

func (e *ContentItem) SetSnippet(v *string) error {
	return tracking.Set(&e.Subject, FieldSnippet, &e.snippet, cloneString(v))
}

// SetField writes a field by name.
func (e *ContentItem) SetField(name string, value any) error {
	switch name {
	case FieldSnippet:
		return tracking.Assign(&e.Subject, name, &e.snippet, own(value))
	case SlotCompany:
		return relationReadOnlyError{typeName: TypeContentItem, slot: name}
	}
	if ok, err := e.setField(name, value); ok {
		return err
	}
	return unknownField(TypeContentItem, name)
}

func (e *ContentItem) Relation(slot string) (tracking.Entity, bool) {
	if slot == SlotCompany && e.company != nil {
		return e.company, true
	}
	return nil, false
}

// Snapshot copies the item's own fields. The company reference is shared:
// the item does not own it.
func (e *ContentItem) Snapshot() tracking.Entity {
	cp := &ContentItem{company: e.company, snippet: cloneString(e.snippet)}
	cp.copyFrom(&e.crawlable)
	return cp
}

func (e *ContentItem) Fields() map[string]any {
	f := e.fields()
	f[FieldSnippet] = cloneString(e.snippet)
	f[SlotCompany] = relationID(e.company)
	return f
}

func (e *ContentItem) String() string { return describe(TypeContentItem, e.ID(), e.Fields()) }
