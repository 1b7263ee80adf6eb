package catalog

import (
	"time"

	"notifier/internal/tracking"
)

const defaultLanguage = "en"

// WebinarOpts holds the initial values of a Webinar. Language defaults to "en".
type WebinarOpts struct {
	CrawlableOpts
	StartDate   time.Time
	Description *string
	Language    string
}

// Webinar is a tracked webinar.
type Webinar struct {
	crawlable
	startDate   time.Time
	description *string
	language    string
}

// NewWebinar constructs a Webinar. Construction does not notify.
func (c *Catalog) NewWebinar(o WebinarOpts) *Webinar {
	lang := o.Language
	if lang == "" {
		lang = defaultLanguage
	}
	e := &Webinar{startDate: o.StartDate, description: cloneString(o.Description), language: lang}
	e.init(o.CrawlableOpts)
	e.Bind(e, c.reg)
	return e
}

func (e *Webinar) TypeName() string     { return TypeWebinar }
func (e *Webinar) StartDate() time.Time { return e.startDate }
func (e *Webinar) Description() *string { return cloneString(e.description) }
func (e *Webinar) Language() string     { return e.language }

func (e *Webinar) SetStartDate(v time.Time) error {
	return tracking.Set(&e.Subject, FieldStartDate, &e.startDate, v)
}

func (e *Webinar) SetDescription(v *string) error {
	return tracking.Set(&e.Subject, FieldDescription, &e.description, cloneString(v))
}

func (e *Webinar) SetLanguage(v string) error {
	return tracking.Set(&e.Subject, FieldLanguage, &e.language, v)
}

// SetField writes a field by name.
func (e *Webinar) SetField(name string, value any) error {
	switch name {
	case FieldStartDate:
		return tracking.Assign(&e.Subject, name, &e.startDate, value)
	case FieldDescription:
		return tracking.Assign(&e.Subject, name, &e.description, own(value))
	case FieldLanguage:
		return tracking.Assign(&e.Subject, name, &e.language, value)
	}
	if ok, err := e.setField(name, value); ok {
		return err
	}
	return unknownField(TypeWebinar, name)
}

func (e *Webinar) Relation(string) (tracking.Entity, bool) { return nil, false }

func (e *Webinar) Snapshot() tracking.Entity {
	cp := &Webinar{startDate: e.startDate, description: cloneString(e.description), language: e.language}
	cp.copyFrom(&e.crawlable)
	return cp
}

func (e *Webinar) Fields() map[string]any {
	f := e.fields()
	f[FieldStartDate] = e.startDate
	f[FieldDescription] = cloneString(e.description)
	f[FieldLanguage] = e.language
	return f
}

func (e *Webinar) String() string { return describe(TypeWebinar, e.ID(), e.Fields()) }
