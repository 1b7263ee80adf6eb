// Package catalog defines the tracked entity types: companies, events,
// webinars, content items and the relations between them.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"notifier/internal/policy"
	"notifier/internal/tracking"
)

// Entity type names as registered with the policy registry.
const (
	TypeCompany           = "Company"
	TypeEvent             = "Event"
	TypeWebinar           = "Webinar"
	TypeContentItem       = "ContentItem"
	TypeCompanyForEvent   = "CompanyForEvent"
	TypeCompanyForWebinar = "CompanyForWebinar"
	TypeCompanyCompetitor = "CompanyCompetitor"
)

// Field names.
const (
	FieldLink           = "link"
	FieldName           = "name"
	FieldCrawlingStatus = "crawling_status"
	FieldIsDeleted      = "is_deleted"
	FieldIsBlacklisted  = "is_blacklisted"
	FieldLastCrawled    = "last_crawled"
	FieldEmployeesMin   = "employees_min"
	FieldEmployeesMax   = "employees_max"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldDescription    = "description"
	FieldLocation       = "location"
	FieldLanguage       = "language"
	FieldSnippet        = "snippet"
)

// Relation slot names.
const (
	SlotCompany    = "company"
	SlotEvent      = "event"
	SlotWebinar    = "webinar"
	SlotCompetitor = "competitor"
)

var crawlableFields = []string{FieldLink, FieldName, FieldCrawlingStatus, FieldIsDeleted, FieldIsBlacklisted, FieldLastCrawled}

func withCrawlable(extra ...string) []string {
	return append(append([]string(nil), crawlableFields...), extra...)
}

// Schemas describes every catalog type for registry validation.
func Schemas() []policy.Schema {
	return []policy.Schema{
		{Type: TypeCompany, Fields: withCrawlable(FieldEmployeesMin, FieldEmployeesMax)},
		{Type: TypeEvent, Fields: withCrawlable(FieldStartDate, FieldEndDate, FieldDescription, FieldLocation)},
		{Type: TypeWebinar, Fields: withCrawlable(FieldStartDate, FieldDescription, FieldLanguage)},
		{Type: TypeContentItem, Fields: withCrawlable(FieldSnippet), Relations: []string{SlotCompany}},
		{Type: TypeCompanyForEvent, Fields: []string{FieldIsDeleted, FieldIsBlacklisted}, Relations: []string{SlotEvent, SlotCompany}},
		{Type: TypeCompanyForWebinar, Fields: []string{FieldIsDeleted, FieldIsBlacklisted}, Relations: []string{SlotWebinar, SlotCompany}},
		{Type: TypeCompanyCompetitor, Fields: []string{FieldIsDeleted}, Relations: []string{SlotCompany, SlotCompetitor}},
	}
}

// NewRegistry validates entries against the catalog schemas.
func NewRegistry(entries []policy.Entry) (*policy.Registry, error) {
	return policy.NewRegistry(entries, Schemas())
}

// DefaultRegistry returns the built-in policy validated against the catalog.
// It panics if the built-in table does not match the schemas.
func DefaultRegistry() *policy.Registry {
	reg, err := NewRegistry(policy.Default())
	if err != nil {
		panic(err)
	}
	return reg
}

// Catalog constructs entities bound to a policy registry.
type Catalog struct {
	reg *policy.Registry
}

// New returns a Catalog whose entities follow reg.
func New(reg *policy.Registry) *Catalog { return &Catalog{reg: reg} }

// Default returns a Catalog using DefaultRegistry.
func Default() *Catalog { return New(DefaultRegistry()) }

// Registry returns the registry entities are bound to.
func (c *Catalog) Registry() *policy.Registry { return c.reg }

// FieldSetter is implemented by every catalog type.
type FieldSetter interface {
	tracking.Entity
	SetField(name string, value any) error
}

// relationReadOnlyError reports a by-name write to a relation slot.
type relationReadOnlyError struct{ typeName, slot string }

func (e relationReadOnlyError) Error() string {
	return fmt.Sprintf("%s.%s is a relation fixed at construction", e.typeName, e.slot)
}

func unknownField(typeName, name string) error {
	return &tracking.UnknownFieldError{Type: typeName, Field: name}
}

// relationID renders a related entity in Fields output.
func relationID[T any, P interface {
	*T
	ID() uuid.UUID
}](p P) string {
	if p == nil {
		return ""
	}
	return p.ID().String()
}

// describe renders an entity as Type{id=... field=value ...} with fields sorted
// by name.
func describe(typeName string, id uuid.UUID, fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(typeName)
	b.WriteString("{id=")
	b.WriteString(id.String())
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(tracking.FormatValue(fields[k]))
	}
	b.WriteString("}")
	return b.String()
}
