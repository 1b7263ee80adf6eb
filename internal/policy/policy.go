// Package policy holds the notification policy registry: for every tracked
// entity type, which fields are notifiable, which lifecycle actions are
// notifiable, and where notifications are routed.
//
// A Registry is validated against the schemas declared by the entity catalog
// when it is constructed, so a routing target that names a missing relation
// slot fails at startup rather than at notification time.
package policy

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"notifier/pkg/types"
)

// SelfToken is the routing token that delivers to the mutated entity itself.
const SelfToken = "self"

// Target is a routing target: either Self or a Relation slot.
type Target interface {
	String() string
	isTarget()
}

// Self routes a notification to the entity that changed.
type Self struct{}

func (Self) String() string { return SelfToken }
func (Self) isTarget()      {}

// Relation routes a notification to the entity held in the named relation slot.
type Relation struct {
	Slot string
}

func (r Relation) String() string { return r.Slot }
func (Relation) isTarget()        {}

// ParseTarget maps a routing token onto a Target.
func ParseTarget(s string) Target {
	s = strings.TrimSpace(s)
	if s == SelfToken {
		return Self{}
	}
	return Relation{Slot: s}
}

// Entry is the policy of a single entity type.
type Entry struct {
	Type     string
	Fields   []string
	Actions  []types.Action
	NotifyOn []Target

	fields map[string]struct{}
}

// Notifiable reports whether a write to field triggers a notification.
func (e Entry) Notifiable(field string) bool {
	if e.fields != nil {
		_, ok := e.fields[field]
		return ok
	}
	return lo.Contains(e.Fields, field)
}

// Has reports whether the lifecycle action a is notifiable.
func (e Entry) Has(a types.Action) bool { return lo.Contains(e.Actions, a) }

// View returns the JSON projection of the entry.
func (e Entry) View() types.PolicyEntry {
	return types.PolicyEntry{
		Type:     e.Type,
		Fields:   append([]string(nil), e.Fields...),
		Actions:  append([]types.Action(nil), e.Actions...),
		NotifyOn: lo.Map(e.NotifyOn, func(t Target, _ int) string { return t.String() }),
	}
}

// Schema describes an entity type as the catalog defines it.
type Schema struct {
	Type      string
	Fields    []string
	Relations []string
}

// Registry maps entity type names to their policy entries. It is read-only
// after construction and safe for concurrent lookups.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry validates entries against schemas and builds a Registry.
// Every schema must have exactly one entry and every entry must describe a
// known schema.
func NewRegistry(entries []Entry, schemas []Schema) (*Registry, error) {
	var problems []string
	bySchema := lo.SliceToMap(schemas, func(s Schema) (string, Schema) { return s.Type, s })
	reg := &Registry{entries: make(map[string]Entry, len(entries))}

	for _, e := range entries {
		if _, dup := reg.entries[e.Type]; dup {
			problems = append(problems, "duplicate entry for "+e.Type)
			continue
		}
		s, ok := bySchema[e.Type]
		if !ok {
			problems = append(problems, "no schema for entity type "+e.Type)
			continue
		}
		problems = append(problems, validateEntry(e, s)...)
		e.Fields = lo.Uniq(e.Fields)
		e.fields = lo.SliceToMap(e.Fields, func(f string) (string, struct{}) { return f, struct{}{} })
		reg.entries[e.Type] = e
	}
	for _, s := range schemas {
		if _, ok := reg.entries[s.Type]; !ok {
			problems = append(problems, "no policy entry for entity type "+s.Type)
		}
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return reg, nil
}

func validateEntry(e Entry, s Schema) []string {
	var problems []string
	for _, f := range e.Fields {
		if isBookkeeping(f) {
			problems = append(problems, e.Type+": bookkeeping field "+f+" cannot be notifiable")
			continue
		}
		if !lo.Contains(s.Fields, f) {
			problems = append(problems, e.Type+": unknown field "+f)
		}
	}
	for _, a := range e.Actions {
		if !a.Lifecycle() {
			problems = append(problems, e.Type+": action "+string(a)+" is not a lifecycle action")
		}
	}
	if len(e.NotifyOn) == 0 {
		problems = append(problems, e.Type+": notify_on is empty")
	}
	for _, t := range e.NotifyOn {
		r, ok := t.(Relation)
		if !ok {
			continue
		}
		if !lo.Contains(s.Relations, r.Slot) {
			problems = append(problems, e.Type+": routing target "+r.Slot+" is not a relation slot")
		}
	}
	return problems
}

func isBookkeeping(field string) bool { return strings.HasPrefix(field, "_") }

// Lookup returns the entry registered for typeName.
func (r *Registry) Lookup(typeName string) (Entry, bool) {
	e, ok := r.entries[typeName]
	return e, ok
}

// MustLookup returns the entry registered for typeName and panics when the
// type is unregistered; that is a configuration error, not a runtime condition.
func (r *Registry) MustLookup(typeName string) Entry {
	e, ok := r.entries[typeName]
	if !ok {
		panic(unregisteredError{typeName: typeName})
	}
	return e
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	out := lo.Keys(r.entries)
	sort.Strings(out)
	return out
}

// Entries returns every entry sorted by type name.
func (r *Registry) Entries() []Entry {
	return lo.Map(r.Types(), func(t string, _ int) Entry { return r.entries[t] })
}

// View returns the JSON projection of the whole registry.
func (r *Registry) View() types.PolicyResponse {
	return types.PolicyResponse{Entities: lo.Map(r.Entries(), func(e Entry, _ int) types.PolicyEntry { return e.View() })}
}
