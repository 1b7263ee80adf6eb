package policy

import (
	"strings"
	"testing"

	"notifier/pkg/types"
)

var crawlable = []string{"link", "name", "crawling_status", "is_deleted", "is_blacklisted", "last_crawled"}

func testSchemas() []Schema {
	return []Schema{
		{Type: "Company", Fields: append(crawlable, "employees_min", "employees_max")},
		{Type: "Event", Fields: append(crawlable, "start_date", "end_date", "description", "location")},
		{Type: "Webinar", Fields: append(crawlable, "start_date", "description", "language")},
		{Type: "ContentItem", Fields: append(crawlable, "snippet"), Relations: []string{"company"}},
		{Type: "CompanyForEvent", Fields: []string{"is_deleted", "is_blacklisted"}, Relations: []string{"event", "company"}},
		{Type: "CompanyForWebinar", Fields: []string{"is_deleted", "is_blacklisted"}, Relations: []string{"webinar", "company"}},
		{Type: "CompanyCompetitor", Fields: []string{"is_deleted"}, Relations: []string{"company", "competitor"}},
	}
}

func TestDefaultRegistryIsValid(t *testing.T) {
	reg, err := NewRegistry(Default(), testSchemas())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if got := len(reg.Types()); got != 7 {
		t.Fatalf("expected 7 types, got %d: %v", got, reg.Types())
	}
	e := reg.MustLookup("ContentItem")
	if !e.Notifiable("is_blacklisted") || e.Notifiable("snippet") {
		t.Fatalf("unexpected field policy: %+v", e)
	}
	if !e.Has(types.ActionCreate) || !e.Has(types.ActionDelete) {
		t.Fatalf("expected create and delete actions: %+v", e.Actions)
	}
	if len(e.NotifyOn) != 1 || e.NotifyOn[0] != (Relation{Slot: "company"}) {
		t.Fatalf("unexpected routing: %v", e.NotifyOn)
	}
	if reg.MustLookup("Company").NotifyOn[0] != (Self{}) {
		t.Fatalf("Company should route to self")
	}
}

func TestNewRegistryRejectsMismatches(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{
			name:    "unknown relation slot",
			entries: []Entry{{Type: "Company", Fields: []string{"is_deleted"}, NotifyOn: []Target{Relation{Slot: "owner"}}}},
			want:    "routing target owner",
		},
		{
			name:    "unknown field",
			entries: []Entry{{Type: "Company", Fields: []string{"revenue"}, NotifyOn: []Target{Self{}}}},
			want:    "unknown field revenue",
		},
		{
			name:    "bookkeeping field",
			entries: []Entry{{Type: "Company", Fields: []string{"_internal"}, NotifyOn: []Target{Self{}}}},
			want:    "bookkeeping field _internal",
		},
		{
			name:    "update is not a lifecycle action",
			entries: []Entry{{Type: "Company", Actions: []types.Action{types.ActionUpdate}, NotifyOn: []Target{Self{}}}},
			want:    "not a lifecycle action",
		},
		{
			name:    "empty routing",
			entries: []Entry{{Type: "Company"}},
			want:    "notify_on is empty",
		},
		{
			name:    "unknown type",
			entries: []Entry{{Type: "Podcast", NotifyOn: []Target{Self{}}}},
			want:    "no schema for entity type Podcast",
		},
		{
			name: "duplicate",
			entries: []Entry{
				{Type: "Company", NotifyOn: []Target{Self{}}},
				{Type: "Company", NotifyOn: []Target{Self{}}},
			},
			want: "duplicate entry for Company",
		},
	}
	schemas := []Schema{{Type: "Company", Fields: []string{"is_deleted", "employees_min"}}}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewRegistry(c.entries, schemas)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err, c.want)
			}
		})
	}
}

func TestNewRegistryRequiresEntryPerSchema(t *testing.T) {
	_, err := NewRegistry(nil, []Schema{{Type: "Company"}})
	if err == nil || !strings.Contains(err.Error(), "no policy entry for entity type Company") {
		t.Fatalf("expected missing entry error, got %v", err)
	}
}

func TestMustLookupPanicsOnUnregisteredType(t *testing.T) {
	reg, err := NewRegistry(Default(), testSchemas())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		if e, ok := r.(error); !ok || !strings.Contains(e.Error(), "Podcast") {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	reg.MustLookup("Podcast")
}

func TestParseTarget(t *testing.T) {
	if ParseTarget("self") != (Self{}) {
		t.Fatalf("self token should parse to Self")
	}
	if got := ParseTarget(" company "); got != (Relation{Slot: "company"}) {
		t.Fatalf("unexpected target: %#v", got)
	}
}

func TestRegistryView(t *testing.T) {
	reg, err := NewRegistry(Default(), testSchemas())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	v := reg.View()
	if len(v.Entities) != 7 {
		t.Fatalf("expected 7 entities, got %d", len(v.Entities))
	}
	if v.Entities[0].Type != "Company" {
		t.Fatalf("expected sorted output, first=%s", v.Entities[0].Type)
	}
	for _, e := range v.Entities {
		if e.Type == "CompanyForWebinar" && (len(e.NotifyOn) != 1 || e.NotifyOn[0] != "webinar") {
			t.Fatalf("unexpected notify_on: %v", e.NotifyOn)
		}
	}
}
