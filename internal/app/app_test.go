package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"notifier/internal/config"
	"notifier/internal/policy"
	"notifier/pkg/types"
)

func newApp(t *testing.T, cfg config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a, err := New(cfg, Options{Logger: zerolog.Nop(), Out: &out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, &out
}

func TestDemoDeliversEveryNotification(t *testing.T) {
	a, _ := newApp(t, config.Config{Sinks: []string{"noop"}})
	if err := a.Demo(); err != nil {
		t.Fatalf("Demo: %v", err)
	}
	st := a.Stats()
	if st.Total != 25 {
		t.Fatalf("total = %d, want 25", st.Total)
	}
	company := st.ByType["Company"]
	if company[types.ActionCreate] != 2 || company[types.ActionUpdate] != 1 || company[types.ActionDelete] != 2 {
		t.Fatalf("unexpected Company counts: %+v", company)
	}
	if n := st.ByType["ContentItem"][types.ActionUpdate]; n != 3 {
		t.Fatalf("ContentItem updates = %d, want 3", n)
	}

	recent := a.Recent(2)
	if len(recent) != 2 || recent[1].Message != "Company is deleted" || recent[0].Message != "Company is deleted" {
		t.Fatalf("unexpected tail: %+v", recent)
	}
}

func TestDemoConsoleOutput(t *testing.T) {
	a, out := newApp(t, config.Config{Sinks: []string{"console"}})
	if err := a.Demo(); err != nil {
		t.Fatalf("Demo: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 25 {
		t.Fatalf("expected 25 console lines, got %d", len(lines))
	}
	if !strings.Contains(out.String(), "Notify On: ContentItem, msg: crawling_status Updated from 0 to 5") {
		t.Fatalf("missing routed content item update:\n%s", out.String())
	}
	if strings.Contains(out.String(), "msg: employees_min") {
		t.Fatalf("employees_min is not notifiable:\n%s", out.String())
	}
}

func TestCustomPolicyFile(t *testing.T) {
	d := t.TempDir()
	body := `entities:
  - type: Company
    fields: [employees_min]
    notify_on: [self]
  - {type: Event, notify_on: [self]}
  - {type: Webinar, notify_on: [self]}
  - {type: ContentItem, notify_on: [company]}
  - {type: CompanyForEvent, notify_on: [event]}
  - {type: CompanyForWebinar, notify_on: [webinar]}
  - {type: CompanyCompetitor, notify_on: [company]}
`
	p := filepath.Join(d, "policy.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	a, _ := newApp(t, config.Config{PolicyFile: p, Sinks: []string{"noop"}})
	if err := a.Demo(); err != nil {
		t.Fatalf("Demo: %v", err)
	}
	st := a.Stats()
	if st.Total != 1 || st.ByType["Company"][types.ActionUpdate] != 1 {
		t.Fatalf("only the employees_min write should notify: %+v", st)
	}
	if got := a.Recent(1)[0].Message; got != "employees_min Updated from 10 to 15" {
		t.Fatalf("message = %q", got)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(config.Config{Sinks: []string{"carrier-pigeon"}}, Options{Logger: zerolog.Nop()}); err == nil || !strings.Contains(err.Error(), "unknown sink") {
		t.Fatalf("expected unknown sink error, got %v", err)
	}
	if _, err := New(config.Config{LogFormat: "xml"}, Options{Logger: zerolog.Nop()}); err == nil {
		t.Fatalf("expected log format error")
	}

	d := t.TempDir()
	p := filepath.Join(d, "policy.json")
	if err := os.WriteFile(p, []byte(`{"entities":[{"type":"Company","fields":["revenue"],"notify_on":["self"]}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := New(config.Config{PolicyFile: p}, Options{Logger: zerolog.Nop()})
	if !policy.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceViews(t *testing.T) {
	a, _ := newApp(t, config.Config{Sinks: []string{"noop"}})
	if a.Ready() {
		t.Fatalf("app must not be ready before SetReady")
	}
	a.SetReady(true)
	if !a.Ready() {
		t.Fatalf("SetReady(true) ignored")
	}
	if n := len(a.Policy().Entities); n != 7 {
		t.Fatalf("policy entities = %d, want 7", n)
	}
	if got := a.Config().Addr; got != config.DefaultAddr {
		t.Fatalf("defaults not applied: %q", got)
	}
	if len(a.Recent(10)) != 0 || a.Stats().Total != 0 {
		t.Fatalf("fresh app should have no notifications")
	}
}

func TestLoadPolicyFromDirectory(t *testing.T) {
	d := t.TempDir()
	for name, body := range map[string]string{
		"a.yaml": "entities:\n  - {type: Company, fields: [is_deleted], actions: [new], notify_on: [self]}\n  - {type: Event, notify_on: [self]}\n  - {type: Webinar, notify_on: [self]}\n",
		"b.json": `{"entities":[{"type":"ContentItem","notify_on":["company"]},{"type":"CompanyForEvent","notify_on":["event"]},{"type":"CompanyForWebinar","notify_on":["webinar"]},{"type":"CompanyCompetitor","notify_on":["company"]}]}`,
	} {
		if err := os.WriteFile(filepath.Join(d, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	a, _ := newApp(t, config.Config{PolicyFile: d, Sinks: []string{"noop"}})
	if err := a.Demo(); err != nil {
		t.Fatalf("Demo: %v", err)
	}
	company := a.Stats().ByType["Company"]
	if a.Stats().Total != 3 || company[types.ActionCreate] != 2 || company[types.ActionUpdate] != 1 {
		t.Fatalf("unexpected stats: %+v", a.Stats())
	}
}
