package sink

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"notifier/internal/catalog"
	"notifier/internal/tracking"
	"notifier/pkg/types"
)

func newCompany(t *testing.T) *catalog.Company {
	t.Helper()
	return catalog.Default().NewCompany(catalog.CompanyOpts{
		CrawlableOpts: catalog.CrawlableOpts{Link: "https://mycompany.com", Name: "Awesome company"},
		EmployeesMin:  10,
		EmployeesMax:  50,
	})
}

func TestRecorderCapturesAndCounts(t *testing.T) {
	rec := NewRecorder()
	c := newCompany(t)
	if err := c.Attach(rec); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := c.SetIsDeleted(true); err != nil {
		t.Fatalf("SetIsDeleted: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	calls := rec.Calls()
	if len(calls) != 3 || rec.Len() != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	wantActions := []types.Action{types.ActionCreate, types.ActionUpdate, types.ActionDelete}
	for i, c := range calls {
		if c.Action != wantActions[i] {
			t.Fatalf("call %d action = %s, want %s", i, c.Action, wantActions[i])
		}
	}
	st := rec.Stats()
	if st.Total != 3 || st.ByType["Company"][types.ActionUpdate] != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	rec.Reset()
	if rec.Len() != 0 {
		t.Fatalf("expected empty recorder after Reset")
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	c := newCompany(t)
	if err := c.Attach(NewConsole(&buf)); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	_ = c.SetIsDeleted(true)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "Original: None, Updated: Company{id=") || !strings.HasSuffix(lines[0], "Notify On: Company, msg: Attach observer") {
		t.Fatalf("unexpected create line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "is_deleted=False") || !strings.Contains(lines[1], "is_deleted=True") {
		t.Fatalf("expected both sides rendered: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "msg: is_deleted Updated from False to True") {
		t.Fatalf("unexpected update line: %q", lines[1])
	}
}

func TestLogWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	c := newCompany(t)
	_ = c.Attach(NewLog(zerolog.New(&buf)))
	buf.Reset()
	_ = c.SetIsDeleted(true)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["type"] != "Company" || line["action"] != "update" || line["message"] != "is_deleted Updated from False to True" {
		t.Fatalf("unexpected log line: %v", line)
	}
	if line["entity_id"] != c.ID().String() {
		t.Fatalf("entity_id = %v, want %s", line["entity_id"], c.ID())
	}
	orig, ok := line["original"].(map[string]any)
	if !ok || orig["is_deleted"] != false {
		t.Fatalf("unexpected original: %v", line["original"])
	}
}

func TestMetricsCountsByTypeAndAction(t *testing.T) {
	base := testutil.ToFloat64(notificationsTotal.WithLabelValues("Company", "update"))
	c := newCompany(t)
	_ = c.Attach(Metrics{})
	_ = c.SetIsDeleted(true)
	_ = c.SetIsDeleted(false)
	if got := testutil.ToFloat64(notificationsTotal.WithLabelValues("Company", "update")); got != base+2 {
		t.Fatalf("update counter = %v, want %v", got, base+2)
	}
}

func TestMultiFansOutAndJoinsErrors(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	boom := errors.New("boom")
	failing := tracking.ObserverFunc(func(_, _ tracking.Entity, _, _ string) error { return boom })
	m := NewMulti(a, nil, failing, b)
	c := newCompany(t)
	err := c.Attach(m)
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("every observer must be called: a=%d b=%d", a.Len(), b.Len())
	}
}

func TestRegistryBuild(t *testing.T) {
	for _, n := range []string{"noop", "console", "log", "metrics"} {
		if _, err := Get(n); err != nil {
			t.Fatalf("Get(%q): %v", n, err)
		}
	}
	if _, err := Get("nonexistent"); err == nil {
		t.Fatalf("expected unknown sink error")
	}

	rec := NewRecorder()
	Register("test-recorder", rec)
	obs, err := Build("test-recorder")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if obs != tracking.Observer(rec) {
		t.Fatalf("single name should return the sink itself")
	}
	obs, err = Build("test-recorder", "", "noop", "test-recorder")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := obs.(*Multi); !ok {
		t.Fatalf("expected Multi, got %T", obs)
	}
	if obs, _ := Build(); obs != tracking.Observer(Noop{}) {
		t.Fatalf("expected Noop for no names, got %T", obs)
	}
	if _, err := Build("test-recorder", "missing"); err == nil {
		t.Fatalf("expected error for unknown sink")
	}
	names := Names()
	if len(names) < 5 || names[0] != "console" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestBoundedRecorderKeepsNewest(t *testing.T) {
	rec := NewBoundedRecorder(2)
	c := newCompany(t)
	_ = c.Attach(rec)
	_ = c.SetIsDeleted(true)
	_ = c.SetIsDeleted(false)
	_ = c.Close()

	calls := rec.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 retained calls, got %d", len(calls))
	}
	if calls[0].Message != "is_deleted Updated from True to False" || calls[1].Action != types.ActionDelete {
		t.Fatalf("unexpected retained calls: %+v", calls)
	}
	if st := rec.Stats(); st.Total != 4 || st.ByType["Company"][types.ActionUpdate] != 2 {
		t.Fatalf("stats must count every call: %+v", st)
	}
	recent := rec.Recent(1)
	if len(recent) != 1 || recent[0].Action != types.ActionDelete {
		t.Fatalf("unexpected recent: %+v", recent)
	}
	if len(rec.Recent(10)) != 2 {
		t.Fatalf("Recent must clamp to retained calls")
	}
	v := recent[0].View()
	if v.Type != "Company" || v.EntityID != c.ID().String() || v.Message != "Company is deleted" {
		t.Fatalf("unexpected view: %+v", v)
	}
}
