package tracking

import (
	"testing"
	"time"

	"notifier/internal/policy"
	"notifier/pkg/types"
)

// widget is a minimal tracked entity. Its policy type name is configurable so
// one Go type can stand in for a parent and a child.
type widget struct {
	Subject
	typ    string
	label  string
	flag   bool
	count  int
	seen   *time.Time
	parent *widget
}

func (w *widget) TypeName() string { return w.typ }

func (w *widget) Relation(slot string) (Entity, bool) {
	if slot == "parent" && w.parent != nil {
		return w.parent, true
	}
	return nil, false
}

func (w *widget) Snapshot() Entity {
	cp := &widget{typ: w.typ, label: w.label, flag: w.flag, count: w.count, parent: w.parent}
	if w.seen != nil {
		t := *w.seen
		cp.seen = &t
	}
	cp.Freeze(&w.Subject)
	return cp
}

func (w *widget) Fields() map[string]any {
	return map[string]any{"label": w.label, "flag": w.flag, "count": w.count}
}

func (w *widget) SetFlag(v bool) error { return Set(&w.Subject, "flag", &w.flag, v) }
func (w *widget) SetCount(v int) error { return Set(&w.Subject, "count", &w.count, v) }
func (w *widget) SetLabel(v string) error { return Set(&w.Subject, "label", &w.label, v) }

func testRegistry(t *testing.T) *policy.Registry {
	t.Helper()
	fields := []string{"label", "flag", "count", "seen"}
	reg, err := policy.NewRegistry([]policy.Entry{
		{Type: "Parent", Fields: []string{"flag", "seen"}, Actions: []types.Action{types.ActionCreate, types.ActionDelete}, NotifyOn: []policy.Target{policy.Self{}}},
		{Type: "Child", Fields: []string{"flag", "count"}, Actions: []types.Action{types.ActionDelete}, NotifyOn: []policy.Target{policy.Relation{Slot: "parent"}, policy.Self{}}},
		{Type: "Quiet", NotifyOn: []policy.Target{policy.Self{}}},
	}, []policy.Schema{
		{Type: "Parent", Fields: fields},
		{Type: "Child", Fields: fields, Relations: []string{"parent"}},
		{Type: "Quiet", Fields: fields},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func newWidget(reg *policy.Registry, typ string, parent *widget) *widget {
	w := &widget{typ: typ, label: typ, parent: parent}
	w.Bind(w, reg)
	return w
}

type call struct {
	receiver string
	updated  Entity
	original Entity
	typeName string
	message  string
}

// journal collects calls from several observers in delivery order.
type journal struct {
	calls []call
}

func (j *journal) observer(receiver string) Observer {
	return ObserverFunc(func(updated, original Entity, typeName, message string) error {
		j.calls = append(j.calls, call{receiver: receiver, updated: updated, original: original, typeName: typeName, message: message})
		return nil
	})
}

func (j *journal) reset() { j.calls = nil }
