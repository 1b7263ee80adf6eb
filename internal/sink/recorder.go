package sink

import (
	"sync"

	"notifier/internal/tracking"
	"notifier/pkg/types"
)

// Call is one notification captured by a Recorder.
type Call struct {
	Updated  tracking.Entity
	Original tracking.Entity
	TypeName string
	Message  string
	Action   types.Action
}

// View returns the JSON projection of c.
func (c Call) View() types.Notification {
	n := types.Notification{Type: c.TypeName, Action: c.Action, Message: c.Message}
	switch {
	case c.Updated != nil:
		n.EntityID = c.Updated.ID().String()
	case c.Original != nil:
		n.EntityID = c.Original.ID().String()
	}
	return n
}

// Recorder stores notifications in memory. It backs tests, GET /stats and
// GET /notifications. Counts cover every call; the call history keeps only
// the newest calls when the Recorder is bounded.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	limit  int
	total  int
	counts map[string]map[types.Action]int
}

// NewRecorder returns a Recorder that keeps every call.
func NewRecorder() *Recorder { return NewBoundedRecorder(0) }

// NewBoundedRecorder returns a Recorder keeping at most limit calls.
// A limit of zero or less keeps every call.
func NewBoundedRecorder(limit int) *Recorder {
	return &Recorder{limit: limit, counts: map[string]map[types.Action]int{}}
}

func (r *Recorder) Update(updated, original tracking.Entity, typeName, message string) error {
	c := Call{
		Updated:  updated,
		Original: original,
		TypeName: typeName,
		Message:  message,
		Action:   tracking.ActionOf(updated, original),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	if r.limit > 0 && len(r.calls) > r.limit {
		r.calls = append(r.calls[:0:0], r.calls[len(r.calls)-r.limit:]...)
	}
	r.total++
	m, ok := r.counts[typeName]
	if !ok {
		m = map[types.Action]int{}
		r.counts[typeName] = m
	}
	m[c.Action]++
	return nil
}

// Calls returns a copy of the retained notifications in delivery order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Recent returns the newest n retained calls, oldest first.
func (r *Recorder) Recent(n int) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 || n > len(r.calls) {
		n = len(r.calls)
	}
	out := make([]Call, n)
	copy(out, r.calls[len(r.calls)-n:])
	return out
}

// Len returns the number of retained calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.total = 0
	r.counts = map[string]map[types.Action]int{}
	r.mu.Unlock()
}

// Stats counts every notification received by type and action.
func (r *Recorder) Stats() types.StatsResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := types.StatsResponse{Total: r.total, ByType: make(map[string]map[types.Action]int, len(r.counts))}
	for typ, m := range r.counts {
		cp := make(map[types.Action]int, len(m))
		for a, n := range m {
			cp[a] = n
		}
		st.ByType[typ] = cp
	}
	return st
}
