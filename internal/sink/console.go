package sink

import (
	"fmt"
	"io"
	"sync"

	"notifier/internal/tracking"
)

// Console prints one line per notification:
//
//	Original: <entity|None>, Updated: <entity|None>, Notify On: <type>, msg: <message>
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console { return &Console{w: w} }

func (c *Console) Update(updated, original tracking.Entity, typeName, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.w, "Original: %s, Updated: %s, Notify On: %s, msg: %s\n", render(original), render(updated), typeName, message)
	return err
}

func render(e tracking.Entity) string {
	if e == nil {
		return "None"
	}
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%s{id=%s}", e.TypeName(), e.ID())
}
