package sink

import (
	"github.com/rs/zerolog"

	"notifier/internal/tracking"
)

// Log writes a structured log line per notification.
type Log struct {
	logger zerolog.Logger
}

func NewLog(l zerolog.Logger) *Log { return &Log{logger: l} }

func (o *Log) Update(updated, original tracking.Entity, typeName, message string) error {
	ev := o.logger.Info().
		Str("type", typeName).
		Str("action", string(tracking.ActionOf(updated, original)))
	if e := subjectOf(updated, original); e != nil {
		ev = ev.Str("entity_id", e.ID().String())
	}
	if updated != nil {
		ev = ev.Interface("updated", updated.Fields())
	}
	if original != nil {
		ev = ev.Interface("original", original.Fields())
	}
	ev.Msg(message)
	return nil
}

func subjectOf(updated, original tracking.Entity) tracking.Entity {
	if updated != nil {
		return updated
	}
	return original
}
