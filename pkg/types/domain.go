package types

import (
	"fmt"
	"strings"
)

// Action classifies a notification.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Lifecycle reports whether a is one of the lifecycle actions a policy may declare.
func (a Action) Lifecycle() bool { return a == ActionCreate || a == ActionDelete }

// ParseAction accepts the canonical names plus the legacy "new"/"del" spellings.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "create", "new":
		return ActionCreate, nil
	case "delete", "del":
		return ActionDelete, nil
	case "update":
		return ActionUpdate, nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}
