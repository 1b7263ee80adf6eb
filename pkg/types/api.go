package types

// PolicyEntry is the JSON view of one entity type's notification policy.
type PolicyEntry struct {
	// Entity type name.
	// example: ContentItem
	Type string `json:"type" yaml:"type"`
	// Fields whose writes are notifiable.
	// example: ["is_deleted","is_blacklisted"]
	Fields []string `json:"fields" yaml:"fields"`
	// Lifecycle actions that are notifiable.
	// example: ["create","delete"]
	Actions []Action `json:"actions" yaml:"actions"`
	// Routing targets in delivery order: "self" or a relation slot name.
	// example: ["company"]
	NotifyOn []string `json:"notify_on" yaml:"notify_on"`
}

// PolicyResponse wraps the registry returned by GET /policy.
type PolicyResponse struct {
	Entities []PolicyEntry `json:"entities" yaml:"entities"`
}

// StatsResponse reports delivered notification counts keyed by type name then action.
type StatsResponse struct {
	Total  int                       `json:"total"`
	ByType map[string]map[Action]int `json:"by_type"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Notification is the JSON view of one delivered notification.
type Notification struct {
	// Type of the entity that changed.
	// example: ContentItem
	Type   string `json:"type"`
	Action Action `json:"action"`
	// ID of the entity that changed.
	EntityID string `json:"entity_id"`
	// example: is_deleted Updated from False to True
	Message string `json:"message"`
}

// NotificationsResponse wraps GET /notifications.
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}
