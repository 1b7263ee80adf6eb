package policy

import "notifier/pkg/types"

var lifecycle = []types.Action{types.ActionCreate, types.ActionDelete}

// Default returns the built-in policy table.
func Default() []Entry {
	return []Entry{
		{
			Type:     "Company",
			Fields:   []string{"is_deleted"},
			Actions:  lifecycle,
			NotifyOn: []Target{Self{}},
		},
		{
			Type:     "Event",
			Fields:   []string{"is_deleted", "is_blacklisted", "crawling_status"},
			Actions:  lifecycle,
			NotifyOn: []Target{Self{}},
		},
		{
			Type:     "Webinar",
			Fields:   []string{"is_deleted", "is_blacklisted", "crawling_status"},
			Actions:  lifecycle,
			NotifyOn: []Target{Self{}},
		},
		{
			Type:     "ContentItem",
			Fields:   []string{"is_deleted", "is_blacklisted", "crawling_status"},
			Actions:  lifecycle,
			NotifyOn: []Target{Relation{Slot: "company"}},
		},
		{
			Type:     "CompanyForEvent",
			Fields:   []string{"is_deleted", "is_blacklisted"},
			Actions:  lifecycle,
			NotifyOn: []Target{Relation{Slot: "event"}},
		},
		{
			Type:     "CompanyCompetitor",
			Fields:   []string{"is_deleted"},
			Actions:  lifecycle,
			NotifyOn: []Target{Relation{Slot: "company"}},
		},
		{
			Type:     "CompanyForWebinar",
			Fields:   []string{"is_deleted", "is_blacklisted"},
			Actions:  lifecycle,
			NotifyOn: []Target{Relation{Slot: "webinar"}},
		},
	}
}
