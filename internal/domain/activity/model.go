// Package activity keeps a flat audit trail of shop-floor and document
// events, mostly consumed from the dashboard.
package activity

import "time"

// Type classifies an activity entry.
type Type string

const (
	TypeProjectCreated   Type = "project_created"
	TypeLineItemsCreated Type = "line_items_created"
	TypeCladdingComplete Type = "cladding_complete"
	TypeNMRSubmitted     Type = "nmr_submitted"
	TypeNMRResponse      Type = "nmr_response"
	TypeJISAction        Type = "jis_action"
)

// Entry is one audit row. EntityID points at whichever aggregate the event
// concerns (spool, NMR document, line item).
type Entry struct {
	ID           int64     `json:"id"`
	EntityID     string    `json:"entity_id,omitempty"`
	ActivityType Type      `json:"activity_type"`
	Summary      string    `json:"summary"`
	Details      string    `json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListOptions filters activity listings.
type ListOptions struct {
	EntityID string
	Types    []Type
	Limit    int
}
