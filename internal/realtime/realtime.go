// Package realtime implements the change feed for the portal.
// Domain systems publish events after committed writes; websocket
// clients subscribe per table and merge changes without refetching.
package realtime

import "github.com/google/uuid"

// Action identifies the kind of change an event describes.
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Event describes a committed change to a single row. UserID is set
// only for personal events (notifications), which are delivered solely
// to the matching subscriber.
type Event struct {
	Table  string     `json:"table"`
	Action Action     `json:"action"`
	ID     string     `json:"id"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

// Table names published by the domain systems.
const (
	TableDocuments     = "documents"
	TableProcedimenti  = "procedimenti"
	TableProfiles      = "profiles"
	TableNotifications = "notifications"
)
