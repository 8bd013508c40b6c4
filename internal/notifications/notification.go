// Package notifications implements the personal notification feed.
// Notifications are appended by other domain systems (assignments,
// personnel updates) and read or acknowledged by their recipient.
package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to a single collaborator.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommand carries the data for a new notification.
type CreateCommand struct {
	UserID  uuid.UUID
	Title   string
	Message string
}
