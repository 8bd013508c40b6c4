package notifications

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// System defines the public contract for notification operations.
type System interface {
	Handler() *Handler

	// ListForUser returns the recipient's notifications, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	// MarkAllRead acknowledges every unread notification for the recipient.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	// Create appends a notification and publishes a personal change event.
	Create(ctx context.Context, cmd CreateCommand) (*Notification, error)
	// CreateTx appends a notification inside the caller's transaction.
	// No change event is published; the caller publishes after commit.
	CreateTx(ctx context.Context, tx *sql.Tx, cmd CreateCommand) (*Notification, error)
}
