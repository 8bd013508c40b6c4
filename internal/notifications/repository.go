package notifications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/realtime"
	"github.com/lasville/giustizia/pkg/query"
	"github.com/lasville/giustizia/pkg/repository"
)

type repo struct {
	db     *sql.DB
	feed   realtime.System
	logger *slog.Logger
}

// New creates a notification repository implementing the System interface.
func New(db *sql.DB, feed realtime.System, logger *slog.Logger) System {
	return &repo{
		db:     db,
		feed:   feed,
		logger: logger.With("system", "notifications"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("UserID", userID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	return items, nil
}

func (r *repo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false",
		userID,
	)
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Notification, error) {
	n, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Notification, error) {
		created, err := r.CreateTx(ctx, tx, cmd)
		if err != nil {
			return Notification{}, err
		}
		return *created, nil
	})
	if err != nil {
		return nil, err
	}

	r.publishInsert(&n)
	return &n, nil
}

func (r *repo) CreateTx(ctx context.Context, tx *sql.Tx, cmd CreateCommand) (*Notification, error) {
	q := `
		INSERT INTO notifications(id, user_id, title, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, message, is_read, created_at`

	args := []any{uuid.New(), cmd.UserID, cmd.Title, cmd.Message}

	n, err := repository.QueryOne(ctx, tx, q, args, scanNotification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &n, nil
}

func (r *repo) publishInsert(n *Notification) {
	r.feed.Publish(realtime.Event{
		Table:  realtime.TableNotifications,
		Action: realtime.ActionInsert,
		ID:     n.ID.String(),
		UserID: &n.UserID,
	})
}
