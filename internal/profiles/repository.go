package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/notifications"
	"github.com/lasville/giustizia/internal/ranks"
	"github.com/lasville/giustizia/internal/realtime"
	"github.com/lasville/giustizia/pkg/query"
	"github.com/lasville/giustizia/pkg/repository"
)

type repo struct {
	db         *sql.DB
	notifier   notifications.System
	feed       realtime.System
	invalidate func(uuid.UUID)
	logger     *slog.Logger
}

// New creates a personnel repository implementing the System interface.
// invalidate is called after every update so session caches do not serve
// stale permission data.
func New(
	db *sql.DB,
	notifier notifications.System,
	feed realtime.System,
	invalidate func(uuid.UUID),
	logger *slog.Logger,
) System {
	return &repo{
		db:         db,
		notifier:   notifier,
		feed:       feed,
		invalidate: invalidate,
		logger:     logger.With("system", "profiles"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context) ([]Profile, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanProfile)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	return items, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Profile, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProfile)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) SetFunction(ctx context.Context, id uuid.UUID, fn ranks.Function) (*Profile, error) {
	if !fn.Valid() {
		return nil, ErrInvalidFunction
	}

	p, err := r.update(ctx, id, "funzione", fn)
	if err != nil {
		return nil, err
	}

	r.notify(ctx, id, "CAMBIO FUNZIONE",
		fmt.Sprintf("La tua funzione è ora %s.", capitalize(string(fn))))
	return p, nil
}

func (r *repo) SetLevel(ctx context.Context, id uuid.UUID, level int) (*Profile, error) {
	if level < 0 || level > ranks.MaxLevel {
		return nil, ErrInvalidLevel
	}

	p, err := r.update(ctx, id, "grado_gerarchico", level)
	if err != nil {
		return nil, err
	}

	r.notify(ctx, id, "CAMBIO RUOLO",
		fmt.Sprintf("Il tuo ruolo è ora %s.", p.Title()))
	return p, nil
}

func (r *repo) ToggleExtraRole(ctx context.Context, id uuid.UUID, role string) (*Profile, error) {
	if !ValidExtraRole(role) {
		return nil, ErrInvalidRole
	}

	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, removed := toggleRole(current.ExtraRoles, role)

	encoded, err := json.Marshal(roles)
	if err != nil {
		return nil, fmt.Errorf("encode extra roles: %w", err)
	}

	p, err := r.update(ctx, id, "ruoli_extra", encoded)
	if err != nil {
		return nil, err
	}

	if removed {
		r.notify(ctx, id, "RIMOZIONE RUOLO EXTRA",
			fmt.Sprintf("Il ruolo extra %s è stato rimosso.", role))
	} else {
		r.notify(ctx, id, "CAMBIO RUOLO EXTRA",
			fmt.Sprintf("Il tuo ruolo extra è ora %s.", role))
	}
	return p, nil
}

func (r *repo) update(ctx context.Context, id uuid.UUID, column string, value any) (*Profile, error) {
	q := fmt.Sprintf(`
		UPDATE profiles SET %s = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, username, grado_gerarchico, funzione, ruoli_extra, created_at, updated_at`,
		column,
	)

	p, err := repository.QueryOne(ctx, r.db, q, []any{value, id}, scanProfile)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.invalidate(id)
	r.feed.Publish(realtime.Event{
		Table:  realtime.TableProfiles,
		Action: realtime.ActionUpdate,
		ID:     id.String(),
	})

	r.logger.Info("profile updated", "id", id, "column", column)
	return &p, nil
}

// notify is best-effort: personnel updates succeed even when the
// notification insert fails.
func (r *repo) notify(ctx context.Context, userID uuid.UUID, title, message string) {
	_, err := r.notifier.Create(ctx, notifications.CreateCommand{
		UserID:  userID,
		Title:   title,
		Message: message,
	})
	if err != nil {
		r.logger.Warn("profile update notification failed", "user_id", userID, "error", err)
	}
}

// toggleRole returns the role set with role added, or removed when
// already present.
func toggleRole(roles []string, role string) ([]string, bool) {
	result := make([]string, 0, len(roles)+1)
	removed := false

	for _, r := range roles {
		if r == role {
			removed = true
			continue
		}
		result = append(result, r)
	}

	if !removed {
		result = append(result, role)
	}
	return result, removed
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
