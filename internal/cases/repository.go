package cases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/ranks"
	"github.com/lasville/giustizia/internal/realtime"
	"github.com/lasville/giustizia/pkg/query"
	"github.com/lasville/giustizia/pkg/repository"
)

type repo struct {
	db     *sql.DB
	docs   documents.System
	feed   realtime.System
	logger *slog.Logger
}

// New creates a case repository implementing the System interface.
func New(
	db *sql.DB,
	docs documents.System,
	feed realtime.System,
	logger *slog.Logger,
) System {
	return &repo{
		db:     db,
		docs:   docs,
		feed:   feed,
		logger: logger.With("system", "cases"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) ListOpen(ctx context.Context, level int, fn ranks.Function) ([]Case, error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("Status", StatusOpen)

	if t := VisibleType(level, fn); t != nil {
		qb.WhereEquals("Type", *t)
	}

	q, args := qb.Build()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanCase)
	if err != nil {
		return nil, fmt.Errorf("query open cases: %w", err)
	}
	return items, nil
}

func (r *repo) ListAll(ctx context.Context) ([]Case, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanCase)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}
	return items, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Case, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCase)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) File(ctx context.Context, id uuid.UUID) ([]documents.Document, error) {
	c, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	return r.docs.ListForCase(ctx, c.DisplayID, c.InitialDocumentID)
}

func (r *repo) Close(ctx context.Context, id uuid.UUID) (*Case, error) {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE procedimenti SET stato = $1 WHERE id = $2 AND stato = $3",
		StatusClosed, id, StatusOpen,
	)
	if err != nil {
		mapped := repository.MapError(err, ErrNotFound, ErrDuplicate)
		if !errors.Is(mapped, ErrNotFound) {
			return nil, mapped
		}
		// Distinguish a missing case from one already concluded.
		if _, findErr := r.Find(ctx, id); findErr == nil {
			return nil, ErrAlreadyClosed
		}
		return nil, ErrNotFound
	}

	c, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	r.feed.Publish(realtime.Event{
		Table:  realtime.TableProcedimenti,
		Action: realtime.ActionUpdate,
		ID:     id.String(),
	})

	r.logger.Info("case closed", "id", id, "display_id", c.DisplayID)
	return c, nil
}
