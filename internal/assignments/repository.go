package assignments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/notifications"
	"github.com/lasville/giustizia/internal/profiles"
	"github.com/lasville/giustizia/internal/ranks"
	"github.com/lasville/giustizia/internal/realtime"
	"github.com/lasville/giustizia/pkg/repository"
)

type repo struct {
	db       *sql.DB
	docs     documents.System
	roster   profiles.System
	notifier notifications.System
	feed     realtime.System
	logger   *slog.Logger
}

// New creates an assignment repository implementing the System interface.
func New(
	db *sql.DB,
	docs documents.System,
	roster profiles.System,
	notifier notifications.System,
	feed realtime.System,
	logger *slog.Logger,
) System {
	return &repo{
		db:       db,
		docs:     docs,
		roster:   roster,
		notifier: notifier,
		feed:     feed,
		logger:   logger.With("system", "assignments"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Board(ctx context.Context, level int, fn ranks.Function) ([]documents.Document, error) {
	categories, ok := VisibleCategories(level, fn)
	if !ok {
		return []documents.Document{}, nil
	}
	if categories == nil {
		categories = documents.Categories
	}

	var (
		docs      []documents.Document
		snapshots []CaseSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = r.docs.ListByCategories(gctx, categories)
		return err
	})
	g.Go(func() error {
		var err error
		snapshots, err = r.snapshots(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return FilterCandidates(docs, snapshots), nil
}

func (r *repo) Candidates(ctx context.Context, documentID uuid.UUID) ([]Assignee, error) {
	doc, err := r.docs.Find(ctx, documentID)
	if err != nil {
		return nil, err
	}

	roster, err := r.roster.List(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]Assignee, 0, len(roster))
	for _, p := range roster {
		if Eligible(p.Function, doc.Category) {
			candidates = append(candidates, Assignee{
				ID:       p.ID,
				Username: p.Username,
				Level:    p.Level,
				Function: p.Function,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Username < candidates[j].Username
	})
	return candidates, nil
}

func (r *repo) Assign(ctx context.Context, documentID, assigneeID uuid.UUID) (*Result, error) {
	doc, err := r.docs.Find(ctx, documentID)
	if err != nil {
		return nil, err
	}

	profile, err := r.roster.Find(ctx, assigneeID)
	if err != nil {
		return nil, err
	}

	assignee := Assignee{
		ID:       profile.ID,
		Username: profile.Username,
		Level:    profile.Level,
		Function: profile.Function,
	}

	var existing *CaseSnapshot
	if doc.ProcedimentoID != nil {
		existing, err = r.snapshotByDisplayID(ctx, *doc.ProcedimentoID)
		if err != nil {
			return nil, err
		}
	}

	plan, err := BuildPlan(*doc, assignee, existing)
	if err != nil {
		return nil, err
	}

	var notification *notifications.Notification

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*Result, error) {
		res, err := r.apply(ctx, tx, plan)
		if err != nil {
			return nil, err
		}

		notification, err = r.notifier.CreateTx(ctx, tx, notificationFor(plan, res))
		if err != nil {
			return nil, err
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	r.publish(plan, result, notification)
	r.logger.Info(
		"assignment applied",
		"document", doc.DisplayID,
		"case", result.CaseDisplayID,
		"assignee", assignee.Username,
		"created", result.Created,
	)
	return result, nil
}

// apply executes the plan inside the transaction. Slot occupancy and
// act linkage are re-checked by conditional statements so concurrent
// assignments cannot both win.
func (r *repo) apply(ctx context.Context, tx *sql.Tx, plan *Plan) (*Result, error) {
	if plan.Existing != nil {
		return r.fillSlot(ctx, tx, plan)
	}
	return r.openCase(ctx, tx, plan)
}

func (r *repo) fillSlot(ctx context.Context, tx *sql.Tx, plan *Plan) (*Result, error) {
	var stmt string
	if plan.Requirente {
		stmt = `UPDATE procedimenti SET pm_assegnato_id = $1, pm_nome = $2
			WHERE display_id = $3 AND pm_assegnato_id IS NULL`
	} else {
		stmt = `UPDATE procedimenti SET giudice_assegnato_id = $1, giudice_nome = $2
			WHERE display_id = $3 AND giudice_assegnato_id IS NULL`
	}

	err := repository.ExecExpectOne(ctx, tx, stmt, plan.Assignee.ID, plan.Assignee.Username, plan.Existing.DisplayID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("fill case slot: %w", err)
	}

	return &Result{
		CaseID:        plan.Existing.ID,
		CaseDisplayID: plan.Existing.DisplayID,
		DocumentID:    plan.Document.ID,
		Created:       false,
	}, nil
}

func (r *repo) openCase(ctx context.Context, tx *sql.Tx, plan *Plan) (*Result, error) {
	var pmID, judgeID *uuid.UUID
	var pmName, judgeName *string

	if plan.Requirente {
		pmID, pmName = &plan.Assignee.ID, &plan.Assignee.Username
	} else {
		judgeID, judgeName = &plan.Assignee.ID, &plan.Assignee.Username
	}

	var caseID uuid.UUID
	var displayID string

	err := tx.QueryRowContext(
		ctx,
		`INSERT INTO procedimenti(id, documento_iniziale_id, titolo, tipo_procedimento, pm_assegnato_id, pm_nome, giudice_assegnato_id, giudice_nome)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, display_id`,
		uuid.New(),
		plan.Document.ID,
		plan.Document.Title,
		plan.NewCaseType,
		pmID, pmName, judgeID, judgeName,
	).Scan(&caseID, &displayID)
	if err != nil {
		// Unique index on documento_iniziale_id rejects a second case
		// opened from the same act.
		mapped := repository.MapError(err, ErrCaseNotFound, ErrAlreadyOrigin)
		if errors.Is(mapped, ErrAlreadyOrigin) {
			return nil, ErrAlreadyOrigin
		}
		return nil, fmt.Errorf("open case: %w", err)
	}

	err = repository.ExecExpectOne(
		ctx, tx,
		"UPDATE documents SET procedimento_id = $1, updated_at = now() WHERE id = $2 AND procedimento_id IS NULL",
		displayID, plan.Document.ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlreadyLinked
		}
		return nil, fmt.Errorf("link act to case: %w", err)
	}

	return &Result{
		CaseID:        caseID,
		CaseDisplayID: displayID,
		DocumentID:    plan.Document.ID,
		Created:       true,
	}, nil
}

func notificationFor(plan *Plan, res *Result) notifications.CreateCommand {
	if res.Created {
		return notifications.CreateCommand{
			UserID: plan.Assignee.ID,
			Title:  "Nuovo Procedimento Assegnato",
			Message: fmt.Sprintf("Creato nuovo fascicolo %s per: %s",
				res.CaseDisplayID, plan.Document.Title),
		}
	}
	return notifications.CreateCommand{
		UserID: plan.Assignee.ID,
		Title:  "Incarico Procedimento Esistente",
		Message: fmt.Sprintf("Ti è stato assegnato il caso %s: %s",
			res.CaseDisplayID, plan.Document.Title),
	}
}

// publish emits the change events for a committed assignment.
func (r *repo) publish(plan *Plan, res *Result, notification *notifications.Notification) {
	caseAction := realtime.ActionUpdate
	if res.Created {
		caseAction = realtime.ActionInsert
	}

	r.feed.Publish(realtime.Event{
		Table:  realtime.TableProcedimenti,
		Action: caseAction,
		ID:     res.CaseID.String(),
	})

	if res.Created {
		r.feed.Publish(realtime.Event{
			Table:  realtime.TableDocuments,
			Action: realtime.ActionUpdate,
			ID:     res.DocumentID.String(),
		})
	}

	if notification != nil {
		r.feed.Publish(realtime.Event{
			Table:  realtime.TableNotifications,
			Action: realtime.ActionInsert,
			ID:     notification.ID.String(),
			UserID: &plan.Assignee.ID,
		})
	}
}

func (r *repo) snapshots(ctx context.Context) ([]CaseSnapshot, error) {
	return repository.QueryMany(
		ctx, r.db,
		`SELECT id, display_id, documento_iniziale_id,
			pm_assegnato_id IS NOT NULL, giudice_assegnato_id IS NOT NULL
		FROM procedimenti`,
		nil,
		scanSnapshot,
	)
}

func (r *repo) snapshotByDisplayID(ctx context.Context, displayID string) (*CaseSnapshot, error) {
	s, err := repository.QueryOne(
		ctx, r.db,
		`SELECT id, display_id, documento_iniziale_id,
			pm_assegnato_id IS NOT NULL, giudice_assegnato_id IS NOT NULL
		FROM procedimenti WHERE display_id = $1`,
		[]any{displayID},
		scanSnapshot,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrCaseNotFound, ErrCaseNotFound)
	}
	return &s, nil
}

func scanSnapshot(s repository.Scanner) (CaseSnapshot, error) {
	var snap CaseSnapshot
	err := s.Scan(
		&snap.ID,
		&snap.DisplayID,
		&snap.InitialDocumentID,
		&snap.HasProsecutor,
		&snap.HasJudge,
	)
	return snap, err
}
