package workload

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lasville/giustizia/internal/cases"
	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/profiles"
)

type repo struct {
	roster   profiles.System
	registry cases.System
	docs     documents.System
	logger   *slog.Logger
}

// New creates a workload system over the roster, case registry, and
// document registry.
func New(roster profiles.System, registry cases.System, docs documents.System, logger *slog.Logger) System {
	return &repo{
		roster:   roster,
		registry: registry,
		docs:     docs,
		logger:   logger.With("system", "workload"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Overview(ctx context.Context) ([]Entry, error) {
	var (
		roster   []profiles.Profile
		registry []cases.Case
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = r.roster.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		registry, err = r.registry.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := Build(roster, registry)
	if err := r.attachFiles(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// attachFiles loads each active case's act file. Files are fetched
// once per distinct case and shared across entries.
func (r *repo) attachFiles(ctx context.Context, entries []Entry) error {
	var mu sync.Mutex
	files := make(map[string][]documents.Document)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	// Dedupe before spawning so the workers are the only map writers.
	for _, c := range distinctActiveCases(entries) {
		g.Go(func() error {
			file, err := r.docs.ListForCase(gctx, c.DisplayID, c.InitialDocumentID)
			if err != nil {
				return err
			}
			mu.Lock()
			files[c.DisplayID] = file
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i := range entries {
		for j := range entries[i].ActiveList {
			if file := files[entries[i].ActiveList[j].Case.DisplayID]; file != nil {
				entries[i].ActiveList[j].File = file
			}
		}
	}
	return nil
}
