package cases

import (
	"context"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/ranks"
)

// System defines the public contract for case registry operations.
type System interface {
	Handler() *Handler

	// ListOpen returns active cases visible to a collaborator at the
	// given level and function, newest first.
	ListOpen(ctx context.Context, level int, fn ranks.Function) ([]Case, error)
	// ListAll returns every case regardless of status or viewer.
	ListAll(ctx context.Context) ([]Case, error)
	Find(ctx context.Context, id uuid.UUID) (*Case, error)
	// File returns the acts belonging to the case: those referencing
	// its display id plus the originating act.
	File(ctx context.Context, id uuid.UUID) ([]documents.Document, error)
	// Close transitions the case to Concluso. Closing a closed case
	// is a conflict; cases never reopen.
	Close(ctx context.Context, id uuid.UUID) (*Case, error)
}
