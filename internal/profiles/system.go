package profiles

import (
	"context"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/ranks"
)

// System defines the public contract for personnel operations.
type System interface {
	Handler() *Handler

	// List returns the full roster, highest level first.
	List(ctx context.Context) ([]Profile, error)
	Find(ctx context.Context, id uuid.UUID) (*Profile, error)
	// SetFunction updates the collaborator's judicial function and
	// notifies them of the change.
	SetFunction(ctx context.Context, id uuid.UUID, fn ranks.Function) (*Profile, error)
	// SetLevel updates the collaborator's hierarchy level and notifies
	// them with their new rank title.
	SetLevel(ctx context.Context, id uuid.UUID, level int) (*Profile, error)
	// ToggleExtraRole adds the role if absent or removes it if present,
	// notifying the collaborator either way.
	ToggleExtraRole(ctx context.Context, id uuid.UUID, role string) (*Profile, error)
}
