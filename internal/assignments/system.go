package assignments

import (
	"context"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/ranks"
)

// Result reports an applied assignment.
type Result struct {
	CaseID        uuid.UUID `json:"case_id"`
	CaseDisplayID string    `json:"case_display_id"`
	DocumentID    uuid.UUID `json:"document_id"`
	Created       bool      `json:"created"`
}

// System defines the public contract for the assignment workflow.
type System interface {
	Handler() *Handler

	// Board returns the acts awaiting assignment that are visible to a
	// collaborator at the given level and function.
	Board(ctx context.Context, level int, fn ranks.Function) ([]documents.Document, error)
	// Candidates returns the roster members whose function fits the
	// act's track, ordered by username.
	Candidates(ctx context.Context, documentID uuid.UUID) ([]Assignee, error)
	// Assign applies an assignment atomically: it fills the open slot
	// of the linked case, or opens a new case with the act as origin,
	// links the act, and notifies the assignee.
	Assign(ctx context.Context, documentID, assigneeID uuid.UUID) (*Result, error)
}
