package workload

import "context"

// System defines the public contract for the workload view.
type System interface {
	Handler() *Handler

	// Overview aggregates the full roster's caseload, active case files
	// included.
	Overview(ctx context.Context) ([]Entry, error)
}
