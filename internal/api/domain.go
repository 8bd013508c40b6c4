package api

import (
	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/assignments"
	"github.com/lasville/giustizia/internal/auth"
	"github.com/lasville/giustizia/internal/cases"
	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/notifications"
	"github.com/lasville/giustizia/internal/profiles"
	"github.com/lasville/giustizia/internal/realtime"
	"github.com/lasville/giustizia/internal/workload"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Auth          auth.System
	Realtime      realtime.System
	Notifications notifications.System
	Profiles      profiles.System
	Documents     documents.System
	Cases         cases.System
	Assignments   assignments.System
	Workload      workload.System
}

// NewDomain creates all domain systems from the API runtime. Personnel
// updates evict session cache entries through a late-bound hook: the
// auth system needs a profile resolver, and the profiles system needs
// the auth cache, so neither package imports the other.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()
	hub := realtime.New(runtime.Logger)

	notifySystem := notifications.New(db, hub, runtime.Logger)

	var authSystem auth.System
	invalidate := func(id uuid.UUID) {
		if authSystem != nil {
			authSystem.Invalidate(id)
		}
	}

	profileSystem := profiles.New(db, notifySystem, hub, invalidate, runtime.Logger)
	authSystem = auth.New(runtime.Auth, &profilesResolver{roster: profileSystem}, runtime.Logger)

	docSystem := documents.New(db, runtime.Storage, hub, runtime.Logger, runtime.Pagination)
	caseSystem := cases.New(db, docSystem, hub, runtime.Logger)
	assignSystem := assignments.New(db, docSystem, profileSystem, notifySystem, hub, runtime.Logger)
	workloadSystem := workload.New(profileSystem, caseSystem, docSystem, runtime.Logger)

	return &Domain{
		Auth:          authSystem,
		Realtime:      hub,
		Notifications: notifySystem,
		Profiles:      profileSystem,
		Documents:     docSystem,
		Cases:         caseSystem,
		Assignments:   assignSystem,
		Workload:      workloadSystem,
	}
}
