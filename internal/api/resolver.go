package api

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/auth"
	"github.com/lasville/giustizia/internal/profiles"
)

// profilesResolver adapts the personnel store to the auth resolver
// contract, keeping the auth package free of a profiles dependency.
type profilesResolver struct {
	roster profiles.System
}

func (r *profilesResolver) Resolve(ctx context.Context, id uuid.UUID) (*auth.Profile, error) {
	p, err := r.roster.Find(ctx, id)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return nil, auth.ErrProfileNotFound
		}
		return nil, err
	}

	return &auth.Profile{
		ID:         p.ID,
		Username:   p.Username,
		Level:      p.Level,
		Function:   p.Function,
		ExtraRoles: p.ExtraRoles,
	}, nil
}
