// Package auth implements session resolution and permission gating.
// Bearer tokens issued by the external identity provider are verified
// with OIDC, resolved to a collaborator profile, and evaluated against
// the portal's permission gates.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/ranks"
)

// Profile is the session-scoped snapshot of a collaborator used for
// permission evaluation.
type Profile struct {
	ID         uuid.UUID      `json:"id"`
	Username   string         `json:"username"`
	Level      int            `json:"grado_gerarchico"`
	Function   ranks.Function `json:"funzione"`
	ExtraRoles []string       `json:"ruoli_extra"`
}

// Session carries the authenticated collaborator through a request.
type Session struct {
	Profile Profile
}

// HasRole reports whether the session profile carries the given extra role.
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Profile.ExtraRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Allowed evaluates a permission gate against the session. A nil
// session always denies. The gate passes when the profile level meets
// the minimum, or when the gate names an extra role the profile holds.
func (s *Session) Allowed(g Gate) bool {
	if s == nil {
		return false
	}
	if s.Profile.Level >= g.MinLevel {
		return true
	}
	return g.ExtraRole != "" && s.HasRole(g.ExtraRole)
}

type contextKey struct{}

var sessionKey contextKey

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom extracts the session from the context, or nil when the
// request was not authenticated.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey).(*Session)
	return s
}
