// Package profiles implements personnel management for the portal.
// It provides types, data access, and business logic for the collaborator
// roster: hierarchy levels, judicial functions, and extra roles.
package profiles

import (
	"time"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/ranks"
)

// Profile represents a collaborator in the magistratura hierarchy.
type Profile struct {
	ID         uuid.UUID      `json:"id"`
	Username   string         `json:"username"`
	Level      int            `json:"grado_gerarchico"`
	Function   ranks.Function `json:"funzione"`
	ExtraRoles []string       `json:"ruoli_extra"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Title resolves the profile's display title.
func (p *Profile) Title() string {
	return ranks.Title(p.Level, p.Function)
}

// ExtraRoleVocabulary lists the assignable extra roles, in the order
// the personnel screen renders them.
var ExtraRoleVocabulary = []string{
	"GAM",
	"Docente Accademico",
	"Docente Avvocatura",
	"Presidente CC",
	"Vice Presidente CC",
	"Giudice CC",
	"Avvocato",
	"Aspirante Avvocato",
}

// ValidExtraRole reports whether role belongs to the extra role vocabulary.
func ValidExtraRole(role string) bool {
	for _, r := range ExtraRoleVocabulary {
		if r == role {
			return true
		}
	}
	return false
}
