package profiles

import (
	"encoding/json"

	"github.com/lasville/giustizia/pkg/query"
	"github.com/lasville/giustizia/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "profiles", "p").
	Project("id", "ID").
	Project("username", "Username").
	Project("grado_gerarchico", "Level").
	Project("funzione", "Function").
	Project("ruoli_extra", "ExtraRoles").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "Level",
	Descending: true,
}

// ruoli_extra is stored as jsonb and decoded during scanning.
func scanProfile(s repository.Scanner) (Profile, error) {
	var p Profile
	var roles []byte

	err := s.Scan(
		&p.ID,
		&p.Username,
		&p.Level,
		&p.Function,
		&roles,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}

	if len(roles) > 0 {
		if err := json.Unmarshal(roles, &p.ExtraRoles); err != nil {
			return p, err
		}
	}
	if p.ExtraRoles == nil {
		p.ExtraRoles = []string{}
	}

	return p, nil
}
