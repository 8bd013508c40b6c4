package cases

import (
	"github.com/lasville/giustizia/pkg/query"
	"github.com/lasville/giustizia/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "procedimenti", "pr").
	Project("id", "ID").
	Project("display_id", "DisplayID").
	Project("titolo", "Title").
	Project("tipo_procedimento", "Type").
	Project("documento_iniziale_id", "InitialDocumentID").
	Project("pm_assegnato_id", "ProsecutorID").
	Project("pm_nome", "ProsecutorName").
	Project("giudice_assegnato_id", "JudgeID").
	Project("giudice_nome", "JudgeName").
	Project("stato", "Status").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

func scanCase(s repository.Scanner) (Case, error) {
	var c Case
	err := s.Scan(
		&c.ID,
		&c.DisplayID,
		&c.Title,
		&c.Type,
		&c.InitialDocumentID,
		&c.ProsecutorID,
		&c.ProsecutorName,
		&c.JudgeID,
		&c.JudgeName,
		&c.Status,
		&c.CreatedAt,
	)
	return c, err
}
