package documents

import (
	"net/url"

	"github.com/lasville/giustizia/pkg/query"
	"github.com/lasville/giustizia/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("display_id", "DisplayID").
	Project("title", "Title").
	Project("category", "Category").
	Project("description", "Description").
	Project("procedimento_id", "ProcedimentoID").
	Project("citizen_a", "CitizenA").
	Project("citizen_b", "CitizenB").
	Project("created_by_id", "CreatedByID").
	Project("created_by_name", "CreatedByName").
	Project("attachment_key", "AttachmentKey").
	Project("attachment_type", "AttachmentType").
	Project("attachment_size", "AttachmentSize").
	Project("page_count", "PageCount").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for act queries.
// Nil fields are ignored. Category uses exact matching; Linked selects
// acts with or without a case reference.
type Filters struct {
	Category *string `json:"category,omitempty"`
	Linked   *bool   `json:"linked,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereEquals("Category", f.Category)

	if f.Linked != nil {
		if *f.Linked {
			b.WhereRaw("d.procedimento_id IS NOT NULL")
		} else {
			b.WhereRaw("d.procedimento_id IS NULL")
		}
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	if l := values.Get("linked"); l != "" {
		linked := l == "true"
		f.Linked = &linked
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.DisplayID,
		&d.Title,
		&d.Category,
		&d.Description,
		&d.ProcedimentoID,
		&d.CitizenA,
		&d.CitizenB,
		&d.CreatedByID,
		&d.CreatedByName,
		&d.AttachmentKey,
		&d.AttachmentType,
		&d.AttachmentSize,
		&d.PageCount,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}
