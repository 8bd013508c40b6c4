// Package documents implements the act registry for the portal.
// It provides types, data access, and business logic for protocol
// registration, party validation, attachment storage, and search.
package documents

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document represents a registered act with its metadata and optional
// blob attachment.
type Document struct {
	ID             uuid.UUID `json:"id"`
	DisplayID      string    `json:"display_id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Description    *string   `json:"description"`
	ProcedimentoID *string   `json:"procedimento_id"`
	CitizenA       *string   `json:"citizen_a"`
	CitizenB       *string   `json:"citizen_b"`
	CreatedByID    uuid.UUID `json:"created_by_id"`
	CreatedByName  string    `json:"created_by_name"`
	AttachmentKey  *string   `json:"attachment_key,omitempty"`
	AttachmentType *string   `json:"attachment_type,omitempty"`
	AttachmentSize *int64    `json:"attachment_size,omitempty"`
	PageCount      *int      `json:"page_count,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Author identifies the collaborator registering an act.
type Author struct {
	ID   uuid.UUID
	Name string
}

// CreateCommand carries the data for a new act. Optional fields left
// blank are stored as NULL.
type CreateCommand struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	ProcedimentoID string `json:"procedimento_id"`
	CitizenA       string `json:"citizen_a"`
	CitizenB       string `json:"citizen_b"`
}

// Validate checks mandatory fields and rejects party values the
// category does not declare.
func (c *CreateCommand) Validate() error {
	c.trim()

	if c.Title == "" {
		return ErrMissingTitle
	}
	if !ValidCategory(c.Category) {
		return ErrInvalidCategory
	}

	labels := PartyLabels(c.Category)
	if c.CitizenA != "" && labels.A == "" {
		return ErrPartyNotAllowed
	}
	if c.CitizenB != "" && labels.B == "" {
		return ErrPartyNotAllowed
	}

	return nil
}

func (c *CreateCommand) trim() {
	c.Title = strings.TrimSpace(c.Title)
	c.Category = strings.TrimSpace(c.Category)
	c.Description = strings.TrimSpace(c.Description)
	c.ProcedimentoID = strings.TrimSpace(c.ProcedimentoID)
	c.CitizenA = strings.TrimSpace(c.CitizenA)
	c.CitizenB = strings.TrimSpace(c.CitizenB)
}

// UpdateCommand carries replacement data for an existing act. The same
// validation as CreateCommand applies.
type UpdateCommand struct {
	CreateCommand
}

// nullable converts a blank string to NULL for storage.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
