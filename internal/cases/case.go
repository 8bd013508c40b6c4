// Package cases implements the case registry (registro procedimenti).
// Cases are opened by the assignment workflow, carry a prosecuting or
// judging track, and collect their act file from the document registry.
package cases

import (
	"time"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/ranks"
)

// Type identifies the judicial track a case runs on.
type Type string

const (
	TypeRequirente Type = "Requirente"
	TypeGiudicante Type = "Giudicante"
)

// Status tracks the case lifecycle. Closed cases never reopen.
type Status string

const (
	StatusOpen   Status = "In Corso"
	StatusClosed Status = "Concluso"
)

// Case represents a judicial proceeding with its assigned magistrates.
type Case struct {
	ID                uuid.UUID  `json:"id"`
	DisplayID         string     `json:"display_id"`
	Title             string     `json:"titolo"`
	Type              Type       `json:"tipo_procedimento"`
	InitialDocumentID *uuid.UUID `json:"documento_iniziale_id"`
	ProsecutorID      *uuid.UUID `json:"pm_assegnato_id"`
	ProsecutorName    *string    `json:"pm_nome"`
	JudgeID           *uuid.UUID `json:"giudice_assegnato_id"`
	JudgeName         *string    `json:"giudice_nome"`
	Status            Status     `json:"stato"`
	CreatedAt         time.Time  `json:"created_at"`
}

// VisibleType resolves the hierarchical visibility filter for the open
// case listing: below level 10, single-track collaborators only see
// their own track. A nil result means no filter.
func VisibleType(level int, fn ranks.Function) *Type {
	if level >= 10 {
		return nil
	}

	switch fn {
	case ranks.FunctionRequirente:
		t := TypeRequirente
		return &t
	case ranks.FunctionGiudicante:
		t := TypeGiudicante
		return &t
	}
	return nil
}
