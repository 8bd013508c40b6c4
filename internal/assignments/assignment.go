// Package assignments implements the pending workload board: it
// computes which acts still need a magistrate, who is eligible, and
// applies an assignment as a single transaction that creates or
// updates the case, links the act, and notifies the assignee.
package assignments

import (
	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/cases"
	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/ranks"
)

// Initial-filing categories open prosecuting-track cases; everything
// else feeds the judging track.
var initialFilingCategories = []string{"Denuncia", "Ricorso"}

// InitialFiling reports whether the category opens a prosecuting-track case.
func InitialFiling(category string) bool {
	for _, c := range initialFilingCategories {
		if c == category {
			return true
		}
	}
	return false
}

// VisibleCategories resolves which act categories a collaborator may
// assign. A nil slice with ok=true means every category; ok=false
// means the board is empty for this collaborator.
func VisibleCategories(level int, fn ranks.Function) ([]string, bool) {
	prosecutorChief := (level >= 8 && fn == ranks.FunctionRequirente) || level >= 10
	appellate := (level >= 8 && fn == ranks.FunctionGiudicante) || level >= 10

	switch {
	case prosecutorChief && !appellate:
		return initialFilingCategories, true
	case appellate && !prosecutorChief:
		return []string{"Rinvio a Giudizio"}, true
	case level >= 10:
		return nil, true
	default:
		return nil, false
	}
}

// CaseSnapshot carries the slot occupancy view of a case used by the
// candidate filter and assignment planning.
type CaseSnapshot struct {
	ID                uuid.UUID
	DisplayID         string
	InitialDocumentID *uuid.UUID
	HasProsecutor     bool
	HasJudge          bool
}

// FilterCandidates returns the acts that still need an assignment:
// initial filings must not already originate a case and their linked
// case (if any) must lack a prosecutor; other acts qualify while their
// linked case lacks a judge.
func FilterCandidates(docs []documents.Document, snapshots []CaseSnapshot) []documents.Document {
	byDisplay := make(map[string]CaseSnapshot, len(snapshots))
	origins := make(map[uuid.UUID]bool)

	for _, s := range snapshots {
		byDisplay[s.DisplayID] = s
		if s.InitialDocumentID != nil {
			origins[*s.InitialDocumentID] = true
		}
	}

	candidates := make([]documents.Document, 0, len(docs))
	for _, doc := range docs {
		if isCandidate(doc, byDisplay, origins) {
			candidates = append(candidates, doc)
		}
	}
	return candidates
}

func isCandidate(doc documents.Document, byDisplay map[string]CaseSnapshot, origins map[uuid.UUID]bool) bool {
	if InitialFiling(doc.Category) {
		if origins[doc.ID] {
			return false
		}
		if doc.ProcedimentoID != nil {
			if s, ok := byDisplay[*doc.ProcedimentoID]; ok && s.HasProsecutor {
				return false
			}
		}
		return true
	}

	if doc.ProcedimentoID != nil {
		if s, ok := byDisplay[*doc.ProcedimentoID]; ok && s.HasJudge {
			return false
		}
	}
	return true
}

// Eligible reports whether a collaborator's function fits the track
// the act requires: prosecuting for initial filings, judging otherwise.
func Eligible(fn ranks.Function, category string) bool {
	if InitialFiling(category) {
		return fn.Prosecutes()
	}
	return fn.Judges()
}

// Assignee is the roster entry offered for an assignment.
type Assignee struct {
	ID       uuid.UUID      `json:"id"`
	Username string         `json:"username"`
	Level    int            `json:"grado_gerarchico"`
	Function ranks.Function `json:"funzione"`
}

// Plan is the computed outcome of an assignment before it is applied.
// When Existing is nil a new case of NewCaseType is opened with the
// act as its origin; otherwise the act's linked case gets its open
// slot filled.
type Plan struct {
	Document    documents.Document
	Assignee    Assignee
	Requirente  bool
	Existing    *CaseSnapshot
	NewCaseType cases.Type
}

// BuildPlan validates an assignment and decides its shape. Slot
// occupancy is checked again inside the applying transaction; this
// pre-check rejects requests that are already stale.
func BuildPlan(doc documents.Document, assignee Assignee, existing *CaseSnapshot) (*Plan, error) {
	if !Eligible(assignee.Function, doc.Category) {
		return nil, ErrNotEligible
	}

	requirente := InitialFiling(doc.Category)

	plan := &Plan{
		Document:   doc,
		Assignee:   assignee,
		Requirente: requirente,
		Existing:   existing,
	}

	if existing != nil {
		if requirente && existing.HasProsecutor {
			return nil, ErrSlotTaken
		}
		if !requirente && existing.HasJudge {
			return nil, ErrSlotTaken
		}
		return plan, nil
	}

	if requirente {
		plan.NewCaseType = cases.TypeRequirente
	} else {
		plan.NewCaseType = cases.TypeGiudicante
	}
	return plan, nil
}
