// Package workload implements the per-person workload view: how many
// cases each collaborator carries, how many they have concluded, and
// which ones are still running.
package workload

import (
	"math"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/cases"
	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/profiles"
	"github.com/lasville/giustizia/internal/ranks"
)

// ActiveCase pairs a running case with its act file.
type ActiveCase struct {
	Case cases.Case           `json:"procedimento"`
	File []documents.Document `json:"fascicolo"`
}

// Entry aggregates one collaborator's caseload.
type Entry struct {
	ID         uuid.UUID      `json:"id"`
	Username   string         `json:"username"`
	Title      string         `json:"titolo"`
	Level      int            `json:"grado_gerarchico"`
	Function   ranks.Function `json:"funzione"`
	Total      int            `json:"totali"`
	Completed  int            `json:"conclusi"`
	Active     int            `json:"attivi"`
	Completion int            `json:"completamento"`
	ActiveList []ActiveCase   `json:"procedimenti_attivi"`
}

// Build aggregates the roster against the full case registry. A case
// counts toward a collaborator when they hold its prosecutor or judge
// slot. Act files on active cases are filled in by the repository.
func Build(roster []profiles.Profile, registry []cases.Case) []Entry {
	entries := make([]Entry, 0, len(roster))

	for _, p := range roster {
		entry := Entry{
			ID:         p.ID,
			Username:   p.Username,
			Title:      p.Title(),
			Level:      p.Level,
			Function:   p.Function,
			ActiveList: []ActiveCase{},
		}

		for _, c := range registry {
			if !assigned(c, p.ID) {
				continue
			}
			entry.Total++
			if c.Status == cases.StatusClosed {
				entry.Completed++
			} else {
				entry.Active++
				entry.ActiveList = append(entry.ActiveList, ActiveCase{Case: c, File: []documents.Document{}})
			}
		}

		entry.Completion = completion(entry.Completed, entry.Total)
		entries = append(entries, entry)
	}

	return entries
}

// distinctActiveCases returns each running case exactly once, however
// many entries it appears under.
func distinctActiveCases(entries []Entry) []cases.Case {
	seen := make(map[string]bool)
	var distinct []cases.Case

	for i := range entries {
		for _, ac := range entries[i].ActiveList {
			if seen[ac.Case.DisplayID] {
				continue
			}
			seen[ac.Case.DisplayID] = true
			distinct = append(distinct, ac.Case)
		}
	}
	return distinct
}

func assigned(c cases.Case, id uuid.UUID) bool {
	if c.ProsecutorID != nil && *c.ProsecutorID == id {
		return true
	}
	return c.JudgeID != nil && *c.JudgeID == id
}

// completion is the percentage of concluded cases, rounded. A
// collaborator with no cases sits at zero.
func completion(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
