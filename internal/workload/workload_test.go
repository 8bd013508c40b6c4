package workload

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/cases"
	"github.com/lasville/giustizia/internal/documents"
	"github.com/lasville/giustizia/internal/profiles"
	"github.com/lasville/giustizia/internal/ranks"
)

func caseFor(personID uuid.UUID, prosecuting bool, status cases.Status) cases.Case {
	c := cases.Case{
		ID:        uuid.New(),
		DisplayID: "PROC-" + uuid.NewString()[:4],
		Status:    status,
	}
	if prosecuting {
		c.Type = cases.TypeRequirente
		c.ProsecutorID = &personID
	} else {
		c.Type = cases.TypeGiudicante
		c.JudgeID = &personID
	}
	return c
}

func TestBuildCounts(t *testing.T) {
	pm := profiles.Profile{ID: uuid.New(), Username: "rossi", Level: 8, Function: ranks.FunctionRequirente}
	judge := profiles.Profile{ID: uuid.New(), Username: "bianchi", Level: 8, Function: ranks.FunctionGiudicante}
	idle := profiles.Profile{ID: uuid.New(), Username: "verdi", Level: 4, Function: ranks.FunctionNessuna}

	registry := []cases.Case{
		caseFor(pm.ID, true, cases.StatusOpen),
		caseFor(pm.ID, true, cases.StatusOpen),
		caseFor(pm.ID, true, cases.StatusClosed),
		caseFor(judge.ID, false, cases.StatusClosed),
	}

	entries := Build([]profiles.Profile{pm, judge, idle}, registry)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	byUser := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byUser[e.Username] = e
	}

	got := byUser["rossi"]
	if got.Total != 3 || got.Completed != 1 || got.Active != 2 {
		t.Errorf("rossi counts = %d/%d/%d, expected 3/1/2", got.Total, got.Completed, got.Active)
	}
	if got.Completion != 33 {
		t.Errorf("rossi completion = %d, expected 33", got.Completion)
	}
	if len(got.ActiveList) != 2 {
		t.Errorf("rossi active list = %d, expected 2", len(got.ActiveList))
	}

	got = byUser["bianchi"]
	if got.Total != 1 || got.Completed != 1 || got.Completion != 100 {
		t.Errorf("bianchi counts = %d/%d/%d%%, expected 1/1/100%%", got.Total, got.Completed, got.Completion)
	}

	got = byUser["verdi"]
	if got.Total != 0 || got.Completion != 0 {
		t.Errorf("verdi counts = %d/%d%%, expected 0/0%%", got.Total, got.Completion)
	}
	if got.ActiveList == nil {
		t.Error("expected empty active list, got nil")
	}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		completed int
		total     int
		expected  int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
	}

	for _, tc := range tests {
		if got := completion(tc.completed, tc.total); got != tc.expected {
			t.Errorf("completion(%d, %d) = %d, expected %d", tc.completed, tc.total, got, tc.expected)
		}
	}
}

func TestDistinctActiveCases(t *testing.T) {
	shared := caseFor(uuid.New(), true, cases.StatusOpen)
	own := caseFor(uuid.New(), false, cases.StatusOpen)

	entries := []Entry{
		{ActiveList: []ActiveCase{{Case: shared}, {Case: own}}},
		{ActiveList: []ActiveCase{{Case: shared}}},
	}

	distinct := distinctActiveCases(entries)
	if len(distinct) != 2 {
		t.Fatalf("expected 2 distinct cases, got %d", len(distinct))
	}

	seen := make(map[string]bool)
	for _, c := range distinct {
		if seen[c.DisplayID] {
			t.Errorf("case %s listed twice", c.DisplayID)
		}
		seen[c.DisplayID] = true
	}
}

type stubDocs struct {
	documents.System
	listForCase func(ctx context.Context, displayID string, originID *uuid.UUID) ([]documents.Document, error)
}

func (s *stubDocs) ListForCase(ctx context.Context, displayID string, originID *uuid.UUID) ([]documents.Document, error) {
	return s.listForCase(ctx, displayID, originID)
}

func TestAttachFilesManyCases(t *testing.T) {
	var calls atomic.Int32
	docs := &stubDocs{
		listForCase: func(_ context.Context, displayID string, _ *uuid.UUID) ([]documents.Document, error) {
			calls.Add(1)
			return []documents.Document{{DisplayID: "DOC-" + displayID}}, nil
		},
	}

	const total = 2000
	shared := make([]ActiveCase, 0, total)
	for i := range total {
		shared = append(shared, ActiveCase{Case: cases.Case{
			ID:        uuid.New(),
			DisplayID: fmt.Sprintf("PROC-%04d", i),
			Status:    cases.StatusOpen,
		}})
	}
	entries := []Entry{{ActiveList: shared}, {ActiveList: shared}}

	r := &repo{docs: docs, logger: slog.Default()}
	if err := r.attachFiles(context.Background(), entries); err != nil {
		t.Fatalf("attach files failed: %v", err)
	}

	if got := calls.Load(); got != total {
		t.Errorf("expected one fetch per distinct case, got %d calls for %d cases", got, total)
	}
	for i := range entries {
		for _, ac := range entries[i].ActiveList {
			if len(ac.File) != 1 {
				t.Fatalf("case %s missing its file", ac.Case.DisplayID)
			}
		}
	}
}

func TestAssigned(t *testing.T) {
	id := uuid.New()
	other := uuid.New()

	if !assigned(cases.Case{ProsecutorID: &id}, id) {
		t.Error("prosecutor slot should count")
	}
	if !assigned(cases.Case{JudgeID: &id}, id) {
		t.Error("judge slot should count")
	}
	if assigned(cases.Case{ProsecutorID: &other, JudgeID: &other}, id) {
		t.Error("unrelated case should not count")
	}
	if assigned(cases.Case{}, id) {
		t.Error("unassigned case should not count")
	}
}
