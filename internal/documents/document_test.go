package documents

import (
	"errors"
	"net/url"
	"testing"
)

func TestCreateCommandValidate(t *testing.T) {
	tests := []struct {
		name     string
		cmd      CreateCommand
		expected error
	}{
		{
			name: "valid two-party act",
			cmd: CreateCommand{
				Title:    "Denuncia contro ignoti",
				Category: "Denuncia",
				CitizenA: "Mario Rossi",
				CitizenB: "Luigi Bianchi",
			},
		},
		{
			name: "valid single-party act",
			cmd: CreateCommand{
				Title:    "Rinvio a giudizio",
				Category: "Rinvio a Giudizio",
				CitizenA: "Mario Rossi",
			},
		},
		{
			name: "valid act without parties",
			cmd: CreateCommand{
				Title:    "Richiesta interna",
				Category: "Richiesta Interna",
			},
		},
		{
			name: "missing title",
			cmd: CreateCommand{
				Title:    "   ",
				Category: "Denuncia",
			},
			expected: ErrMissingTitle,
		},
		{
			name: "unknown category",
			cmd: CreateCommand{
				Title:    "Atto",
				Category: "Sentenza",
			},
			expected: ErrInvalidCategory,
		},
		{
			name: "party a not declared",
			cmd: CreateCommand{
				Title:    "Richiesta interna",
				Category: "Richiesta Interna",
				CitizenA: "Mario Rossi",
			},
			expected: ErrPartyNotAllowed,
		},
		{
			name: "party b not declared for single-party category",
			cmd: CreateCommand{
				Title:    "Rinvio",
				Category: "Rinvio a Giudizio",
				CitizenA: "Mario Rossi",
				CitizenB: "Luigi Bianchi",
			},
			expected: ErrPartyNotAllowed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.expected == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestCreateCommandTrims(t *testing.T) {
	cmd := CreateCommand{
		Title:    "  Denuncia  ",
		Category: "Denuncia",
		CitizenA: " Mario Rossi ",
		CitizenB: "   ",
	}

	if err := cmd.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cmd.Title != "Denuncia" {
		t.Errorf("title not trimmed: %q", cmd.Title)
	}
	if cmd.CitizenA != "Mario Rossi" {
		t.Errorf("citizen_a not trimmed: %q", cmd.CitizenA)
	}
	if cmd.CitizenB != "" {
		t.Errorf("blank citizen_b should trim to empty, got %q", cmd.CitizenB)
	}
}

func TestNullable(t *testing.T) {
	if nullable("") != nil {
		t.Error("blank string should map to nil")
	}

	v := nullable("PROC-0001")
	if v == nil || *v != "PROC-0001" {
		t.Errorf("expected pointer to value, got %v", v)
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("category", "Denuncia")
	values.Set("linked", "false")

	f := FiltersFromQuery(values)

	if f.Category == nil || *f.Category != "Denuncia" {
		t.Errorf("unexpected category filter: %v", f.Category)
	}
	if f.Linked == nil || *f.Linked {
		t.Errorf("unexpected linked filter: %v", f.Linked)
	}

	empty := FiltersFromQuery(url.Values{})
	if empty.Category != nil || empty.Linked != nil {
		t.Errorf("expected empty filters, got %+v", empty)
	}
}
