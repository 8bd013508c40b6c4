package documents

import "testing"

func TestCategoryVocabulary(t *testing.T) {
	if len(Categories) != 39 {
		t.Fatalf("expected 39 categories, got %d", len(Categories))
	}

	seen := make(map[string]bool)
	for _, c := range Categories {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true

		if !ValidCategory(c) {
			t.Errorf("category %q should be valid", c)
		}
	}

	if ValidCategory("Sentenza") {
		t.Error("unknown category should be invalid")
	}
}

func TestPartyLabels(t *testing.T) {
	tests := []struct {
		category string
		a        string
		b        string
	}{
		{"Denuncia", "Denunciante", "Denunciato"},
		{"Ricorso", "Ricorrente", "Resistente"},
		{"Rinvio a Giudizio", "Imputato", ""},
		{"Contratto Lavoro", "Datore di Lavoro", "Lavoratore"},
		{"Testamento", "Testatore", ""},
		{"Richiesta Interna", "", ""},
		{"Verbale", "", ""},
		{"Udienza Confermativa", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			labels := PartyLabels(tc.category)
			if labels.A != tc.a || labels.B != tc.b {
				t.Errorf("PartyLabels(%q) = %+v, expected a=%q b=%q",
					tc.category, labels, tc.a, tc.b)
			}
		})
	}
}

func TestEveryLabeledCategoryIsKnown(t *testing.T) {
	for category := range partyLabels {
		if !ValidCategory(category) {
			t.Errorf("label table references unknown category %q", category)
		}
	}
}

func TestPartyLabelShape(t *testing.T) {
	// A second party label always implies a first.
	for category, labels := range partyLabels {
		if labels.B != "" && labels.A == "" {
			t.Errorf("category %q declares party b without party a", category)
		}
	}
}
