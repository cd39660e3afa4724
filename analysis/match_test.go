package analysis

import "testing"

func TestMatchCategory(t *testing.T) {
	names := []string{"Tech & Reviews", "Food & Cooking"}

	tests := []struct {
		name   string
		label  string
		want   string
		wantOK bool
	}{
		{"label contained in candidate", "tech", "Tech & Reviews", true},
		{"candidate contained in label", "my food & cooking favorites", "Food & Cooking", true},
		{"case-insensitive", "FOOD", "Food & Cooking", true},
		{"whitespace trimmed", "  tech  ", "Tech & Reviews", true},
		{"no match", "Gaming", "", false},
		{"empty label", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchCategory(names, tt.label)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("MatchCategory(%v, %q) = (%q, %v), want (%q, %v)",
					names, tt.label, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatchCategoryFirstMatchWins(t *testing.T) {
	// Both candidates contain "a"; the scan is deterministic over input order.
	names := []string{"Art & Design", "Gaming"}
	got, ok := MatchCategory(names, "a")
	if !ok || got != "Art & Design" {
		t.Errorf("MatchCategory = (%q, %v), want (Art & Design, true)", got, ok)
	}
}
