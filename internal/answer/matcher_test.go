package answer

import (
	"errors"
	"strings"
	"testing"
)

func TestMatch_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		spec      Spec
		want      bool
	}{
		{"exact", "O(log n)", Spec{Expected: "O(log n)"}, true},
		{"folded", "o(LOG n)", Spec{Expected: "O(log n)"}, true},
		{"trimmed", "  O(log n)  ", Spec{Expected: "O(log n)"}, true},
		{"wrong", "O(n)", Spec{Expected: "O(log n)"}, false},
		{"acceptable alternate", "logarithmic", Spec{
			Expected:   "O(log n)",
			Acceptable: []string{"logarithmic", "log n"},
		}, true},
		{"acceptable only", "yes", Spec{Acceptable: []string{"yes", "y"}}, true},
		{"empty candidate", "", Spec{Expected: "O(log n)"}, false},
		{"whitespace candidate", "   ", Spec{Expected: "O(log n)"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(tt.candidate, tt.spec)
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatch_CaseSensitive(t *testing.T) {
	spec := Spec{Expected: "SELECT", CaseSensitive: true}

	if got, _ := Match("SELECT", spec); !got {
		t.Error("exact case should match")
	}
	if got, _ := Match("select", spec); got {
		t.Error("wrong case should not match when case-sensitive")
	}
}

func TestMatch_FoldIdempotence(t *testing.T) {
	// Matching a candidate and its lowercased form must agree when folding.
	spec := Spec{Expected: "O(Log N)"}
	candidates := []string{"o(log n)", "O(LOG N)", "O(log n)", "O(n^2)"}

	for _, c := range candidates {
		a, _ := Match(c, spec)
		b, _ := Match(strings.ToLower(c), spec)
		if a != b {
			t.Errorf("Match(%q) = %v but Match(lower) = %v", c, a, b)
		}
	}
}

func TestMatch_NotConfigured(t *testing.T) {
	got, err := Match("anything", Spec{})
	if got {
		t.Error("unconfigured spec must fail closed")
	}
	if !errors.Is(err, ErrNoExpectedAnswer) {
		t.Errorf("error = %v, want ErrNoExpectedAnswer", err)
	}
}

func TestMatchSet_ExactSet(t *testing.T) {
	correct := []string{"a", "b"}

	tests := []struct {
		name      string
		candidate []string
		want      bool
	}{
		{"exact", []string{"a", "b"}, true},
		{"order independent", []string{"b", "a"}, true},
		{"subset", []string{"a"}, false},
		{"superset", []string{"a", "b", "c"}, false},
		{"disjoint", []string{"c", "d"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchSet(tt.candidate, correct, false); got != tt.want {
				t.Errorf("MatchSet(%v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatchSet_Folding(t *testing.T) {
	if !MatchSet([]string{" A ", "b"}, []string{"a", "B"}, false) {
		t.Error("trim and fold should apply to both sides")
	}
	if MatchSet([]string{"A", "b"}, []string{"a", "b"}, true) {
		t.Error("case-sensitive set match should reject wrong case")
	}
}

func TestMatchSet_DuplicateSelections(t *testing.T) {
	// Duplicates collapse; {a, a} is still just {a}.
	if MatchSet([]string{"a", "a"}, []string{"a", "b"}, false) {
		t.Error("duplicate selection must not count as the full set")
	}
	if !MatchSet([]string{"a", "a", "b"}, []string{"a", "b"}, false) {
		t.Error("duplicates of correct entries should still match")
	}
}
