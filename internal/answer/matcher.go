// Package answer compares learner answers against expected values.
//
// Matching is deliberately dumb: trim, optionally fold case, compare.
// Anything semantic (explanations, code correctness) belongs to the AI judge
// or the sandbox runner, not here.
package answer

import (
	"errors"
	"strings"
)

// ErrNoExpectedAnswer indicates the kata or question carries neither an
// expected answer nor any acceptable answers. The matcher fails closed and
// the caller must surface this as a configuration problem.
var ErrNoExpectedAnswer = errors.New("no expected or acceptable answers configured")

// Spec describes what counts as a correct scalar answer.
type Spec struct {
	// Expected is the primary correct answer. May be empty when Acceptable
	// carries the full answer set.
	Expected string

	// Acceptable is an OR-set of alternate correct strings.
	Acceptable []string

	// CaseSensitive disables case folding during comparison.
	CaseSensitive bool
}

// Match reports whether candidate matches the spec.
//
// The candidate is trimmed and, unless the spec is case-sensitive, compared
// case-insensitively against Expected and every Acceptable entry. An empty
// candidate never matches, checked before any normalization. A spec with no
// answers at all returns false along with ErrNoExpectedAnswer.
func Match(candidate string, spec Spec) (bool, error) {
	if strings.TrimSpace(candidate) == "" {
		return false, nil
	}
	if spec.Expected == "" && len(spec.Acceptable) == 0 {
		return false, ErrNoExpectedAnswer
	}

	if spec.Expected != "" && equal(candidate, spec.Expected, spec.CaseSensitive) {
		return true, nil
	}
	for _, alt := range spec.Acceptable {
		if equal(candidate, alt, spec.CaseSensitive) {
			return true, nil
		}
	}
	return false, nil
}

// MatchSet reports whether the candidate selection is exactly the correct
// set: every correct entry chosen and nothing else. Subsets and supersets
// earn no credit. An empty candidate set never matches.
func MatchSet(candidate, correct []string, caseSensitive bool) bool {
	if len(candidate) == 0 {
		return false
	}

	want := make(map[string]bool, len(correct))
	for _, c := range correct {
		want[normalize(c, caseSensitive)] = true
	}

	got := make(map[string]bool, len(candidate))
	for _, c := range candidate {
		got[normalize(c, caseSensitive)] = true
	}

	if len(got) != len(want) {
		return false
	}
	for k := range got {
		if !want[k] {
			return false
		}
	}
	return true
}

func equal(a, b string, caseSensitive bool) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func normalize(s string, caseSensitive bool) string {
	s = strings.TrimSpace(s)
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}
