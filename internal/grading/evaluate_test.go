package grading

import (
	"strings"
	"testing"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

func shortformQuestion(expected string, caseSensitive bool) kata.Question {
	return kata.Question{
		ID:   "q1",
		Kind: kata.KindShortform,
		Shortform: &kata.ShortformConfig{
			ExpectedAnswer: expected,
			CaseSensitive:  caseSensitive,
		},
	}
}

func mcQuestion(correct []string, allowMultiple bool) kata.Question {
	return kata.Question{
		ID:   "q1",
		Kind: kata.KindMultipleChoice,
		MultipleChoice: &kata.MultipleChoiceConfig{
			Options: []kata.Option{
				{ID: "a", Text: "Option A"},
				{ID: "b", Text: "Option B"},
				{ID: "c", Text: "Option C"},
			},
			CorrectAnswers: correct,
			AllowMultiple:  allowMultiple,
		},
	}
}

func TestEvaluateQuestion_Shortform(t *testing.T) {
	q := shortformQuestion("O(log n)", false)

	qr := EvaluateQuestion(q, Answer{Text: "o(LOG n)"})
	if !qr.Passed {
		t.Errorf("case-folded match should pass: %s", qr.Message)
	}
	if qr.PointsEarned != 1 || qr.PointsPossible != 1 {
		t.Errorf("points = %v/%v, want 1/1", qr.PointsEarned, qr.PointsPossible)
	}

	qr = EvaluateQuestion(q, Answer{Text: "O(n)"})
	if qr.Passed {
		t.Error("wrong answer should fail")
	}
	if qr.PointsEarned != 0 {
		t.Errorf("failed question earned %v points, want 0", qr.PointsEarned)
	}
	if !strings.Contains(qr.Message, "O(log n)") {
		t.Errorf("failure message should show the expected answer, got %q", qr.Message)
	}
}

func TestEvaluateQuestion_NoPartialCredit(t *testing.T) {
	q := shortformQuestion("yes", false)
	q.Points = 10

	qr := EvaluateQuestion(q, Answer{Text: "yes"})
	if qr.PointsEarned != 10 {
		t.Errorf("earned = %v, want full 10", qr.PointsEarned)
	}

	qr = EvaluateQuestion(q, Answer{Text: "no"})
	if qr.PointsEarned != 0 {
		t.Errorf("earned = %v, want 0", qr.PointsEarned)
	}
}

func TestEvaluateQuestion_EmptyAnswer(t *testing.T) {
	q := shortformQuestion("yes", false)
	qr := EvaluateQuestion(q, Answer{})
	if qr.Passed {
		t.Error("empty answer must fail")
	}
}

func TestEvaluateQuestion_MultipleChoice(t *testing.T) {
	tests := []struct {
		name       string
		question   kata.Question
		selections []string
		want       bool
	}{
		{"exact set", mcQuestion([]string{"a", "b"}, true), []string{"a", "b"}, true},
		{"subset", mcQuestion([]string{"a", "b"}, true), []string{"a"}, false},
		{"superset", mcQuestion([]string{"a", "b"}, true), []string{"a", "b", "c"}, false},
		{"single correct", mcQuestion([]string{"b"}, false), []string{"b"}, true},
		{"multi select rejected", mcQuestion([]string{"b"}, false), []string{"a", "b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qr := EvaluateQuestion(tt.question, Answer{Selections: tt.selections})
			if qr.Passed != tt.want {
				t.Errorf("Passed = %v, want %v (%s)", qr.Passed, tt.want, qr.Message)
			}
		})
	}
}

func TestEvaluateQuestion_MalformedMultipleChoice(t *testing.T) {
	noOptions := kata.Question{
		ID:   "q1",
		Kind: kata.KindMultipleChoice,
		MultipleChoice: &kata.MultipleChoiceConfig{
			CorrectAnswers: []string{"a"},
		},
	}
	qr := EvaluateQuestion(noOptions, Answer{Selections: []string{"a"}})
	if qr.Passed {
		t.Error("question without options must fail")
	}
	if qr.Message == "" {
		t.Error("malformed question needs a diagnostic message")
	}

	danglingKey := mcQuestion([]string{"z"}, false)
	qr = EvaluateQuestion(danglingKey, Answer{Selections: []string{"a"}})
	if qr.Passed {
		t.Error("dangling correct-answer reference must fail")
	}
	if !strings.Contains(qr.Message, "z") {
		t.Errorf("diagnostic should name the dangling id, got %q", qr.Message)
	}
}

func TestEvaluateQuestion_Explanation(t *testing.T) {
	q := kata.Question{ID: "q1", Kind: kata.KindExplanation, MinWords: 5}

	qr := EvaluateQuestion(q, Answer{Text: "one two three four five six"})
	if !qr.Passed {
		t.Errorf("six words should pass a 5-word minimum: %s", qr.Message)
	}

	qr = EvaluateQuestion(q, Answer{Text: "too short"})
	if qr.Passed {
		t.Error("two words should fail a 5-word minimum")
	}
}

func TestEvaluateQuestion_Code(t *testing.T) {
	q := kata.Question{ID: "q1", Kind: kata.KindCode}

	if qr := EvaluateQuestion(q, Answer{Text: "def f():\n    return 1\n"}); !qr.Passed {
		t.Errorf("non-empty code should pass the shape check: %s", qr.Message)
	}
	if qr := EvaluateQuestion(q, Answer{Text: "   \n  "}); qr.Passed {
		t.Error("whitespace-only code should fail")
	}
}

func TestEvaluateQuestion_UnknownKind(t *testing.T) {
	q := kata.Question{ID: "q1", Kind: "essay"}
	qr := EvaluateQuestion(q, Answer{Text: "hello"})
	if qr.Passed {
		t.Error("unknown kind must fail closed")
	}
	if !strings.Contains(qr.Message, "essay") {
		t.Errorf("diagnostic should name the kind, got %q", qr.Message)
	}
}
