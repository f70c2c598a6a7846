package grading

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

func quizQuestions() []kata.Question {
	q1 := shortformQuestion("alpha", false)
	q1.ID = "q1"
	q2 := shortformQuestion("beta", false)
	q2.ID = "q2"
	return []kata.Question{q1, q2}
}

func TestAggregate_AllCorrect(t *testing.T) {
	answers := map[string]Answer{
		"q1": {Text: "alpha"},
		"q2": {Text: "beta"},
	}
	r := Aggregate(quizQuestions(), answers, 70)

	if r.Score != 100 {
		t.Errorf("Score = %v, want 100", r.Score)
	}
	if !r.Passed {
		t.Error("perfect score should pass")
	}
	if len(r.SubResults) != 2 {
		t.Fatalf("SubResults = %d, want 2", len(r.SubResults))
	}
}

func TestAggregate_Weighting(t *testing.T) {
	// 10-point question wrong, 20-point question right: 100 * 20/30 ≈ 66.7.
	q1 := shortformQuestion("alpha", false)
	q1.ID = "q1"
	q1.Points = 10
	q2 := shortformQuestion("beta", false)
	q2.ID = "q2"
	q2.Points = 20

	r := Aggregate([]kata.Question{q1, q2}, map[string]Answer{
		"q1": {Text: "wrong"},
		"q2": {Text: "beta"},
	}, 70)

	want := 100.0 * 20 / 30
	if math.Abs(r.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", r.Score, want)
	}
	if r.Passed {
		t.Error("66.7 should fail a 70 threshold")
	}
}

func TestAggregate_MissingAnswersScoreZero(t *testing.T) {
	r := Aggregate(quizQuestions(), map[string]Answer{"q1": {Text: "alpha"}}, 0)

	if r.Score != 50 {
		t.Errorf("Score = %v, want 50", r.Score)
	}
	if len(r.SubResults) != 2 {
		t.Fatalf("SubResults = %d, want 2", len(r.SubResults))
	}
	if r.SubResults[1].Passed {
		t.Error("unanswered question must score zero")
	}
}

func TestAggregate_PreservesOrder(t *testing.T) {
	questions := quizQuestions()
	r := Aggregate(questions, nil, 70)

	var names []string
	for _, sr := range r.SubResults {
		names = append(names, sr.Name)
	}
	if !reflect.DeepEqual(names, []string{"q1", "q2"}) {
		t.Errorf("sub-result order = %v, want configured order", names)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	answers := map[string]Answer{"q1": {Text: "alpha"}, "q2": {Text: "nope"}}

	a := Aggregate(quizQuestions(), answers, 70)
	b := Aggregate(quizQuestions(), answers, 70)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical submissions must produce identical results")
	}
}

func TestAggregate_NoScoreableQuestions(t *testing.T) {
	r := Aggregate(nil, nil, 70)

	if r.Score != 0 {
		t.Errorf("Score = %v, want 0", r.Score)
	}
	if r.Passed {
		t.Error("configuration defect must not pass")
	}
	if !strings.Contains(r.Message, "no scoreable questions") {
		t.Errorf("Message = %q, want configuration error", r.Message)
	}
}

func TestAggregate_DefaultPassingScore(t *testing.T) {
	// One of two equal questions correct: 50, below the default 70.
	r := Aggregate(quizQuestions(), map[string]Answer{"q1": {Text: "alpha"}}, 0)
	if r.Passed {
		t.Error("50 should fail the default 70 threshold")
	}

	// Both correct passes.
	r = Aggregate(quizQuestions(), map[string]Answer{
		"q1": {Text: "alpha"},
		"q2": {Text: "beta"},
	}, 0)
	if !r.Passed {
		t.Error("100 should pass the default threshold")
	}
}

func TestAggregate_ContinuesPastMalformedQuestion(t *testing.T) {
	broken := kata.Question{ID: "q1", Kind: kata.KindMultipleChoice}
	ok := shortformQuestion("alpha", false)
	ok.ID = "q2"

	r := Aggregate([]kata.Question{broken, ok}, map[string]Answer{
		"q1": {Selections: []string{"a"}},
		"q2": {Text: "alpha"},
	}, 0)

	if len(r.SubResults) != 2 {
		t.Fatalf("SubResults = %d, want 2", len(r.SubResults))
	}
	if r.SubResults[0].Passed {
		t.Error("malformed question must auto-fail")
	}
	if !r.SubResults[1].Passed {
		t.Error("malformed sibling must not affect later questions")
	}
	if r.Score != 50 {
		t.Errorf("Score = %v, want 50", r.Score)
	}
}
