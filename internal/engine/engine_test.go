package engine

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/execution"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/judge"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/llm"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/rubric"
)

func TestEvaluateSubmission_Shortform(t *testing.T) {
	e := New(Config{})
	k := &kata.Kata{
		Slug: "big-o-lookup",
		Type: kata.TypeShortform,
		Shortform: &kata.ShortformConfig{
			ExpectedAnswer: "O(1)",
		},
	}

	res := e.EvaluateSubmission(k, Submission{Answer: grading.Answer{Text: " o(1) "}})
	if !res.Passed || res.Score != 100 {
		t.Errorf("got score=%v passed=%v, want 100/true", res.Score, res.Passed)
	}

	res = e.EvaluateSubmission(k, Submission{Answer: grading.Answer{Text: "O(n)"}})
	if res.Passed || res.Score != 0 {
		t.Errorf("got score=%v passed=%v, want 0/false", res.Score, res.Passed)
	}
}

func TestEvaluateSubmission_EmptyAnswerFails(t *testing.T) {
	e := New(Config{})
	k := &kata.Kata{
		Slug:      "big-o-lookup",
		Type:      kata.TypeShortform,
		Shortform: &kata.ShortformConfig{ExpectedAnswer: "O(1)"},
	}

	res := e.EvaluateSubmission(k, Submission{})
	if res.Passed {
		t.Error("empty answer must not pass")
	}
	if len(res.SubResults) != 1 || !strings.Contains(res.SubResults[0].Message, "no answer") {
		t.Errorf("sub results = %+v, want a no-answer diagnostic", res.SubResults)
	}
}

func TestEvaluateSubmission_MultipleChoice(t *testing.T) {
	e := New(Config{})
	k := &kata.Kata{
		Slug: "http-idempotent",
		Type: kata.TypeMultipleChoice,
		MultipleChoice: &kata.MultipleChoiceConfig{
			Options: []kata.Option{
				{ID: "a", Text: "GET"}, {ID: "b", Text: "POST"},
				{ID: "c", Text: "PUT"}, {ID: "d", Text: "DELETE"},
			},
			CorrectAnswers: []string{"a", "c", "d"},
			AllowMultiple:  true,
		},
	}

	res := e.EvaluateSubmission(k, Submission{Answer: grading.Answer{Selections: []string{"d", "a", "c"}}})
	if !res.Passed {
		t.Errorf("exact set in different order should pass: %+v", res)
	}

	res = e.EvaluateSubmission(k, Submission{Answer: grading.Answer{Selections: []string{"a", "c"}}})
	if res.Passed {
		t.Error("subset of correct answers must not pass")
	}
}

func TestEvaluateSubmission_CodeRequiresRunnerResults(t *testing.T) {
	e := New(Config{})
	k := &kata.Kata{Slug: "two-sum", Type: kata.TypeCode}

	res := e.EvaluateSubmission(k, Submission{Answer: grading.Answer{Text: "def solve(): ..."}})
	if res.Passed {
		t.Error("code kata without runner results must not pass")
	}
	if !strings.Contains(res.Message, "no test results") {
		t.Errorf("message = %q, want missing-results diagnostic", res.Message)
	}
}

func TestEvaluateSubmission_CodeCombines(t *testing.T) {
	e := New(Config{})
	k := &kata.Kata{Slug: "two-sum", Type: kata.TypeCode}

	public := execution.Result{Success: true, Tests: []execution.TestOutcome{
		{Name: "examples", Passed: true},
	}}
	hidden := execution.Result{Success: false, Tests: []execution.TestOutcome{
		{Name: "edge-empty", Passed: true},
		{Name: "edge-negative", Passed: false},
	}}

	res := e.EvaluateSubmission(k, Submission{Public: &public, Hidden: &hidden})
	if res.Passed {
		t.Error("hidden suite failure must gate the pass")
	}
	// 0.30*100 + 0.70*50
	if res.Score != 65 {
		t.Errorf("score = %v, want 65", res.Score)
	}
	if len(res.SubResults) != 3 {
		t.Errorf("sub results = %d, want 3", len(res.SubResults))
	}
}

func TestEvaluateSubmission_UnknownType(t *testing.T) {
	e := New(Config{})
	res := e.EvaluateSubmission(&kata.Kata{Slug: "x", Type: "puzzle"}, Submission{})
	if res.Passed || res.Message == "" {
		t.Errorf("unknown type should fail with diagnostic, got %+v", res)
	}
}

func TestProcessAIJudgment(t *testing.T) {
	e := New(Config{})
	cfg := &kata.RubricConfig{
		Keys:     []string{"correctness", "clarity"},
		MinTotal: 70,
		Mins:     map[string]float64{"correctness": 60},
	}

	j := rubric.Judgment{
		Scores:     map[string]float64{"correctness": 80, "clarity": 70},
		TotalScore: 76,
		Feedback:   "Good coverage of the mechanism.",
	}
	res := e.ProcessAIJudgment(j, cfg)
	if !res.Passed || res.Score != 76 {
		t.Errorf("got score=%v passed=%v, want 76/true", res.Score, res.Passed)
	}
	if res.Message != "Good coverage of the mechanism." {
		t.Errorf("message = %q, want judge feedback", res.Message)
	}
	// Criteria itemized in sorted order.
	if len(res.SubResults) != 2 || res.SubResults[0].Name != "clarity" {
		t.Errorf("sub results = %+v, want sorted criteria", res.SubResults)
	}

	// Per-key floor failure despite clearing the total.
	j.Scores["correctness"] = 50
	j.TotalScore = 75
	res = e.ProcessAIJudgment(j, cfg)
	if res.Passed {
		t.Error("correctness 50 < 60 must fail despite total 75 >= 70")
	}
	for _, s := range res.SubResults {
		if s.Name == "correctness" && s.Passed {
			t.Error("failed criterion should be itemized as failed")
		}
	}
}

func TestProcessAIJudgment_NilRubricUngraded(t *testing.T) {
	e := New(Config{})
	res := e.ProcessAIJudgment(rubric.Judgment{TotalScore: 95}, nil)
	if res.Passed {
		t.Error("ungraded result must never pass")
	}
	if !res.Ungraded {
		t.Error("result should be marked ungraded, not failed")
	}
}

func TestJudgeSubmission_ProviderErrorSurfacedVerbatim(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue errors on Generate
	e := New(Config{Judge: judge.NewService(mock, judge.DefaultConfig())})

	k := &kata.Kata{
		Slug: "explain-closures",
		Type: kata.TypeExplain,
		Rubric: &kata.RubricConfig{
			Keys:     []string{"correctness"},
			MinTotal: 70,
		},
	}
	res := e.JudgeSubmission(context.Background(), k, "Explain closures.", "A closure is...")
	if res.Passed {
		t.Error("provider failure must not pass")
	}
	if res.Ungraded {
		t.Error("provider failure is not the ungraded state")
	}
	if res.Message == "" {
		t.Error("provider error should be surfaced in the message")
	}
}

func TestJudgeSubmission_NoProviderConfigured(t *testing.T) {
	e := New(Config{})
	res := e.JudgeSubmission(context.Background(), &kata.Kata{Slug: "x", Type: kata.TypeExplain}, "s", "a")
	if res.Passed || !strings.Contains(res.Message, "unavailable") {
		t.Errorf("got %+v, want failed unavailable result", res)
	}
}

func TestJudgeSubmission_GradedPass(t *testing.T) {
	resp := json.RawMessage(`{"scores":{"correctness":88},"totalScore":88,"feedback":"Accurate and concise."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := New(Config{Judge: judge.NewService(mock, judge.DefaultConfig())})

	k := &kata.Kata{
		Slug: "explain-closures",
		Type: kata.TypeExplain,
		Rubric: &kata.RubricConfig{
			Keys:     []string{"correctness"},
			MinTotal: 70,
		},
	}
	res := e.JudgeSubmission(context.Background(), k, "Explain closures.", "A closure captures scope...")
	if !res.Passed || res.Score != 88 {
		t.Errorf("got score=%v passed=%v, want 88/true", res.Score, res.Passed)
	}
}

func TestEvaluateMultiQuestion_Weighted(t *testing.T) {
	e := New(Config{})
	k := &kata.Kata{
		Slug: "go-basics-quiz",
		Type: kata.TypeMultiQuestion,
		Questions: []kata.Question{
			{ID: "q1", Kind: kata.KindShortform, Points: 1,
				Shortform: &kata.ShortformConfig{ExpectedAnswer: "goroutine"}},
			{ID: "q2", Kind: kata.KindShortform, Points: 3,
				Shortform: &kata.ShortformConfig{ExpectedAnswer: "channel"}},
		},
	}

	// Only the 3-point question correct: 75% beats the default 70 threshold.
	res := e.EvaluateMultiQuestion(k, map[string]grading.Answer{
		"q2": {Text: "channel"},
	})
	if res.Score != 75 || !res.Passed {
		t.Errorf("got score=%v passed=%v, want 75/true", res.Score, res.Passed)
	}
}
