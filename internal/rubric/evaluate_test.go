package rubric

import (
	"encoding/json"
	"testing"
)

func TestEvaluate_Conjunction(t *testing.T) {
	// Total clears its own bar but correctness misses its floor: fail.
	j := Judgment{
		Scores:     map[string]float64{"correctness": 50, "clarity": 90},
		TotalScore: 76,
	}
	r := &Rubric{
		MinTotal: 75,
		Mins:     map[string]float64{"correctness": 70},
	}

	got := Evaluate(j, r)
	if got.Pass {
		t.Error("failed correctness floor must fail despite total >= minTotal")
	}
	if got.Status != StatusGraded {
		t.Errorf("Status = %s, want graded", got.Status)
	}
}

func TestEvaluate_AllThresholdsMet(t *testing.T) {
	j := Judgment{
		Scores:     map[string]float64{"correctness": 80, "clarity": 75},
		TotalScore: 78,
	}
	r := &Rubric{
		MinTotal: 75,
		Mins:     map[string]float64{"correctness": 70, "clarity": 60},
	}

	if got := Evaluate(j, r); !got.Pass {
		t.Error("all thresholds cleared, want pass")
	}
}

func TestEvaluate_TotalBelowMinimum(t *testing.T) {
	j := Judgment{
		Scores:     map[string]float64{"correctness": 90},
		TotalScore: 60,
	}
	r := &Rubric{MinTotal: 75, Mins: map[string]float64{"correctness": 70}}

	if got := Evaluate(j, r); got.Pass {
		t.Error("total below minTotal must fail")
	}
}

func TestEvaluate_MissingKeyFailsClosed(t *testing.T) {
	j := Judgment{
		Scores:     map[string]float64{"clarity": 95},
		TotalScore: 95,
	}
	r := &Rubric{
		MinTotal: 50,
		Mins:     map[string]float64{"correctness": 10},
	}

	if got := Evaluate(j, r); got.Pass {
		t.Error("threshold on an absent score key must count as unmet")
	}
}

func TestEvaluate_NilRubricIsUngraded(t *testing.T) {
	j := Judgment{TotalScore: 100, Scores: map[string]float64{"correctness": 100}}

	got := Evaluate(j, nil)
	if got.Pass {
		t.Error("ungraded content must never auto-pass")
	}
	if got.Status != StatusUngraded {
		t.Errorf("Status = %s, want ungraded", got.Status)
	}
	if got.Feedback == "" {
		t.Error("ungraded judgment should explain itself")
	}
}

func TestEvaluate_ClampsScores(t *testing.T) {
	j := Judgment{
		Scores:     map[string]float64{"correctness": 150},
		TotalScore: -5,
	}
	got := Evaluate(j, &Rubric{MinTotal: 0})

	if got.TotalScore != 0 {
		t.Errorf("TotalScore = %v, want clamped 0", got.TotalScore)
	}
	if got.Scores["correctness"] != 100 {
		t.Errorf("correctness = %v, want clamped 100", got.Scores["correctness"])
	}
}

func TestParseJudgment(t *testing.T) {
	raw := json.RawMessage(`{
		"scores": {"correctness": 82, "clarity": 70},
		"totalScore": 78,
		"feedback": "Solid explanation with minor gaps."
	}`)

	j, err := ParseJudgment(raw)
	if err != nil {
		t.Fatalf("ParseJudgment() error = %v", err)
	}
	if j.TotalScore != 78 {
		t.Errorf("TotalScore = %v, want 78", j.TotalScore)
	}
	if j.Scores["correctness"] != 82 {
		t.Errorf("correctness = %v, want 82", j.Scores["correctness"])
	}
	if j.Pass {
		t.Error("parsed judgment carries no verdict until evaluated")
	}
}

func TestParseJudgment_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "nope"},
		{"missing fields", `{"scores": {}}`},
		{"score out of range", `{"scores": {"correctness": 150}, "totalScore": 50, "feedback": ""}`},
		{"wrong score type", `{"scores": {"correctness": "high"}, "totalScore": 50, "feedback": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJudgment(json.RawMessage(tt.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
