package judge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/llm"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/rubric"
)

func explainKata() *kata.Kata {
	return &kata.Kata{
		Slug:       "explain-closures",
		Title:      "Explain Closures",
		Type:       kata.TypeExplain,
		Difficulty: kata.DifficultyMedium,
		Language:   "javascript",
		Rubric: &kata.RubricConfig{
			Keys:     []string{"correctness", "clarity", "completeness"},
			MinTotal: 70,
			Mins:     map[string]float64{"correctness": 60},
		},
	}
}

func TestJudge_PassingSubmission(t *testing.T) {
	resp := json.RawMessage(`{"scores":{"correctness":85,"clarity":80,"completeness":75},"totalScore":81,"feedback":"Solid explanation of variable capture. Mention memory implications next time."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	s := NewService(mock, DefaultConfig())

	j, err := s.Judge(context.Background(), Input{
		Kata:      explainKata(),
		Statement: "Explain what a closure is and when you would use one.",
		Answer:    "A closure is a function that captures variables from its enclosing scope...",
	})
	if err != nil {
		t.Fatalf("Judge failed: %v", err)
	}
	if !j.Pass {
		t.Error("judgment should pass: total 81 >= 70 and correctness 85 >= 60")
	}
	if j.Status != rubric.StatusGraded {
		t.Errorf("status = %q, want %q", j.Status, rubric.StatusGraded)
	}
	if j.TotalScore != 81 {
		t.Errorf("totalScore = %v, want 81", j.TotalScore)
	}
}

func TestJudge_PerKeyMinimumFailsDespiteTotal(t *testing.T) {
	resp := json.RawMessage(`{"scores":{"correctness":40,"clarity":95,"completeness":95},"totalScore":77,"feedback":"Well written but the core mechanism is described incorrectly."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	s := NewService(mock, DefaultConfig())

	j, err := s.Judge(context.Background(), Input{
		Kata:      explainKata(),
		Statement: "Explain what a closure is.",
		Answer:    "A closure copies the values of all variables at definition time...",
	})
	if err != nil {
		t.Fatalf("Judge failed: %v", err)
	}
	if j.Pass {
		t.Error("judgment should fail: correctness 40 < per-key minimum 60")
	}
}

func TestJudge_NoRubric(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, DefaultConfig())

	k := explainKata()
	k.Rubric = nil

	j, err := s.Judge(context.Background(), Input{Kata: k, Statement: "x", Answer: "y"})
	if !errors.Is(err, ErrNoRubric) {
		t.Fatalf("err = %v, want ErrNoRubric", err)
	}
	if j.Status != rubric.StatusUngraded {
		t.Errorf("status = %q, want %q", j.Status, rubric.StatusUngraded)
	}
	if j.Pass {
		t.Error("ungraded judgment must never pass")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for rubric-less kata, want 0", mock.CallCount())
	}
}

func TestJudge_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // Empty queue → ErrProviderUnavailable
	s := NewService(mock, DefaultConfig())

	_, err := s.Judge(context.Background(), Input{
		Kata:      explainKata(),
		Statement: "Explain closures.",
		Answer:    "A closure is...",
	})
	if err == nil {
		t.Fatal("expected error from empty mock provider")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want wrapped ErrProviderUnavailable", err)
	}
}

func TestJudge_MalformedJudgmentRejected(t *testing.T) {
	resp := json.RawMessage(`{"scores":{"correctness":90},"feedback":"missing totalScore"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	s := NewService(mock, DefaultConfig())

	_, err := s.Judge(context.Background(), Input{
		Kata:      explainKata(),
		Statement: "Explain closures.",
		Answer:    "A closure is...",
	})
	if err == nil {
		t.Fatal("expected error for judgment missing totalScore")
	}
}

func TestJudge_EmptyAnswerRejectedWithoutProviderCall(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, DefaultConfig())

	_, err := s.Judge(context.Background(), Input{
		Kata:      explainKata(),
		Statement: "Explain closures.",
		Answer:    "   \n\t",
	})
	if err == nil {
		t.Fatal("expected error for whitespace-only answer")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for empty answer, want 0", mock.CallCount())
	}
}

func TestBuildJudgePrompt(t *testing.T) {
	prompt, err := buildJudgePrompt(Input{
		Kata:      explainKata(),
		Statement: "Explain what a closure is and when you would use one.",
		Answer:    "A closure captures its lexical environment.",
	})
	if err != nil {
		t.Fatalf("buildJudgePrompt failed: %v", err)
	}
	for _, want := range []string{
		"Explain Closures",
		"Explain what a closure is and when you would use one.",
		"- correctness",
		"- clarity",
		"- completeness",
		"A closure captures its lexical environment.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
