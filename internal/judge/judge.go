// Package judge grades free-form kata submissions with an LLM, then applies
// the kata's rubric thresholds to the returned scores.
package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/llm"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/rubric"
)

// ErrNoRubric is returned when a kata without rubric criteria is sent for
// judging. Callers fall back to rubric.Ungraded.
var ErrNoRubric = errors.New("kata has no rubric")

// Config holds generation settings for the judge.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Temperature stays low so repeat
// submissions of the same answer score consistently.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// Input is one submission to judge.
type Input struct {
	Kata      *kata.Kata
	Statement string
	Answer    string
}

// Service sends submissions to an LLM provider and converts the structured
// response into an evaluated judgment.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a judging service backed by the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Judge grades one submission. The returned judgment already carries the
// pass verdict from the kata's rubric thresholds.
//
// A kata without a rubric yields (Ungraded, ErrNoRubric) so callers can
// distinguish "not gradable" from a provider failure.
func (s *Service) Judge(ctx context.Context, in Input) (rubric.Judgment, error) {
	if in.Kata == nil || in.Kata.Rubric == nil || len(in.Kata.Rubric.Keys) == 0 {
		return rubric.Ungraded(), ErrNoRubric
	}
	if strings.TrimSpace(in.Answer) == "" {
		return rubric.Judgment{Status: rubric.StatusGraded}, errors.New("empty submission")
	}

	ctx = llm.WithPurpose(ctx, "kata-judging")

	prompt, err := buildJudgePrompt(in)
	if err != nil {
		return rubric.Judgment{}, fmt.Errorf("build judge prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      judgeSystemPrompt,
		Prompt:      prompt,
		Schema:      JudgmentSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return rubric.Judgment{}, fmt.Errorf("judge request failed: %w", err)
	}

	j, err := rubric.ParseJudgment(resp.Content)
	if err != nil {
		return rubric.Judgment{}, fmt.Errorf("judge returned malformed judgment: %w", err)
	}

	return rubric.Evaluate(j, rubric.FromConfig(in.Kata.Rubric)), nil
}
