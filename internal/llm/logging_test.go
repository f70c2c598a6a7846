package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
)

// captureEventRepo records appended LLM request events in memory.
type captureEventRepo struct {
	events []store.LLMRequestEventData
}

func (c *captureEventRepo) AppendAttempt(context.Context, store.AttemptEventData) error { return nil }

func (c *captureEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func (c *captureEventRepo) Attempts(context.Context, string, int) ([]store.Attempt, error) {
	return nil, nil
}

func (c *captureEventRepo) PassRate(context.Context, string) (float64, int, error) {
	return 0, 0, nil
}

// namedProvider gives the mock a distinct backend name and model ID so the
// logged event fields can be told apart.
type namedProvider struct {
	*MockProvider
}

func (namedProvider) Name() string    { return "anthropic" }
func (namedProvider) ModelID() string { return "claude-sonnet" }

func TestLogging_RecordsProviderAndModel(t *testing.T) {
	repo := &captureEventRepo{}
	inner := namedProvider{NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"ok": true}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 34},
		},
	)}
	p := WithLogging(inner, repo)

	ctx := WithPurpose(context.Background(), "judge")
	if _, err := p.Generate(ctx, Request{Prompt: "hi"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", ev.Provider, "anthropic")
	}
	if ev.Model != "mock" {
		t.Errorf("Model = %q, want %q (response model)", ev.Model, "mock")
	}
	if ev.Purpose != "judge" {
		t.Errorf("Purpose = %q, want %q", ev.Purpose, "judge")
	}
	if !ev.Success {
		t.Error("Success = false, want true")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &captureEventRepo{}
	inner := namedProvider{NewMockProvider(
		MockResponse{Err: errors.New("boom")},
	)}
	p := WithLogging(inner, repo)

	if _, err := p.Generate(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Fatal("Generate() error = nil, want error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("Success = true, want false")
	}
	if ev.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", ev.Provider, "anthropic")
	}
	if ev.Model != "claude-sonnet" {
		t.Errorf("Model = %q, want configured model on failure", ev.Model)
	}
	if ev.ErrorMessage != "boom" {
		t.Errorf("ErrorMessage = %q", ev.ErrorMessage)
	}
}
