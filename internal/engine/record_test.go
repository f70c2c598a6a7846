package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
)

type fakeEvents struct {
	attempts []store.AttemptEventData
	failWith error
}

func (f *fakeEvents) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEvents) Attempts(context.Context, string, int) ([]store.Attempt, error) {
	return nil, nil
}

func (f *fakeEvents) PassRate(context.Context, string) (float64, int, error) {
	return 0, 0, nil
}

type fakeProgress struct {
	records []string
}

func (f *fakeProgress) Record(_ context.Context, slug string, _ float64, _ bool) error {
	f.records = append(f.records, slug)
	return nil
}

func (f *fakeProgress) Get(context.Context, string) (*store.ProgressSnapshot, error) {
	return nil, nil
}

func (f *fakeProgress) All(context.Context) ([]store.ProgressSnapshot, error) {
	return nil, nil
}

func TestRecord_PersistsEventAndProgress(t *testing.T) {
	events := &fakeEvents{}
	progress := &fakeProgress{}
	e := New(Config{Events: events, Progress: progress, SessionID: "sess-1"})

	k := &kata.Kata{Slug: "two-sum", Type: kata.TypeCode}
	res := grading.Result{
		Score:  65,
		Passed: false,
		SubResults: []grading.SubResult{
			{Name: "hidden/edge-negative", Passed: false},
		},
	}

	id, err := e.Record(context.Background(), k, res)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if id == "" {
		t.Fatal("attempt ID is empty")
	}

	if len(events.attempts) != 1 {
		t.Fatalf("events = %d, want 1", len(events.attempts))
	}
	ev := events.attempts[0]
	if ev.AttemptID != id || ev.SessionID != "sess-1" || ev.Slug != "two-sum" {
		t.Errorf("event = %+v, want attempt/session/slug recorded", ev)
	}
	if ev.Score != 65 || ev.Passed {
		t.Errorf("event score/passed = %v/%v, want 65/false", ev.Score, ev.Passed)
	}
	if len(ev.SubResults) != 1 || ev.SubResults[0].Name != "hidden/edge-negative" {
		t.Errorf("event sub results = %+v", ev.SubResults)
	}

	if len(progress.records) != 1 || progress.records[0] != "two-sum" {
		t.Errorf("progress records = %v, want [two-sum]", progress.records)
	}
}

func TestRecord_UngradedSkipsProgress(t *testing.T) {
	events := &fakeEvents{}
	progress := &fakeProgress{}
	e := New(Config{Events: events, Progress: progress})

	k := &kata.Kata{Slug: "explain-closures", Type: kata.TypeExplain}
	_, err := e.Record(context.Background(), k, grading.Result{Ungraded: true})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if len(events.attempts) != 1 {
		t.Error("ungraded attempt should still be logged as an event")
	}
	if len(progress.records) != 0 {
		t.Error("ungraded attempt must not touch progress")
	}
}

func TestRecord_StorageFailureReturnsError(t *testing.T) {
	events := &fakeEvents{failWith: errors.New("disk full")}
	progress := &fakeProgress{}
	e := New(Config{Events: events, Progress: progress})

	k := &kata.Kata{Slug: "two-sum", Type: kata.TypeCode}
	id, err := e.Record(context.Background(), k, grading.Result{Score: 100, Passed: true})
	if err == nil {
		t.Fatal("expected storage error")
	}
	if id == "" {
		t.Error("attempt ID should be returned even when storage fails")
	}
	// Progress is independent of the event log failure.
	if len(progress.records) != 1 {
		t.Error("progress should still be recorded")
	}
}

func TestRecord_NilCollaboratorsAreFine(t *testing.T) {
	e := New(Config{})
	id, err := e.Record(context.Background(), &kata.Kata{Slug: "x", Type: kata.TypeCode}, grading.Result{})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if id == "" {
		t.Error("attempt ID is empty")
	}
}
