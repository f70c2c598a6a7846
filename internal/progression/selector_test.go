package progression

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

type fakeCatalog struct {
	next     *kata.Kata
	err      error
	lastSlug string
	lastF    kata.Filters
}

func (f *fakeCatalog) SelectNext(currentSlug string, filters kata.Filters) (*kata.Kata, error) {
	f.lastSlug = currentSlug
	f.lastF = filters
	return f.next, f.err
}

func TestShouldTrigger(t *testing.T) {
	pass := grading.Result{Score: 100, Passed: true}
	fail := grading.Result{Score: 40}

	tests := []struct {
		name    string
		enabled bool
		result  grading.Result
		want    bool
	}{
		{"enabled and passed", true, pass, true},
		{"enabled but failed", true, fail, false},
		{"disabled despite pass", false, pass, false},
		{"disabled and failed", false, fail, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Settings{Enabled: tt.enabled}, &fakeCatalog{})
			if got := s.ShouldTrigger(tt.result); got != tt.want {
				t.Errorf("ShouldTrigger = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectNext_PassesFiltersAndExclusion(t *testing.T) {
	next := &kata.Kata{Slug: "lru-cache", Title: "LRU Cache"}
	cat := &fakeCatalog{next: next}
	filters := kata.Filters{Difficulties: []kata.Difficulty{kata.DifficultyHard}}
	s := New(Settings{Enabled: true, Filters: filters}, cat)

	got := s.SelectNext("two-sum")
	if got != next {
		t.Fatalf("got %v, want next kata", got)
	}
	if cat.lastSlug != "two-sum" {
		t.Errorf("exclusion slug = %q, want two-sum", cat.lastSlug)
	}
	if len(cat.lastF.Difficulties) != 1 {
		t.Errorf("filters not forwarded: %+v", cat.lastF)
	}
}

func TestSelectNext_RegistryErrorBecomesNil(t *testing.T) {
	cat := &fakeCatalog{err: errors.New("catalog unreadable")}
	s := New(Settings{Enabled: true}, cat)

	if got := s.SelectNext("two-sum"); got != nil {
		t.Errorf("got %v, want nil on registry error", got)
	}
}

func TestSelectNext_ExhaustionIsNotAnError(t *testing.T) {
	s := New(Settings{Enabled: true}, &fakeCatalog{next: nil})
	if got := s.SelectNext("two-sum"); got != nil {
		t.Errorf("got %v, want nil on exhaustion", got)
	}
}

func TestCreateNotification(t *testing.T) {
	s := New(Settings{Enabled: true, Delay: 3 * time.Second}, &fakeCatalog{})
	from := &kata.Kata{Slug: "two-sum", Title: "Two Sum"}
	to := &kata.Kata{Slug: "lru-cache", Title: "LRU Cache"}

	n := s.CreateNotification(from, to)
	if n.FromKata != "two-sum" || n.ToKata != "lru-cache" {
		t.Errorf("notification = %+v, want from/to slugs", n)
	}
	if !strings.Contains(n.Message, "LRU Cache") {
		t.Errorf("message = %q, want destination title", n.Message)
	}
	if n.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestPendingSwitch_Fires(t *testing.T) {
	s := New(Settings{Enabled: true, Delay: 10 * time.Millisecond}, &fakeCatalog{})
	to := &kata.Kata{Slug: "lru-cache"}

	p := s.Schedule(to)
	if got := p.Wait(); got != to {
		t.Errorf("Wait = %v, want target kata", got)
	}
}

func TestPendingSwitch_CancelDuringDelay(t *testing.T) {
	s := New(Settings{Enabled: true, Delay: time.Hour}, &fakeCatalog{})
	p := s.Schedule(&kata.Kata{Slug: "lru-cache"})

	done := make(chan *kata.Kata, 1)
	go func() { done <- p.Wait() }()

	p.Cancel()
	select {
	case got := <-done:
		if got != nil {
			t.Errorf("Wait after cancel = %v, want nil", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait did not unblock after cancel")
	}

	// Repeated cancel is a no-op.
	p.Cancel()
}
