package store

import (
	"context"
	"time"
)

// AttemptEventData captures one submission evaluation for the append-only
// attempt log.
type AttemptEventData struct {
	AttemptID  string
	SessionID  string
	Slug       string
	KataType   string
	Score      float64
	Passed     bool
	Ungraded   bool
	DurationMs int64
	Message    string
	SubResults []SubResultData
}

// SubResultData is one itemized outcome inside an attempt.
type SubResultData struct {
	Name           string  `json:"name"`
	Passed         bool    `json:"passed"`
	PointsEarned   float64 `json:"pointsEarned,omitempty"`
	PointsPossible float64 `json:"pointsPossible,omitempty"`
	Message        string  `json:"message,omitempty"`
}

// Attempt is one stored attempt, newest-first in listings.
type Attempt struct {
	AttemptID string
	Slug      string
	KataType  string
	Score     float64
	Passed    bool
	Timestamp time.Time
}

// LLMRequestEventData captures a single judge API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to the immutable event log.
type EventRepo interface {
	// AppendAttempt records a submission evaluation.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendLLMRequest records a judge API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Attempts returns recent attempts, newest first. An empty slug
	// returns attempts across all katas. limit <= 0 means no limit.
	Attempts(ctx context.Context, slug string, limit int) ([]Attempt, error)

	// PassRate returns the fraction of passing attempts for a kata and
	// the total attempt count. Zero attempts yields (0, 0, nil).
	PassRate(ctx context.Context, slug string) (float64, int, error)
}

// ProgressSnapshot is the mutable best-progress row for one kata.
type ProgressSnapshot struct {
	Slug          string
	BestScore     float64
	LastScore     float64
	Attempts      int
	Completed     bool
	LastAttemptAt time.Time
}

// ProgressRepo manages the per-kata best-progress snapshot.
type ProgressRepo interface {
	// Record folds one attempt outcome into the kata's progress row,
	// creating it on first attempt.
	Record(ctx context.Context, slug string, score float64, passed bool) error

	// Get returns the progress row for a kata, or nil if never attempted.
	Get(ctx context.Context, slug string) (*ProgressSnapshot, error)

	// All returns every progress row, most recently attempted first.
	All(ctx context.Context) ([]ProgressSnapshot, error)
}
