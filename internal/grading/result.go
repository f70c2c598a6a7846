// Package grading turns heterogeneous grading signals into normalized
// pass/fail results. Everything here is pure computation over
// already-collected answers; collaborators that block (sandbox runs, AI
// calls) happen before a result reaches this package.
package grading

import "time"

// DefaultPassingScore is the aggregate percentage threshold used when a
// kata does not configure its own.
const DefaultPassingScore = 70.0

// Result is the normalized outcome of one submission evaluation. It is
// immutable once produced; the pass flag is always derivable from the
// result's own fields.
type Result struct {
	// Score is the normalized score, clamped to [0,100].
	Score float64

	// Passed is the strict completion gate. For blended scores it is
	// intentionally decoupled from Score (see execution.Combine).
	Passed bool

	// SubResults itemizes per-question or per-test outcomes in their
	// configured order.
	SubResults []SubResult

	// Duration is the wall time reported by blocking collaborators.
	// Zero for pure in-process evaluation.
	Duration time.Duration

	// Ungraded marks a neutral never-passing result produced when a kata
	// has no grading configuration at all. Distinguishes "not configured"
	// from "wrong".
	Ungraded bool

	// Message carries a top-level diagnostic: a configuration defect or an
	// upstream failure surfaced verbatim. Empty on clean evaluations.
	Message string
}

// SubResult is one itemized outcome inside a Result.
type SubResult struct {
	Name           string
	Passed         bool
	PointsEarned   float64
	PointsPossible float64
	Message        string
}

// QuestionResult is the outcome of evaluating a single question. Points are
// all-or-nothing at this layer; partial credit exists only in the aggregate.
type QuestionResult struct {
	Passed         bool
	PointsEarned   float64
	PointsPossible float64
	Message        string
}

// ClampScore bounds a score to [0,100]. Every produced score goes through
// this before leaving the package.
func ClampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
