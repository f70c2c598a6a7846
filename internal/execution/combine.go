package execution

import (
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
)

// Suite weights for the blended score. Hidden tests dominate because they
// are the harder, unseen check.
const (
	PublicWeight = 0.30
	HiddenWeight = 0.70
)

// Combine merges a public and a hidden suite run into one scored result.
//
// The blended score communicates partial progress; the pass gate is strict
// and intentionally decoupled from it: both suites must fully succeed for
// the attempt to count as a completion. A learner can see 79% and still be
// marked failed. The function is pure; persisting the record is the
// caller's job.
func Combine(public, hidden Result) grading.Result {
	score := grading.ClampScore(
		PublicWeight*suiteScore(public) + HiddenWeight*suiteScore(hidden),
	)

	subs := make([]grading.SubResult, 0, len(public.Tests)+len(hidden.Tests))
	subs = appendSuite(subs, "public", public)
	subs = appendSuite(subs, "hidden", hidden)

	return grading.Result{
		Score:      score,
		Passed:     public.Success && hidden.Success,
		SubResults: subs,
		Duration:   public.Duration + hidden.Duration,
		Message:    upstreamMessage(public, hidden),
	}
}

// suiteScore is the percentage of itemized tests that passed. A suite with
// no itemized tests falls back to its own success flag: 100 or 0.
func suiteScore(r Result) float64 {
	if len(r.Tests) == 0 {
		if r.Success {
			return 100
		}
		return 0
	}
	return 100 * float64(r.PassedCount()) / float64(len(r.Tests))
}

func appendSuite(subs []grading.SubResult, suite string, r Result) []grading.SubResult {
	for _, t := range r.Tests {
		subs = append(subs, grading.SubResult{
			Name:    suite + "/" + t.Name,
			Passed:  t.Passed,
			Message: t.Message,
		})
	}
	return subs
}

// upstreamMessage surfaces runner failures verbatim, hidden suite first
// since it gates completion.
func upstreamMessage(public, hidden Result) string {
	if hidden.ErrorMessage != "" {
		return hidden.ErrorMessage
	}
	return public.ErrorMessage
}
