// Package rubric validates AI-produced judgments against conjunctive
// score thresholds.
package rubric

import "github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"

// Status distinguishes a real graded judgment from the neutral placeholder
// produced when no rubric is configured. "Wrong" and "not configured" must
// never be conflated downstream.
type Status string

const (
	StatusGraded   Status = "graded"
	StatusUngraded Status = "ungraded"
)

// Judgment holds per-criterion scores from the AI judge plus the pass
// verdict computed by Evaluate. All scores are clamped to [0,100].
type Judgment struct {
	Scores     map[string]float64
	TotalScore float64
	Feedback   string
	Pass       bool
	Status     Status
}

// Rubric is the threshold rule for a judged kata: an overall minimum plus
// named per-criterion minimums, all conjunctively required.
type Rubric struct {
	MinTotal float64
	Mins     map[string]float64
}

// Ungraded returns the neutral never-passing judgment used when a kata has
// no rubric. Ungraded content must never silently auto-pass.
func Ungraded() Judgment {
	return Judgment{
		Pass:     false,
		Status:   StatusUngraded,
		Feedback: "no rubric configured for this kata; submission cannot be graded",
	}
}

// Clamp bounds every score field to [0,100].
func (j Judgment) Clamp() Judgment {
	j.TotalScore = grading.ClampScore(j.TotalScore)
	if len(j.Scores) > 0 {
		scores := make(map[string]float64, len(j.Scores))
		for k, v := range j.Scores {
			scores[k] = grading.ClampScore(v)
		}
		j.Scores = scores
	}
	return j
}
