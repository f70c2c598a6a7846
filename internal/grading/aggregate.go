package grading

import (
	"errors"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

// ErrNoScoreableQuestions indicates a multi-question kata whose questions
// carry zero total points. The aggregate degrades to a failed zero score
// instead of dividing by zero.
var ErrNoScoreableQuestions = errors.New("no scoreable questions configured")

// Aggregate combines per-question evaluations into one weighted result.
//
// Questions are evaluated in their configured order, including ones with no
// submitted answer, which score zero. The final score is the earned share of
// total points as a percentage; success is reaching passingScore (default 70).
// Per-question outcomes are preserved in order for display.
func Aggregate(questions []kata.Question, answers map[string]Answer, passingScore float64) Result {
	if passingScore <= 0 {
		passingScore = DefaultPassingScore
	}

	var earnedSum, possibleSum float64
	subs := make([]SubResult, 0, len(questions))

	for _, q := range questions {
		qr := EvaluateQuestion(q, answers[q.ID])
		earnedSum += qr.PointsEarned
		possibleSum += qr.PointsPossible
		subs = append(subs, SubResult{
			Name:           q.ID,
			Passed:         qr.Passed,
			PointsEarned:   qr.PointsEarned,
			PointsPossible: qr.PointsPossible,
			Message:        qr.Message,
		})
	}

	if possibleSum == 0 {
		return Result{
			Score:      0,
			Passed:     false,
			SubResults: subs,
			Message:    ErrNoScoreableQuestions.Error(),
		}
	}

	score := ClampScore(100 * earnedSum / possibleSum)
	return Result{
		Score:      score,
		Passed:     score >= passingScore,
		SubResults: subs,
	}
}
