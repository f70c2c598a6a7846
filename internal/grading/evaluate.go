package grading

import (
	"fmt"
	"strings"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/answer"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

// Answer is a submitted answer for one question: a scalar string for
// free-text kinds, a selection set for multiple choice.
type Answer struct {
	Text       string
	Selections []string
}

// IsEmpty reports whether nothing was submitted.
func (a Answer) IsEmpty() bool {
	return strings.TrimSpace(a.Text) == "" && len(a.Selections) == 0
}

// EvaluateQuestion grades a single question. It never returns an error:
// malformed question configuration degrades to a failed result carrying a
// diagnostic message so evaluation of sibling questions continues.
func EvaluateQuestion(q kata.Question, ans Answer) QuestionResult {
	possible := q.PointsPossible()

	if ans.IsEmpty() {
		return fail(possible, "no answer submitted")
	}

	switch q.Kind {
	case kata.KindShortform, kata.KindOneLiner:
		return evaluateShortform(q, ans, possible)
	case kata.KindMultipleChoice:
		return evaluateMultipleChoice(q, ans, possible)
	case kata.KindExplanation:
		return evaluateExplanation(q, ans, possible)
	case kata.KindCode:
		return evaluateCode(ans, possible)
	default:
		return fail(possible, fmt.Sprintf("unknown question kind %q", q.Kind))
	}
}

func evaluateShortform(q kata.Question, ans Answer, possible float64) QuestionResult {
	if q.Shortform == nil {
		return fail(possible, "question has no expected answer configured")
	}

	matched, err := answer.Match(ans.Text, answer.Spec{
		Expected:      q.Shortform.ExpectedAnswer,
		Acceptable:    q.Shortform.AcceptableAnswers,
		CaseSensitive: q.Shortform.CaseSensitive,
	})
	if err != nil {
		return fail(possible, fmt.Sprintf("question misconfigured: %v", err))
	}
	if !matched {
		return fail(possible, fmt.Sprintf("answer %q did not match expected %q",
			strings.TrimSpace(ans.Text), q.Shortform.ExpectedAnswer))
	}
	return pass(possible, "correct")
}

func evaluateMultipleChoice(q kata.Question, ans Answer, possible float64) QuestionResult {
	cfg := q.MultipleChoice
	if cfg == nil || len(cfg.Options) == 0 {
		return fail(possible, "multiple-choice question has no options")
	}
	if len(cfg.CorrectAnswers) == 0 {
		return fail(possible, "multiple-choice question has no correct answers")
	}

	// Answer keys must reference real options; a dangling reference means
	// the question can never be answered correctly, so fail it visibly.
	ids := cfg.OptionIDs()
	for _, c := range cfg.CorrectAnswers {
		if !ids[c] {
			return fail(possible, fmt.Sprintf("correct answer %q references no option", c))
		}
	}

	if !cfg.AllowMultiple && len(ans.Selections) > 1 {
		return fail(possible, "multiple selections not allowed for this question")
	}

	if !answer.MatchSet(ans.Selections, cfg.CorrectAnswers, false) {
		return fail(possible, fmt.Sprintf("selected %v, expected %v",
			ans.Selections, cfg.CorrectAnswers))
	}
	return pass(possible, "correct")
}

func evaluateExplanation(q kata.Question, ans Answer, possible float64) QuestionResult {
	// Only length is checked here. Whether the explanation is actually
	// right is the AI judge's call, outside this engine.
	words := len(strings.Fields(ans.Text))
	if words < q.MinWords {
		return fail(possible, fmt.Sprintf("%d words, need at least %d", words, q.MinWords))
	}
	return pass(possible, fmt.Sprintf("%d words", words))
}

func evaluateCode(ans Answer, possible float64) QuestionResult {
	// Shape check only; real correctness comes from the sandbox runner.
	if strings.TrimSpace(ans.Text) == "" {
		return fail(possible, "empty code submission")
	}
	return pass(possible, "submitted")
}

func pass(possible float64, msg string) QuestionResult {
	return QuestionResult{
		Passed:         true,
		PointsEarned:   possible,
		PointsPossible: possible,
		Message:        msg,
	}
}

func fail(possible float64, msg string) QuestionResult {
	return QuestionResult{
		Passed:         false,
		PointsEarned:   0,
		PointsPossible: possible,
		Message:        msg,
	}
}
