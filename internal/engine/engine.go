// Package engine is the top-level evaluation surface: it routes a
// submission to the right grader for its kata type and normalizes every
// outcome into a grading.Result.
//
// Entry points return values, never panic, and surface failures as failed
// results. The only operation that errors is the persistence hand-off.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/execution"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/judge"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/rubric"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"

	"github.com/google/uuid"
)

// Engine evaluates submissions and records attempts. All collaborators
// are injected; nil collaborators disable their feature instead of
// breaking evaluation.
type Engine struct {
	events    store.EventRepo
	progress  store.ProgressRepo
	judge     *judge.Service
	sessionID string
}

// Config wires the engine's collaborators.
type Config struct {
	Events   store.EventRepo
	Progress store.ProgressRepo

	// Judge is optional; without it, judged kata types report that AI
	// grading is unavailable.
	Judge *judge.Service

	// SessionID groups attempts from one app run. Generated when empty.
	SessionID string
}

// New creates an engine.
func New(cfg Config) *Engine {
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	return &Engine{
		events:    cfg.Events,
		progress:  cfg.Progress,
		judge:     cfg.Judge,
		sessionID: cfg.SessionID,
	}
}

// SessionID returns the identifier grouping this run's attempts.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// EvaluateSubmission grades one submission according to its kata's type.
// Missing inputs for the type (no runner results for a code kata, no
// judgment for an explain kata) yield a failed result naming the gap.
func (e *Engine) EvaluateSubmission(k *kata.Kata, sub Submission) grading.Result {
	if k == nil {
		return failed("no kata provided")
	}

	var res grading.Result
	switch k.Type {
	case kata.TypeShortform, kata.TypeOneLiner:
		res = e.evaluateSingleQuestion(k, kata.Question{
			ID:        k.Slug,
			Kind:      kata.KindShortform,
			Shortform: k.Shortform,
		}, sub.Answer)

	case kata.TypeMultipleChoice:
		res = e.evaluateSingleQuestion(k, kata.Question{
			ID:             k.Slug,
			Kind:           kata.KindMultipleChoice,
			MultipleChoice: k.MultipleChoice,
		}, sub.Answer)

	case kata.TypeMultiQuestion:
		res = e.EvaluateMultiQuestion(k, sub.Answers)

	case kata.TypeCode, kata.TypeCodebase:
		if sub.Public == nil || sub.Hidden == nil {
			res = failed("no test results provided")
			break
		}
		res = e.CombineResults(*sub.Public, *sub.Hidden)

	case kata.TypeExplain, kata.TypeTemplate:
		if sub.Judgment == nil {
			res = failed("no AI judgment provided")
			break
		}
		res = e.ProcessAIJudgment(*sub.Judgment, k.Rubric)

	default:
		res = failed(fmt.Sprintf("unknown kata type %q", k.Type))
	}

	if res.Duration == 0 {
		res.Duration = sub.Duration
	}
	return res
}

// evaluateSingleQuestion grades a kata whose whole submission is one
// answer, reusing the per-question evaluator with a synthetic question
// built from the kata-level config.
func (e *Engine) evaluateSingleQuestion(k *kata.Kata, q kata.Question, ans grading.Answer) grading.Result {
	qr := grading.EvaluateQuestion(q, ans)

	score := 0.0
	if qr.Passed {
		score = 100
	}
	return grading.Result{
		Score:  score,
		Passed: qr.Passed,
		SubResults: []grading.SubResult{{
			Name:           k.Slug,
			Passed:         qr.Passed,
			PointsEarned:   qr.PointsEarned,
			PointsPossible: qr.PointsPossible,
			Message:        qr.Message,
		}},
	}
}

// EvaluateMultiQuestion grades a multi-question kata's answers in
// question order with point weighting.
func (e *Engine) EvaluateMultiQuestion(k *kata.Kata, answers map[string]grading.Answer) grading.Result {
	if k == nil {
		return failed("no kata provided")
	}
	return grading.Aggregate(k.Questions, answers, k.PassingScore)
}

// CombineResults blends public and hidden suite outcomes into one result.
// The pass gate stays strict even when the blended score clears typical
// thresholds.
func (e *Engine) CombineResults(public, hidden execution.Result) grading.Result {
	return execution.Combine(public, hidden)
}

// ProcessAIJudgment applies rubric thresholds to an AI judgment and
// normalizes it. A nil rubric config yields the explicit ungraded result.
func (e *Engine) ProcessAIJudgment(j rubric.Judgment, cfg *kata.RubricConfig) grading.Result {
	r := rubric.FromConfig(cfg)
	return judgmentResult(rubric.Evaluate(j, r), r)
}

// JudgeSubmission sends a free-form answer to the AI judge and normalizes
// the outcome. Provider failures become failed results carrying the raw
// error message; they are never mistaken for a graded zero.
func (e *Engine) JudgeSubmission(ctx context.Context, k *kata.Kata, statement, answerText string) grading.Result {
	if e.judge == nil {
		return failed("AI judging unavailable: no provider configured")
	}

	j, err := e.judge.Judge(ctx, judge.Input{Kata: k, Statement: statement, Answer: answerText})
	if errors.Is(err, judge.ErrNoRubric) {
		return judgmentResult(j, nil)
	}
	if err != nil {
		return failed(err.Error())
	}
	return judgmentResult(j, rubric.FromConfig(k.Rubric))
}

// judgmentResult converts an evaluated judgment into the normalized
// result shape, itemizing per-criterion scores in stable order. Each
// criterion's pass flag reflects its own minimum, when one is set.
func judgmentResult(j rubric.Judgment, r *rubric.Rubric) grading.Result {
	keys := make([]string, 0, len(j.Scores))
	for k := range j.Scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	subs := make([]grading.SubResult, 0, len(keys))
	for _, k := range keys {
		score := j.Scores[k]
		passed := true
		if r != nil {
			if min, ok := r.Mins[k]; ok {
				passed = score >= min
			}
		}
		subs = append(subs, grading.SubResult{
			Name:           k,
			Passed:         passed,
			PointsEarned:   score,
			PointsPossible: 100,
		})
	}

	return grading.Result{
		Score:      grading.ClampScore(j.TotalScore),
		Passed:     j.Pass,
		SubResults: subs,
		Ungraded:   j.Status == rubric.StatusUngraded,
		Message:    j.Feedback,
	}
}

func failed(msg string) grading.Result {
	return grading.Result{Passed: false, Message: msg}
}
