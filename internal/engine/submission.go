package engine

import (
	"time"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/execution"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/rubric"
)

// Submission carries everything a learner's attempt produced, already
// collected. Which fields matter depends on the kata type; the engine
// reads only what the type needs and fails closed on what is missing.
type Submission struct {
	// Answer is the response for single-answer kata types: text for
	// shortform and one-liner, selections for multiple-choice.
	Answer grading.Answer

	// Answers maps question ID to response for multi-question katas.
	Answers map[string]grading.Answer

	// Public and Hidden are the sandbox runner outputs for code-based
	// katas.
	Public *execution.Result
	Hidden *execution.Result

	// Judgment is the already-parsed AI judgment for judged kata types.
	Judgment *rubric.Judgment

	// Duration is the learner-facing attempt time, used when the result
	// itself carries no collaborator duration.
	Duration time.Duration
}
