package judge

import (
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/llm"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/rubric"
)

// JudgmentSchema constrains the judge's output to the shape ParseJudgment
// accepts. The definition lives in the rubric package so parsing and
// generation can never drift apart.
var JudgmentSchema = &llm.Schema{
	Name:        "kata-judgment",
	Description: "Rubric-based evaluation of a learner's kata submission",
	Definition:  rubric.JudgmentSchema,
}
