package rubric

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// JudgmentSchema is the structured-output contract the AI judge is asked to
// follow: per-criterion integer scores 0-100, an overall score, and
// free-text feedback.
var JudgmentSchema = map[string]any{
	"type":     "object",
	"required": []any{"scores", "totalScore", "feedback"},
	"properties": map[string]any{
		"scores": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
		},
		"totalScore": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 100,
		},
		"feedback": map[string]any{"type": "string"},
	},
	"additionalProperties": false,
}

var (
	compiledJudgment    *jsonschema.Schema
	compileJudgmentOnce sync.Once
	compileJudgmentErr  error
)

// judgmentWire mirrors the JSON the judge returns.
type judgmentWire struct {
	Scores     map[string]float64 `json:"scores"`
	TotalScore float64            `json:"totalScore"`
	Feedback   string             `json:"feedback"`
}

// ParseJudgment decodes a raw AI judgment payload, validating it against
// JudgmentSchema first. The returned judgment carries no verdict; callers
// run it through Evaluate.
func ParseJudgment(raw json.RawMessage) (Judgment, error) {
	schema, err := compiledJudgmentSchema()
	if err != nil {
		return Judgment{}, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Judgment{}, fmt.Errorf("invalid judgment JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Judgment{}, fmt.Errorf("judgment schema: %w", err)
	}

	var w judgmentWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return Judgment{}, fmt.Errorf("decode judgment: %w", err)
	}

	j := Judgment{
		Scores:     w.Scores,
		TotalScore: w.TotalScore,
		Feedback:   w.Feedback,
	}
	return j.Clamp(), nil
}

func compiledJudgmentSchema() (*jsonschema.Schema, error) {
	compileJudgmentOnce.Do(func() {
		defBytes, err := json.Marshal(JudgmentSchema)
		if err != nil {
			compileJudgmentErr = fmt.Errorf("marshal judgment schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileJudgmentErr = fmt.Errorf("parse judgment schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://judgment.json", defParsed); err != nil {
			compileJudgmentErr = fmt.Errorf("add judgment schema: %w", err)
			return
		}
		compiledJudgment, compileJudgmentErr = c.Compile("schema://judgment.json")
	})
	return compiledJudgment, compileJudgmentErr
}
