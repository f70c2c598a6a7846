package kata

// metaSchema is the JSON Schema every kata meta.json must satisfy before
// decoding. Kind-specific grading config is checked structurally here;
// cross-field rules (e.g. correct answers referencing real option IDs) are
// the evaluator's fail-closed problem, not a load error.
var metaSchema = map[string]any{
	"type":     "object",
	"required": []any{"slug", "title", "type", "difficulty", "language"},
	"properties": map[string]any{
		"slug": map[string]any{
			"type":    "string",
			"pattern": "^[a-z0-9]+(-[a-z0-9]+)*$",
		},
		"title": map[string]any{"type": "string", "minLength": 1},
		"type": map[string]any{
			"type": "string",
			"enum": []any{
				"code", "explain", "template", "codebase",
				"shortform", "one-liner", "multiple-choice", "multi-question",
			},
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"language": map[string]any{"type": "string"},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"shortformConfig":      shortformSchema,
		"multipleChoiceConfig": multipleChoiceSchema,
		"rubric": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"keys": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"minTotal": map[string]any{"type": "number"},
				"mins": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "number"},
				},
			},
		},
		"questions": map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
		"passingScore": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 100,
		},
	},
}

var shortformSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"expectedAnswer": map[string]any{"type": "string"},
		"acceptableAnswers": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"caseSensitive": map[string]any{"type": "boolean"},
	},
}

var multipleChoiceSchema = map[string]any{
	"type":     "object",
	"required": []any{"options", "correctAnswers"},
	"properties": map[string]any{
		"options": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "text"},
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"text": map[string]any{"type": "string"},
				},
			},
		},
		"correctAnswers": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"allowMultiple": map[string]any{"type": "boolean"},
	},
}

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "kind"},
	"properties": map[string]any{
		"id": map[string]any{"type": "string", "minLength": 1},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{
				"shortform", "one-liner", "multiple-choice", "explanation", "code",
			},
		},
		"prompt":               map[string]any{"type": "string"},
		"points":               map[string]any{"type": "number", "minimum": 0},
		"shortformConfig":      shortformSchema,
		"multipleChoiceConfig": multipleChoiceSchema,
		"minWords":             map[string]any{"type": "integer", "minimum": 0},
	},
}
