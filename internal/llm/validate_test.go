package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func judgmentTestSchema() *Schema {
	return &Schema{
		Name:        "test-judgment",
		Description: "test schema",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"totalScore"},
			"properties": map[string]any{
				"totalScore": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 100,
				},
			},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	err := validateResponse(judgmentTestSchema(), json.RawMessage(`{"totalScore": 85}`))
	if err != nil {
		t.Errorf("validateResponse() error = %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `not json at all`},
		{"missing required", `{}`},
		{"out of range", `{"totalScore": 150}`},
		{"wrong type", `{"totalScore": "high"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(judgmentTestSchema(), json.RawMessage(tt.raw))
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Errorf("error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}
