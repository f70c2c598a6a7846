package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over LLM backends. The judge is the only
// consumer: single-turn, schema-constrained generation.
type Provider interface {
	// Generate sends one prompt to the LLM and returns structured JSON.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON document.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name returns the backend name, e.g. "anthropic" or "openai".
	Name() string

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the single user message. Judging is single-turn, so there
	// is no conversation history.
	Prompt string

	// Schema is the JSON Schema the response must conform to. When nil,
	// Content is the raw text response.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Judging wants 0.
	Temperature float64
}

// Schema names a JSON Schema for structured output.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "kata-judgment".
	Name string

	// Description guides the model toward the intended output.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output; validated JSON when the request
	// carried a schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
