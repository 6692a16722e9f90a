// Package llm abstracts text-generation providers behind a single
// Generate call with optional structured output.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over a text-generation backend. All use
// in tabuada is single turn: one prompt in, one completion out.
type Provider interface {
	// Generate sends the prompt and returns the completion. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the returned content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema, when set, constrains the response to JSON conforming to
	// the definition. Nil means free text.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero means the
	// provider default.
	Temperature float64
}

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the provider's output.
type Response struct {
	// Content is the completion. With a Schema it is the validated
	// JSON object; without, the raw text.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string
}
