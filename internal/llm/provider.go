// Package llm abstracts over hosted language-model APIs. Providers
// take a single-turn prompt and return structured JSON validated
// against a caller-supplied schema. Middleware decorators add retry
// and event logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the interface every LLM backend implements.
type Provider interface {
	// Complete sends one prompt and returns the model's output. When
	// the request carries a Schema, the returned Content is JSON that
	// has been validated against it.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single-turn completion request.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// Schema, when set, makes the provider request structured output
	// and validate the response against it.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness in [0,1]. Zero means
	// deterministic.
	Temperature float64
}

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema, kebab-case. Used as the structured
	// output name where the provider requires one.
	Name string

	// Description guides the model toward the intended content.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
