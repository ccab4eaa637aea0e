// Package ports defines the boundaries between the domain services and the
// outside world: model providers, embedding services and persistence.
package ports

import (
	"context"
)

// ModelConfig identifies one model in the experiment matrix.
type ModelConfig struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	MaxTokens int    `json:"max_tokens"`
}

// Usage reports token consumption for one generation, when the provider
// exposes it.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Generation is the outcome of one model call.
type Generation struct {
	Text  string `json:"text"`
	Usage *Usage `json:"usage,omitempty"`
}

// Generator produces a model response for a prompt. Implementations return an
// error for any provider failure; the experiment runner converts failures into
// failed trials rather than aborting the batch.
type Generator interface {
	GenerateResponse(ctx context.Context, prompt string, cfg ModelConfig) (Generation, error)
}

// Embedder turns text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
