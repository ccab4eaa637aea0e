package llm

import (
	"context"
	"fmt"
	"math"

	"sycobench/domain/core"
	"sycobench/ports"
)

// MockGenerator returns canned responses without network access. Used by dry
// runs and tests.
type MockGenerator struct {
	// Response overrides the generated text when set.
	Response string
	// Err makes every call fail when set.
	Err error
}

// NewMockGenerator returns a mock that echoes a deterministic placeholder.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateResponse implements ports.Generator.
func (m *MockGenerator) GenerateResponse(_ context.Context, prompt string, cfg ports.ModelConfig) (ports.Generation, error) {
	if m.Err != nil {
		return ports.Generation{}, m.Err
	}
	text := m.Response
	if text == "" {
		text = fmt.Sprintf("[DRY RUN] %s response for prompt %s", cfg.Name, core.NewTextHash(prompt).Short())
	}
	return ports.Generation{
		Text:  text,
		Usage: &ports.Usage{InputTokens: len(prompt) / 4, OutputTokens: len(text) / 4},
	}, nil
}

// MockEmbedder produces deterministic unit vectors derived from the text
// hash, so identical text always embeds identically and distinct texts almost
// always differ. Used by tests and dry-run analysis.
type MockEmbedder struct {
	Dimensions int
	// Err makes every call fail when set.
	Err error
}

// NewMockEmbedder returns a deterministic embedder with the given dimension.
func NewMockEmbedder(dimensions int) *MockEmbedder {
	if dimensions < 2 {
		dimensions = 2
	}
	return &MockEmbedder{Dimensions: dimensions}
}

// Embed implements ports.Embedder.
func (m *MockEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	hash := core.NewTextHash(text)
	vec := make([]float64, m.Dimensions)
	var norm float64
	for i := 0; i < m.Dimensions; i++ {
		b := hash[(i*2)%len(hash)]
		v := float64(int(b)%17) - 8
		vec[i] = v
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
		norm = 1
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}
