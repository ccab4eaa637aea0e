package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"

	"sycobench/ports"
)

// GoogleGenerator calls the Gemini API via langchaingo.
type GoogleGenerator struct {
	llm *googleai.GoogleAI
}

// NewGoogleGenerator creates a generator with the given API key.
func NewGoogleGenerator(ctx context.Context, apiKey string) (*GoogleGenerator, error) {
	model, err := googleai.New(ctx, googleai.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("googleai client: %w", err)
	}
	return &GoogleGenerator{llm: model}, nil
}

// GenerateResponse implements ports.Generator.
func (g *GoogleGenerator) GenerateResponse(ctx context.Context, prompt string, cfg ports.ModelConfig) (ports.Generation, error) {
	resp, err := g.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, prompt)},
		llms.WithModel(cfg.Name),
		llms.WithMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		return ports.Generation{}, fmt.Errorf("googleai generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ports.Generation{}, fmt.Errorf("googleai returned no choices")
	}
	choice := resp.Choices[0]
	gen := ports.Generation{Text: choice.Content}
	if usage := tokenUsage(choice.GenerationInfo); usage != nil {
		gen.Usage = usage
	}
	return gen, nil
}
