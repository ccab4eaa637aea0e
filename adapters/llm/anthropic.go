package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/schema"

	"sycobench/ports"
)

// AnthropicGenerator calls the Anthropic messages API via langchaingo.
type AnthropicGenerator struct {
	llm *anthropic.LLM
}

// NewAnthropicGenerator creates a generator with the given API key.
func NewAnthropicGenerator(apiKey string) (*AnthropicGenerator, error) {
	model, err := anthropic.New(anthropic.WithToken(apiKey))
	if err != nil {
		return nil, fmt.Errorf("anthropic client: %w", err)
	}
	return &AnthropicGenerator{llm: model}, nil
}

// GenerateResponse implements ports.Generator.
func (g *AnthropicGenerator) GenerateResponse(ctx context.Context, prompt string, cfg ports.ModelConfig) (ports.Generation, error) {
	resp, err := g.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, prompt)},
		llms.WithModel(cfg.Name),
		llms.WithMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		return ports.Generation{}, fmt.Errorf("anthropic generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ports.Generation{}, fmt.Errorf("anthropic returned no choices")
	}
	choice := resp.Choices[0]
	gen := ports.Generation{Text: choice.Content}
	if usage := tokenUsage(choice.GenerationInfo); usage != nil {
		gen.Usage = usage
	}
	return gen, nil
}

// tokenUsage pulls token counts out of a langchaingo GenerationInfo map when
// the provider reports them.
func tokenUsage(info map[string]any) *ports.Usage {
	if info == nil {
		return nil
	}
	in, okIn := asInt(info["InputTokens"])
	out, okOut := asInt(info["OutputTokens"])
	if !okIn && !okOut {
		return nil
	}
	return &ports.Usage{InputTokens: in, OutputTokens: out}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
