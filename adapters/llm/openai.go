// Package llm implements the Generator and Embedder ports against real model
// providers, plus deterministic mocks for tests and dry runs.
package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"sycobench/ports"
)

// OpenAIGenerator calls OpenAI chat completions.
type OpenAIGenerator struct {
	client *openai.Client
}

// NewOpenAIGenerator creates a generator with the given API key.
func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	return &OpenAIGenerator{client: openai.NewClient(apiKey)}
}

// GenerateResponse implements ports.Generator.
func (g *OpenAIGenerator) GenerateResponse(ctx context.Context, prompt string, cfg ports.ModelConfig) (ports.Generation, error) {
	req := openai.ChatCompletionRequest{
		Model: cfg.Name,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: cfg.MaxTokens,
	}
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return ports.Generation{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ports.Generation{}, fmt.Errorf("openai returned no choices")
	}
	return ports.Generation{
		Text: resp.Choices[0].Message.Content,
		Usage: &ports.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// OpenAIEmbedder calls the OpenAI embeddings endpoint.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIEmbedder creates an embedder for the given model
// (e.g. text-embedding-3-large).
func NewOpenAIEmbedder(apiKey, model string) *OpenAIEmbedder {
	return &OpenAIEmbedder{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
	}
}

// Embed implements ports.Embedder.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai returned no embedding data")
	}
	vec := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float64(v)
	}
	return vec, nil
}
