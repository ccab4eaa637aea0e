package llm

import (
	"context"
	"fmt"

	"sycobench/domain/core"
	"sycobench/internal/config"
	"sycobench/ports"
)

// Registry maps provider names to constructed generators. Providers without a
// credential are simply absent; the experiment runner skips models it cannot
// reach and reports them.
type Registry struct {
	generators map[string]ports.Generator
}

// NewRegistry constructs generators for every provider with a configured key.
func NewRegistry(ctx context.Context, providers config.ProviderConfig) (*Registry, error) {
	r := &Registry{generators: make(map[string]ports.Generator)}

	if providers.OpenAIKey != "" {
		r.generators["openai"] = NewOpenAIGenerator(providers.OpenAIKey)
	}
	if providers.AnthropicKey != "" {
		gen, err := NewAnthropicGenerator(providers.AnthropicKey)
		if err != nil {
			return nil, err
		}
		r.generators["anthropic"] = gen
	}
	if providers.GoogleKey != "" {
		gen, err := NewGoogleGenerator(ctx, providers.GoogleKey)
		if err != nil {
			return nil, err
		}
		r.generators["google"] = gen
	}
	return r, nil
}

// NewMockRegistry returns a registry serving the mock generator for every
// provider, for dry runs and tests.
func NewMockRegistry(providers ...string) *Registry {
	r := &Registry{generators: make(map[string]ports.Generator)}
	for _, p := range providers {
		r.generators[p] = NewMockGenerator()
	}
	return r
}

// Generator returns the generator for a provider name.
func (r *Registry) Generator(provider string) (ports.Generator, error) {
	gen, ok := r.generators[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrMissingCredential, provider)
	}
	return gen, nil
}

// Providers lists the reachable provider names.
func (r *Registry) Providers() []string {
	out := make([]string, 0, len(r.generators))
	for p := range r.generators {
		out = append(out, p)
	}
	return out
}
