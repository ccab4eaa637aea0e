package llm

import (
	"context"
	"math"
	"testing"

	"sycobench/ports"
)

func TestMockGeneratorDeterministic(t *testing.T) {
	gen := NewMockGenerator()
	cfg := ports.ModelConfig{Key: "claude", Name: "claude-test", Provider: "anthropic", MaxTokens: 64}

	a, err := gen.GenerateResponse(context.Background(), "prompt", cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := gen.GenerateResponse(context.Background(), "prompt", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Text != b.Text {
		t.Error("same prompt should produce the same mock response")
	}
	if a.Usage == nil {
		t.Error("mock should report usage")
	}
}

func TestMockEmbedderDeterministicUnitVectors(t *testing.T) {
	emb := NewMockEmbedder(16)
	ctx := context.Background()

	v1, err := emb.Embed(ctx, "some justification text")
	if err != nil {
		t.Fatal(err)
	}
	v2, err := emb.Embed(ctx, "some justification text")
	if err != nil {
		t.Fatal(err)
	}
	if len(v1) != 16 {
		t.Fatalf("dimension = %d, want 16", len(v1))
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatal("same text must embed identically")
		}
	}
	var norm float64
	for _, v := range v1 {
		norm += v * v
	}
	if math.Abs(norm-1) > 1e-9 {
		t.Errorf("embedding should be unit length, |v|^2 = %v", norm)
	}

	other, _ := emb.Embed(ctx, "entirely different text")
	same := true
	for i := range v1 {
		if v1[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts should (almost surely) embed differently")
	}
}

func TestMockRegistry(t *testing.T) {
	r := NewMockRegistry("anthropic", "openai")
	if _, err := r.Generator("anthropic"); err != nil {
		t.Errorf("expected anthropic generator: %v", err)
	}
	if _, err := r.Generator("google"); err == nil {
		t.Error("missing provider should error")
	}
	if len(r.Providers()) != 2 {
		t.Errorf("providers = %v, want 2 entries", r.Providers())
	}
}
