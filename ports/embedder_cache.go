package ports

import (
	"context"
	"sync"

	"sycobench/domain/core"
)

// CachingEmbedder memoizes an Embedder by the SHA-256 hash of the input text.
// The same justification texts are embedded once per analysis instead of once
// per trial. Safe for concurrent use.
type CachingEmbedder struct {
	inner Embedder

	mu    sync.Mutex
	cache map[core.Hash][]float64
	hits  int
	calls int
}

// AsCachingEmbedder wraps an embedder with a cache unless it already is one
// or is nil.
func AsCachingEmbedder(e Embedder) Embedder {
	if e == nil {
		return nil
	}
	if _, ok := e.(*CachingEmbedder); ok {
		return e
	}
	return NewCachingEmbedder(e)
}

// NewCachingEmbedder wraps an embedder with a hash-keyed cache.
func NewCachingEmbedder(inner Embedder) *CachingEmbedder {
	return &CachingEmbedder{
		inner: inner,
		cache: make(map[core.Hash][]float64),
	}
}

// Embed returns the cached vector for previously seen text, otherwise
// delegates to the wrapped embedder and stores the result.
func (c *CachingEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	key := core.NewTextHash(text)

	c.mu.Lock()
	c.calls++
	if vec, ok := c.cache[key]; ok {
		c.hits++
		c.mu.Unlock()
		return vec, nil
	}
	c.mu.Unlock()

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = vec
	c.mu.Unlock()
	return vec, nil
}

// Stats reports cache effectiveness: total Embed calls and how many were hits.
func (c *CachingEmbedder) Stats() (calls, hits int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls, c.hits
}
