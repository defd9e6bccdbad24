package ai

import (
	"context"
	"log/slog"
	"sync"
)

// CachingEmbedder decorates an Embedder with process-wide memoization.
// The cache maps exact input strings to their vectors, has no eviction and
// no TTL: a cached vector is always what a fresh encode of that exact string
// would produce. Batch calls consult the cache per element and only forward
// the uncached subset to the inner embedder.
type CachingEmbedder struct {
	inner  Embedder
	mu     sync.RWMutex
	cache  map[string][]float32
	logger *slog.Logger
}

// CachingOption configures a CachingEmbedder.
type CachingOption func(*CachingEmbedder)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) CachingOption {
	return func(e *CachingEmbedder) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewCachingEmbedder creates a memoizing decorator around inner.
func NewCachingEmbedder(inner Embedder, opts ...CachingOption) (*CachingEmbedder, error) {
	if inner == nil {
		return nil, ErrEmbedderRequired
	}

	e := &CachingEmbedder{
		inner:  inner,
		cache:  make(map[string][]float32),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "caching-embedder")

	return e, nil
}

// Warm eagerly computes and caches embeddings for the given terms.
// Called once at startup with the common domain vocabulary so that typical
// queries hit a warm cache.
func (e *CachingEmbedder) Warm(ctx context.Context, terms []string) error {
	if len(terms) == 0 {
		return nil
	}

	e.logger.Debug("warming embedding cache", "terms", len(terms))
	_, err := e.EmbedTexts(ctx, terms)
	return err
}

// EmbedText returns the cached vector for text, encoding and caching it on miss.
func (e *CachingEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.mu.RLock()
	vector, ok := e.cache[text]
	e.mu.RUnlock()
	if ok {
		return vector, nil
	}

	vector, err := e.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[text] = vector
	e.mu.Unlock()

	return vector, nil
}

// EmbedTexts returns vectors for texts in input order. Only texts absent from
// the cache are forwarded to the inner embedder, in their original relative
// order, as a single batch.
func (e *CachingEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	var missing []string
	var missingIdx []int

	e.mu.RLock()
	for i, text := range texts {
		if vector, ok := e.cache[text]; ok {
			vectors[i] = vector
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}
	e.mu.RUnlock()

	if len(missing) == 0 {
		return vectors, nil
	}

	e.logger.Debug("embedding cache misses", "total", len(texts), "misses", len(missing))

	computed, err := e.inner.EmbedTexts(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(computed) != len(missing) {
		return nil, ErrEmbeddingCountMismatch
	}

	e.mu.Lock()
	for i, vector := range computed {
		e.cache[missing[i]] = vector
		vectors[missingIdx[i]] = vector
	}
	e.mu.Unlock()

	return vectors, nil
}

// CacheSize returns the number of memoized entries.
func (e *CachingEmbedder) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}
