// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package talentsift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/talentsift/ai"
	"github.com/poiesic/talentsift/ai/openai"
	"github.com/poiesic/talentsift/catalog"
	"github.com/poiesic/talentsift/constraints"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/filtering"
	"github.com/poiesic/talentsift/index"
	"github.com/poiesic/talentsift/recommend"
	"github.com/poiesic/talentsift/storage"
	"github.com/poiesic/talentsift/storage/badger"
)

// Engine is the top-level entry point. It owns the catalog snapshot, the
// document store, the caching embedder, the vector index, and the
// recommender, and wires them together at startup.
type Engine struct {
	catalog     []core.AssessmentRecord
	backend     *badger.Backend
	repo        storage.DocumentRepository
	embedder    *ai.CachingEmbedder
	index       *index.Index
	recommender *recommend.Recommender
	logger      *slog.Logger

	catalogPath string
	warmTerms   []string
}

// Status describes the engine's readiness for Health checks.
type Status struct {
	CatalogSize      int
	IndexedDocuments int
	Ready            bool
	LastError        error
}

type engineConfig struct {
	aiConfig   *ai.Config
	embedder   ai.Embedder
	inMemory   bool
	logger     *slog.Logger
	warmTerms  []string
	skipWarmup bool
}

// EngineOption configures NewEngine.
type EngineOption func(*engineConfig)

// WithAIConfig sets the embedding provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) EngineOption {
	return func(ec *engineConfig) {
		if cfg != nil {
			ec.aiConfig = cfg
		}
	}
}

// WithEmbedder injects a pre-built embedder, bypassing the OpenAI-compatible
// client construction. Intended for tests.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(ec *engineConfig) {
		ec.embedder = embedder
	}
}

// WithInMemoryStorage uses an ephemeral in-memory document store instead of
// an on-disk one. The index is rebuilt on every startup.
func WithInMemoryStorage() EngineOption {
	return func(ec *engineConfig) {
		ec.inMemory = true
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(ec *engineConfig) {
		if logger != nil {
			ec.logger = logger
		}
	}
}

// WithWarmTerms overrides the vocabulary used to warm the embedding cache
// at startup. Pass an empty slice to skip warmup entirely.
func WithWarmTerms(terms []string) EngineOption {
	return func(ec *engineConfig) {
		ec.warmTerms = terms
		ec.skipWarmup = len(terms) == 0
	}
}

// NewEngine loads the catalog, opens storage, builds the embedding stack,
// and ensures the index covers the current catalog. A stored index whose
// document count matches the catalog is reused; anything else triggers a
// rebuild.
func NewEngine(ctx context.Context, catalogPath, dbPath string, opts ...EngineOption) (*Engine, error) {
	cfg := engineConfig{
		aiConfig:  ai.DefaultConfig(),
		logger:    slog.Default(),
		warmTerms: ai.WarmTerms,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger.With("component", "engine")

	// An unreadable catalog degrades to an empty one: the engine still comes
	// up and answers every query with an empty result until Reload succeeds.
	records, err := catalog.Load(catalogPath, catalog.WithLogger(cfg.logger))
	if err != nil {
		logger.Warn("catalog unavailable, starting with an empty catalog",
			"path", catalogPath, "err", err)
		records = nil
	}

	inner := cfg.embedder
	if inner == nil {
		if err := cfg.aiConfig.Validate(); err != nil {
			return nil, err
		}
		inner, err = openai.NewEmbedder(cfg.aiConfig)
		if err != nil {
			return nil, fmt.Errorf("creating embedder: %w", err)
		}
	}

	embedder, err := ai.NewCachingEmbedder(inner, ai.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(dbPath, cfg.inMemory)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	e := &Engine{
		catalog:     records,
		backend:     backend,
		repo:        badger.NewDocumentRepository(backend),
		embedder:    embedder,
		logger:      logger,
		catalogPath: catalogPath,
		warmTerms:   cfg.warmTerms,
	}

	e.index, err = index.NewIndex(e.repo, embedder, index.WithLogger(cfg.logger))
	if err != nil {
		backend.Close()
		return nil, err
	}

	e.recommender, err = recommend.NewRecommender(records, e.index, recommend.WithLogger(cfg.logger))
	if err != nil {
		e.index.Release()
		backend.Close()
		return nil, err
	}

	// A warmup failure means the embedding service is unreachable, and a
	// recommender without embeddings can only ever return empty results.
	if !cfg.skipWarmup {
		if err := embedder.Warm(ctx, cfg.warmTerms); err != nil {
			e.Close()
			return nil, fmt.Errorf("warming embedding cache: %w", err)
		}
	}

	if err := e.ensureIndexed(ctx); err != nil {
		e.Close()
		return nil, err
	}

	logger.Info("engine ready",
		"catalog", len(records), "cached_embeddings", embedder.CacheSize())
	return e, nil
}

// ensureIndexed rebuilds the index unless the stored document count already
// matches the catalog.
func (e *Engine) ensureIndexed(ctx context.Context) error {
	count, err := e.index.Count(ctx)
	if err != nil {
		return fmt.Errorf("reading index count: %w", err)
	}
	if count == len(e.catalog) {
		e.logger.Debug("index up to date", "documents", count)
		return nil
	}

	e.logger.Info("index out of date, rebuilding",
		"stored", count, "catalog", len(e.catalog))
	return e.index.Build(ctx, e.catalog)
}

// Recommend returns up to topK assessments matching the query, best first.
// It never fails; degraded runs return an empty slice and record the cause,
// visible through Health.
func (e *Engine) Recommend(ctx context.Context, query string, topK int) []core.AssessmentRecord {
	return e.recommender.Recommend(ctx, query, topK)
}

// ExtractConstraints exposes the deterministic constraint extractor.
func (e *Engine) ExtractConstraints(query string) core.QueryConstraints {
	return constraints.Extract(query)
}

// FilterByConstraints applies the constraint pipeline to arbitrary records.
func (e *Engine) FilterByConstraints(records []core.AssessmentRecord, c core.QueryConstraints) []core.AssessmentRecord {
	return filtering.FilterByConstraints(records, c)
}

// Rebuild destroys and re-creates the index from the current catalog
// snapshot. Callers must sequence this before further query traffic.
func (e *Engine) Rebuild(ctx context.Context) error {
	return e.index.Build(ctx, e.catalog)
}

// Reload re-reads the catalog file, swaps in the new snapshot, and rebuilds
// the index. On load failure the previous snapshot stays active.
func (e *Engine) Reload(ctx context.Context) error {
	records, err := catalog.Load(e.catalogPath, catalog.WithLogger(e.logger))
	if err != nil {
		return fmt.Errorf("reloading catalog: %w", err)
	}

	recommender, err := recommend.NewRecommender(records, e.index, recommend.WithLogger(e.logger))
	if err != nil {
		return err
	}

	e.catalog = records
	e.recommender = recommender
	return e.index.Build(ctx, e.catalog)
}

// Catalog returns the active catalog snapshot. Callers must not mutate it.
func (e *Engine) Catalog() []core.AssessmentRecord {
	return e.catalog
}

// Recommender returns the underlying recommender, for the evaluation
// harness and stage-level monitoring.
func (e *Engine) Recommender() *recommend.Recommender {
	return e.recommender
}

// Health reports the engine's current readiness.
func (e *Engine) Health(ctx context.Context) Status {
	status := Status{
		CatalogSize: len(e.catalog),
		LastError:   e.recommender.LastError(),
	}

	count, err := e.index.Count(ctx)
	if err != nil {
		status.LastError = err
		return status
	}
	status.IndexedDocuments = count
	status.Ready = count == len(e.catalog) && !e.backend.IsClosed()
	return status
}

// Close releases the index worker pool and the storage backend.
func (e *Engine) Close() error {
	if e.index != nil {
		e.index.Release()
	}
	if e.backend != nil {
		return e.backend.Close()
	}
	return nil
}
