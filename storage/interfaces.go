package storage

import (
	"context"

	"github.com/poiesic/talentsift/core"
)

// DocumentRepository persists indexed assessment documents and supports
// nearest-neighbor lookup over their embedding vectors.
// Implementations must be thread-safe for concurrent reads; writes happen
// only through ReplaceAll, which the caller sequences before query traffic.
type DocumentRepository interface {
	// ReplaceAll atomically replaces the entire document set.
	// Any previously stored documents are discarded, never merged.
	// An empty slice results in an empty store, not an error.
	ReplaceAll(ctx context.Context, docs []*core.AssessmentDocument) error

	// FindSimilar returns up to limit documents ordered by cosine similarity
	// to the given vector, most similar first. Ties are broken by catalog
	// position ascending, so the ordering is stable across calls.
	// A non-positive limit or an empty store yields an empty result.
	FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.DocumentMatch, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}
