package badger

import (
	"bytes"
	"context"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a document repository on top of an open backend.
//
// Returns storage.DocumentRepository interface to enforce abstraction.
func NewDocumentRepository(backend *Backend) storage.DocumentRepository {
	return &DocumentRepository{backend: backend}
}

// ReplaceAll atomically replaces the entire document set.
// Existing documents are deleted before the new set is written; the whole
// swap happens in a single transaction so readers never observe a partially
// rebuilt index.
func (r *DocumentRepository) ReplaceAll(ctx context.Context, docs []*core.AssessmentDocument) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		// Collect existing keys first; deleting while iterating invalidates
		// the iterator.
		var stale [][]byte
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			stale = append(stale, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range stale {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		for _, doc := range docs {
			key := makeDocumentKey(doc.Position)
			value := storage.MarshalDocument(doc)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// FindSimilar returns up to limit documents ordered by cosine similarity to
// the given vector, most similar first, ties broken by catalog position.
func (r *DocumentRepository) FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.DocumentMatch, error) {
	if limit <= 0 {
		return nil, nil
	}

	var matches []*core.DocumentMatch
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.AssessmentDocument
			err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			if doc == nil || len(doc.Vector) == 0 {
				continue
			}

			matches = append(matches, &core.DocumentMatch{
				Document: doc,
				Score:    cosineSimilarity(vector, doc.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending; equal scores keep catalog order.
	slices.SortFunc(matches, func(a, b *core.DocumentMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Document.Position - b.Document.Position
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// Count returns the number of stored documents.
func (r *DocumentRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(documentPrefix + ":")
		for iter.Rewind(); iter.Valid(); iter.Next() {
			if !bytes.HasPrefix(iter.Item().Key(), prefix) {
				continue
			}
			count++
		}
		return nil
	}, false)
	return count, err
}

// Close releases repository resources. The backend itself is owned and
// closed by the caller.
func (r *DocumentRepository) Close() error {
	return nil
}

// cosineSimilarity computes the cosine similarity of two vectors.
// Zero-magnitude or mismatched-length inputs score zero rather than NaN.
func cosineSimilarity(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float32
	for i := 0; i < minLen; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB))))
}
