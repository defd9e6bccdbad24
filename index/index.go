package index

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/talentsift/ai"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/storage"
)

// defaultBatchSize bounds how many documents are embedded per call.
// Batch boundaries have no semantic effect, only peak-memory effect.
const defaultBatchSize = 10

// Index provides semantic similarity search over the assessment catalog.
// Build replaces the whole document set; Query embeds the query text and
// returns the nearest documents. Rebuilds must be sequenced before query
// traffic by the owner.
type Index struct {
	repo      storage.DocumentRepository
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
		return nil
	}
}

// WithBatchSize sets the embedding batch size used during Build.
// Values below 1 fall back to 1.
func WithBatchSize(size int) Option {
	return func(idx *Index) error {
		if size < 1 {
			size = 1
		}
		idx.batchSize = size
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(idx *Index) error {
		if size < 1 {
			size = 1
		}
		if idx.pool != nil {
			idx.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		idx.pool = pool
		return nil
	}
}

// NewIndex creates a new index over the given repository and embedder.
func NewIndex(repo storage.DocumentRepository, embedder ai.Embedder, opts ...Option) (*Index, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		repo:      repo,
		embedder:  embedder,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(idx); optErr != nil {
			idx.Release()
			return nil, optErr
		}
	}
	idx.logger = idx.logger.With("component", "index")

	return idx, nil
}

// Build replaces any existing index with documents synthesized from records.
// Documents are embedded in fixed-size batches dispatched on the worker pool;
// results land at their catalog positions, so the stored set is independent
// of batch scheduling. An empty catalog yields an empty index, not an error.
func (idx *Index) Build(ctx context.Context, records []core.AssessmentRecord) error {
	docs := make([]*core.AssessmentDocument, len(records))
	for i, record := range records {
		docs[i] = BuildDocument(i, record)
	}

	if len(docs) > 0 {
		if err := idx.embedAll(ctx, docs); err != nil {
			return err
		}
	}

	idx.logger.Info("rebuilding document store", "documents", len(docs))
	return idx.repo.ReplaceAll(ctx, docs)
}

// embedAll fills in the Vector field of every document, batch by batch.
func (idx *Index) embedAll(ctx context.Context, docs []*core.AssessmentDocument) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for start := 0; start < len(docs); start += idx.batchSize {
		end := start + idx.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]

		wg.Add(1)
		submitErr := idx.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, doc := range batch {
				texts[i] = doc.Text
			}

			vectors, err := idx.embedder.EmbedTexts(ctx, texts)
			if err == nil && len(vectors) != len(batch) {
				err = ai.ErrEmbeddingCountMismatch
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			for i, vector := range vectors {
				batch[i].Vector = vector
			}
		})
		if submitErr != nil {
			wg.Done()
			return submitErr
		}
	}

	wg.Wait()
	return firstErr
}

// Query embeds text and returns the k most similar documents, most similar
// first. A non-positive k or an empty index yields an empty result; if the
// index holds fewer than k documents, all of them are returned.
func (idx *Index) Query(ctx context.Context, text string, k int) ([]*core.DocumentMatch, error) {
	if k <= 0 {
		return nil, nil
	}

	vector, err := idx.embedder.EmbedText(ctx, text)
	if err != nil {
		idx.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}

	return idx.repo.FindSimilar(ctx, vector, k)
}

// Count returns the current document count; zero for an unbuilt index.
func (idx *Index) Count(ctx context.Context) (int, error) {
	return idx.repo.Count(ctx)
}

// Release releases the worker pool. The index should not be used after
// calling Release.
func (idx *Index) Release() {
	if idx.pool != nil {
		idx.pool.Release()
	}
}
