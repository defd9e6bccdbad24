package recommend

import (
	"context"
	"log/slog"
	"sync"

	"github.com/poiesic/talentsift/constraints"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/filtering"
	"github.com/poiesic/talentsift/index"
)

// DefaultTopK is the result count used when callers pass no preference.
const DefaultTopK = 10

// overFetchMultiplier controls how many candidates are requested from the
// index per requested result, so hard filtering has enough material to work
// with without starving the result set.
const overFetchMultiplier = 5

// Recommender composes constraint extraction, semantic retrieval, and
// constraint filtering into the recommend operation.
//
// Recommend never fails: every query-time error degrades to an empty result.
// The most recent degradation cause is kept in LastError so operators can
// tell "legitimately no matches" from "index not built" or "query failed".
type Recommender struct {
	catalog []core.AssessmentRecord
	index   *index.Index
	logger  *slog.Logger

	mu      sync.Mutex
	lastErr error
}

// Option configures a Recommender.
type Option func(*Recommender) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRecommender creates a recommender over an immutable catalog snapshot
// and a built index. The catalog slice must not be mutated by the caller.
func NewRecommender(catalog []core.AssessmentRecord, idx *index.Index, opts ...Option) (*Recommender, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}

	r := &Recommender{
		catalog: catalog,
		index:   idx,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	r.logger = r.logger.With("component", "recommender")

	return r, nil
}

// Recommend returns up to topK assessments for the query, best first.
func (r *Recommender) Recommend(ctx context.Context, query string, topK int) []core.AssessmentRecord {
	return r.RecommendWithMonitor(ctx, query, topK, nil)
}

// RecommendWithMonitor is Recommend with stage callbacks.
func (r *Recommender) RecommendWithMonitor(ctx context.Context, query string, topK int, monitor Monitor) []core.AssessmentRecord {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	if topK <= 0 || len(r.catalog) == 0 {
		monitor.Finish(nil)
		return nil
	}

	c := constraints.Extract(query)
	monitor.AfterConstraintExtraction(c)

	count, err := r.index.Count(ctx)
	if err != nil {
		r.degrade("error reading index count", err)
		monitor.Finish(nil)
		return nil
	}
	if count == 0 {
		r.logger.Debug("index holds no documents")
		monitor.Finish(nil)
		return nil
	}

	// Over-fetch so hard filters have headroom, capped at the catalog size.
	k := topK * overFetchMultiplier
	if k > len(r.catalog) {
		k = len(r.catalog)
	}

	matches, err := r.index.Query(ctx, query, k)
	if err != nil {
		r.degrade("error querying index", err)
		monitor.Finish(nil)
		return nil
	}
	monitor.AfterIndexQuery(matches)
	if len(matches) == 0 {
		r.clearLastError()
		monitor.Finish(nil)
		return nil
	}

	candidates := r.reconstruct(matches)

	filtered, trace := filtering.FilterByConstraintsWithTrace(candidates, c)
	monitor.AfterFiltering(filtered, trace)
	for _, stage := range trace.Stages {
		r.logger.Debug("filter stage applied",
			"stage", stage.Name, "initial", stage.Initial,
			"dropped", stage.Dropped, "left", stage.Left)
	}

	if len(filtered) > topK {
		filtered = filtered[:topK]
	}

	r.clearLastError()
	monitor.Finish(filtered)
	return filtered
}

// reconstruct turns index matches back into full assessment records.
// A match whose stored metadata lacks required fields is skipped and logged
// rather than aborting the whole batch.
func (r *Recommender) reconstruct(matches []*core.DocumentMatch) []core.AssessmentRecord {
	candidates := make([]core.AssessmentRecord, 0, len(matches))
	for _, match := range matches {
		if match == nil || match.Document == nil {
			continue
		}
		record := match.Document.Record
		if record.Name == "" || record.URL == "" {
			r.logger.Warn("skipping candidate with incomplete metadata",
				"position", match.Document.Position)
			continue
		}
		candidates = append(candidates, record)
	}
	return candidates
}

// LastError returns the cause of the most recent degraded (empty) result,
// or nil if the last run completed normally.
func (r *Recommender) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *Recommender) degrade(msg string, err error) {
	r.logger.Error(msg, "err", err)
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
}

func (r *Recommender) clearLastError() {
	r.mu.Lock()
	r.lastErr = nil
	r.mu.Unlock()
}
