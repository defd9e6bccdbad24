package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/talentsift/constraints"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/recommend"
)

// LabeledQuery is a single evaluation case. When Constraints is nil the
// harness extracts constraints from the query text itself, which doubles as
// a regression check on the extractor.
type LabeledQuery struct {
	Query       string                 `json:"query"`
	Constraints *core.QueryConstraints `json:"-"`
}

// labeledQueryDTO is the on-disk JSON shape of a LabeledQuery.
type labeledQueryDTO struct {
	Query       string         `json:"query"`
	Constraints *constraintDTO `json:"constraints,omitempty"`
}

type constraintDTO struct {
	MaxDuration     *int     `json:"max_duration,omitempty"`
	RemoteSupport   string   `json:"remote_support,omitempty"`
	AdaptiveSupport string   `json:"adaptive_support,omitempty"`
	TestTypes       []string `json:"test_types,omitempty"`
}

func (d *constraintDTO) toConstraints() core.QueryConstraints {
	var c core.QueryConstraints
	if d.MaxDuration != nil {
		c.MaxDuration = *d.MaxDuration
		c.HasMaxDuration = true
	}
	c.RemoteSupport = core.SupportFlag(d.RemoteSupport)
	c.AdaptiveSupport = core.SupportFlag(d.AdaptiveSupport)
	for _, t := range d.TestTypes {
		c.TestTypes = append(c.TestTypes, core.Category(t))
	}
	return c
}

// LoadQueries reads labeled queries from a JSON file.
func LoadQueries(path string) ([]LabeledQuery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading queries: %w", err)
	}

	var dtos []labeledQueryDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("parsing queries: %w", err)
	}

	queries := make([]LabeledQuery, 0, len(dtos))
	for _, dto := range dtos {
		q := LabeledQuery{Query: dto.Query}
		if dto.Constraints != nil {
			c := dto.Constraints.toConstraints()
			q.Constraints = &c
		}
		queries = append(queries, q)
	}
	return queries, nil
}

// QueryResult holds per-query metrics.
type QueryResult struct {
	Query     string
	Relevant  int
	Returned  int
	Precision float64
	Recall    float64
	AP        float64
}

// Report aggregates an evaluation run.
type Report struct {
	K       int
	Queries []QueryResult
	MAP     float64
}

// Evaluate runs each labeled query through the recommender and scores the
// results against constraint-derived relevance over the catalog.
func Evaluate(ctx context.Context, rec *recommend.Recommender, catalog []core.AssessmentRecord, queries []LabeledQuery, k int, logger *slog.Logger) Report {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "evaluation")

	// Catalog positions are keyed by URL so recommended records can be
	// mapped back without carrying positions through the pipeline.
	positionByURL := make(map[string]int, len(catalog))
	for i, record := range catalog {
		if _, ok := positionByURL[record.URL]; !ok {
			positionByURL[record.URL] = i
		}
	}

	report := Report{K: k}
	aps := make([]float64, 0, len(queries))
	for _, q := range queries {
		var c core.QueryConstraints
		if q.Constraints != nil {
			c = *q.Constraints
		} else {
			c = constraints.Extract(q.Query)
		}

		relevant := make(map[int]struct{})
		for i, record := range catalog {
			if IsRelevant(record, c) {
				relevant[i] = struct{}{}
			}
		}

		results := rec.Recommend(ctx, q.Query, k)
		retrieved := make([]int, 0, len(results))
		for _, record := range results {
			if pos, ok := positionByURL[record.URL]; ok {
				retrieved = append(retrieved, pos)
			}
		}

		qr := QueryResult{
			Query:     q.Query,
			Relevant:  len(relevant),
			Returned:  len(results),
			Precision: PrecisionAtK(retrieved, relevant, k),
			Recall:    RecallAtK(retrieved, relevant, k),
			AP:        AveragePrecision(retrieved, relevant),
		}
		report.Queries = append(report.Queries, qr)
		aps = append(aps, qr.AP)

		logger.Debug("query evaluated", "query", q.Query,
			"precision", qr.Precision, "recall", qr.Recall, "ap", qr.AP)
	}

	report.MAP = MeanAveragePrecision(aps)
	return report
}
