package evaluation_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/talentsift/ai/mock"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/evaluation"
	"github.com/poiesic/talentsift/index"
	"github.com/poiesic/talentsift/recommend"
	"github.com/poiesic/talentsift/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalCatalog() []core.AssessmentRecord {
	return []core.AssessmentRecord{
		{
			Name:            "Java Programming Assessment",
			URL:             "https://assessments.example.com/java",
			Description:     "Core Java evaluation.",
			Duration:        "40 minutes",
			RemoteSupport:   core.SupportYes,
			AdaptiveSupport: core.SupportNo,
			Category:        core.CategoryTechnical,
		},
		{
			Name:            "Numerical Reasoning Test",
			URL:             "https://assessments.example.com/numerical",
			Description:     "Cognitive numerical reasoning.",
			Duration:        "25 minutes",
			RemoteSupport:   core.SupportYes,
			AdaptiveSupport: core.SupportYes,
			Category:        core.CategoryCognitive,
		},
	}
}

func newEvalRecommender(t *testing.T) *recommend.Recommender {
	t.Helper()
	ctx := context.Background()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	idx, err := index.NewIndex(repo, mock.NewMockEmbedder())
	require.NoError(t, err)
	t.Cleanup(idx.Release)
	require.NoError(t, idx.Build(ctx, evalCatalog()))

	recommender, err := recommend.NewRecommender(evalCatalog(), idx)
	require.NoError(t, err)
	return recommender
}

func TestLoadQueries(t *testing.T) {
	t.Run("parses labeled constraints", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "queries.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{
				"query": "remote cognitive test under 30 minutes",
				"constraints": {
					"max_duration": 30,
					"remote_support": "Yes",
					"test_types": ["Cognitive"]
				}
			},
			{"query": "java developer assessment"}
		]`), 0644))

		queries, err := evaluation.LoadQueries(path)
		require.NoError(t, err)
		require.Len(t, queries, 2)

		require.NotNil(t, queries[0].Constraints)
		assert.True(t, queries[0].Constraints.HasMaxDuration)
		assert.Equal(t, 30, queries[0].Constraints.MaxDuration)
		assert.Equal(t, core.SupportYes, queries[0].Constraints.RemoteSupport)
		assert.Equal(t, []core.Category{core.CategoryCognitive}, queries[0].Constraints.TestTypes)

		assert.Nil(t, queries[1].Constraints)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := evaluation.LoadQueries(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	recommender := newEvalRecommender(t)

	queries := []evaluation.LabeledQuery{
		{Query: "an assessment"},
		{
			Query: "adaptive cognitive test",
			Constraints: &core.QueryConstraints{
				AdaptiveSupport: core.SupportYes,
				TestTypes:       []core.Category{core.CategoryCognitive},
			},
		},
	}

	report := evaluation.Evaluate(ctx, recommender, evalCatalog(), queries, 5, nil)

	require.Len(t, report.Queries, 2)
	assert.Equal(t, 5, report.K)

	// The unconstrained query treats the whole catalog as relevant and the
	// recommender returns all of it, so precision and recall are perfect.
	first := report.Queries[0]
	assert.Equal(t, 2, first.Relevant)
	assert.Equal(t, 2, first.Returned)
	assert.InDelta(t, 1.0, first.Recall, 1e-9)
	assert.InDelta(t, 1.0, first.AP, 1e-9)

	// The constrained query has exactly one relevant record.
	second := report.Queries[1]
	assert.Equal(t, 1, second.Relevant)

	assert.GreaterOrEqual(t, report.MAP, 0.0)
	assert.LessOrEqual(t, report.MAP, 1.0)
}
