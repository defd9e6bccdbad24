package talentsift

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/talentsift/ai/mock"
	"github.com/poiesic/talentsift/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `[
	{
		"name": "Java Programming Assessment",
		"url": "https://assessments.example.com/java",
		"description": "Core Java evaluation.",
		"duration": "40 minutes",
		"remote_support": "Yes",
		"adaptive_support": "No",
		"type": "Technical"
	},
	{
		"name": "Python Developer Test",
		"url": "https://assessments.example.com/python",
		"description": "Practical Python for developers.",
		"duration": "30 minutes",
		"remote_support": "Yes",
		"adaptive_support": "Yes",
		"type": "Technical"
	},
	{
		"name": "Numerical Reasoning Test",
		"url": "https://assessments.example.com/numerical",
		"description": "Cognitive numerical reasoning.",
		"duration": "25 minutes",
		"remote_support": "Yes",
		"adaptive_support": "Yes",
		"type": "Cognitive"
	}
]`

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogJSON), 0644))
	return path
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	ctx := context.Background()

	engine, err := NewEngine(ctx, writeTestCatalog(t), "",
		WithEmbedder(mock.NewMockEmbedder()),
		WithInMemoryStorage(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("starts ready with a built index", func(t *testing.T) {
		engine := newTestEngine(t)

		status := engine.Health(context.Background())
		assert.Equal(t, 3, status.CatalogSize)
		assert.Equal(t, 3, status.IndexedDocuments)
		assert.True(t, status.Ready)
		assert.NoError(t, status.LastError)
	})

	t.Run("missing catalog degrades to empty", func(t *testing.T) {
		ctx := context.Background()
		engine, err := NewEngine(ctx, filepath.Join(t.TempDir(), "absent.json"), "",
			WithEmbedder(mock.NewMockEmbedder()),
			WithInMemoryStorage(),
		)
		require.NoError(t, err)
		defer engine.Close()

		status := engine.Health(ctx)
		assert.Equal(t, 0, status.CatalogSize)
		assert.Empty(t, engine.Recommend(ctx, "java", 5))
	})

	t.Run("on-disk storage persists across engines", func(t *testing.T) {
		ctx := context.Background()
		catalogPath := writeTestCatalog(t)
		dbPath := filepath.Join(t.TempDir(), "engine_db")

		first, err := NewEngine(ctx, catalogPath, dbPath,
			WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		require.NoError(t, first.Close())

		second, err := NewEngine(ctx, catalogPath, dbPath,
			WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		defer second.Close()

		status := second.Health(ctx)
		assert.True(t, status.Ready)
	})
}

func TestEngine_Recommend(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	t.Run("returns constrained results", func(t *testing.T) {
		results := engine.Recommend(ctx, "adaptive python test", 3)
		require.NotEmpty(t, results)
		for _, record := range results {
			assert.Equal(t, core.SupportYes, record.AdaptiveSupport)
		}
	})

	t.Run("empty query never panics", func(t *testing.T) {
		results := engine.Recommend(ctx, "", 3)
		assert.LessOrEqual(t, len(results), 3)
	})

	t.Run("topK bounds the result", func(t *testing.T) {
		results := engine.Recommend(ctx, "an assessment", 1)
		assert.LessOrEqual(t, len(results), 1)
	})
}

func TestEngine_ExtractConstraints(t *testing.T) {
	engine := newTestEngine(t)

	c := engine.ExtractConstraints("remote adaptive assessment under 30 min")
	assert.True(t, c.HasMaxDuration)
	assert.Equal(t, 30, c.MaxDuration)
	assert.Equal(t, core.SupportYes, c.RemoteSupport)
	assert.Equal(t, core.SupportYes, c.AdaptiveSupport)
}

func TestEngine_FilterByConstraints(t *testing.T) {
	engine := newTestEngine(t)

	filtered := engine.FilterByConstraints(engine.Catalog(), core.QueryConstraints{
		MaxDuration:    30,
		HasMaxDuration: true,
	})
	require.Len(t, filtered, 2)
	for _, record := range filtered {
		assert.NotEqual(t, "Java Programming Assessment", record.Name)
	}
}

func TestEngine_Rebuild(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	require.NoError(t, engine.Rebuild(ctx))

	status := engine.Health(ctx)
	assert.Equal(t, 3, status.IndexedDocuments)
	assert.True(t, status.Ready)
}

func TestEngine_Reload(t *testing.T) {
	ctx := context.Background()
	catalogPath := writeTestCatalog(t)

	engine, err := NewEngine(ctx, catalogPath, "",
		WithEmbedder(mock.NewMockEmbedder()),
		WithInMemoryStorage(),
	)
	require.NoError(t, err)
	defer engine.Close()

	// Shrink the catalog on disk and reload.
	require.NoError(t, os.WriteFile(catalogPath, []byte(`[
		{
			"name": "Numerical Reasoning Test",
			"url": "https://assessments.example.com/numerical",
			"description": "Cognitive numerical reasoning.",
			"duration": "25 minutes",
			"remote_support": "Yes",
			"adaptive_support": "Yes",
			"type": "Cognitive"
		}
	]`), 0644))
	require.NoError(t, engine.Reload(ctx))

	status := engine.Health(ctx)
	assert.Equal(t, 1, status.CatalogSize)
	assert.Equal(t, 1, status.IndexedDocuments)
	assert.True(t, status.Ready)

	t.Run("failed reload keeps the previous snapshot", func(t *testing.T) {
		require.NoError(t, os.WriteFile(catalogPath, []byte(`{broken`), 0644))
		assert.Error(t, engine.Reload(ctx))
		assert.Equal(t, 1, len(engine.Catalog()))
	})
}
