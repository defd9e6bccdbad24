package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/talentsift/ai"
	"github.com/poiesic/talentsift/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCachingEmbedder(t *testing.T) {
	t.Run("requires an inner embedder", func(t *testing.T) {
		embedder, err := ai.NewCachingEmbedder(nil)
		assert.ErrorIs(t, err, ai.ErrEmbedderRequired)
		assert.Nil(t, embedder)
	})

	t.Run("starts empty", func(t *testing.T) {
		embedder, err := ai.NewCachingEmbedder(mock.NewMockEmbedder())
		require.NoError(t, err)
		assert.Equal(t, 0, embedder.CacheSize())
	})
}

func TestCachingEmbedder_EmbedText(t *testing.T) {
	ctx := context.Background()

	t.Run("caches on first encode", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		embedder, err := ai.NewCachingEmbedder(inner)
		require.NoError(t, err)

		first, err := embedder.EmbedText(ctx, "java developer test")
		require.NoError(t, err)
		require.NotEmpty(t, first)
		assert.Equal(t, 1, inner.CallCount())
		assert.Equal(t, 1, embedder.CacheSize())

		second, err := embedder.EmbedText(ctx, "java developer test")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.CallCount(), "cache hit must not reach the inner embedder")
	})

	t.Run("propagates inner errors without caching", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		inner.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("service unavailable")
		}
		embedder, err := ai.NewCachingEmbedder(inner)
		require.NoError(t, err)

		_, err = embedder.EmbedText(ctx, "query")
		assert.Error(t, err)
		assert.Equal(t, 0, embedder.CacheSize())
	})
}

func TestCachingEmbedder_EmbedTexts(t *testing.T) {
	ctx := context.Background()

	t.Run("only misses reach the inner embedder", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		embedder, err := ai.NewCachingEmbedder(inner)
		require.NoError(t, err)

		cached, err := embedder.EmbedText(ctx, "alpha")
		require.NoError(t, err)

		var forwarded []string
		inner.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			forwarded = texts
			vectors := make([][]float32, len(texts))
			for i, text := range texts {
				vectors[i] = mock.DeterministicVector(text, 384)
			}
			return vectors, nil
		}

		vectors, err := embedder.EmbedTexts(ctx, []string{"alpha", "beta", "gamma"})
		require.NoError(t, err)
		require.Len(t, vectors, 3)
		assert.Equal(t, []string{"beta", "gamma"}, forwarded)
		assert.Equal(t, cached, vectors[0])
		assert.Equal(t, 3, embedder.CacheSize())
	})

	t.Run("all hits skip the inner embedder entirely", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		embedder, err := ai.NewCachingEmbedder(inner)
		require.NoError(t, err)

		_, err = embedder.EmbedTexts(ctx, []string{"a", "b"})
		require.NoError(t, err)
		calls := inner.CallCount()

		_, err = embedder.EmbedTexts(ctx, []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, calls, inner.CallCount())
	})

	t.Run("detects count mismatches", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		inner.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{0.1}}, nil
		}
		embedder, err := ai.NewCachingEmbedder(inner)
		require.NoError(t, err)

		_, err = embedder.EmbedTexts(ctx, []string{"x", "y"})
		assert.ErrorIs(t, err, ai.ErrEmbeddingCountMismatch)
	})
}

func TestCachingEmbedder_Warm(t *testing.T) {
	ctx := context.Background()

	t.Run("precomputes the vocabulary", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		embedder, err := ai.NewCachingEmbedder(inner)
		require.NoError(t, err)

		require.NoError(t, embedder.Warm(ctx, []string{"java", "python", "cognitive"}))
		assert.Equal(t, 3, embedder.CacheSize())

		calls := inner.CallCount()
		_, err = embedder.EmbedText(ctx, "java")
		require.NoError(t, err)
		assert.Equal(t, calls, inner.CallCount())
	})

	t.Run("empty term list is a no-op", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		embedder, err := ai.NewCachingEmbedder(inner)
		require.NoError(t, err)

		require.NoError(t, embedder.Warm(ctx, nil))
		assert.Equal(t, 0, inner.CallCount())
	})

	t.Run("default vocabulary warms cleanly", func(t *testing.T) {
		embedder, err := ai.NewCachingEmbedder(mock.NewMockEmbedder())
		require.NoError(t, err)

		require.NoError(t, embedder.Warm(ctx, ai.WarmTerms))
		assert.Equal(t, len(ai.WarmTerms), embedder.CacheSize())
	})
}
