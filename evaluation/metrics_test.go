package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func relevantSet(positions ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		set[p] = struct{}{}
	}
	return set
}

func TestPrecisionAtK(t *testing.T) {
	retrieved := []int{0, 3, 1, 7}
	relevant := relevantSet(0, 1, 2)

	assert.Equal(t, 1.0, PrecisionAtK(retrieved, relevant, 1))
	assert.Equal(t, 0.5, PrecisionAtK(retrieved, relevant, 2))
	assert.InDelta(t, 2.0/3.0, PrecisionAtK(retrieved, relevant, 3), 1e-9)
	assert.Equal(t, 0.5, PrecisionAtK(retrieved, relevant, 4))

	t.Run("k beyond retrieved list", func(t *testing.T) {
		assert.Equal(t, 0.5, PrecisionAtK(retrieved, relevant, 10))
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Equal(t, 0.0, PrecisionAtK(nil, relevant, 5))
		assert.Equal(t, 0.0, PrecisionAtK(retrieved, relevant, 0))
	})
}

func TestRecallAtK(t *testing.T) {
	retrieved := []int{0, 3, 1, 7}
	relevant := relevantSet(0, 1, 2)

	assert.InDelta(t, 1.0/3.0, RecallAtK(retrieved, relevant, 1), 1e-9)
	assert.InDelta(t, 2.0/3.0, RecallAtK(retrieved, relevant, 4), 1e-9)

	t.Run("no relevant items", func(t *testing.T) {
		assert.Equal(t, 0.0, RecallAtK(retrieved, relevantSet(), 4))
	})
}

func TestAveragePrecision(t *testing.T) {
	t.Run("perfect ranking", func(t *testing.T) {
		ap := AveragePrecision([]int{0, 1}, relevantSet(0, 1))
		assert.InDelta(t, 1.0, ap, 1e-9)
	})

	t.Run("relevant item ranked late", func(t *testing.T) {
		// Hit at rank 1 (precision 1) and rank 3 (precision 2/3).
		ap := AveragePrecision([]int{0, 9, 1}, relevantSet(0, 1))
		assert.InDelta(t, (1.0+2.0/3.0)/2.0, ap, 1e-9)
	})

	t.Run("missed relevant items lower the score", func(t *testing.T) {
		ap := AveragePrecision([]int{0}, relevantSet(0, 1, 2))
		assert.InDelta(t, 1.0/3.0, ap, 1e-9)
	})

	t.Run("no relevant items", func(t *testing.T) {
		assert.Equal(t, 0.0, AveragePrecision([]int{0, 1}, relevantSet()))
	})
}

func TestMeanAveragePrecision(t *testing.T) {
	assert.Equal(t, 0.0, MeanAveragePrecision(nil))
	assert.InDelta(t, 0.5, MeanAveragePrecision([]float64{1.0, 0.0}), 1e-9)
}
