package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggmaddr/watersort/internal/puzzle"
)

func TestEstimate(t *testing.T) {
	t.Run("sorted full tubes score zero", func(t *testing.T) {
		s := mustState(t, 4, [][]puzzle.Color{
			{"red", "red", "red", "red"},
			{"blue", "blue", "blue", "blue"},
			{},
		})
		assert.Zero(t, Estimate(s))
	})

	t.Run("counts run breaks inside tubes", func(t *testing.T) {
		// 3 breaks in each interleaved tube, distinct bottoms.
		s := mustState(t, 4, [][]puzzle.Color{
			{"red", "blue", "red", "blue"},
			{"blue", "red", "blue", "red"},
			{},
			{},
		})
		assert.Equal(t, 6, Estimate(s))
	})

	t.Run("penalizes duplicate bottom colors", func(t *testing.T) {
		// No breaks, but red sits at the bottom of three tubes.
		s := mustState(t, 4, [][]puzzle.Color{
			{"red"},
			{"red"},
			{"red"},
			{},
		})
		assert.Equal(t, 2, Estimate(s))
	})
}
