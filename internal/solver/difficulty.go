package solver

import (
	"context"

	"github.com/ggmaddr/watersort/internal/puzzle"
)

// Difficulty returns an integer measure of a puzzle's difficulty: the
// number of states a heuristic search expands before resolving it.
// Invalid states score 0.
func Difficulty(s *puzzle.State, policy puzzle.PourPolicy) int {
	slv := New(s, &Options{
		Mode: ModeAStar,
		Pour: policy,
	})
	result, err := slv.Solve(context.Background())
	if err != nil {
		return 0
	}
	return result.StatesExplored
}
