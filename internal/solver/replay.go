package solver

import (
	"fmt"

	"github.com/ggmaddr/watersort/internal/puzzle"
)

// Replay re-derives the state after each move in sequence. The returned
// slice starts with a copy of the initial state followed by one state
// per move; the input state is never mutated. Replay is pure and
// independent of any search, so callers can validate a solution or
// inspect intermediate positions.
func Replay(initial *puzzle.State, moves []puzzle.Move, policy puzzle.PourPolicy) ([]*puzzle.State, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	states := make([]*puzzle.State, 0, len(moves)+1)
	current := initial.Clone()
	states = append(states, current)

	for i, m := range moves {
		next, err := current.Apply(m, policy)
		if err != nil {
			return nil, fmt.Errorf("replay move %d (%s): %w", i, m, err)
		}
		states = append(states, next)
		current = next
	}
	return states, nil
}
