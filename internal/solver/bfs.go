package solver

import (
	"context"
)

// bfs explores states breadth-first. States are deduplicated on their
// canonical key at enqueue time, so the first dequeue of a solved state
// ends a path of minimum length.
func (s *Solver) bfs(ctx context.Context) *Result {
	root := &node{state: s.initial}
	frontier := []*node{root}
	visited := map[string]struct{}{s.initial.Key(): {}}

	explored := 0
	for len(frontier) > 0 {
		if res := s.checkBudget(ctx, explored); res != nil {
			return res
		}

		n := frontier[0]
		frontier = frontier[1:]
		explored++
		s.logProgress(explored, len(frontier), len(visited))

		if n.state.Solved() {
			return &Result{
				Outcome:        OutcomeSolved,
				Moves:          n.path(),
				StatesExplored: explored,
			}
		}

		for _, m := range n.state.LegalMoves(s.options.Pour) {
			next, err := n.state.Apply(m, s.options.Pour)
			if err != nil {
				continue // LegalMoves only yields legal pours
			}
			key := next.Key()
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			frontier = append(frontier, &node{state: next, parent: n, move: m})
		}
	}

	// Frontier exhausted with every reachable state expanded: no solved
	// state exists from this position.
	return &Result{Outcome: OutcomeUnsolvable, StatesExplored: explored}
}
