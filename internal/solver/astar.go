package solver

import (
	"container/heap"
	"context"
)

// astar runs best-first search ordered by f = g + Estimate. The gScore
// map holds the cheapest known path length per canonical key; a state
// reached again more cheaply is re-pushed (standard relaxation), and
// stale heap entries are skipped on pop.
func (s *Solver) astar(ctx context.Context) *Result {
	pour := s.options.Pour

	root := &node{state: s.initial}
	open := &openHeap{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &openItem{node: root, g: 0, f: Estimate(s.initial), seq: seq})
	seq++

	gScore := map[string]int{s.initial.Key(): 0}

	explored := 0
	for open.Len() > 0 {
		if res := s.checkBudget(ctx, explored); res != nil {
			return res
		}

		item := heap.Pop(open).(*openItem)
		if best, ok := gScore[item.node.state.Key()]; ok && item.g > best {
			continue // superseded by a cheaper path found later
		}
		explored++
		s.logProgress(explored, open.Len(), len(gScore))

		if item.node.state.Solved() {
			return &Result{
				Outcome:        OutcomeSolved,
				Moves:          item.node.path(),
				StatesExplored: explored,
			}
		}

		for _, m := range item.node.state.LegalMoves(pour) {
			next, err := item.node.state.Apply(m, pour)
			if err != nil {
				continue
			}
			key := next.Key()
			tentative := item.g + 1
			if best, ok := gScore[key]; ok && tentative >= best {
				continue
			}
			gScore[key] = tentative
			heap.Push(open, &openItem{
				node: &node{state: next, parent: item.node, move: m},
				g:    tentative,
				f:    tentative + Estimate(next),
				seq:  seq,
			})
			seq++
		}
	}

	return &Result{Outcome: OutcomeUnsolvable, StatesExplored: explored}
}

// openItem is a frontier entry. seq is a monotonic insertion counter:
// among equal f values, earlier discoveries pop first, which keeps the
// search order (and therefore the returned move list) deterministic.
type openItem struct {
	node *node
	g    int
	f    int
	seq  int
}

type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) { *h = append(*h, x.(*openItem)) }

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
