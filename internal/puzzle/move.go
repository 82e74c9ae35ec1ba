package puzzle

import (
	"fmt"
)

// Move pours the pourable block on top of tube From into tube To.
// Partial-block behavior depends on the PourPolicy in effect.
type Move struct {
	From int
	To   int
}

func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.From, m.To)
}

// PourPolicy selects the transfer semantics when the destination has
// less free space than the pourable block. The two policies produce
// different reachable-state graphs and must not be mixed within one
// solve.
type PourPolicy int

const (
	// PourAllOrNothing only allows a pour when the entire block fits.
	PourAllOrNothing PourPolicy = iota
	// PourPartial clamps the transfer to the destination's free space.
	PourPartial
)

func (p PourPolicy) String() string {
	switch p {
	case PourAllOrNothing:
		return "all-or-nothing"
	case PourPartial:
		return "partial"
	default:
		return fmt.Sprintf("PourPolicy(%d)", int(p))
	}
}

// ParsePourPolicy maps a policy name to its PourPolicy value.
func ParsePourPolicy(name string) (PourPolicy, error) {
	switch name {
	case "all-or-nothing":
		return PourAllOrNothing, nil
	case "partial":
		return PourPartial, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
}

// PourAmount returns the number of units the move would transfer, or 0
// if the move is illegal under the given policy.
func (s *State) PourAmount(m Move, policy PourPolicy) int {
	if s.validateMove(m) != nil {
		return 0
	}

	block := s.BlockSize(m.From)
	if block == 0 {
		return 0
	}
	space := s.Capacity - len(s.Tubes[m.To])
	if space == 0 {
		return 0
	}

	if top, ok := s.TopColor(m.To); ok {
		fromTop, _ := s.TopColor(m.From)
		if top != fromTop {
			return 0
		}
	}

	switch policy {
	case PourPartial:
		return min(block, space)
	default:
		if space < block {
			return 0
		}
		return block
	}
}

// CanPour reports whether the move is legal under the given policy.
func (s *State) CanPour(m Move, policy PourPolicy) bool {
	return s.PourAmount(m, policy) > 0
}

// Apply performs the move and returns the resulting state. The receiver
// is never mutated.
func (s *State) Apply(m Move, policy PourPolicy) (*State, error) {
	if err := s.validateMove(m); err != nil {
		return nil, err
	}
	amount := s.PourAmount(m, policy)
	if amount == 0 {
		return nil, fmt.Errorf("%w: %s under %s", ErrIllegalPour, m, policy)
	}

	next := s.Clone()
	from, to := next.Tubes[m.From], next.Tubes[m.To]
	cut := len(from) - amount
	next.Tubes[m.To] = append(to, from[cut:]...)
	next.Tubes[m.From] = from[:cut]
	return next, nil
}

// LegalMoves enumerates every legal, useful move from the state.
// Pouring a settled tube's entire contents into an empty tube cannot
// make progress and is suppressed to keep the branching factor down.
func (s *State) LegalMoves(policy PourPolicy) []Move {
	var moves []Move
	for from := range s.Tubes {
		if s.BlockSize(from) == 0 {
			continue
		}
		for to := range s.Tubes {
			if from == to {
				continue
			}
			m := Move{From: from, To: to}
			if !s.CanPour(m, policy) {
				continue
			}
			if len(s.Tubes[to]) == 0 && s.Settled(from) {
				continue
			}
			moves = append(moves, m)
		}
	}
	return moves
}
