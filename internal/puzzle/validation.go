package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinTubes is the smallest puzzle that admits any move at all.
	MinTubes = 2

	keyUnitSep = ','
	keyTubeSep = '|'
)

var (
	ErrInvalidInput  = errors.New("puzzle input is structurally invalid")
	ErrInvalidColor  = errors.New("malformed color token")
	ErrInvalidTube   = errors.New("tube index out of range")
	ErrIllegalPour   = errors.New("pour is not legal in this state")
	ErrInvalidPolicy = errors.New("unknown pour policy")
)

// validateShape checks the input contract: tube count, capacity, per-tube
// lengths, and color token form. Called once at construction; search
// never re-validates.
func validateShape(totalTubes, capacity int, tubes [][]Color) error {
	if totalTubes < MinTubes {
		return fmt.Errorf("%w: need at least %d tubes, got %d", ErrInvalidInput, MinTubes, totalTubes)
	}
	if capacity < 1 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidInput, capacity)
	}
	if len(tubes) != totalTubes {
		return fmt.Errorf("%w: declared %d tubes but got %d", ErrInvalidInput, totalTubes, len(tubes))
	}
	for i, tube := range tubes {
		if len(tube) > capacity {
			return fmt.Errorf("%w: tube %d holds %d units, capacity is %d", ErrInvalidInput, i, len(tube), capacity)
		}
		for _, c := range tube {
			if err := validateColor(c); err != nil {
				return fmt.Errorf("tube %d: %w", i, err)
			}
		}
	}
	return nil
}

// validateColor rejects tokens that would make canonical keys ambiguous.
func validateColor(c Color) error {
	if c == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidColor)
	}
	if strings.ContainsAny(string(c), string(keyUnitSep)+string(keyTubeSep)) {
		return fmt.Errorf("%w: %q contains a reserved separator", ErrInvalidColor, c)
	}
	return nil
}

// Validate re-checks the structural invariants on an existing State.
// States built through New are always valid; this guards states
// assembled directly by callers before a search runs over them.
func (s *State) Validate() error {
	tubes := make([][]Color, len(s.Tubes))
	for i, tube := range s.Tubes {
		tubes[i] = tube
	}
	return validateShape(len(s.Tubes), s.Capacity, tubes)
}

// validateMove checks that a move references two distinct in-range tubes.
func (s *State) validateMove(m Move) error {
	if m.From < 0 || m.From >= len(s.Tubes) {
		return fmt.Errorf("%w: from %d must be in [0, %d)", ErrInvalidTube, m.From, len(s.Tubes))
	}
	if m.To < 0 || m.To >= len(s.Tubes) {
		return fmt.Errorf("%w: to %d must be in [0, %d)", ErrInvalidTube, m.To, len(s.Tubes))
	}
	if m.From == m.To {
		return fmt.Errorf("%w: source and destination are both %d", ErrInvalidTube, m.From)
	}
	return nil
}
