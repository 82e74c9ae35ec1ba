package puzzle

import (
	"strings"
)

// Color is an opaque token naming one liquid color. Tokens carry no
// semantics beyond equality; the same token across tubes denotes the
// same color.
type Color string

// Tube holds a vertical stack of color units, index 0 at the bottom.
type Tube []Color

// State is the full puzzle position: a fixed number of tubes sharing a
// uniform capacity. Tube count and capacity never change after
// construction; transitions produce fresh State values via Apply.
type State struct {
	Capacity int
	Tubes    []Tube
}

// New creates a State from bottom-to-top color sequences and validates
// the structural invariants of the input contract. The tube slices are
// copied; the caller keeps ownership of its argument.
func New(totalTubes, capacity int, tubes [][]Color) (*State, error) {
	if err := validateShape(totalTubes, capacity, tubes); err != nil {
		return nil, err
	}

	s := &State{
		Capacity: capacity,
		Tubes:    make([]Tube, totalTubes),
	}
	for i, units := range tubes {
		s.Tubes[i] = make(Tube, len(units))
		copy(s.Tubes[i], units)
	}
	return s, nil
}

// Clone creates an independent copy of the State.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	clone := &State{
		Capacity: s.Capacity,
		Tubes:    make([]Tube, len(s.Tubes)),
	}
	for i, tube := range s.Tubes {
		clone.Tubes[i] = make(Tube, len(tube))
		copy(clone.Tubes[i], tube)
	}
	return clone
}

// TubeCount returns the number of tubes.
func (s *State) TubeCount() int {
	return len(s.Tubes)
}

// TopColor returns the color on top of tube i and true, or a zero Color
// and false if the tube is empty.
func (s *State) TopColor(i int) (Color, bool) {
	tube := s.Tubes[i]
	if len(tube) == 0 {
		return "", false
	}
	return tube[len(tube)-1], true
}

// BlockSize returns the number of trailing units on tube i that share
// the top color, 0 for an empty tube.
func (s *State) BlockSize(i int) int {
	tube := s.Tubes[i]
	if len(tube) == 0 {
		return 0
	}
	top := tube[len(tube)-1]
	n := 0
	for j := len(tube) - 1; j >= 0 && tube[j] == top; j-- {
		n++
	}
	return n
}

// Settled reports whether tube i is empty or holds a single color.
func (s *State) Settled(i int) bool {
	tube := s.Tubes[i]
	for j := 1; j < len(tube); j++ {
		if tube[j] != tube[0] {
			return false
		}
	}
	return true
}

// Solved reports whether every tube is settled. A uniformly colored
// tube counts as solved even when it is not full.
func (s *State) Solved() bool {
	for i := range s.Tubes {
		if !s.Settled(i) {
			return false
		}
	}
	return true
}

// Key returns the canonical structural-equality encoding of the state,
// used for deduplication during search. Tube order is preserved: this
// is a straight equality key, not a symmetry reduction.
func (s *State) Key() string {
	var sb strings.Builder
	for i, tube := range s.Tubes {
		if i > 0 {
			sb.WriteByte(keyTubeSep)
		}
		for j, c := range tube {
			if j > 0 {
				sb.WriteByte(keyUnitSep)
			}
			sb.WriteString(string(c))
		}
	}
	return sb.String()
}

// String returns the state in canonical key form.
func (s *State) String() string {
	return s.Key()
}

// Format returns a human-readable rendering, one tube per line, bottom
// to top.
func (s *State) Format() string {
	var sb strings.Builder
	for _, tube := range s.Tubes {
		sb.WriteString("|")
		for j, c := range tube {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(c))
		}
		for j := len(tube); j < s.Capacity; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('.')
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// Colors returns the multiset of unit counts per color. Pouring must
// leave this map unchanged.
func (s *State) Colors() map[Color]int {
	counts := make(map[Color]int)
	for _, tube := range s.Tubes {
		for _, c := range tube {
			counts[c]++
		}
	}
	return counts
}
