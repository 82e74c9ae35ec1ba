package solver

import (
	"github.com/ggmaddr/watersort/internal/puzzle"
)

// Estimate scores remaining work for a state: one point per adjacent
// pair of differing colors within a tube (a run break that some pour
// must eventually separate), plus one point per extra tube whose bottom
// unit repeats another tube's bottom color (those bottoms block each
// other from consolidating into a single tube). Not admissible, so A*
// over it trades minimality for speed.
func Estimate(s *puzzle.State) int {
	h := 0
	for _, tube := range s.Tubes {
		for i := 1; i < len(tube); i++ {
			if tube[i] != tube[i-1] {
				h++
			}
		}
	}

	bottoms := make(map[puzzle.Color]int)
	for _, tube := range s.Tubes {
		if len(tube) > 0 {
			bottoms[tube[0]]++
		}
	}
	for _, n := range bottoms {
		if n > 1 {
			h += n - 1
		}
	}
	return h
}
