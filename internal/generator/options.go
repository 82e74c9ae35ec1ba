package generator

import (
	"time"

	"github.com/ggmaddr/watersort/internal/puzzle"
)

// Options configures puzzle generation behavior.
type Options struct {
	Colors     int           // Number of distinct colors, one full tube each
	EmptyTubes int           // Number of spare empty tubes
	Capacity   int           // Units per tube
	Shuffles   int           // Reverse pours applied to the solved position (0 = derived from size)
	Seed       int64         // Seed for reproducible puzzles (0 = random)
	Timeout    time.Duration // Timeout limits generation time
	// Pour is the policy the puzzle must be solvable under.
	Pour puzzle.PourPolicy
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Colors:     5,
		EmptyTubes: 2,
		Capacity:   4,
		Shuffles:   0,
		Seed:       0,
		Timeout:    10 * time.Second,
		Pour:       puzzle.PourAllOrNothing,
	}
}
