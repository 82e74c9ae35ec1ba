package solver

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ggmaddr/watersort/internal/puzzle"
)

// Mode selects the search strategy.
type Mode int

const (
	// ModeBFS explores states breadth-first. The returned solution has
	// the minimum move count for the configured pour policy.
	ModeBFS Mode = iota
	// ModeAStar orders expansion by move count plus the Estimate
	// heuristic. Typically much faster on large puzzles, but the
	// heuristic is not admissible, so minimality is not guaranteed.
	ModeAStar
)

func (m Mode) String() string {
	switch m {
	case ModeBFS:
		return "bfs"
	case ModeAStar:
		return "astar"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a mode name to its Mode value.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "bfs":
		return ModeBFS, nil
	case "astar":
		return ModeAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// DefaultMaxStates bounds explored states when Options.MaxStates is 0.
const DefaultMaxStates = 1_000_000

// Options configures a solve.
type Options struct {
	Mode Mode
	Pour puzzle.PourPolicy
	// MaxStates caps the number of states dequeued and expanded.
	// 0 means DefaultMaxStates.
	MaxStates int
	// Timeout bounds wall-clock search time. 0 or negative means no
	// deadline beyond the caller's context.
	Timeout time.Duration
	// Logger receives progress records at Debug level. nil means
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns standard solver options: heuristic search with
// all-or-nothing pours.
func DefaultOptions() *Options {
	return &Options{
		Mode:      ModeAStar,
		Pour:      puzzle.PourAllOrNothing,
		MaxStates: DefaultMaxStates,
	}
}
