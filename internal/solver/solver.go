package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ggmaddr/watersort/internal/puzzle"
)

var (
	ErrNilState    = errors.New("initial state is nil")
	ErrUnknownMode = errors.New("unknown search mode")
)

// Outcome classifies how a solve ended. Solved and Unsolvable are
// final; Budget means solvability is still unknown and a retry with a
// larger budget may resolve it.
type Outcome int

const (
	OutcomeSolved Outcome = iota
	OutcomeUnsolvable
	OutcomeBudget
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeUnsolvable:
		return "unsolvable"
	case OutcomeBudget:
		return "budget exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result reports the outcome of a solve. Moves is populated only when
// Outcome is OutcomeSolved.
type Result struct {
	Outcome        Outcome
	Moves          []puzzle.Move
	StatesExplored int
	Duration       time.Duration
}

// Solver runs state-space search over water-sort positions. Each
// instance owns its frontier and visited set, so independent solvers
// may run concurrently.
type Solver struct {
	initial *puzzle.State
	options *Options
	logger  *slog.Logger
}

// New creates a solver for the given initial state. The state is
// cloned; later mutations by the caller do not affect the solver.
func New(initial *puzzle.State, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Solver{
		initial: initial.Clone(),
		options: options,
		logger:  logger,
	}
}

// Solve searches for a move sequence that sorts every tube. Errors are
// reserved for malformed input and configuration; unsolvable puzzles
// and exhausted budgets come back as Result outcomes so callers branch
// on values, not error types.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	if s.initial == nil {
		return nil, ErrNilState
	}
	if err := s.initial.Validate(); err != nil {
		return nil, err
	}

	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	start := time.Now()
	var result *Result
	switch s.options.Mode {
	case ModeBFS:
		result = s.bfs(ctx)
	case ModeAStar:
		result = s.astar(ctx)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, s.options.Mode)
	}
	result.Duration = time.Since(start)

	s.logger.Debug("search finished",
		"mode", s.options.Mode.String(),
		"outcome", result.Outcome.String(),
		"moves", len(result.Moves),
		"states", result.StatesExplored,
		"duration", result.Duration)
	return result, nil
}

func (s *Solver) maxStates() int {
	if s.options.MaxStates > 0 {
		return s.options.MaxStates
	}
	return DefaultMaxStates
}

// checkBudget is the single cooperative cancellation point, evaluated
// once per dequeued state. A non-nil result ends the search.
func (s *Solver) checkBudget(ctx context.Context, explored int) *Result {
	select {
	case <-ctx.Done():
		return &Result{Outcome: OutcomeBudget, StatesExplored: explored}
	default:
	}
	if explored >= s.maxStates() {
		return &Result{Outcome: OutcomeBudget, StatesExplored: explored}
	}
	return nil
}

const progressInterval = 10_000

func (s *Solver) logProgress(explored, frontier, seen int) {
	if explored%progressInterval != 0 {
		return
	}
	s.logger.Debug("search progress",
		"explored", explored,
		"frontier", frontier,
		"seen", seen)
}

// node links a reached state to the move that produced it. Paths are
// reconstructed by walking parents back to the root.
type node struct {
	state  *puzzle.State
	parent *node
	move   puzzle.Move
}

func (n *node) path() []puzzle.Move {
	var moves []puzzle.Move
	for ; n.parent != nil; n = n.parent {
		moves = append(moves, n.move)
	}
	slices.Reverse(moves)
	return moves
}
