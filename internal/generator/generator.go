package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ggmaddr/watersort/internal/puzzle"
	"github.com/ggmaddr/watersort/internal/solver"
)

const (
	// MinColors is 2: with a single color every reachable state is
	// already solved, so no unsolved puzzle exists to generate.
	MinColors   = 2
	MaxColors   = 64
	MinEmpty    = 1
	MinCapacity = 2

	// verifyStates bounds the solvability check per candidate puzzle.
	verifyStates = 200_000
)

var (
	ErrGenerationFailed = errors.New("failed to generate solvable puzzle")
	ErrInvalidConfig    = errors.New("invalid generator configuration")
)

// namedColors covers typical puzzle palettes; beyond it the generator
// falls back to synthetic tokens.
var namedColors = []puzzle.Color{
	"red", "blue", "green", "orange", "pink", "purple", "yellow", "cyan",
	"brown", "lime", "teal", "navy", "olive", "maroon", "silver", "gold",
}

// Generator creates random solvable water-sort puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new puzzle by shuffling the solved position with
// random reverse pours, then verifying the result is solvable under the
// configured pour policy. Unsolvable candidates are discarded and
// generation retries until the timeout elapses.
func (g *Generator) Generate() (*puzzle.State, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	for {
		if time.Since(start) >= g.options.Timeout {
			return nil, ErrGenerationFailed
		}

		candidate := g.shuffle(g.solvedState())
		if candidate.Solved() {
			continue // shuffle landed back on the solved position
		}

		if g.isSolvable(candidate) {
			return candidate, nil
		}
	}
}

func (g *Generator) validate() error {
	o := g.options
	if o.Colors < MinColors || o.Colors > MaxColors {
		return fmt.Errorf("%w: colors must be between %d and %d", ErrInvalidConfig, MinColors, MaxColors)
	}
	if o.EmptyTubes < MinEmpty {
		return fmt.Errorf("%w: need at least %d empty tube", ErrInvalidConfig, MinEmpty)
	}
	if o.Capacity < MinCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidConfig, MinCapacity)
	}
	return nil
}

// solvedState builds the target position: one full tube per color
// followed by the spare empties.
func (g *Generator) solvedState() *puzzle.State {
	o := g.options
	tubes := make([]puzzle.Tube, o.Colors+o.EmptyTubes)
	for i := 0; i < o.Colors; i++ {
		tube := make(puzzle.Tube, o.Capacity)
		for j := range tube {
			tube[j] = colorToken(i)
		}
		tubes[i] = tube
	}
	for i := o.Colors; i < len(tubes); i++ {
		tubes[i] = puzzle.Tube{}
	}
	return &puzzle.State{Capacity: o.Capacity, Tubes: tubes}
}

// shuffle applies random reverse pours: a run of same-colored top units
// lifted from one tube onto another with free space. Every such step is
// the inverse of a legal partial pour, which biases candidates toward
// solvable positions before verification.
func (g *Generator) shuffle(s *puzzle.State) *puzzle.State {
	steps := g.options.Shuffles
	if steps <= 0 {
		steps = 3 * g.options.Colors * g.options.Capacity
	}

	for i := 0; i < steps; i++ {
		from := g.rng.Intn(len(s.Tubes))
		to := g.rng.Intn(len(s.Tubes))
		if from == to || len(s.Tubes[from]) == 0 {
			continue
		}
		space := s.Capacity - len(s.Tubes[to])
		if space == 0 {
			continue
		}

		limit := min(s.BlockSize(from), space)
		amount := 1 + g.rng.Intn(limit)

		fromTube := s.Tubes[from]
		cut := len(fromTube) - amount
		s.Tubes[to] = append(s.Tubes[to], fromTube[cut:]...)
		s.Tubes[from] = fromTube[:cut]
	}
	return s
}

// isSolvable checks a candidate with a bounded heuristic search.
func (g *Generator) isSolvable(s *puzzle.State) bool {
	slv := solver.New(s, &solver.Options{
		Mode:      solver.ModeAStar,
		Pour:      g.options.Pour,
		MaxStates: verifyStates,
	})
	result, err := slv.Solve(context.Background())
	return err == nil && result.Outcome == solver.OutcomeSolved
}

func colorToken(i int) puzzle.Color {
	if i < len(namedColors) {
		return namedColors[i]
	}
	return puzzle.Color(fmt.Sprintf("color%02d", i))
}
