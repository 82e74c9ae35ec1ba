package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggmaddr/watersort/internal/puzzle"
)

func mustState(t *testing.T, capacity int, tubes [][]puzzle.Color) *puzzle.State {
	t.Helper()
	s, err := puzzle.New(len(tubes), capacity, tubes)
	require.NoError(t, err)
	return s
}

// twoColorPuzzle is the classic two-color interleave with two spares.
func twoColorPuzzle(t *testing.T) *puzzle.State {
	return mustState(t, 4, [][]puzzle.Color{
		{"red", "blue", "red", "blue"},
		{"blue", "red", "blue", "red"},
		{},
		{},
	})
}

// fiveColorPuzzle is a larger hand-checked solvable instance.
func fiveColorPuzzle(t *testing.T) *puzzle.State {
	return mustState(t, 4, [][]puzzle.Color{
		{"orange", "pink", "green", "pink"},
		{"orange", "red", "red", "blue"},
		{"blue", "green", "red", "red"},
		{"pink", "red", "orange", "orange"},
		{"green", "orange", "pink", "blue"},
		{},
		{},
	})
}

// checkSolution replays the moves and asserts the invariants every
// returned solution must satisfy: legality of each move, capacity
// bounds and color conservation in every intermediate state, and a
// solved final state.
func checkSolution(t *testing.T, initial *puzzle.State, moves []puzzle.Move, pour puzzle.PourPolicy) {
	t.Helper()

	states, err := Replay(initial, moves, pour)
	require.NoError(t, err)
	require.Len(t, states, len(moves)+1)

	colors := initial.Colors()
	for _, s := range states {
		assert.Equal(t, colors, s.Colors())
		for i := range s.Tubes {
			assert.LessOrEqual(t, len(s.Tubes[i]), s.Capacity)
		}
	}
	assert.True(t, states[len(states)-1].Solved())
}

func TestSolve_TwoColorPuzzle(t *testing.T) {
	for _, mode := range []Mode{ModeBFS, ModeAStar} {
		t.Run(mode.String(), func(t *testing.T) {
			state := twoColorPuzzle(t)
			slv := New(state, &Options{Mode: mode})

			result, err := slv.Solve(context.Background())
			require.NoError(t, err)
			require.Equal(t, OutcomeSolved, result.Outcome)
			assert.NotEmpty(t, result.Moves)
			assert.Positive(t, result.StatesExplored)
			checkSolution(t, state, result.Moves, puzzle.PourAllOrNothing)
		})
	}
}

func TestSolve_FiveColorPuzzle(t *testing.T) {
	state := fiveColorPuzzle(t)
	slv := New(state, &Options{Mode: ModeAStar})

	result, err := slv.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeSolved, result.Outcome)
	checkSolution(t, state, result.Moves, puzzle.PourAllOrNothing)
}

func TestSolve_AlreadySolved(t *testing.T) {
	// Two tubes of one color consolidate in at most two moves; under the
	// uniform-or-empty solved rule this position needs zero.
	state := mustState(t, 4, [][]puzzle.Color{{"red"}, {"red"}, {}, {}})
	slv := New(state, &Options{Mode: ModeBFS})

	result, err := slv.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeSolved, result.Outcome)
	assert.LessOrEqual(t, len(result.Moves), 2)
}

func TestSolve_Unsolvable(t *testing.T) {
	// Mismatched tops, no empty tube: no legal move exists at all.
	state := mustState(t, 4, [][]puzzle.Color{
		{"red", "blue"},
		{"blue", "red"},
	})

	for _, mode := range []Mode{ModeBFS, ModeAStar} {
		t.Run(mode.String(), func(t *testing.T) {
			result, err := New(state, &Options{Mode: mode}).Solve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, OutcomeUnsolvable, result.Outcome)
			assert.Empty(t, result.Moves)
		})
	}
}

func TestSolve_InvalidInput(t *testing.T) {
	// Tube longer than the declared capacity: reject before searching.
	state := &puzzle.State{
		Capacity: 2,
		Tubes:    []puzzle.Tube{{"red", "red", "red"}, {}},
	}

	_, err := New(state, nil).Solve(context.Background())
	assert.ErrorIs(t, err, puzzle.ErrInvalidInput)
}

func TestSolve_NilState(t *testing.T) {
	_, err := New(nil, nil).Solve(context.Background())
	assert.ErrorIs(t, err, ErrNilState)
}

func TestSolve_StateBudgetExhausted(t *testing.T) {
	for _, mode := range []Mode{ModeBFS, ModeAStar} {
		t.Run(mode.String(), func(t *testing.T) {
			slv := New(fiveColorPuzzle(t), &Options{Mode: mode, MaxStates: 1})

			result, err := slv.Solve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, OutcomeBudget, result.Outcome)
			assert.Empty(t, result.Moves)
		})
	}
}

func TestSolve_TimeoutBudgetExhausted(t *testing.T) {
	slv := New(fiveColorPuzzle(t), &Options{Mode: ModeAStar, Timeout: time.Nanosecond})

	result, err := slv.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeBudget, result.Outcome)
}

func TestSolve_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(fiveColorPuzzle(t), &Options{Mode: ModeBFS}).Solve(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBudget, result.Outcome)
}

func TestSolve_BFSOptimality(t *testing.T) {
	// t0=[a,b] t1=[b,a]: one pour settles one tube, a second settles the
	// other; no single move solves it, so the minimum is exactly 2.
	state := mustState(t, 2, [][]puzzle.Color{
		{"a", "b"},
		{"b", "a"},
		{},
		{},
	})

	result, err := New(state, &Options{Mode: ModeBFS}).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeSolved, result.Outcome)
	assert.Len(t, result.Moves, 2)
	checkSolution(t, state, result.Moves, puzzle.PourAllOrNothing)
}

func TestSolve_Deterministic(t *testing.T) {
	for _, mode := range []Mode{ModeBFS, ModeAStar} {
		t.Run(mode.String(), func(t *testing.T) {
			first, err := New(fiveColorPuzzle(t), &Options{Mode: mode}).Solve(context.Background())
			require.NoError(t, err)
			second, err := New(fiveColorPuzzle(t), &Options{Mode: mode}).Solve(context.Background())
			require.NoError(t, err)

			assert.Equal(t, first.Outcome, second.Outcome)
			assert.Equal(t, first.Moves, second.Moves)
			assert.Equal(t, first.StatesExplored, second.StatesExplored)
		})
	}
}

func TestSolve_PartialPourPolicy(t *testing.T) {
	state := twoColorPuzzle(t)
	slv := New(state, &Options{Mode: ModeAStar, Pour: puzzle.PourPartial})

	result, err := slv.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeSolved, result.Outcome)
	checkSolution(t, state, result.Moves, puzzle.PourPartial)
}

func TestSolve_DoesNotMutateInput(t *testing.T) {
	state := twoColorPuzzle(t)
	before := state.Key()

	_, err := New(state, &Options{Mode: ModeAStar}).Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, state.Key())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("bfs")
	require.NoError(t, err)
	assert.Equal(t, ModeBFS, m)

	m, err = ParseMode("astar")
	require.NoError(t, err)
	assert.Equal(t, ModeAStar, m)

	_, err = ParseMode("dfs")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestDifficulty(t *testing.T) {
	assert.Positive(t, Difficulty(twoColorPuzzle(t), puzzle.PourAllOrNothing))

	invalid := &puzzle.State{Capacity: 1, Tubes: []puzzle.Tube{{"a", "a"}, {}}}
	assert.Zero(t, Difficulty(invalid, puzzle.PourAllOrNothing))
}
