package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPourAmount(t *testing.T) {
	s := mustState(t, 4, [][]Color{
		{"red", "blue", "blue"},           // 0: top block of 2 blue
		{"green", "green", "blue"},        // 1: top blue, space 1
		{"red", "red", "red", "red"},      // 2: full
		{},                                // 3: empty
		{"green"},                         // 4: top green
	})

	t.Run("empty source", func(t *testing.T) {
		assert.Equal(t, 0, s.PourAmount(Move{From: 3, To: 0}, PourPartial))
	})

	t.Run("full destination", func(t *testing.T) {
		assert.Equal(t, 0, s.PourAmount(Move{From: 0, To: 2}, PourPartial))
	})

	t.Run("top color mismatch", func(t *testing.T) {
		assert.Equal(t, 0, s.PourAmount(Move{From: 0, To: 4}, PourPartial))
	})

	t.Run("empty destination takes whole block", func(t *testing.T) {
		assert.Equal(t, 2, s.PourAmount(Move{From: 0, To: 3}, PourAllOrNothing))
		assert.Equal(t, 2, s.PourAmount(Move{From: 0, To: 3}, PourPartial))
	})

	t.Run("policies disagree on a tight fit", func(t *testing.T) {
		// Block of 2 blue into one free slot.
		m := Move{From: 0, To: 1}
		assert.Equal(t, 0, s.PourAmount(m, PourAllOrNothing))
		assert.Equal(t, 1, s.PourAmount(m, PourPartial))
	})

	t.Run("self and out-of-range moves", func(t *testing.T) {
		assert.Equal(t, 0, s.PourAmount(Move{From: 0, To: 0}, PourPartial))
		assert.Equal(t, 0, s.PourAmount(Move{From: -1, To: 0}, PourPartial))
		assert.Equal(t, 0, s.PourAmount(Move{From: 0, To: 99}, PourPartial))
	})
}

func TestApply(t *testing.T) {
	s := mustState(t, 4, [][]Color{
		{"red", "blue", "blue"},
		{"green", "green", "blue"},
		{},
	})

	t.Run("transfers the block", func(t *testing.T) {
		next, err := s.Apply(Move{From: 0, To: 2}, PourAllOrNothing)
		require.NoError(t, err)
		assert.Equal(t, Tube{"red"}, next.Tubes[0])
		assert.Equal(t, Tube{"blue", "blue"}, next.Tubes[2])
	})

	t.Run("partial pour clamps to free space", func(t *testing.T) {
		next, err := s.Apply(Move{From: 0, To: 1}, PourPartial)
		require.NoError(t, err)
		assert.Equal(t, Tube{"red", "blue"}, next.Tubes[0])
		assert.Equal(t, Tube{"green", "green", "blue", "blue"}, next.Tubes[1])
	})

	t.Run("never mutates the receiver", func(t *testing.T) {
		_, err := s.Apply(Move{From: 0, To: 2}, PourAllOrNothing)
		require.NoError(t, err)
		assert.Equal(t, Tube{"red", "blue", "blue"}, s.Tubes[0])
		assert.Empty(t, s.Tubes[2])
	})

	t.Run("conserves the color multiset", func(t *testing.T) {
		before := s.Colors()
		next, err := s.Apply(Move{From: 0, To: 2}, PourAllOrNothing)
		require.NoError(t, err)
		assert.Equal(t, before, next.Colors())
	})

	t.Run("illegal pour errors", func(t *testing.T) {
		_, err := s.Apply(Move{From: 2, To: 0}, PourAllOrNothing)
		assert.ErrorIs(t, err, ErrIllegalPour)
	})

	t.Run("bad indices error", func(t *testing.T) {
		_, err := s.Apply(Move{From: 0, To: 0}, PourAllOrNothing)
		assert.ErrorIs(t, err, ErrInvalidTube)
	})
}

func TestLegalMoves_SuppressesUselessPours(t *testing.T) {
	// Tube 0 is settled; dumping it into the empty tube 2 gains nothing.
	s := mustState(t, 4, [][]Color{
		{"red", "red"},
		{"blue", "red"},
		{},
	})

	moves := s.LegalMoves(PourAllOrNothing)
	assert.NotContains(t, moves, Move{From: 0, To: 2})
	// A mixed tube may still pour its top into the empty tube.
	assert.Contains(t, moves, Move{From: 1, To: 2})
	// And matching tops pour as usual.
	assert.Contains(t, moves, Move{From: 1, To: 0})
}

func TestLegalMoves_NoneWhenStuck(t *testing.T) {
	// Mismatched tops, no empty tube, both tubes full.
	s := mustState(t, 2, [][]Color{
		{"red", "blue"},
		{"blue", "red"},
	})
	assert.Empty(t, s.LegalMoves(PourAllOrNothing))
	assert.Empty(t, s.LegalMoves(PourPartial))
}

func TestParsePourPolicy(t *testing.T) {
	p, err := ParsePourPolicy("all-or-nothing")
	require.NoError(t, err)
	assert.Equal(t, PourAllOrNothing, p)

	p, err = ParsePourPolicy("partial")
	require.NoError(t, err)
	assert.Equal(t, PourPartial, p)

	_, err = ParsePourPolicy("half")
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}
