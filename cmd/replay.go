package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ggmaddr/watersort/internal/puzzle"
	"github.com/ggmaddr/watersort/internal/solver"
)

var replayPour string

func init() {
	replayCmd := &cobra.Command{
		Use:   "replay <puzzle.yaml> <moves.txt>",
		Short: "Replay a move list against a puzzle",
		Long: `Replay a move list against a puzzle and report whether it reaches a
solved position. The moves file holds one "from to" pair per line;
blank lines and # comments are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: runReplay,
	}

	replayCmd.Flags().StringVar(&replayPour, "pour", "all-or-nothing", "Pour semantics: all-or-nothing or partial")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	state, err := puzzle.LoadFile(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read moves file: %w", err)
	}
	moves, err := parseMoves(string(data))
	if err != nil {
		return err
	}

	pour, err := puzzle.ParsePourPolicy(replayPour)
	if err != nil {
		return err
	}

	states, err := solver.Replay(state, moves, pour)
	if err != nil {
		return err
	}

	fmt.Println("Initial:")
	fmt.Print(renderState(states[0]))
	for i, m := range moves {
		fmt.Printf("Move %d: pour %d into %d\n", i+1, m.From, m.To)
		fmt.Print(renderState(states[i+1]))
	}

	final := states[len(states)-1]
	if !final.Solved() {
		return fmt.Errorf("replayed %d moves but the puzzle is not solved", len(moves))
	}
	fmt.Printf("Solved after %d moves\n", len(moves))
	return nil
}

// parseMoves reads "from to" pairs, one per line. Blank lines and lines
// starting with # are skipped.
func parseMoves(text string) ([]puzzle.Move, error) {
	var moves []puzzle.Move
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"from to\", got %q", lineNo+1, line)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid source index: %w", lineNo+1, err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid destination index: %w", lineNo+1, err)
		}
		moves = append(moves, puzzle.Move{From: from, To: to})
	}
	return moves, nil
}
