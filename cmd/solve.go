package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ggmaddr/watersort/internal/puzzle"
	"github.com/ggmaddr/watersort/internal/solver"
)

var (
	solveMode      string
	solvePour      string
	solveMaxStates int
	solveTimeout   time.Duration
	solveSteps     bool
	solveOutput    string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <puzzle.yaml>",
		Short: "Solve a water-sort puzzle",
		Long: `Solve a water-sort puzzle described by a YAML file.

The solution is printed as one move per line, "from to", with tube
indices counted from 0. Examples:

  watersort solve puzzle.yaml
  watersort solve puzzle.yaml --mode bfs --steps
  watersort solve puzzle.yaml --pour partial --timeout 30s -o moves.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveMode, "mode", "m", "astar", "Search mode: astar or bfs")
	solveCmd.Flags().StringVar(&solvePour, "pour", "all-or-nothing", "Pour semantics: all-or-nothing or partial")
	solveCmd.Flags().IntVar(&solveMaxStates, "max-states", solver.DefaultMaxStates, "Cap on explored states")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Wall-clock search budget (0 = none)")
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "Render the board after every move")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Write moves to a file instead of stdout")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	state, err := puzzle.LoadFile(args[0])
	if err != nil {
		return err
	}

	mode, err := solver.ParseMode(solveMode)
	if err != nil {
		return err
	}
	pour, err := puzzle.ParsePourPolicy(solvePour)
	if err != nil {
		return err
	}

	slv := solver.New(state, &solver.Options{
		Mode:      mode,
		Pour:      pour,
		MaxStates: solveMaxStates,
		Timeout:   solveTimeout,
	})
	result, err := slv.Solve(cmd.Context())
	if err != nil {
		return err
	}

	switch result.Outcome {
	case solver.OutcomeUnsolvable:
		// Usually means the captured state itself is wrong, not that the
		// game handed out an impossible level.
		return fmt.Errorf("puzzle is unsolvable (%d states examined); re-check the initial state", result.StatesExplored)
	case solver.OutcomeBudget:
		return fmt.Errorf("search budget exhausted after %d states; retry with a larger --max-states or --timeout", result.StatesExplored)
	}

	fmt.Fprintf(os.Stderr, "Solved in %d moves (%d states, %s)\n",
		len(result.Moves), result.StatesExplored, result.Duration.Round(time.Millisecond))

	if solveSteps {
		states, err := solver.Replay(state, result.Moves, pour)
		if err != nil {
			return fmt.Errorf("replaying own solution: %w", err)
		}
		fmt.Println("Initial:")
		fmt.Print(renderState(states[0]))
		for i, m := range result.Moves {
			fmt.Printf("Move %d: pour %d into %d\n", i+1, m.From, m.To)
			fmt.Print(renderState(states[i+1]))
		}
	}

	out := formatMoves(result.Moves)
	if solveOutput != "" {
		if err := os.WriteFile(solveOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("write moves: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Moves written to %s\n", solveOutput)
		return nil
	}
	fmt.Print(out)
	return nil
}

// formatMoves renders moves one per line in "from to" form, the format
// the replay command and downstream move execution consume.
func formatMoves(moves []puzzle.Move) string {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
