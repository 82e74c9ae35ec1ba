package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ggmaddr/watersort/internal/generator"
	"github.com/ggmaddr/watersort/internal/solver"
)

var (
	genNumber   int
	genColors   int
	genEmpty    int
	genCapacity int
	genShuffles int
	genSeed     int64
	genTimeout  time.Duration
	genOutput   string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate water-sort puzzles",
		Long: `Generate one or more random solvable water-sort puzzles.

Examples:
  watersort gen --colors 7 --empty 2
  watersort gen -n 5 --seed 42 -o puzzles.yaml`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genNumber, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().IntVar(&genColors, "colors", 5, "Number of distinct colors")
	genCmd.Flags().IntVar(&genEmpty, "empty", 2, "Number of empty tubes")
	genCmd.Flags().IntVar(&genCapacity, "capacity", 4, "Units per tube")
	genCmd.Flags().IntVar(&genShuffles, "shuffles", 0, "Reverse pours per puzzle (0 = auto)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (YAML, one document per puzzle)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	opts := generator.DefaultOptions()
	opts.Colors = genColors
	opts.EmptyTubes = genEmpty
	opts.Capacity = genCapacity
	opts.Shuffles = genShuffles
	opts.Seed = genSeed
	opts.Timeout = genTimeout
	gen := generator.New(opts)

	var docs []string
	for i := 0; i < genNumber; i++ {
		state, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if genOutput != "" {
			data, err := state.Marshal()
			if err != nil {
				return fmt.Errorf("encode puzzle: %w", err)
			}
			docs = append(docs, string(data))
			continue
		}

		difficulty := solver.Difficulty(state, opts.Pour)
		fmt.Printf("Puzzle #%d (difficulty %d):\n", i+1, difficulty)
		fmt.Print(renderState(state))
		fmt.Println()
	}

	if genOutput != "" {
		out := strings.Join(docs, "---\n")
		if err := os.WriteFile(genOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("write puzzles: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated %d puzzle(s) in %s\n", genNumber, genOutput)
	}
	return nil
}
