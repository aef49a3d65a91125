package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
	"github.com/dharm001-star/sudoku-mind-solver/internal/generator"
	"github.com/dharm001-star/sudoku-mind-solver/internal/solver"
)

func newGenerateCommand() *cobra.Command {
	var (
		diffStr string
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			g := generator.NewUniqueGenerator(solver.NewBacktrackingSolver())
			p, st, err := g.Generate(cmd.Context(), seed, domain.ParseDifficulty(diffStr))
			if err != nil {
				return err
			}
			fmt.Print(formatBoard(&p.Board.Values))
			fmt.Fprintf(os.Stderr, "%s: %d givens, seed %d, %d nodes in %v\n",
				p.Difficulty, domain.CountFilled(&p.Board.Values), seed, st.Nodes, st.Duration)
			return nil
		},
	}
	cmd.Flags().StringVarP(&diffStr, "difficulty", "d", "medium", "easy|medium|hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	return cmd
}
