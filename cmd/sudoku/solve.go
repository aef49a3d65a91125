package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
	"github.com/dharm001-star/sudoku-mind-solver/internal/solver"
)

func newSolveCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle read from a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text []byte
				err  error
			)
			if file == "" || file == "-" {
				text, err = io.ReadAll(os.Stdin)
			} else {
				text, err = os.ReadFile(file)
			}
			if err != nil {
				return err
			}
			values, err := parseBoard(string(text))
			if err != nil {
				return err
			}
			in := &domain.Board{Values: *values, Fixed: domain.DeriveFixed(values)}
			s := solver.NewBacktrackingSolver()
			out, st, err := s.Solve(cmd.Context(), in)
			if errors.Is(err, solver.ErrUnsolvable) {
				fmt.Fprintf(os.Stderr, "no solution (%d nodes in %v)\n", st.Nodes, st.Duration)
				os.Exit(2)
			}
			if err != nil {
				return err
			}
			fmt.Print(formatBoard(&out.Values))
			fmt.Fprintf(os.Stderr, "solved: %d nodes in %v\n", st.Nodes, st.Duration)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "puzzle file ('-' for stdin)")
	return cmd
}
