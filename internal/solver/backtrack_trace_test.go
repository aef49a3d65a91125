package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
)

func TestSolveTraceReplaysToSolution(t *testing.T) {
	s := NewBacktrackingSolver()
	want, _, err := s.Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	steps, _, err := s.SolveTrace(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("SolveTrace failed: %v", err)
	}
	if len(steps) == 0 {
		t.Fatal("empty trace for a solvable board")
	}
	// Each snapshot differs from its predecessor only at the recorded
	// cell, and the final snapshot is the Solve result.
	prev := sample
	for i, st := range steps {
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if r == st.Row && c == st.Col {
					continue
				}
				if st.Board[r][c] != prev[r][c] {
					t.Fatalf("step %d touched r=%d c=%d, recorded cell is r=%d c=%d", i, r, c, st.Row, st.Col)
				}
			}
		}
		prev = st.Board
	}
	if prev != want.Values {
		t.Fatal("replaying the trace does not end at the Solve solution")
	}
}

func TestSolveTraceOrderPinned(t *testing.T) {
	s := NewBacktrackingSolver()
	steps, _, err := s.SolveTrace(context.Background(), &domain.Board{Values: sample})
	if err != nil || len(steps) == 0 {
		t.Fatalf("SolveTrace: steps=%d err=%v", len(steps), err)
	}
	// First empty cell in row-major order is (0,2); the lowest legal
	// digit there is 1, so the very first step must try it, even though
	// the final solution holds a 4.
	first := steps[0]
	if first.Row != 0 || first.Col != 2 {
		t.Fatalf("first step at (%d,%d), want (0,2)", first.Row, first.Col)
	}
	if got := first.Board[0][2]; got != 1 {
		t.Fatalf("first step placed %d, want 1", got)
	}
}

func TestSolveTraceUnsolvable(t *testing.T) {
	s := NewBacktrackingSolver()
	steps, _, err := s.SolveTrace(context.Background(), &domain.Board{Values: noCandidateBoard()})
	if err != nil {
		t.Fatalf("SolveTrace errored on an unsolvable board: %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("want an empty trace for an unsolvable board, got %d steps", len(steps))
	}
}

func TestSolveTraceRejectsOutOfRangeCell(t *testing.T) {
	bad := sample
	bad[0][2] = 200
	s := NewBacktrackingSolver()
	_, _, err := s.SolveTrace(context.Background(), &domain.Board{Values: bad})
	if !errors.Is(err, domain.ErrCellOutOfRange) {
		t.Fatalf("err = %v, want ErrCellOutOfRange", err)
	}
}
