package solver

import (
	"context"
	"time"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
	"github.com/dharm001-star/sudoku-mind-solver/internal/ports"
	"github.com/dharm001-star/sudoku-mind-solver/internal/rules"
)

// SolveTrace runs the same search as Solve but records a Placement,
// with a full board snapshot, after every digit placed and after every
// backtrack removal. Replaying the trace against the input board ends
// at exactly the grid Solve would return. The slice is fully built
// before returning so callers can step both directions through it.
//
// An empty trace with a nil error means no solution exists; the steps
// explored on the way to exhaustion are discarded, since a trace is
// only meaningful as a path to a solution.
func (s *BacktrackingSolver) SolveTrace(ctx context.Context, b *domain.Board) ([]domain.Placement, ports.Stats, error) {
	start := time.Now()
	if err := domain.CheckValues(&b.Values); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	grid := b.Values
	nodes := 0
	var steps []domain.Placement
	record := func(r, c int) {
		steps = append(steps, domain.Placement{Board: grid, Row: r, Col: c})
	}
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := rules.FindEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if rules.Allowed(&grid, r, c, v) {
				grid[r][c] = v
				record(r, c)
				if dfs() {
					return true
				}
				grid[r][c] = 0
				record(r, c)
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, nil
	}
	return steps, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
