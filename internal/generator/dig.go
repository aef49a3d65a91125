package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
	"github.com/dharm001-star/sudoku-mind-solver/internal/ports"
	"github.com/dharm001-star/sudoku-mind-solver/internal/rules"
)

// targetGivens maps difficulty to the clue count the dig phase aims for.
func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 41
	case domain.Hard:
		return 24
	default:
		return 31 // Medium
	}
}

// Generate creates a puzzle with a unique solution using seed and target
// difficulty. Phase 1 fills an empty grid through randomized search;
// phase 2 clears cells one at a time, keeping each removal only if the
// board still has exactly one solution. Every position is tried at most
// once, so a board that resists thinning ends with more givens than the
// target. That is acceptable; the uniqueness guarantee is not.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		// Only cancellation can stop the fill; an empty grid always completes.
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	}

	puz := full
	positions := rng.Perm(81)
	target := targetGivens(diff)
	nodes := 0

	for _, pos := range positions {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		if domain.CountFilled(&puz) <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		unique, st, err := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if !unique {
			puz[r][c] = old
		}
	}

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: domain.DeriveFixed(&puz)},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution. Same
// backtracking discipline as the solver, but the digit trial order at
// each cell is a fresh random permutation, which is where puzzle
// variety comes from.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := rules.FindEmpty(grid)
		if !ok {
			return true
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if rules.Allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs()
}
