package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
	"github.com/dharm001-star/sudoku-mind-solver/internal/solver"
	"github.com/dharm001-star/sudoku-mind-solver/internal/validator"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name      string
		diff      domain.Difficulty
		minGivens int
	}{
		{"easy", domain.Easy, 41},
		{"medium", domain.Medium, 31},
		{"hard", domain.Hard, 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			seed := int64(12345)
			p, _, err := g.Generate(ctx, seed, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			givens := domain.CountFilled(&p.Board.Values)
			if givens < tc.minGivens || givens > 81 {
				t.Fatalf("givens = %d, want >= %d", givens, tc.minGivens)
			}
			// every remaining clue is marked fixed
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if (p.Board.Values[r][c] != 0) != p.Board.Fixed[r][c] {
						t.Fatalf("fixed mask disagrees with values at r=%d c=%d", r, c)
					}
				}
			}
			// the puzzle itself holds no conflicts
			ok, verrs, _ := validator.New().Validate(ctx, &p.Board)
			if !ok {
				t.Fatalf("generated puzzle has conflicts: %v", verrs)
			}
			// and exactly one completion
			unique, _, err := s.Unique(ctx, &p.Board)
			if err != nil {
				t.Fatalf("Unique failed: %v", err)
			}
			if !unique {
				t.Fatalf("puzzle for %s is not unique", tc.name)
			}
			if p.ID == "" {
				t.Fatal("generated puzzle has no ID")
			}
			if p.Difficulty != tc.diff {
				t.Fatalf("difficulty = %v, want %v", p.Difficulty, tc.diff)
			}
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 99, domain.Medium)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, _, err := g.Generate(ctx, 99, domain.Medium)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a.Board.Values != b.Board.Values {
		t.Fatal("same seed produced different boards")
	}
}

func TestFillRandomCompletesEmptyGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var grid [9][9]uint8
	if !fillRandom(context.Background(), rng, &grid) {
		t.Fatal("fillRandom failed on an empty grid")
	}
	ok, verrs, _ := validator.New().Validate(context.Background(), &domain.Board{Values: grid})
	if !ok {
		t.Fatalf("filled grid has conflicts: %v", verrs)
	}
	if n := domain.CountFilled(&grid); n != 81 {
		t.Fatalf("filled grid has %d cells, want 81", n)
	}
}
