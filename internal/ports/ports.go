package ports

import (
	"context"
	"time"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board, records step traces, and tests uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// SolveTrace returns every placement and removal the search performs,
	// fully materialized so a caller can step forward and backward.
	// An empty trace with a nil error means the board is unsatisfiable.
	SolveTrace(ctx context.Context, b *domain.Board) ([]domain.Placement, Stats, error)
	// Unique reports whether the board has exactly one completion,
	// counting solutions with an early exit at two.
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator reports rule violations in a possibly inconsistent board.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, errs []domain.ValidationError, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
