package solver

import "errors"

// BacktrackingSolver is a straightforward recursive solver. It tries
// digits 1..9 ascending at the first empty cell in row-major order,
// recursing and undoing on failure. Both orders are part of the
// contract: they decide which solution a multi-solution board yields
// and the exact shape of a step trace.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// ErrUnsolvable signals a board with no completion. It is a normal
// terminal outcome of the search, distinct from malformed input.
var ErrUnsolvable = errors.New("board has no solution")

// A board whose givens already conflict is detected the same way as any
// other unsolvable board: the search exhausts and reports ErrUnsolvable.
// There is no up-front conflict scan.
