package validator

import (
	"context"
	"fmt"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
)

// CellValidator reports rule violations cell by cell. It is built for
// boards the engine did not produce itself: user edits or an OCR
// extraction, which may be incomplete or flatly inconsistent. It never
// fails on such input; it only describes it.
type CellValidator struct{}

func New() *CellValidator { return &CellValidator{} }

// Validate scans every filled cell and checks its row, column, and box
// independently for a duplicate elsewhere. Each violated scope yields
// its own entry, so one bad cell can report up to three times. Only the
// first duplicate found per scope is reported. Empty cells never report.
func (v *CellValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.ValidationError, error) {
	var errs []domain.ValidationError
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			if val > 9 {
				errs = append(errs, domain.ValidationError{
					Row: r, Col: c, Scope: domain.ScopeInvalid,
					Message: fmt.Sprintf("value %d is not a Sudoku digit", val),
				})
				continue
			}
			if cc, ok := rowDuplicate(&b.Values, r, c, val); ok {
				errs = append(errs, domain.ValidationError{
					Row: r, Col: c, Scope: domain.ScopeRow,
					Message: fmt.Sprintf("%d repeats in row %d at column %d", val, r, cc),
				})
			}
			if rr, ok := colDuplicate(&b.Values, r, c, val); ok {
				errs = append(errs, domain.ValidationError{
					Row: r, Col: c, Scope: domain.ScopeColumn,
					Message: fmt.Sprintf("%d repeats in column %d at row %d", val, c, rr),
				})
			}
			if rr, cc, ok := boxDuplicate(&b.Values, r, c, val); ok {
				errs = append(errs, domain.ValidationError{
					Row: r, Col: c, Scope: domain.ScopeBox,
					Message: fmt.Sprintf("%d repeats in box at r=%d c=%d", val, rr, cc),
				})
			}
		}
	}
	return len(errs) == 0, errs, nil
}

func rowDuplicate(b *[9][9]uint8, r, c int, v uint8) (int, bool) {
	for i := 0; i < 9; i++ {
		if i != c && b[r][i] == v {
			return i, true
		}
	}
	return 0, false
}

func colDuplicate(b *[9][9]uint8, r, c int, v uint8) (int, bool) {
	for i := 0; i < 9; i++ {
		if i != r && b[i][c] == v {
			return i, true
		}
	}
	return 0, false
}

func boxDuplicate(b *[9][9]uint8, r, c int, v uint8) (int, int, bool) {
	br, bc := r-r%3, c-c%3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && b[rr][cc] == v {
				return rr, cc, true
			}
		}
	}
	return 0, 0, false
}
