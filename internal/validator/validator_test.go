package validator

import (
	"context"
	"testing"

	"github.com/dharm001-star/sudoku-mind-solver/internal/domain"
)

var solved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestValidateCleanBoards(t *testing.T) {
	v := New()
	ctx := context.Background()

	t.Run("solved board", func(t *testing.T) {
		ok, errs, err := v.Validate(ctx, &domain.Board{Values: solved})
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if !ok || len(errs) != 0 {
			t.Fatalf("solved board reported errors: %v", errs)
		}
	})

	t.Run("empty board", func(t *testing.T) {
		ok, errs, err := v.Validate(ctx, &domain.Board{})
		if err != nil || !ok || len(errs) != 0 {
			t.Fatalf("empty board: ok=%v errs=%v err=%v", ok, errs, err)
		}
	})
}

func TestValidateRowConflict(t *testing.T) {
	// Two 5s in the same row, far enough apart to share no box.
	var b [9][9]uint8
	b[3][0] = 5
	b[3][7] = 5
	ok, errs, err := New().Validate(context.Background(), &domain.Board{Values: b})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("conflicting board reported ok")
	}
	if len(errs) != 2 {
		t.Fatalf("want 2 errors (one per conflicting cell), got %d: %v", len(errs), errs)
	}
	for _, e := range errs {
		if e.Scope != domain.ScopeRow {
			t.Fatalf("scope = %v, want row", e.Scope)
		}
		if e.Row != 3 {
			t.Fatalf("error at row %d, want 3", e.Row)
		}
	}
}

func TestValidateMultiScopeConflict(t *testing.T) {
	// 7s adjacent in a row: same row and same box, so each cell reports
	// twice: once per scope.
	var b [9][9]uint8
	b[0][0] = 7
	b[0][1] = 7
	_, errs, _ := New().Validate(context.Background(), &domain.Board{Values: b})
	if len(errs) != 4 {
		t.Fatalf("want 4 errors (row+box for each cell), got %d: %v", len(errs), errs)
	}
	scopes := map[domain.ConflictScope]int{}
	for _, e := range errs {
		scopes[e.Scope]++
	}
	if scopes[domain.ScopeRow] != 2 || scopes[domain.ScopeBox] != 2 {
		t.Fatalf("scope counts = %v, want 2 row and 2 box", scopes)
	}
}

func TestValidateColumnConflict(t *testing.T) {
	var b [9][9]uint8
	b[0][4] = 9
	b[8][4] = 9
	_, errs, _ := New().Validate(context.Background(), &domain.Board{Values: b})
	if len(errs) != 2 {
		t.Fatalf("want 2 errors, got %d: %v", len(errs), errs)
	}
	for _, e := range errs {
		if e.Scope != domain.ScopeColumn {
			t.Fatalf("scope = %v, want column", e.Scope)
		}
	}
}

func TestValidateOutOfRangeValue(t *testing.T) {
	b := solved
	b[2][2] = 77
	ok, errs, err := New().Validate(context.Background(), &domain.Board{Values: b})
	if err != nil {
		t.Fatalf("Validate must tolerate garbage input, got: %v", err)
	}
	if ok {
		t.Fatal("garbage cell reported ok")
	}
	found := false
	for _, e := range errs {
		if e.Scope == domain.ScopeInvalid {
			if e.Row != 2 || e.Col != 2 {
				t.Fatalf("invalid-scope error at (%d,%d), want (2,2)", e.Row, e.Col)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("no invalid-scope error in %v", errs)
	}
}
