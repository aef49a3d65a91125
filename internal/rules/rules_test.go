package rules

import "testing"

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestAllowed(t *testing.T) {
	b := sample
	cases := []struct {
		name string
		r, c int
		v    uint8
		want bool
	}{
		{"row conflict", 0, 2, 5, false},
		{"column conflict", 2, 0, 4, false},
		{"box conflict", 1, 1, 8, false},
		{"free digit", 0, 2, 1, true},
		{"final solution digit", 0, 2, 4, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allowed(&b, tc.r, tc.c, tc.v); got != tc.want {
				t.Fatalf("Allowed(r=%d c=%d v=%d) = %v, want %v", tc.r, tc.c, tc.v, got, tc.want)
			}
		})
	}
}

func TestFindEmptyRowMajor(t *testing.T) {
	b := sample
	r, c, ok := FindEmpty(&b)
	if !ok || r != 0 || c != 2 {
		t.Fatalf("FindEmpty = (%d, %d, %v), want (0, 2, true)", r, c, ok)
	}
	b[0][2] = 4
	r, c, ok = FindEmpty(&b)
	if !ok || r != 0 || c != 3 {
		t.Fatalf("FindEmpty after fill = (%d, %d, %v), want (0, 3, true)", r, c, ok)
	}

	var full [9][9]uint8
	for i := range full {
		for j := range full[i] {
			full[i][j] = 1 // not a legal board, but FindEmpty only looks for zeros
		}
	}
	if _, _, ok := FindEmpty(&full); ok {
		t.Fatal("FindEmpty reported an empty cell on a full grid")
	}
}
