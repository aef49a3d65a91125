// Package rules holds the one constraint predicate every search in this
// module shares: may digit v occupy cell (r,c) on the current grid.
package rules

// Allowed reports whether v can be placed at (r, c): false if v already
// appears in the row, the column, or the 3x3 box containing the cell.
// Callers only ask about cells not currently holding v, so the cell
// itself needs no exclusion.
func Allowed(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := r-r%3, c-c%3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// FindEmpty returns the first empty cell in row-major order. Solver and
// generator both use it so every search visits the same frontier; the
// scan order decides which of several solutions a search lands on.
func FindEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
