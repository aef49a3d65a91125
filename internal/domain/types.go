package domain

import (
	"errors"
	"fmt"
)

// Board holds current values and which cells are fixed givens.
// Values uses 0 for an empty cell, 1..9 for digits. A Board copies by
// value; the engine never keeps one between calls.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement is one step of a traced solve: the full board as it looked
// immediately after a digit was placed or removed at (Row, Col).
type Placement struct {
	Board [9][9]uint8 `json:"board"`
	Row   int         `json:"row"`
	Col   int         `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// ErrCellOutOfRange marks boards carrying a value outside 0..9.
var ErrCellOutOfRange = errors.New("cell value out of range")

// CheckValues rejects boards that break the value contract. The array
// type fixes the shape, so the only malformed input left is a digit
// outside 0..9. A non-nil result is a contract violation, not a search
// outcome.
func CheckValues(values *[9][9]uint8) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if values[r][c] > 9 {
				return fmt.Errorf("%w: %d at r=%d c=%d", ErrCellOutOfRange, values[r][c], r, c)
			}
		}
	}
	return nil
}

// DeriveFixed marks every filled cell as a given. Called once when an
// externally supplied board is loaded; the mask is not touched afterwards.
func DeriveFixed(values *[9][9]uint8) [9][9]bool {
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = values[r][c] != 0
		}
	}
	return fixed
}

// CountFilled returns the number of non-empty cells.
func CountFilled(values *[9][9]uint8) int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
