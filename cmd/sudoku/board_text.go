package main

import (
	"fmt"
	"strings"
)

// parseBoard reads nine rows of nine characters, digits 1-9 with '0' or
// '.' for empty. Whitespace inside a row is ignored.
func parseBoard(text string) (*[9][9]uint8, error) {
	var out [9][9]uint8
	rows := make([]string, 0, 9)
	for _, line := range strings.Split(text, "\n") {
		line = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\r' {
				return -1
			}
			return r
		}, line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != 9 {
		return nil, fmt.Errorf("want 9 rows, got %d", len(rows))
	}
	for r, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("row %d: want 9 cells, got %d", r, len(row))
		}
		for c, ch := range []byte(row) {
			switch {
			case ch == '.' || ch == '0':
				out[r][c] = 0
			case ch >= '1' && ch <= '9':
				out[r][c] = ch - '0'
			default:
				return nil, fmt.Errorf("row %d col %d: bad cell %q", r, c, ch)
			}
		}
	}
	return &out, nil
}

func formatBoard(b *[9][9]uint8) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + b[r][c])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
