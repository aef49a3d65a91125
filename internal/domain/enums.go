package domain

import "strings"

// Difficulty labels target puzzle generation. It is purely a clue-count
// target, not a technique-based grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a user-supplied label; unknown input means Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
)

// ConflictScope says which Sudoku unit a validation error belongs to.
type ConflictScope int

const (
	ScopeRow ConflictScope = iota
	ScopeColumn
	ScopeBox
	ScopeInvalid // value outside 1..9, no unit scan applies
)

func (s ConflictScope) String() string {
	switch s {
	case ScopeRow:
		return "row"
	case ScopeColumn:
		return "column"
	case ScopeBox:
		return "box"
	default:
		return "invalid"
	}
}

// MarshalJSON emits the scope as its label so API clients never see the
// raw enum value.
func (s ConflictScope) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ValidationError reports one rule violation at one cell. A cell
// conflicting in several scopes yields one entry per scope.
type ValidationError struct {
	Row     int           `json:"row"`
	Col     int           `json:"col"`
	Scope   ConflictScope `json:"scope"`
	Message string        `json:"message"`
}
