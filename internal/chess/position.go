package chess

import (
	"fmt"

	"github.com/lgbarn/negamax-chess/internal/errors"
)

// Position is a board coordinate. Row 0 is rank 1 and Col 0 is file a.
type Position struct {
	Row int
	Col int
}

// NewPosition returns the position at (row, col), rejecting coordinates
// outside the board.
func NewPosition(row, col int) (Position, error) {
	p := Position{Row: row, Col: col}
	if !p.Valid() {
		return Position{}, fmt.Errorf("row %d, col %d: %w", row, col, errors.ErrInvalidPosition)
	}
	return p, nil
}

// MustPosition is like NewPosition but panics on invalid coordinates.
func MustPosition(row, col int) Position {
	p, err := NewPosition(row, col)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePosition converts algebraic notation such as "e4" to a position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	p := Position{Row: int(s[1]) - RankBase, Col: int(s[0]) - FileBase}
	if !p.Valid() {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	return p, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether both coordinates are on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Offset returns the position shifted by the given deltas and whether it is
// still on the board.
func (p Position) Offset(dRow, dCol int) (Position, bool) {
	q := Position{Row: p.Row + dRow, Col: p.Col + dCol}
	return q, q.Valid()
}

// Index returns the 0-63 square index, a1 = 0, h8 = 63.
func (p Position) Index() int {
	return p.Row*BoardSize + p.Col
}

// File returns the file letter ('a'-'h').
func (p Position) File() byte {
	return byte(FileBase + p.Col)
}

// Rank returns the rank digit ('1'-'8').
func (p Position) Rank() byte {
	return byte(RankBase + p.Row)
}

// String returns the algebraic name of the square.
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return string([]byte{p.File(), p.Rank()})
}
