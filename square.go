package checkers

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 8

// A Square is a cell of the board addressed by column and row, both in [0,8).
// Row 0 is Black's home edge and is drawn at the top.
type Square struct {
	Col int
	Row int
}

// Sq is shorthand for Square{Col: col, Row: row}.
func Sq(col, row int) Square {
	return Square{Col: col, Row: row}
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// Dark reports whether the square is one of the 32 playable squares.
func (s Square) Dark() bool {
	return (s.Col+s.Row)%2 == 1
}

// Add returns the square offset by the given column and row deltas.
func (s Square) Add(dc, dr int) Square {
	return Square{Col: s.Col + dc, Row: s.Row + dr}
}

// String returns the square in file/rank form, a1 being the bottom left corner
// as seen from White.
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Col, s.Row)
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare parses a square in file/rank form such as "c3".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || !isFile(s[0]) || !isRank(s[1]) {
		return Square{}, fmt.Errorf("checkers: invalid square %q", s)
	}
	return Square{Col: int(s[0] - 'a'), Row: int('8' - s[1])}, nil
}

func isFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
