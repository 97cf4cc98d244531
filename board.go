package checkers

import (
	"errors"
	"fmt"
	"strings"
)

// A Board is the 8x8 grid of squares and their occupants.
// The zero value is an empty board; use NewBoard for the starting position.
//
// A Board is only mutated through ApplyMove and UndoMove (and Reset),
// which keeps the dark-square invariant checked by Validate.
type Board struct {
	grid [BoardSize][BoardSize]Piece // indexed [row][col]
}

// NewBoard returns a board in the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset puts every piece back on its starting square: Black men on the dark
// squares of rows 0-2, White men on the dark squares of rows 5-7.
func (b *Board) Reset() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := NoPiece
			if Sq(col, row).Dark() {
				switch {
				case row < 3:
					p = BlackMan
				case row > 4:
					p = WhiteMan
				}
			}
			b.grid[row][col] = p
		}
	}
}

// At returns the occupant of sq. Querying a square off the board panics.
func (b *Board) At(sq Square) Piece {
	return b.grid[sq.Row][sq.Col]
}

// Piece returns the occupant of the square at col, row.
func (b *Board) Piece(col, row int) Piece {
	return b.grid[row][col]
}

func (b *Board) set(sq Square, p Piece) {
	b.grid[sq.Row][sq.Col] = p
}

// Count returns the number of squares holding p.
func (b *Board) Count(p Piece) int {
	n := 0
	for row := range b.grid {
		for _, q := range b.grid[row] {
			if q == p {
				n++
			}
		}
	}
	return n
}

// Squares returns the squares occupied by pieces of color c in scan order.
func (b *Board) Squares(c Color) []Square {
	var out []Square
	for row := range b.grid {
		for col, p := range b.grid[row] {
			if p.Belongs(c) {
				out = append(out, Sq(col, row))
			}
		}
	}
	return out
}

// Equal reports whether both boards hold the same piece on every square.
func (b *Board) Equal(o *Board) bool {
	return b.grid == o.grid
}

// Validate checks that pieces only stand on dark squares.
func (b *Board) Validate() error {
	var errs []error
	for row := range b.grid {
		for col, p := range b.grid[row] {
			if p == NoPiece {
				continue
			}
			if sq := Sq(col, row); !sq.Dark() {
				errs = append(errs, fmt.Errorf("checkers: %s on light square %s", p, sq))
			}
		}
	}
	return errors.Join(errs...)
}

// String returns the board as eight lines of piece symbols, row 0 first.
// The result can be read back with ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.grid {
		for _, p := range b.grid[row] {
			sb.WriteString(p.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Draw returns a visual representation of the board with file and rank labels.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  A B C D E F G H\n")
	for row := range b.grid {
		sb.WriteByte(byte('8' - row))
		for _, p := range b.grid[row] {
			sb.WriteByte(' ')
			sb.WriteString(p.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads a board from eight rows of eight symbols (w, b, W, B and
// "." for empty), row 0 first. Spaces inside a row and blank lines are ignored.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		if row >= BoardSize {
			return nil, errors.New("checkers: board has more than 8 rows")
		}
		if len(line) != BoardSize {
			return nil, fmt.Errorf("checkers: row %d has %d squares", row, len(line))
		}
		for col, r := range line {
			p, ok := pieceFromSymbol(r)
			if !ok {
				return nil, fmt.Errorf("checkers: unknown symbol %q at row %d", r, row)
			}
			b.grid[row][col] = p
		}
		row++
	}
	if row != BoardSize {
		return nil, fmt.Errorf("checkers: board has %d rows", row)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}
