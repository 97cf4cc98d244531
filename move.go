package checkers

import (
	"fmt"
	"strings"
)

// A Move takes the piece on From to To. Captures and promotions are not
// stored on the move; they follow from the board it is applied to.
type Move struct {
	From Square
	To   Square
}

// NullMove is returned by the search when the side to move has no legal move.
// Its coordinates are all zero.
var NullMove = Move{}

// IsNull reports whether m is the NullMove sentinel.
func (m Move) IsNull() bool {
	return m == NullMove
}

// String returns the move in "c3-d4" form.
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// ParseMove parses a move written as "c3-d4", "c3d4", "c3 d4" or "c3xe5".
func ParseMove(s string) (Move, error) {
	t := strings.TrimSpace(s)
	t = strings.NewReplacer("-", "", "x", "", ":", "", " ", "").Replace(t)
	if len(t) != 4 {
		return Move{}, fmt.Errorf("checkers: invalid move %q", s)
	}
	from, err := ParseSquare(t[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(t[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// ParseMoves parses a whitespace or comma separated list of moves.
func ParseMoves(s string) ([]Move, error) {
	toks := splitMoveTokens(s)
	moves := make([]Move, 0, len(toks))
	for i, tok := range toks {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func splitMoveTokens(s string) []string {
	raw := strings.Fields(s)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.Trim(t, ",;")
		if t == "" || t == "*" {
			continue
		}
		out = append(out, t)
	}
	return out
}
