package checkers

import (
	"github.com/rs/zerolog"
)

// DefaultDepth is the number of plies searched below the candidate move.
const DefaultDepth = 3

// infinity bounds the scores a node starts from before seeing any child.
// A node whose side has no move and is not treated as terminal returns it.
const infinity = 10000

// Termination decides when Minimax stops recursing and scores the board.
type Termination uint8

const (
	// LiteralTermination stops exactly when "depth is exhausted" and "no move
	// is available" have the same truth value. A node with depth left and
	// moves available is therefore scored statically, a node out of depth
	// with moves available is expanded one ply further, and a node with depth
	// left but no move returns the ±infinity bound.
	LiteralTermination Termination = iota
	// StandardTermination stops when depth is exhausted or no move is available.
	StandardTermination
)

// String implements the fmt.Stringer interface.
func (t Termination) String() string {
	switch t {
	case LiteralTermination:
		return "literal"
	case StandardTermination:
		return "standard"
	}
	return "unknown"
}

// ParseTermination returns the Termination named s ("literal" or "standard").
func ParseTermination(s string) (Termination, bool) {
	switch s {
	case "literal":
		return LiteralTermination, true
	case "standard":
		return StandardTermination, true
	}
	return LiteralTermination, false
}

func (t Termination) stop(depth int, noMoves bool) bool {
	if t == StandardTermination {
		return depth <= 0 || noMoves
	}
	return (depth == 0) == noMoves
}

// Stats counts the work done by the last search.
type Stats struct {
	Nodes  int // positions visited, root children included
	Leaves int // positions scored by Evaluate
}

// A Searcher picks moves with a plain fixed-depth minimax: no pruning, no
// move ordering and no transposition table. Scores are seen from Black, the
// maximizing side, so a Black advantage is positive.
//
// A Searcher mutates the board it is given in place and restores it before
// returning; it is not safe for concurrent use.
type Searcher struct {
	Depth       int
	Termination Termination
	Logger      zerolog.Logger

	stats Stats
}

// NewSearcher returns a searcher with DefaultDepth and LiteralTermination.
func NewSearcher(options ...func(*Searcher)) *Searcher {
	s := &Searcher{
		Depth:       DefaultDepth,
		Termination: LiteralTermination,
		Logger:      zerolog.Nop(),
	}
	for _, f := range options {
		if f != nil {
			f(s)
		}
	}
	return s
}

// WithDepth returns a Searcher option setting the depth searched below each candidate move.
func WithDepth(depth int) func(*Searcher) {
	return func(s *Searcher) {
		s.Depth = depth
	}
}

// WithTermination returns a Searcher option selecting the leaf rule.
func WithTermination(t Termination) func(*Searcher) {
	return func(s *Searcher) {
		s.Termination = t
	}
}

// WithLogger returns a Searcher option that logs each root move at debug level.
func WithLogger(l zerolog.Logger) func(*Searcher) {
	return func(s *Searcher) {
		s.Logger = l
	}
}

// Stats returns the counters of the last ChooseMove call.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// ChooseMove returns the best move for c on b, or NullMove when c cannot move.
func (s *Searcher) ChooseMove(b *Board, c Color) Move {
	return s.ChooseAmong(b, c, b.Moves(c))
}

// ChooseAmong is ChooseMove restricted to moves, which must be legal for c on b.
// Black keeps the first move with the highest score, White the first with the lowest.
func (s *Searcher) ChooseAmong(b *Board, c Color, moves []Move) Move {
	s.stats = Stats{}
	if len(moves) == 0 {
		s.Logger.Debug().Stringer("side", c).Msg("no move available")
		return NullMove
	}

	maximizing := c == Black
	best := moves[0]
	bestScore := infinity
	if maximizing {
		bestScore = -infinity
	}
	for _, m := range moves {
		var score int
		b.WithMove(m, func() {
			s.stats.Nodes++
			score = s.Minimax(b, s.Depth, !maximizing)
		})
		s.Logger.Debug().
			Stringer("side", c).
			Stringer("move", m).
			Int("score", score).
			Msg("root move")
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			best = m
		}
	}

	s.Logger.Debug().
		Stringer("side", c).
		Stringer("best", best).
		Int("score", bestScore).
		Int("nodes", s.stats.Nodes).
		Int("leaves", s.stats.Leaves).
		Msg("search done")
	return best
}

// Minimax scores b with maximizing deciding the side to move: Black when
// true, White otherwise. The board is restored before Minimax returns.
func (s *Searcher) Minimax(b *Board, depth int, maximizing bool) int {
	player := White
	if maximizing {
		player = Black
	}
	moves := b.Moves(player)
	if s.Termination.stop(depth, len(moves) == 0) {
		s.stats.Leaves++
		return -Evaluate(b)
	}

	best := infinity
	if maximizing {
		best = -infinity
	}
	for _, m := range moves {
		b.WithMove(m, func() {
			s.stats.Nodes++
			score := s.Minimax(b, depth-1, !maximizing)
			if maximizing {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		})
	}
	return best
}
