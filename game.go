/*
Package checkers provides an 8x8 checkers (draughts) engine: board state,
move generation, reversible move application, material evaluation and a
fixed-depth minimax search, plus a Game type that drives a human against
the computer.

Rules: men step and
capture diagonally forward only, kings slide any distance along the four
diagonals and capture by landing on the square right behind the first
opposing piece met, captures are not compulsory and a capture chain is a
sequence of single-capture moves by the same piece.

Example usage:

	// Create new game, White to move
	game := checkers.NewGame()

	// Human move
	if err := game.Move(checkers.Move{From: checkers.Sq(2, 5), To: checkers.Sq(3, 4)}); err != nil {
		log.Fatal(err)
	}

	// Computer reply
	reply, err := game.ComputerMove()
*/
package checkers

import (
	"errors"
	"fmt"
	"slices"
)

// A Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that White won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that Black won the game.
	BlackWon Outcome = "0-1"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred.
	NoMethod Method = iota
	// NoMoves indicates that the side to move had no legal move left.
	NoMoves
	// Resignation indicates that the game was won by resignation.
	Resignation
)

// String implements the fmt.Stringer interface.
func (m Method) String() string {
	switch m {
	case NoMoves:
		return "no moves"
	case Resignation:
		return "resignation"
	}
	return "none"
}

var (
	// ErrInvalidMove is returned by Game.Move for a move absent from ValidMoves.
	ErrInvalidMove = errors.New("checkers: invalid move")
	// ErrGameOver is returned when a move is attempted on a finished game.
	ErrGameOver = errors.New("checkers: game is over")
	// ErrNoMove is returned by Game.ComputerMove when the search finds no move.
	ErrNoMove = errors.New("checkers: no move available")
)

// played is a move of the game history with its undo record.
type played struct {
	move  Move
	undo  Undo
	mover Color
	chain *Square // chain square before the move
}

// A Game is a checkers game between two sides sharing one Board.
type Game struct {
	board    *Board
	turn     Color
	searcher *Searcher
	history  []played
	chain    *Square // piece that must keep capturing, nil outside a chain
	outcome  Outcome
	method   Method
	err      error // set by options that fail
}

// NewGame returns a new game in the starting position with White to move.
// Optional functions can be provided to configure the initial game state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game with a deeper searcher
//	game := NewGame(WithSearcher(NewSearcher(WithDepth(5), WithTermination(StandardTermination))))
func NewGame(options ...func(*Game)) *Game {
	g := &Game{
		board:    NewBoard(),
		turn:     White,
		searcher: NewSearcher(),
		outcome:  NoOutcome,
		method:   NoMethod,
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	g.evaluateStatus()
	return g
}

// WithBoard returns a Game option starting from b. The game takes ownership of b.
func WithBoard(b *Board) func(*Game) {
	return func(g *Game) {
		g.board = b
	}
}

// WithTurn returns a Game option setting the side to move first.
func WithTurn(c Color) func(*Game) {
	return func(g *Game) {
		g.turn = c
	}
}

// WithSearcher returns a Game option replacing the searcher used by ComputerMove.
func WithSearcher(s *Searcher) func(*Game) {
	return func(g *Game) {
		g.searcher = s
	}
}

// Moves returns a Game option replaying a move list such as "c3-d4 f6-e5".
// Options are applied in order, so Moves should come after WithBoard and
// WithTurn. The first invalid move stops the replay; Err reports it.
func Moves(s string) func(*Game) {
	return func(g *Game) {
		if g.err != nil {
			return
		}
		moves, err := ParseMoves(s)
		if err != nil {
			g.err = err
			return
		}
		for i, m := range moves {
			if err := g.Move(m); err != nil {
				g.err = fmt.Errorf("move %d %s: %w", i+1, m, err)
				return
			}
		}
	}
}

// Err returns the error of a failed option, if any.
func (g *Game) Err() error {
	return g.err
}

// Board returns the game's board. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method {
	return g.method
}

// Searcher returns the searcher used by ComputerMove.
func (g *Game) Searcher() *Searcher {
	return g.searcher
}

// Chain returns the square of the piece that must keep capturing, if a
// capture chain is in progress.
func (g *Game) Chain() (Square, bool) {
	if g.chain == nil {
		return Square{}, false
	}
	return *g.chain, true
}

// History returns the moves played so far.
func (g *Game) History() []Move {
	moves := make([]Move, len(g.history))
	for i, p := range g.history {
		moves[i] = p.move
	}
	return moves
}

// ValidMoves returns the moves the side to move may play. During a capture
// chain only the captures of the chaining piece are valid.
func (g *Game) ValidMoves() []Move {
	if g.outcome != NoOutcome {
		return nil
	}
	if g.chain != nil {
		return g.board.CapturesFrom(*g.chain)
	}
	return g.board.Moves(g.turn)
}

// Move plays m for the side to move after checking it against ValidMoves.
// A capture that can be followed by another capture of the same piece keeps
// the turn with the mover.
func (g *Game) Move(m Move) error {
	if err := g.validateMove(m); err != nil {
		return err
	}
	g.moveUnchecked(m)
	return nil
}

func (g *Game) validateMove(m Move) error {
	if g.outcome != NoOutcome {
		return ErrGameOver
	}
	if !slices.Contains(g.ValidMoves(), m) {
		return fmt.Errorf("%w: %s for %s", ErrInvalidMove, m, g.turn)
	}
	return nil
}

func (g *Game) moveUnchecked(m Move) {
	u := g.board.ApplyMove(m)
	g.history = append(g.history, played{move: m, undo: u, mover: g.turn, chain: g.chain})

	if u.Captured != NoPiece && g.board.CanContinueCapture(m.To, g.turn) {
		to := m.To
		g.chain = &to
	} else {
		g.chain = nil
		g.turn = g.turn.Other()
	}
	g.evaluateStatus()
}

// ComputerMove lets the searcher pick and play a move for the side to move.
// ErrNoMove is returned when the searcher finds none; the NullMove sentinel
// is never applied.
func (g *Game) ComputerMove() (Move, error) {
	if g.outcome != NoOutcome {
		return NullMove, ErrGameOver
	}
	m := g.searcher.ChooseAmong(g.board, g.turn, g.ValidMoves())
	if m.IsNull() {
		return NullMove, ErrNoMove
	}
	g.moveUnchecked(m)
	return m, nil
}

// TakeBack undoes the last move. It returns false when there is nothing to undo.
// A finished game is reopened.
func (g *Game) TakeBack() bool {
	n := len(g.history)
	if n == 0 {
		return false
	}
	last := g.history[n-1]
	g.history = g.history[:n-1]
	g.board.UndoMove(last.move, last.undo)
	g.turn = last.mover
	g.chain = last.chain
	g.outcome = NoOutcome
	g.method = NoMethod
	g.evaluateStatus()
	return true
}

// Resign resigns the game for the given color. If the game has
// already been completed then the game is not updated.
func (g *Game) Resign(color Color) {
	if g.outcome != NoOutcome || color == NoColor {
		return
	}
	if color == White {
		g.outcome = BlackWon
	} else {
		g.outcome = WhiteWon
	}
	g.method = Resignation
}

// evaluateStatus ends the game when the side to move has no move left.
func (g *Game) evaluateStatus() {
	if g.outcome != NoOutcome {
		return
	}
	if g.chain == nil && !g.board.HasMoves(g.turn) {
		g.method = NoMoves
		g.outcome = WhiteWon
		if g.turn == White {
			g.outcome = BlackWon
		}
	}
}
