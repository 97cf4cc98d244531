package checkers

// Undo holds what ApplyMove changed beyond the moved piece itself, so that
// UndoMove can restore the board exactly.
type Undo struct {
	// Captured is the piece removed by the move, NoPiece if none.
	Captured Piece
	// CapturedAt is the square Captured stood on.
	CapturedAt Square
	// Promoted is set when the move crowned a man.
	Promoted bool
}

// ApplyMove moves the piece on m.From to m.To, overwriting the destination and
// clearing the origin. A man landing on its promotion row becomes a king.
// When both axes differ by more than one square, the first opposing piece on
// the line between the two squares is removed: a move captures at most one
// piece, and capture chains are played as a sequence of moves.
//
// ApplyMove does not check legality; moves should come from LegalMoves.
func (b *Board) ApplyMove(m Move) Undo {
	var u Undo
	if sq, ok := b.CapturedBy(m); ok {
		u.Captured = b.At(sq)
		u.CapturedAt = sq
		b.set(sq, NoPiece)
	}

	p := b.At(m.From)
	b.set(m.From, NoPiece)
	if p.Kind() == Man && m.To.Row == p.Color().PromotionRow() {
		p = p.Promoted()
		u.Promoted = true
	}
	b.set(m.To, p)
	return u
}

// UndoMove reverts m given the Undo returned by the matching ApplyMove.
// Calling it after any other mutation of the board is undefined.
func (b *Board) UndoMove(m Move, u Undo) {
	p := b.At(m.To)
	b.set(m.To, NoPiece)
	if u.Promoted {
		p = p.Demoted()
	}
	b.set(m.From, p)
	if u.Captured != NoPiece {
		b.set(u.CapturedAt, u.Captured)
	}
}

// WithMove applies m, runs fn and undoes m, even when fn panics.
func (b *Board) WithMove(m Move, fn func()) {
	u := b.ApplyMove(m)
	defer b.UndoMove(m, u)
	fn()
}
