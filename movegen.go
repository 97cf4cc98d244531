package checkers

// kingDirections is the order in which kings scan the diagonals.
var kingDirections = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// LegalMoves returns the moves of every piece equal to sel, scanning rows
// 0-7 and columns 0-7. The four selectors are WhiteMan, WhiteKing, BlackMan
// and BlackKing; any other value yields no moves.
//
// Captures are not compulsory: steps and captures are returned together.
func (b *Board) LegalMoves(sel Piece) []Move {
	var moves []Move
	if sel.Kind() == NoKind {
		return moves
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.grid[row][col] != sel {
				continue
			}
			b.generate(Sq(col, row), func(m Move, _ bool) {
				moves = append(moves, m)
			})
		}
	}
	return moves
}

// Moves returns the men moves of c followed by its king moves.
func (b *Board) Moves(c Color) []Move {
	moves := b.LegalMoves(NewPiece(c, Man))
	return append(moves, b.LegalMoves(NewPiece(c, King))...)
}

// HasMoves reports whether c has at least one move.
func (b *Board) HasMoves(c Color) bool {
	return len(b.Moves(c)) > 0
}

// MovesFrom returns the moves of the piece standing on sq.
func (b *Board) MovesFrom(sq Square) []Move {
	var moves []Move
	if !sq.OnBoard() || b.At(sq) == NoPiece {
		return moves
	}
	b.generate(sq, func(m Move, _ bool) {
		moves = append(moves, m)
	})
	return moves
}

// CapturesFrom returns the capturing moves of the piece standing on sq.
func (b *Board) CapturesFrom(sq Square) []Move {
	var moves []Move
	if !sq.OnBoard() || b.At(sq) == NoPiece {
		return moves
	}
	b.generate(sq, func(m Move, capture bool) {
		if capture {
			moves = append(moves, m)
		}
	})
	return moves
}

// CanContinueCapture reports whether the piece of color c standing on sq can
// capture again. It decides whether a capture chain goes on before the turn
// passes to the opponent.
func (b *Board) CanContinueCapture(sq Square, c Color) bool {
	if !sq.OnBoard() || !b.At(sq).Belongs(c) {
		return false
	}
	return len(b.CapturesFrom(sq)) > 0
}

// generate emits every move of the piece on from, flagging captures.
func (b *Board) generate(from Square, emit func(m Move, capture bool)) {
	p := b.At(from)
	c := p.Color()
	if p.IsKing() {
		for _, d := range kingDirections {
			b.generateKingRay(from, c, d[0], d[1], emit)
		}
		return
	}

	dy := c.Forward()
	for _, dx := range [2]int{-1, 1} {
		step := from.Add(dx, dy)
		if step.OnBoard() && b.At(step) == NoPiece {
			emit(Move{From: from, To: step}, false)
		}
		jump := from.Add(2*dx, 2*dy)
		if jump.OnBoard() && b.At(jump) == NoPiece && b.At(step).Opposes(c) {
			emit(Move{From: from, To: jump}, true)
		}
	}
}

// generateKingRay slides along one diagonal emitting every empty square, then
// offers a single capture landing on the square right behind the first
// opposing piece met.
func (b *Board) generateKingRay(from Square, c Color, dx, dy int, emit func(Move, bool)) {
	for sq := from.Add(dx, dy); sq.OnBoard(); sq = sq.Add(dx, dy) {
		occupant := b.At(sq)
		if occupant == NoPiece {
			emit(Move{From: from, To: sq}, false)
			continue
		}
		landing := sq.Add(dx, dy)
		if occupant.Opposes(c) && landing.OnBoard() && b.At(landing) == NoPiece {
			emit(Move{From: from, To: landing}, true)
		}
		return
	}
}

// CapturedBy returns the square of the piece m would capture: the first piece
// of the mover's opponent strictly between From and To. Moves spanning a
// single diagonal step never capture.
func (b *Board) CapturedBy(m Move) (Square, bool) {
	dx, dy := m.To.Col-m.From.Col, m.To.Row-m.From.Row
	if abs(dx) <= 1 || abs(dy) <= 1 {
		return Square{}, false
	}
	mover := b.At(m.From).Color()
	sx, sy := sign(dx), sign(dy)
	for sq := m.From.Add(sx, sy); sq.Col != m.To.Col && sq.Row != m.To.Row; sq = sq.Add(sx, sy) {
		if b.At(sq).Opposes(mover) {
			return sq, true
		}
	}
	return Square{}, false
}
