package checkers

// A Color is the color of a piece and of the side that owns it.
// White moves first in the usual setup and advances toward row 0,
// Black advances toward row 7.
type Color int8

const (
	// NoColor is the color of an empty square.
	NoColor Color = iota
	// White is the side whose men start on rows 5-7.
	White
	// Black is the side whose men start on rows 0-2.
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// Forward returns the row delta of a forward step for men of this color.
func (c Color) Forward() int {
	switch c {
	case White:
		return -1
	case Black:
		return 1
	}
	return 0
}

// PromotionRow returns the row on which a man of this color is crowned.
func (c Color) PromotionRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColor"
}

// Kind is the rank of a piece, man or king.
type Kind int8

const (
	// NoKind is the kind of an empty square.
	NoKind Kind = iota
	// Man moves and captures diagonally forward only.
	Man
	// King slides and captures along all four diagonals.
	King
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Man:
		return "man"
	case King:
		return "king"
	}
	return ""
}

// Piece is the occupant of a square: a color and a kind packed into one byte.
// The zero value is NoPiece.
type Piece uint8

const (
	// NoPiece represents an empty square.
	NoPiece Piece = 0
	// WhiteMan is a White man.
	WhiteMan = Piece(uint8(White)<<2 | uint8(Man))
	// WhiteKing is a White king.
	WhiteKing = Piece(uint8(White)<<2 | uint8(King))
	// BlackMan is a Black man.
	BlackMan = Piece(uint8(Black)<<2 | uint8(Man))
	// BlackKing is a Black king.
	BlackKing = Piece(uint8(Black)<<2 | uint8(King))
)

// NewPiece returns the piece with the given color and kind.
// Either argument being empty yields NoPiece.
func NewPiece(c Color, k Kind) Piece {
	if c == NoColor || k == NoKind {
		return NoPiece
	}
	return Piece(uint8(c)<<2 | uint8(k))
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	return Color(p >> 2)
}

// Kind returns the kind of the piece.
func (p Piece) Kind() Kind {
	return Kind(p & 3)
}

// IsKing reports whether the piece is a king.
func (p Piece) IsKing() bool {
	return p.Kind() == King
}

// Belongs reports whether the piece is owned by c.
func (p Piece) Belongs(c Color) bool {
	return p != NoPiece && p.Color() == c
}

// Opposes reports whether the piece is owned by the opponent of c.
func (p Piece) Opposes(c Color) bool {
	return p != NoPiece && p.Color() != c
}

// Promoted returns the king of the same color. Kings and NoPiece are returned unchanged.
func (p Piece) Promoted() Piece {
	if p.Kind() != Man {
		return p
	}
	return NewPiece(p.Color(), King)
}

// Demoted returns the man of the same color.
func (p Piece) Demoted() Piece {
	if p.Kind() != King {
		return p
	}
	return NewPiece(p.Color(), Man)
}

// String returns the one letter diagram symbol: w, b for men, W, B for kings
// and "." for an empty square.
func (p Piece) String() string {
	switch p {
	case WhiteMan:
		return "w"
	case WhiteKing:
		return "W"
	case BlackMan:
		return "b"
	case BlackKing:
		return "B"
	}
	return "."
}

func pieceFromSymbol(r rune) (Piece, bool) {
	switch r {
	case 'w':
		return WhiteMan, true
	case 'W':
		return WhiteKing, true
	case 'b':
		return BlackMan, true
	case 'B':
		return BlackKing, true
	case '.', '-', '_':
		return NoPiece, true
	}
	return NoPiece, false
}
