package checkers

// Material values used by Evaluate.
const (
	ManValue  = 3
	KingValue = 5
)

// Evaluate returns the material balance of b: positive favors White,
// negative favors Black.
func Evaluate(b *Board) int {
	score := 0
	for row := range b.grid {
		for _, p := range b.grid[row] {
			score += pieceValue(p)
		}
	}
	return score
}

func pieceValue(p Piece) int {
	v := 0
	switch p.Kind() {
	case Man:
		v = ManValue
	case King:
		v = KingValue
	}
	if p.Color() == Black {
		return -v
	}
	return v
}
