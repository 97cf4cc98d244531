package checkers

import "testing"

func TestEvaluate(t *testing.T) {
	b := NewBoard()
	if got := Evaluate(b); got != 0 {
		t.Fatalf("expected 0 on the starting position but got %d", got)
	}

	b.set(Sq(1, 0), NoPiece)
	if got := Evaluate(b); got != ManValue {
		t.Fatalf("expected %d after removing a black man but got %d", ManValue, got)
	}

	tests := []struct {
		diagram string
		want    int
	}{
		{"W.......", 5},
		{"B.......", -5},
		{"Ww......", 8},
		{"BbWw....", 0},
		{"bb......", -6},
	}
	for _, tt := range tests {
		// light squares are fine here: Evaluate only counts material
		var b Board
		for col, r := range tt.diagram {
			p, _ := pieceFromSymbol(r)
			b.grid[0][col] = p
		}
		if got := Evaluate(&b); got != tt.want {
			t.Fatalf("%q: expected %d but got %d", tt.diagram, tt.want, got)
		}
	}
}
