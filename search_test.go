package checkers

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Black man on c5 facing a White man on d4: Black can step to b4 or
// capture to e3, after which White has nothing left.
const duelDiagram = `
	........
	........
	........
	..b.....
	...w....
	........
	........
	........`

// A lone White man: Black has no move at all.
const loneWhiteDiagram = `
	........
	........
	........
	........
	...w....
	........
	........
	........`

func TestTerminationRule(t *testing.T) {
	tests := []struct {
		depth    int
		noMoves  bool
		literal  bool
		standard bool
	}{
		{depth: 0, noMoves: true, literal: true, standard: true},
		{depth: 0, noMoves: false, literal: false, standard: true},
		{depth: 2, noMoves: true, literal: false, standard: true},
		{depth: 2, noMoves: false, literal: true, standard: false},
		{depth: -1, noMoves: false, literal: true, standard: true},
		{depth: -1, noMoves: true, literal: false, standard: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.literal, LiteralTermination.stop(tt.depth, tt.noMoves), "literal depth=%d noMoves=%v", tt.depth, tt.noMoves)
		assert.Equal(t, tt.standard, StandardTermination.stop(tt.depth, tt.noMoves), "standard depth=%d noMoves=%v", tt.depth, tt.noMoves)
	}
}

func TestMinimaxTerminationDivergence(t *testing.T) {
	tests := []struct {
		name       string
		diagram    string
		depth      int
		maximizing bool
		literal    int
		standard   int
	}{
		{
			name:       "depth 0 without moves",
			diagram:    loneWhiteDiagram,
			depth:      0,
			maximizing: true,
			literal:    -3,
			standard:   -3,
		},
		{
			name:       "depth left without moves",
			diagram:    loneWhiteDiagram,
			depth:      2,
			maximizing: true,
			literal:    -infinity,
			standard:   -3,
		},
		{
			name:       "depth 0 with moves",
			diagram:    duelDiagram,
			depth:      0,
			maximizing: true,
			literal:    infinity,
			standard:   0,
		},
		{
			name:       "depth left with moves",
			diagram:    duelDiagram,
			depth:      1,
			maximizing: true,
			literal:    0,
			standard:   3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParseBoard(t, tt.diagram)
			before := *b

			literal := NewSearcher(WithTermination(LiteralTermination))
			assert.Equal(t, tt.literal, literal.Minimax(b, tt.depth, tt.maximizing))
			require.True(t, before.Equal(b))

			standard := NewSearcher(WithTermination(StandardTermination))
			assert.Equal(t, tt.standard, standard.Minimax(b, tt.depth, tt.maximizing))
			require.True(t, before.Equal(b))
		})
	}
}

func TestChooseMoveTakesWinningCapture(t *testing.T) {
	b := mustParseBoard(t, duelDiagram)
	s := NewSearcher()
	m := s.ChooseMove(b, Black)
	require.Equal(t, Move{From: Sq(2, 3), To: Sq(4, 5)}, m)
	require.True(t, b.Equal(mustParseBoard(t, duelDiagram)), "search must leave the board untouched")

	b = mustParseBoard(t, `
		........
		........
		........
		....b...
		...w....
		........
		........
		........`)
	m = s.ChooseMove(b, White)
	require.Equal(t, Move{From: Sq(3, 4), To: Sq(5, 2)}, m)
}

func TestChooseMoveSentinel(t *testing.T) {
	b := mustParseBoard(t, `
		.b......
		w.......
		........
		........
		........
		........
		........
		........`)
	for _, term := range []Termination{LiteralTermination, StandardTermination} {
		s := NewSearcher(WithTermination(term))
		m := s.ChooseMove(b, White)
		require.True(t, m.IsNull(), term.String())
		require.Equal(t, NullMove, m)
		require.Zero(t, s.Stats().Nodes)
	}

	s := NewSearcher()
	require.Equal(t, NullMove, s.ChooseAmong(b, Black, nil))
}

func TestChooseMoveIsLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	searchers := []*Searcher{
		NewSearcher(),
		NewSearcher(WithTermination(StandardTermination), WithDepth(2)),
	}
	for game := 0; game < 4; game++ {
		b := NewBoard()
		side := White
		for ply := 0; ply < 30; ply++ {
			moves := b.Moves(side)
			if len(moves) == 0 {
				for _, s := range searchers {
					require.True(t, s.ChooseMove(b, side).IsNull())
				}
				break
			}
			for _, s := range searchers {
				before := *b
				m := s.ChooseMove(b, side)
				require.Contains(t, moves, m)
				require.True(t, before.Equal(b))
			}
			b.ApplyMove(moves[rng.Intn(len(moves))])
			side = side.Other()
		}
	}
}

func TestSearcherStatsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s := NewSearcher(WithLogger(logger), WithTermination(StandardTermination), WithDepth(1))

	b := NewBoard()
	m := s.ChooseMove(b, Black)
	require.False(t, m.IsNull())

	stats := s.Stats()
	// 7 root moves, each answered by 7 White moves scored at depth 0.
	assert.Equal(t, 7+7*7, stats.Nodes)
	assert.Equal(t, 7*7, stats.Leaves)
	assert.Contains(t, buf.String(), `"message":"search done"`)
	assert.Contains(t, buf.String(), `"best":"`+m.String()+`"`)
}

func BenchmarkChooseMoveStandard(b *testing.B) {
	s := NewSearcher(WithTermination(StandardTermination))
	board := NewBoard()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		s.ChooseMove(board, Black)
	}
}

func BenchmarkChooseMoveLiteral(b *testing.B) {
	s := NewSearcher()
	board := NewBoard()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		s.ChooseMove(board, Black)
	}
}
