package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corentings/checkers"
)

func newTestPlayer(t *testing.T, input string) (*player, *bytes.Buffer) {
	t.Helper()
	cfg := config{Depth: checkers.DefaultDepth, Termination: checkers.LiteralTermination, Human: checkers.White}
	g, err := cfg.newGame()
	require.NoError(t, err)
	var out bytes.Buffer
	return &player{game: g, human: checkers.White, in: strings.NewReader(input), out: &out}, &out
}

func TestPlayResign(t *testing.T) {
	p, out := newTestPlayer(t, "c3-d4\nresign\n")
	require.NoError(t, p.run())

	assert.Contains(t, out.String(), "Black plays ")
	assert.Contains(t, out.String(), "game over: 0-1 by resignation")
	assert.Len(t, p.game.History(), 2)
}

func TestPlayRejectsBadInput(t *testing.T) {
	p, out := newTestPlayer(t, "nonsense\nc3-c4\nmoves\n")
	require.NoError(t, p.run(), "end of input stops the loop")

	assert.Contains(t, out.String(), `checkers: invalid move "nonsense"`)
	assert.Contains(t, out.String(), "illegal move c3-c4")
	assert.Contains(t, out.String(), "a3-b4 c3-b4 c3-d4")
	assert.Empty(t, p.game.History())
}

func TestPlayUndo(t *testing.T) {
	p, _ := newTestPlayer(t, "c3-d4\nundo\nquit\n")
	require.NoError(t, p.run())
	assert.Empty(t, p.game.History())
	assert.Equal(t, checkers.White, p.game.Turn())
	assert.True(t, p.game.Board().Equal(checkers.NewBoard()))
}

func TestPlayWritesSVG(t *testing.T) {
	p, _ := newTestPlayer(t, "quit\n")
	p.svgPath = filepath.Join(t.TempDir(), "board.svg")
	require.NoError(t, p.run())

	data, err := os.ReadFile(p.svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    checkers.Color
		wantErr bool
	}{
		{in: "white", want: checkers.White},
		{in: " Black ", want: checkers.Black},
		{in: "b", want: checkers.Black},
		{in: "red", wantErr: true},
	}
	for _, tt := range tests {
		c, err := parseColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, c)
	}
}

func TestRenderOptions(t *testing.T) {
	opts, err := renderOptions(40, "c3, d4", true)
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	_, err = renderOptions(40, "c3,z9", false)
	require.Error(t, err)
}

func TestConfigureLogger(t *testing.T) {
	require.NoError(t, configureLogger("DEBUG"))
	require.Error(t, configureLogger("loud"))
	require.NoError(t, configureLogger("info"))
}
