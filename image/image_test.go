package image

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corentings/checkers"
)

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	b := checkers.NewBoard()
	require.NoError(t, SVG(&buf, b))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, `width="640"`)
	require.Equal(t, 64, strings.Count(out, "<rect"))
	require.Equal(t, 24, strings.Count(out, "<ellipse"))
	require.NotContains(t, out, ">K<", "no kings on the starting position")
	require.Contains(t, out, "fill:#8b4513", "dark squares use the default brown")
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestSVGOptions(t *testing.T) {
	b, err := checkers.ParseBoard(`
		.W......
		........
		........
		........
		........
		........
		.......b
		........`)
	require.NoError(t, err)

	var buf bytes.Buffer
	green := color.RGBA{G: 255, A: 255}
	err = SVG(&buf, b,
		CellSize(40),
		SquareColors(color.White, color.Black),
		MarkSquares(green, checkers.Sq(1, 0)),
		Perspective(checkers.Black),
	)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `width="320"`)
	require.Equal(t, 64+1, strings.Count(out, "<rect"))
	require.Equal(t, 2, strings.Count(out, "<ellipse"))
	require.Equal(t, 1, strings.Count(out, ">K<"))
	require.Contains(t, out, "stroke:#00ff00")
	require.Contains(t, out, "fill:#ffffff")
	// b8 is drawn in the bottom row from Black's side
	require.Contains(t, out, `<rect x="241" y="281"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSVGWriteError(t *testing.T) {
	err := SVG(failingWriter{}, checkers.NewBoard())
	require.EqualError(t, err, "disk full")
}
