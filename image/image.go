// Package image renders a checkers board as an SVG picture.
package image

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/corentings/checkers"
)

// An Option customizes the picture written by SVG.
type Option func(*encoder)

// SVG writes an SVG representation of the board to w. Row 0 is drawn at the
// top unless Perspective(checkers.Black) is given.
func SVG(w io.Writer, b *checkers.Board, opts ...Option) error {
	e := newEncoder(w, opts)
	return e.encode(b)
}

// SquareColors is designed to be used as an optional argument
// to the SVG function. It changes the default light and
// dark square colors to the colors given.
func SquareColors(light, dark color.Color) Option {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares is designed to be used as an optional argument
// to the SVG function. It outlines the given squares, such as the
// piece currently selected.
func MarkSquares(c color.Color, sqs ...checkers.Square) Option {
	return func(e *encoder) {
		for _, sq := range sqs {
			e.marks[sq] = c
		}
	}
}

// CellSize is designed to be used as an optional argument
// to the SVG function. It sets the side of a square in pixels.
func CellSize(px int) Option {
	return func(e *encoder) {
		if px > 0 {
			e.cell = px
		}
	}
}

// Perspective is designed to be used as an optional argument
// to the SVG function. Black puts row 7 at the top.
func Perspective(c checkers.Color) Option {
	return func(e *encoder) {
		e.perspective = c
	}
}

var (
	defaultLight = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	defaultDark  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	whitePiece   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blackPiece   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	kingLabel    = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

type encoder struct {
	w           *errWriter
	light       color.Color
	dark        color.Color
	marks       map[checkers.Square]color.Color
	cell        int
	perspective checkers.Color
}

func newEncoder(w io.Writer, opts []Option) *encoder {
	e := &encoder{
		w:           &errWriter{w: w},
		light:       defaultLight,
		dark:        defaultDark,
		marks:       map[checkers.Square]color.Color{},
		cell:        80,
		perspective: checkers.White,
	}
	for _, op := range opts {
		if op != nil {
			op(e)
		}
	}
	return e
}

func (e *encoder) encode(b *checkers.Board) error {
	side := e.cell * checkers.BoardSize
	canvas := svg.New(e.w)
	canvas.Start(side, side)

	for row := 0; row < checkers.BoardSize; row++ {
		for col := 0; col < checkers.BoardSize; col++ {
			sq := checkers.Sq(col, row)
			x, y := e.origin(sq)

			fill := e.light
			if sq.Dark() {
				fill = e.dark
			}
			canvas.Rect(x, y, e.cell, e.cell, "fill:"+colorToHex(fill))

			if c, ok := e.marks[sq]; ok {
				canvas.Rect(x+1, y+1, e.cell-2, e.cell-2,
					"fill:none;stroke-width:3;stroke:"+colorToHex(c))
			}

			p := b.At(sq)
			if p == checkers.NoPiece {
				continue
			}
			pc := whitePiece
			if p.Color() == checkers.Black {
				pc = blackPiece
			}
			inset := e.cell / 8
			canvas.Ellipse(x+e.cell/2, y+e.cell/2, e.cell/2-inset, e.cell/2-inset,
				"stroke:#000000;stroke-width:1;fill:"+colorToHex(pc))
			if p.IsKing() {
				canvas.Text(x+e.cell/2, y+e.cell/2+e.cell/10, "K",
					fmt.Sprintf("text-anchor:middle;font-family:Arial;font-weight:bold;font-size:%dpx;fill:%s",
						e.cell*35/100, colorToHex(kingLabel)))
			}
		}
	}

	canvas.End()
	return e.w.err
}

// origin returns the top left pixel of sq.
func (e *encoder) origin(sq checkers.Square) (int, int) {
	col, row := sq.Col, sq.Row
	if e.perspective == checkers.Black {
		col = checkers.BoardSize - 1 - col
		row = checkers.BoardSize - 1 - row
	}
	return col * e.cell, row * e.cell
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
