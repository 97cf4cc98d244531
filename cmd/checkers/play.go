package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/corentings/checkers"
	"github.com/corentings/checkers/image"
)

// player runs a human against the computer on a text terminal.
type player struct {
	game    *checkers.Game
	human   checkers.Color
	in      io.Reader
	out     io.Writer
	svgPath string
}

const help = `enter a move such as "c3-d4", or one of:
  moves   list the valid moves
  undo    take back your last move and the computer's reply
  resign  give up the game
  quit    leave without finishing`

func (p *player) run() error {
	scanner := bufio.NewScanner(p.in)
	for p.game.Outcome() == checkers.NoOutcome {
		if err := p.writeSVG(); err != nil {
			return err
		}
		fmt.Fprint(p.out, p.game.Board().Draw())

		if mover := p.game.Turn(); mover != p.human {
			m, err := p.game.ComputerMove()
			if err != nil {
				return err
			}
			fmt.Fprintf(p.out, "%s plays %s\n", mover, m)
			continue
		}

		if sq, ok := p.game.Chain(); ok {
			fmt.Fprintf(p.out, "continue capturing with %s\n", sq)
		}
		fmt.Fprintf(p.out, "%s to move> ", p.human)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return nil
		}
		quit, err := p.handle(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(p.out, err)
		}
		if quit {
			return nil
		}
	}

	if err := p.writeSVG(); err != nil {
		return err
	}
	fmt.Fprint(p.out, p.game.Board().Draw())
	fmt.Fprintf(p.out, "game over: %s by %s\n", p.game.Outcome(), p.game.Method())
	log.Info().
		Stringer("outcome", p.game.Outcome()).
		Stringer("method", p.game.Method()).
		Int("moves", len(p.game.History())).
		Msg("game finished")
	return nil
}

// handle processes one line of input and reports whether to stop.
func (p *player) handle(line string) (bool, error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "help", "?":
		fmt.Fprintln(p.out, help)
		return false, nil
	case "quit", "exit":
		return true, nil
	case "resign":
		p.game.Resign(p.human)
		return false, nil
	case "moves":
		moves := make([]string, 0)
		for _, m := range p.game.ValidMoves() {
			moves = append(moves, m.String())
		}
		fmt.Fprintln(p.out, strings.Join(moves, " "))
		return false, nil
	case "undo":
		p.takeBack()
		return false, nil
	}

	m, err := checkers.ParseMove(line)
	if err != nil {
		return false, err
	}
	if err := p.game.Move(m); err != nil {
		if errors.Is(err, checkers.ErrInvalidMove) {
			return false, fmt.Errorf("illegal move %s, type \"moves\" for the list", m)
		}
		return false, err
	}
	return false, nil
}

// takeBack undoes moves until it is the human's turn at the start of a turn.
func (p *player) takeBack() {
	for p.game.TakeBack() {
		if _, chained := p.game.Chain(); p.game.Turn() == p.human && !chained {
			return
		}
	}
}

func (p *player) writeSVG() error {
	if p.svgPath == "" {
		return nil
	}
	f, err := os.Create(p.svgPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var opts []image.Option
	if sq, ok := p.game.Chain(); ok {
		opts = append(opts, image.MarkSquares(selectionColor, sq))
	}
	if p.human == checkers.Black {
		opts = append(opts, image.Perspective(checkers.Black))
	}
	return image.SVG(f, p.game.Board(), opts...)
}
