package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/corentings/checkers"
)

// config is resolved from flags, which fall back to CHECKERS_* variables
// (optionally read from a .env file).
type config struct {
	Depth       int
	Termination checkers.Termination
	Human       checkers.Color
	Moves       string
}

var commonFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "depth",
		Aliases: []string{"d"},
		Usage:   "plies searched below each candidate move",
		Value:   checkers.DefaultDepth,
		EnvVars: []string{"CHECKERS_DEPTH"},
	},
	&cli.StringFlag{
		Name:    "termination",
		Usage:   "minimax leaf rule: literal or standard",
		Value:   checkers.LiteralTermination.String(),
		EnvVars: []string{"CHECKERS_TERMINATION"},
	},
	&cli.StringFlag{
		Name:    "moves",
		Aliases: []string{"m"},
		Usage:   `moves to replay before starting, e.g. "c3-d4 f6-e5"`,
		EnvVars: []string{"CHECKERS_MOVES"},
	},
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Error loading .env file")
	}
}

func configureLogger(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)
	return nil
}

func loadConfig(cCtx *cli.Context) (config, error) {
	cfg := config{
		Depth: cCtx.Int("depth"),
		Human: checkers.White,
		Moves: cCtx.String("moves"),
	}
	if cfg.Depth < 0 {
		return cfg, fmt.Errorf("depth must not be negative, got %d", cfg.Depth)
	}

	term, ok := checkers.ParseTermination(cCtx.String("termination"))
	if !ok {
		return cfg, fmt.Errorf("unknown termination %q", cCtx.String("termination"))
	}
	cfg.Termination = term

	if h := cCtx.String("human"); h != "" {
		c, err := parseColor(h)
		if err != nil {
			return cfg, err
		}
		cfg.Human = c
	}
	return cfg, nil
}

func parseColor(s string) (checkers.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return checkers.White, nil
	case "black", "b":
		return checkers.Black, nil
	}
	return checkers.NoColor, fmt.Errorf("invalid side %q; valid: white, black", s)
}

func (cfg config) searcher() *checkers.Searcher {
	return checkers.NewSearcher(
		checkers.WithDepth(cfg.Depth),
		checkers.WithTermination(cfg.Termination),
		checkers.WithLogger(log.Logger),
	)
}

func (cfg config) newGame() (*checkers.Game, error) {
	g := checkers.NewGame(
		checkers.WithSearcher(cfg.searcher()),
		checkers.Moves(cfg.Moves),
	)
	if err := g.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
