package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/corentings/checkers"
	"github.com/corentings/checkers/image"
)

func main() {
	loadDotEnv()

	app := &cli.App{
		Name:  "checkers",
		Usage: "Play 8x8 checkers against a fixed-depth minimax",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "zerolog level: debug, info, warn, error",
				Value:   "info",
				EnvVars: []string{"CHECKERS_LOG_LEVEL"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			return configureLogger(cCtx.String("log-level"))
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "Play a game in the terminal against the computer",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "human",
						Usage:   "side played by the human: white or black",
						Value:   "white",
						EnvVars: []string{"CHECKERS_HUMAN"},
					},
					&cli.StringFlag{
						Name:  "svg",
						Usage: "write the board to this SVG file after every move",
					},
				}, commonFlags...),
				Action: func(cCtx *cli.Context) error {
					cfg, err := loadConfig(cCtx)
					if err != nil {
						return err
					}
					g, err := cfg.newGame()
					if err != nil {
						return err
					}
					p := &player{
						game:    g,
						human:   cfg.Human,
						in:      os.Stdin,
						out:     os.Stdout,
						svgPath: cCtx.String("svg"),
					}
					return p.run()
				},
			},
			{
				Name:  "bestmove",
				Usage: "Print the move the computer picks for the side to move",
				Flags: commonFlags,
				Action: func(cCtx *cli.Context) error {
					cfg, err := loadConfig(cCtx)
					if err != nil {
						return err
					}
					g, err := cfg.newGame()
					if err != nil {
						return err
					}
					m := g.Searcher().ChooseAmong(g.Board(), g.Turn(), g.ValidMoves())
					if m.IsNull() {
						return fmt.Errorf("%s has no move", g.Turn())
					}
					stats := g.Searcher().Stats()
					log.Info().Int("nodes", stats.Nodes).Int("leaves", stats.Leaves).Msg("search stats")
					fmt.Println(m)
					return nil
				},
			},
			{
				Name:  "render",
				Usage: "Write the board as SVG",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "output file, stdout when empty",
					},
					&cli.IntFlag{
						Name:  "cell",
						Usage: "square size in pixels",
						Value: 80,
					},
					&cli.StringFlag{
						Name:  "mark",
						Usage: "comma separated squares to outline, e.g. c3,d4",
					},
					&cli.BoolFlag{
						Name:  "flip",
						Usage: "draw the board from Black's side",
					},
				}, commonFlags...),
				Action: func(cCtx *cli.Context) error {
					cfg, err := loadConfig(cCtx)
					if err != nil {
						return err
					}
					g, err := cfg.newGame()
					if err != nil {
						return err
					}
					opts, err := renderOptions(cCtx.Int("cell"), cCtx.String("mark"), cCtx.Bool("flip"))
					if err != nil {
						return err
					}
					var w io.Writer = os.Stdout
					if path := cCtx.String("out"); path != "" {
						f, err := os.Create(path)
						if err != nil {
							return err
						}
						defer f.Close()
						w = f
					}
					return image.SVG(w, g.Board(), opts...)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkers")
	}
}

var selectionColor = color.RGBA{G: 255, A: 255}

func renderOptions(cell int, marks string, flip bool) ([]image.Option, error) {
	opts := []image.Option{image.CellSize(cell)}
	if flip {
		opts = append(opts, image.Perspective(checkers.Black))
	}
	if marks = strings.TrimSpace(marks); marks != "" {
		var sqs []checkers.Square
		for _, s := range strings.Split(marks, ",") {
			sq, err := checkers.ParseSquare(strings.TrimSpace(s))
			if err != nil {
				return nil, err
			}
			sqs = append(sqs, sq)
		}
		opts = append(opts, image.MarkSquares(selectionColor, sqs...))
	}
	return opts, nil
}
