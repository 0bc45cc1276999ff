package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"damas/internal/damas"
	"damas/internal/log2"
)

func main() {
	log2.Configure("")

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Error loading .env file")
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("damas")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "damas",
		Usage: "Play and analyse 8x8 checkers positions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "trace, debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"DAMAS_LOG_LEVEL"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			log2.Configure(cCtx.String("log-level"))
			return nil
		},
		Action: func(*cli.Context) error {
			fmt.Println("--help for more information.")
			return nil
		},
		Commands: []*cli.Command{
			playCommand(),
			showCommand(),
			perftCommand(),
			casesCommand(),
		},
	}
}

func positionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "layout",
			Aliases: []string{"l"},
			Usage:   "file with eight rows of b, p, B, P or '.'",
			EnvVars: []string{"DAMAS_LAYOUT"},
		},
		&cli.StringFlag{
			Name:    "position",
			Aliases: []string{"p"},
			Usage:   "encoded position, e.g. \"8/8/8/3p4/4b3/8/8/8 b\"",
		},
	}
}

// loadGame builds the starting game from --position, --layout or the
// standard opening, in that order.
func loadGame(cCtx *cli.Context) (*damas.Game, error) {
	if enc := cCtx.String("position"); enc != "" {
		return damas.DecodePosition(enc)
	}
	if path := cCtx.String("layout"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
		return damas.NewGameFromLayout(string(raw))
	}
	return damas.NewGame(), nil
}
