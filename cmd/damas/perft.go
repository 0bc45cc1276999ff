package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"damas/internal/perft"
)

func perftCommand() *cli.Command {
	flags := append(positionFlags(),
		&cli.IntFlag{
			Name:    "depth",
			Aliases: []string{"d"},
			Usage:   "number of whole turns to enumerate",
			Value:   6,
			EnvVars: []string{"DAMAS_PERFT_DEPTH"},
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "parallel workers, 0 for GOMAXPROCS",
			EnvVars: []string{"DAMAS_PERFT_WORKERS"},
		},
		&cli.BoolFlag{
			Name:  "divide",
			Usage: "print the count below each root turn",
		},
	)
	return &cli.Command{
		Name:  "perft",
		Usage: "count the positions reachable in a number of turns",
		Flags: flags,
		Action: func(cCtx *cli.Context) error {
			g, err := loadGame(cCtx)
			if err != nil {
				return err
			}
			depth, workers := cCtx.Int("depth"), cCtx.Int("workers")
			w := cCtx.App.Writer

			start := time.Now()
			splits, err := perft.Divide(cCtx.Context, g, depth, workers)
			if err != nil {
				return err
			}
			var total perft.Stats
			if depth == 0 {
				total.Nodes = 1
			}
			for _, sp := range splits {
				if cCtx.Bool("divide") {
					fmt.Fprintf(w, "%-40s %d\n", sp.Turn, sp.Stats.Nodes)
				}
				total.Add(sp.Stats)
			}
			elapsed := time.Since(start)
			log.Debug().Dur("elapsed", elapsed).Int("workers", workers).Msg("perft")

			fmt.Fprintf(w, "depth %d: nodes=%d captures=%d promotions=%d wins=%d (%s)\n",
				depth, total.Nodes, total.Captures, total.Promotions, total.Wins, elapsed.Round(time.Millisecond))
			return nil
		},
	}
}
