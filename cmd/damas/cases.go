package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"damas/internal/damas"
	"damas/internal/perft"
)

// Case is one position from a random game with everything the rules allow
// there. Other implementations can replay these files to compare move
// generation.
type Case struct {
	Position string        `json:"position"`
	Turn     damas.Player  `json:"turn"`
	Moves    []damas.Move  `json:"moves"`
	Chains   []damas.Chain `json:"chains,omitempty"`
	Played   damas.Chain   `json:"played"`
	Outcome  damas.Outcome `json:"outcome"`
}

func casesCommand() *cli.Command {
	flags := append(positionFlags(),
		&cli.IntFlag{Name: "games", Aliases: []string{"n"}, Value: 10, Usage: "number of random games"},
		&cli.IntFlag{Name: "max-turns", Value: 300, Usage: "turn limit per game"},
		&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 for the current time"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, stdout if empty"},
	)
	return &cli.Command{
		Name:  "cases",
		Usage: "write move generation fixtures from random games as JSON",
		Flags: flags,
		Action: func(cCtx *cli.Context) error {
			g, err := loadGame(cCtx)
			if err != nil {
				return err
			}
			seed := cCtx.Int64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			cases, err := generateCases(g, cCtx.Int("games"), cCtx.Int("max-turns"), rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}

			if err := writeCases(cCtx.App.Writer, cCtx.String("out"), cases); err != nil {
				return err
			}
			log.Info().Int("cases", len(cases)).Int64("seed", seed).Msg("cases written")
			return nil
		},
	}
}

func generateCases(start *damas.Game, games, maxTurns int, rng *rand.Rand) ([]Case, error) {
	var out []Case
	for i := 0; i < games; i++ {
		for _, t := range perft.Playout(start, maxTurns, rng) {
			g, err := damas.DecodePosition(t.Position)
			if err != nil {
				return nil, err
			}
			out = append(out, Case{
				Position: t.Position,
				Turn:     t.Player,
				Moves:    g.LegalMoves(),
				Chains:   g.LegalChains(),
				Played:   t.Chain,
				Outcome:  t.Outcome,
			})
		}
	}
	return out, nil
}

// writeCases encodes cases to path, or to w when path is empty.
func writeCases(w io.Writer, path string, cases []Case) (err error) {
	if path != "" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", path, cerr)
			}
		}()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cases); err != nil {
		return fmt.Errorf("write cases: %w", err)
	}
	return nil
}
