package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"damas/internal/damas"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "print a position with its legal moves",
		Flags: positionFlags(),
		Action: func(cCtx *cli.Context) error {
			g, err := loadGame(cCtx)
			if err != nil {
				return err
			}
			show(cCtx.App.Writer, g)
			return nil
		},
	}
}

func show(w io.Writer, g *damas.Game) {
	fmt.Fprint(w, g.Board.String())
	fmt.Fprintln(w, "Position:", g.Encode())
	fmt.Fprintf(w, "To move: %s (white %d, black %d)\n", g.Turn, g.Count(damas.White), g.Count(damas.Black))

	if chains := g.LegalChains(); len(chains) > 0 {
		fmt.Fprintf(w, "Captures are mandatory, %d chain(s) of length %d:\n", len(chains), len(chains[0]))
		for _, ch := range chains {
			fmt.Fprintln(w, " ", ch)
		}
		return
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		fmt.Fprintln(w, "No legal moves.")
		return
	}
	fmt.Fprintf(w, "%d move(s):\n", len(moves))
	for _, mv := range moves {
		fmt.Fprintln(w, " ", mv)
	}
}
