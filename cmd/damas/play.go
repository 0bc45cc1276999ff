package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"damas/internal/damas"
	"damas/internal/session"
)

var errQuit = errors.New("quit")

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play a game on the terminal, moves are entered as \"x y\"",
		Flags: positionFlags(),
		Action: func(cCtx *cli.Context) error {
			g, err := loadGame(cCtx)
			if err != nil {
				return err
			}
			m := session.NewManager()
			s, err := m.CreateFromPosition(g.Encode())
			if err != nil {
				return err
			}
			return play(cCtx.App.Reader, cCtx.App.Writer, m, s.ID)
		},
	}
}

func play(in io.Reader, out io.Writer, m *session.Manager, id string) error {
	sc := bufio.NewScanner(in)
	ask := func(prompt string) (damas.Coord, error) {
		for {
			fmt.Fprint(out, prompt)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return damas.Coord{}, err
				}
				return damas.Coord{}, errQuit
			}
			line := strings.TrimSpace(sc.Text())
			if line == "q" || line == "quit" {
				return damas.Coord{}, errQuit
			}
			c, err := parseCoord(line)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			return c, nil
		}
	}

	for {
		snap, err := m.Snapshot(id)
		if err != nil {
			return err
		}
		fmt.Fprint(out, snap.Board)
		if snap.Winner != nil {
			fmt.Fprintf(out, "%s wins!\n", *snap.Winner)
			return nil
		}
		if snap.Stalemated {
			fmt.Fprintf(out, "%s has no legal moves.\n", snap.Turn)
			return nil
		}

		from, err := ask(fmt.Sprintf("%s, piece to move (x y): ", snap.Turn))
		if err != nil {
			return quitIsNil(err)
		}
		dests, err := m.Destinations(id, from)
		if err != nil {
			return err
		}
		if len(dests) == 0 {
			fmt.Fprintf(out, "no legal moves from %s\n", from)
			continue
		}
		fmt.Fprintf(out, "destinations: %v\n", dests)

		to, err := ask("move to (x y): ")
		if err != nil {
			return quitIsNil(err)
		}
		res, err := m.Play(id, from, to)
		if err != nil {
			return err
		}
		switch res.Outcome {
		case damas.Rejected:
			fmt.Fprintf(out, "illegal move %s -> %s\n", from, to)
		case damas.Continue:
			fmt.Fprintf(out, "captured %s, keep capturing with %s\n", res.Move.Captured, res.Move.To)
		case damas.Passed:
			if res.Promoted {
				fmt.Fprintf(out, "crowned at %s\n", res.Move.To)
			}
		}
	}
}

func quitIsNil(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// parseCoord reads "x y" or "x,y".
func parseCoord(s string) (damas.Coord, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	if len(fields) != 2 {
		return damas.Coord{}, fmt.Errorf("want two numbers, got %q", s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return damas.Coord{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return damas.Coord{}, fmt.Errorf("bad y: %w", err)
	}
	c := damas.C(x, y)
	if !c.Valid() {
		return damas.Coord{}, fmt.Errorf("%s is off the board", c)
	}
	return c, nil
}
