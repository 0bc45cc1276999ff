package perft

import (
	"math/rand"

	"damas/internal/damas"
)

// Turn is one whole turn of a recorded playout.
type Turn struct {
	Player   damas.Player  `json:"player"`
	Position string        `json:"position"`
	Options  int           `json:"options"`
	Chain    damas.Chain   `json:"chain"`
	Outcome  damas.Outcome `json:"outcome"`
	Promoted bool          `json:"promoted"`
}

// Playout plays uniformly random turns on a copy of g until the game ends,
// the side to move is stuck, or maxTurns turns were played.
func Playout(g *damas.Game, maxTurns int, rng *rand.Rand) []Turn {
	g = g.Clone()
	var out []Turn
	for len(out) < maxTurns {
		turns := Turns(g)
		if len(turns) == 0 {
			break
		}
		ch := turns[rng.Intn(len(turns))]
		t := Turn{Player: g.Turn, Position: g.Encode(), Options: len(turns), Chain: ch}
		l, err := playTurn(g, ch)
		if err != nil {
			panic(err)
		}
		t.Outcome = l.result.Outcome
		t.Promoted = l.promoted
		out = append(out, t)
		if t.Outcome == damas.GameOver {
			break
		}
	}
	return out
}
