// Package perft enumerates game trees turn by turn. A turn is a whole
// capture chain or a single relocation.
package perft

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"damas/internal/damas"
)

var ErrNegativeDepth = errors.New("negative depth")

// Stats counts the leaves of a tree. Captures, Promotions and Wins
// classify the turn that reached each leaf.
type Stats struct {
	Nodes      uint64 `json:"nodes"`
	Captures   uint64 `json:"captures"`
	Promotions uint64 `json:"promotions"`
	Wins       uint64 `json:"wins"`
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.Promotions += o.Promotions
	s.Wins += o.Wins
}

// Split is the subtree below one root turn.
type Split struct {
	Turn  damas.Chain `json:"turn"`
	Stats Stats       `json:"stats"`
}

// Turns lists the whole turns open to the side to move: the longest capture
// chains if any capture exists, otherwise one single-move chain per
// relocation. A side without pieces has no turns.
func Turns(g *damas.Game) []damas.Chain {
	if g.Count(g.Turn) == 0 || g.Count(g.Turn.Opponent()) == 0 {
		return nil
	}
	if chains := g.LegalChains(); len(chains) > 0 {
		return chains
	}
	moves := g.LegalMoves()
	out := make([]damas.Chain, len(moves))
	for i, mv := range moves {
		out[i] = damas.Chain{mv}
	}
	return out
}

type leaf struct {
	promoted bool
	result   damas.Result
}

// playTurn plays every leg of ch on g.
func playTurn(g *damas.Game, ch damas.Chain) (leaf, error) {
	var l leaf
	for _, mv := range ch {
		res := g.Play(mv.From, mv.To)
		if res.Outcome == damas.Rejected {
			return l, fmt.Errorf("turn %v rejected at %v", ch, mv)
		}
		l.promoted = l.promoted || res.Promoted
		l.result = res
	}
	return l, nil
}

func (l leaf) stats() Stats {
	s := Stats{Nodes: 1}
	if l.result.Move.IsCapture() {
		s.Captures = 1
	}
	if l.promoted {
		s.Promotions = 1
	}
	if l.result.Outcome == damas.GameOver {
		s.Wins = 1
	}
	return s
}

type counter struct {
	ctx   context.Context
	table *table
}

func (c *counter) count(g *damas.Game, depth int) (Stats, error) {
	if err := c.ctx.Err(); err != nil {
		return Stats{}, err
	}
	if s, ok := c.table.load(g.Hash, depth); ok {
		return s, nil
	}
	var total Stats
	for _, ch := range Turns(g) {
		child := g.Clone()
		l, err := playTurn(child, ch)
		if err != nil {
			return Stats{}, err
		}
		if depth == 1 {
			total.Add(l.stats())
			continue
		}
		s, err := c.count(child, depth-1)
		if err != nil {
			return Stats{}, err
		}
		total.Add(s)
	}
	c.table.store(g.Hash, depth, total)
	return total, nil
}

// Divide counts the subtree below each root turn, spreading root turns over
// at most workers goroutines. workers <= 0 means GOMAXPROCS.
func Divide(ctx context.Context, g *damas.Game, depth, workers int) ([]Split, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	turns := Turns(g)
	splits := make([]Split, len(turns))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	c := &counter{ctx: egCtx, table: newTable()}

	for i, ch := range turns {
		i, ch := i, ch
		eg.Go(func() error {
			child := g.Clone()
			l, err := playTurn(child, ch)
			if err != nil {
				return err
			}
			s := l.stats()
			if depth > 1 {
				if s, err = c.count(child, depth-1); err != nil {
					return err
				}
			}
			splits[i] = Split{Turn: ch, Stats: s}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return splits, nil
}

// Count returns the leaf statistics of the tree depth turns below g.
func Count(ctx context.Context, g *damas.Game, depth, workers int) (Stats, error) {
	if depth == 0 {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		return Stats{Nodes: 1}, nil
	}
	splits, err := Divide(ctx, g, depth, workers)
	if err != nil {
		return Stats{}, err
	}
	var total Stats
	for _, sp := range splits {
		total.Add(sp.Stats)
	}
	log.Debug().Int("depth", depth).Uint64("nodes", total.Nodes).Int("roots", len(splits)).Msg("perft done")
	return total, nil
}
