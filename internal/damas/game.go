package damas

import "fmt"

// Game owns one board and whose turn it is. It is not safe for concurrent
// use; hosts serialise calls per game.
type Game struct {
	Board Board
	Turn  Player
	Hash  uint64

	// remaining legs of the chains still open after a Continue outcome
	pending []Chain
}

func NewGame() *Game {
	b, err := ParseLayout(StandardLayout)
	if err != nil {
		panic(fmt.Sprintf("standard layout: %v", err))
	}
	return NewGameFromBoard(b, White)
}

// NewGameFromLayout builds a game from an eight-row layout with White to
// move. A bad layout yields no game.
func NewGameFromLayout(layout string) (*Game, error) {
	b, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(b, White), nil
}

// NewGameFromGrid builds a game from a fixed grid of layout letters with
// White to move.
func NewGameFromGrid(grid [Size][Size]rune) (*Game, error) {
	b, err := BoardFromGrid(grid)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(b, White), nil
}

func NewGameFromBoard(b Board, turn Player) *Game {
	g := &Game{Board: b, Turn: turn}
	g.Hash = g.CalculateHash()
	return g
}

func (g *Game) Clone() *Game {
	ng := *g
	if g.pending != nil {
		ng.pending = make([]Chain, len(g.pending))
		copy(ng.pending, g.pending)
	}
	return &ng
}

// InSequence reports whether the side to move is in the middle of a
// multi-capture turn.
func (g *Game) InSequence() bool { return g.pending != nil }

// ContinuingFrom returns the square of the piece that must keep capturing.
func (g *Game) ContinuingFrom() (Coord, bool) {
	if g.pending == nil {
		return Coord{}, false
	}
	return g.pending[0][0].From, true
}

func (g *Game) Count(p Player) int { return g.Board.Count(p) }

// Stalemated reports that the side to move has no legal move. The game does
// not end on it; only running out of pieces does.
func (g *Game) Stalemated() bool { return len(g.LegalMoves()) == 0 }

// Play submits one move (one leg of a chain) for the side to move.
func (g *Game) Play(from, to Coord) Result {
	if chains := g.LegalChains(); len(chains) > 0 {
		var (
			leg   Move
			found bool
			rest  []Chain
		)
		for _, ch := range chains {
			if !ch[0].Matches(from, to) {
				continue
			}
			leg, found = ch[0], true
			if len(ch) > 1 {
				rest = append(rest, ch[1:])
			}
		}
		if !found {
			return Result{Outcome: Rejected}
		}
		return g.commit(leg, rest)
	}
	for _, mv := range g.relocations() {
		if mv.Matches(from, to) {
			return g.commit(mv, nil)
		}
	}
	return Result{Outcome: Rejected}
}

// PlayChain plays every leg of ch in order and returns the last result, or
// the first rejection.
func (g *Game) PlayChain(ch Chain) Result {
	var res Result
	for _, mv := range ch {
		res = g.Play(mv.From, mv.To)
		if res.Outcome == Rejected {
			return res
		}
	}
	return res
}

func (g *Game) commit(mv Move, rest []Chain) Result {
	pc, ok := g.Board.PieceAt(mv.From)
	if !ok {
		panic(fmt.Sprintf("commit %v: empty origin", mv))
	}
	res := Result{Move: mv}

	h := g.Hash
	if g.pending != nil {
		h ^= continueHashKey(mv.From)
	}
	g.Board.SetCell(mv.From, Empty)
	g.Board.SetCell(mv.To, Occupied(pc))
	h ^= pieceHashKey(pc, mv.From)
	h ^= pieceHashKey(pc, mv.To)

	switch mv.Kind {
	case Relocate:
	case Capture:
		victim, _ := g.Board.PieceAt(mv.Captured)
		g.Board.SetCell(mv.Captured, Empty)
		h ^= pieceHashKey(victim, mv.Captured)
	default:
		panic(fmt.Sprintf("unknown move kind %d", mv.Kind))
	}

	if !pc.IsKing() && mv.To.Y == promotionRow(pc.Owner()) {
		king := pc.Promote()
		g.Board.SetCell(mv.To, Occupied(king))
		h ^= pieceHashKey(pc, mv.To)
		h ^= pieceHashKey(king, mv.To)
		res.Promoted = true
	}
	g.Hash = h

	if mv.IsCapture() && g.Board.Count(g.Turn.Opponent()) == 0 {
		g.pending = nil
		res.Outcome = GameOver
		res.Winner = g.Turn
		return res
	}
	if mv.IsCapture() && len(rest) > 0 {
		g.pending = rest
		g.Hash ^= continueHashKey(mv.To)
		res.Outcome = Continue
		return res
	}
	g.pending = nil
	g.passTurn()
	res.Outcome = Passed
	return res
}

func (g *Game) passTurn() {
	g.Turn = g.Turn.Opponent()
	g.Hash ^= sideHashKey()
}

// promotionRow is the far row for the given side.
func promotionRow(p Player) int {
	if p == White {
		return 0
	}
	return Size - 1
}

func (g *Game) String() string {
	return g.Board.String()
}
