package damas

// chainSearch is a depth-first walk over capture sequences for one piece.
// board is a snapshot with the piece lifted off its origin; captured pieces
// stay on it so they keep blocking, and stack doubles as the captured set.
type chainSearch struct {
	board *Board
	piece Piece
	stack Chain
	found []Chain
}

func (s *chainSearch) walk(at Coord) {
	extended := false
	for _, mv := range immediateCaptures(s.board, at, s.piece, s.stack) {
		extended = true
		s.stack = append(s.stack, mv)
		s.walk(mv.To)
		s.stack = s.stack[:len(s.stack)-1]
	}
	if !extended && len(s.stack) > 0 {
		done := make(Chain, len(s.stack))
		copy(done, s.stack)
		s.found = append(s.found, done)
	}
}

// allChainsFrom returns every complete capture chain of the piece on origin,
// whatever its length. King landings branch, so equal-length alternatives
// ending on different squares are all kept.
func allChainsFrom(b *Board, origin Coord) []Chain {
	pc, ok := b.PieceAt(origin)
	if !ok {
		return nil
	}
	snapshot := *b
	snapshot.SetCell(origin, Empty)
	s := &chainSearch{board: &snapshot, piece: pc}
	s.walk(origin)
	return s.found
}

func longest(chains []Chain) []Chain {
	best := 0
	for _, ch := range chains {
		if len(ch) > best {
			best = len(ch)
		}
	}
	if best == 0 {
		return nil
	}
	out := make([]Chain, 0, len(chains))
	for _, ch := range chains {
		if len(ch) == best {
			out = append(out, ch)
		}
	}
	return out
}

// ChainsFrom returns the longest capture chains available to the piece on
// origin, ignoring what the rest of the side could capture.
func (g *Game) ChainsFrom(origin Coord) []Chain {
	return longest(allChainsFrom(&g.Board, origin))
}

// LegalChains returns the capture chains the side to move may play: only
// those of maximum length across the whole board. Empty when no capture
// exists. During a multi-capture turn it returns the remaining legs.
func (g *Game) LegalChains() []Chain {
	if g.pending != nil {
		return g.pending
	}
	var all []Chain
	for _, from := range g.Board.Pieces(g.Turn) {
		all = append(all, allChainsFrom(&g.Board, from)...)
	}
	return longest(all)
}

// LegalChainsAt filters LegalChains to those starting on c.
func (g *Game) LegalChainsAt(c Coord) []Chain {
	var out []Chain
	for _, ch := range g.LegalChains() {
		if ch.Origin() == c {
			out = append(out, ch)
		}
	}
	return out
}
