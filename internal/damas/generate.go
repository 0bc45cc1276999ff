package damas

// simpleMoves lists non-capturing moves for pc standing on from.
func simpleMoves(b *Board, from Coord, pc Piece) []Move {
	if pc.IsKing() {
		return kingSimpleMoves(b, from)
	}
	return manSimpleMoves(b, from, pc)
}

func manSimpleMoves(b *Board, from Coord, pc Piece) []Move {
	var targets []Coord
	switch pc {
	case WhiteMan:
		targets = from.ForwardDiagonals()
	case BlackMan:
		targets = from.BackwardDiagonals()
	}
	var moves []Move
	for _, to := range targets {
		if b.IsEmpty(to) {
			moves = append(moves, RelocateMove(from, to))
		}
	}
	return moves
}

func kingSimpleMoves(b *Board, from Coord) []Move {
	var moves []Move
	for _, dir := range kingDirs {
		for _, to := range from.Ray(dir) {
			if !b.IsEmpty(to) {
				break
			}
			moves = append(moves, RelocateMove(from, to))
		}
	}
	return moves
}

// immediateCaptures lists single jumps for pc standing on from. Squares in
// taken were already captured earlier in the chain: they still block but
// cannot be jumped again.
func immediateCaptures(b *Board, from Coord, pc Piece, taken Chain) []Move {
	if pc.IsKing() {
		return kingCaptures(b, from, pc, taken)
	}
	return manCaptures(b, from, pc, taken)
}

func manCaptures(b *Board, from Coord, pc Piece, taken Chain) []Move {
	var moves []Move
	for _, victim := range from.CapturableDiagonals() {
		target, ok := b.PieceAt(victim)
		if !ok || belongsTo(target, pc.Owner()) || taken.captures(victim) {
			continue
		}
		landing := from.Add(from.Distance(victim).Times(2))
		if landing.Valid() && b.IsEmpty(landing) {
			moves = append(moves, CaptureMove(from, victim, landing))
		}
	}
	return moves
}

func kingCaptures(b *Board, from Coord, pc Piece, taken Chain) []Move {
	var moves []Move
	for _, dir := range kingDirs {
		victim := from.Add(dir)
		for victim.Valid() && b.IsEmpty(victim) {
			victim = victim.Add(dir)
		}
		if !victim.Valid() {
			continue
		}
		target, _ := b.PieceAt(victim)
		if belongsTo(target, pc.Owner()) || taken.captures(victim) {
			continue
		}
		// every empty square behind the victim is a separate landing
		step := from.Distance(victim).Normal()
		for landing := victim.Add(step); landing.Valid() && b.IsEmpty(landing); landing = landing.Add(step) {
			moves = append(moves, CaptureMove(from, victim, landing))
		}
	}
	return moves
}

// MovesAt filters LegalMoves to the piece on c, so a capture elsewhere or a
// longer chain elsewhere leaves it empty.
func (g *Game) MovesAt(c Coord) []Move {
	var out []Move
	for _, mv := range g.LegalMoves() {
		if mv.From == c {
			out = append(out, mv)
		}
	}
	return out
}

// LegalMoves returns the moves the side to move may submit next: the first
// legs of the longest capture chains, or every relocation when no capture
// exists anywhere.
func (g *Game) LegalMoves() []Move {
	if g.pending != nil {
		return firstLegs(g.pending, nil)
	}
	if chains := g.LegalChains(); len(chains) > 0 {
		return firstLegs(chains, nil)
	}
	return g.relocations()
}

// Destinations lists where the piece on c may legally go next.
func (g *Game) Destinations(c Coord) []Coord {
	moves := g.MovesAt(c)
	out := make([]Coord, 0, len(moves))
	for _, mv := range moves {
		out = append(out, mv.To)
	}
	return out
}

func (g *Game) relocations() []Move {
	var moves []Move
	for _, from := range g.Board.Pieces(g.Turn) {
		pc, _ := g.Board.PieceAt(from)
		moves = append(moves, simpleMoves(&g.Board, from, pc)...)
	}
	return moves
}

// firstLegs collects the distinct first moves of chains, optionally only
// those starting on origin.
func firstLegs(chains []Chain, origin *Coord) []Move {
	var out []Move
	seen := make(map[Move]bool, len(chains))
	for _, ch := range chains {
		mv := ch[0]
		if origin != nil && mv.From != *origin {
			continue
		}
		if seen[mv] {
			continue
		}
		seen[mv] = true
		out = append(out, mv)
	}
	return out
}
