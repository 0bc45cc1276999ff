package damas

import "sync"

// zobristKeys holds one key per (owner, man/king, square), one for Black to
// move and one per square a multi-capture turn is continuing from.
type zobristKeys struct {
	pieces [2][2][Size * Size]uint64
	side   uint64
	resume [Size * Size]uint64
}

var (
	zobristOnce sync.Once
	zobrist     zobristKeys
)

// keyStream is xorshift64*; the seed is fixed so hashes are stable across runs.
type keyStream uint64

func (s *keyStream) next() uint64 {
	x := uint64(*s)
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	*s = keyStream(x)
	return x * 0x2545F4914F6CDD1D
}

func keys() *zobristKeys {
	zobristOnce.Do(func() {
		s := keyStream(0x6D61_7321_6461_6D61)
		for owner := range zobrist.pieces {
			for rank := range zobrist.pieces[owner] {
				for sq := range zobrist.pieces[owner][rank] {
					zobrist.pieces[owner][rank][sq] = s.next()
				}
			}
		}
		zobrist.side = s.next()
		for sq := range zobrist.resume {
			zobrist.resume[sq] = s.next()
		}
	})
	return &zobrist
}

func square(c Coord) int { return c.Y*Size + c.X }

func pieceHashKey(pc Piece, c Coord) uint64 {
	if pc == NoPiece || !c.Valid() {
		return 0
	}
	rank := 0
	if pc.IsKing() {
		rank = 1
	}
	return keys().pieces[pc.Owner()][rank][square(c)]
}

func sideHashKey() uint64 { return keys().side }

func continueHashKey(c Coord) uint64 {
	if !c.Valid() {
		return 0
	}
	return keys().resume[square(c)]
}

// CalculateHash recomputes the key of the board, the side to move and, in
// the middle of a multi-capture turn, the square the turn continues from.
// Play keeps Game.Hash equal to it incrementally.
func (g *Game) CalculateHash() uint64 {
	var h uint64
	for y, row := range g.Board.Cells {
		for x, cell := range row {
			if pc, ok := cell.Piece(); ok {
				h ^= pieceHashKey(pc, Coord{x, y})
			}
		}
	}
	if g.Turn == Black {
		h ^= sideHashKey()
	}
	if at, ok := g.ContinuingFrom(); ok {
		h ^= continueHashKey(at)
	}
	return h
}
