package damas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A king that can take three pieces in a row, and a man elsewhere that can
// only take two.
const threeChainLayout = `
	.......b
	........
	.....p..
	........
	...p....
	........
	.p...p..
	B.....b.`

func TestLongestChainWins(t *testing.T) {
	g := mustGame(t, threeChainLayout)

	manChains := g.ChainsFrom(C(6, 7))
	require.Equal(t, []Chain{{
		CaptureMove(C(6, 7), C(5, 6), C(4, 5)),
		CaptureMove(C(4, 5), C(3, 4), C(2, 3)),
	}}, manChains)

	want := Chain{
		CaptureMove(C(0, 7), C(1, 6), C(2, 5)),
		CaptureMove(C(2, 5), C(3, 4), C(4, 3)),
		CaptureMove(C(4, 3), C(5, 2), C(6, 1)),
	}
	require.Equal(t, []Chain{want}, g.LegalChains())
	require.Equal(t, []Chain{want}, g.LegalChainsAt(C(0, 7)))
	require.Empty(t, g.LegalChainsAt(C(6, 7)))
	require.Equal(t, []Move{want[0]}, g.LegalMoves())
}

func TestChainSearchLeavesBoardUntouched(t *testing.T) {
	g := mustGame(t, threeChainLayout)
	before := g.Board
	_ = g.LegalChains()
	require.Equal(t, before, g.Board)
}

func TestChainNeverCapturesTwice(t *testing.T) {
	// The man could bounce back over the same piece if captured pieces were
	// eligible again.
	g := mustGame(t, `
		........
		........
		........
		........
		...p....
		..b.....
		........
		.......p`)
	chains := g.LegalChains()
	require.Len(t, chains, 1)
	require.Len(t, chains[0], 1)

	for _, ch := range chains {
		seen := map[Coord]bool{}
		for _, sq := range ch.Captured() {
			require.False(t, seen[sq], "square %v captured twice in %v", sq, ch)
			seen[sq] = true
		}
	}
}

func TestCapturedPiecesStillBlock(t *testing.T) {
	// Landing on (4,3) after taking (3,4), the way back up the diagonal to
	// (1,6) is blocked by the piece just taken, which stays on the board
	// until the turn is played.
	g := mustGame(t, `
		........
		........
		.....b..
		........
		...p....
		..B.....
		.p......
		........`)
	require.ElementsMatch(t, []Chain{
		{CaptureMove(C(2, 5), C(3, 4), C(4, 3))},
		{CaptureMove(C(2, 5), C(1, 6), C(0, 7))},
	}, g.LegalChains())
}

func TestKingChainBranchesPerLanding(t *testing.T) {
	g := mustGame(t, `
		........
		........
		........
		........
		........
		..p.....
		........
		B.......`)
	chains := g.LegalChains()
	require.Len(t, chains, 5)
	dests := map[Coord]bool{}
	for _, ch := range chains {
		require.Len(t, ch, 1)
		dests[ch.Destination()] = true
	}
	require.Len(t, dests, 5)
}

func TestChainsFromEmptySquare(t *testing.T) {
	g := NewGame()
	require.Empty(t, g.ChainsFrom(C(3, 3)))
	require.Empty(t, g.ChainsFrom(C(2, 5)))
}
