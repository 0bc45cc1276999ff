package damas

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayoutRoundTrip(t *testing.T) {
	b, err := ParseLayout(StandardLayout)
	require.NoError(t, err)
	require.Equal(t, StandardLayout, b.Layout())
	require.Equal(t, 12, b.Count(White))
	require.Equal(t, 12, b.Count(Black))

	pc, ok := b.PieceAt(C(0, 0))
	require.True(t, ok)
	require.Equal(t, BlackMan, pc)
	pc, ok = b.PieceAt(C(1, 6))
	require.True(t, ok)
	require.Equal(t, WhiteMan, pc)
	require.True(t, b.IsEmpty(C(1, 0)))
}

func TestParseLayoutRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"unknown letter", strings.Replace(StandardLayout, "p.p.p.p.", "p.p.q.p.", 1)},
		{"short row", strings.Replace(StandardLayout, "p.p.p.p.", "p.p.p.p", 1)},
		{"missing row", StandardLayout[:strings.LastIndex(StandardLayout, "\n")]},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromLayout(tt.layout)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidLayout))
			require.Nil(t, g)
		})
	}
}

func TestBoardFromGrid(t *testing.T) {
	var grid [Size][Size]rune
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	grid[3][4] = 'P'
	grid[6][1] = 'b'
	b, err := BoardFromGrid(grid)
	require.NoError(t, err)
	pc, _ := b.PieceAt(C(4, 3))
	require.Equal(t, BlackKing, pc)
	pc, _ = b.PieceAt(C(1, 6))
	require.Equal(t, WhiteMan, pc)

	grid[0][0] = '?'
	_, err = BoardFromGrid(grid)
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestRender(t *testing.T) {
	b, err := ParseLayout(`
		P.......
		........
		........
		...p....
		........
		........
		......b.
		.......B`)
	require.NoError(t, err)
	grid := b.Render()
	require.Equal(t, GlyphBlackKing, grid[0][0])
	require.Equal(t, GlyphBlackMan, grid[3][3])
	require.Equal(t, GlyphWhiteMan, grid[6][6])
	require.Equal(t, GlyphWhiteKing, grid[7][7])
	require.Equal(t, GlyphEmpty, grid[0][1])

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, Size+1)
	require.Equal(t, "   0  1  2  3  4  5  6  7", lines[0])
	require.Equal(t, "0  O  .  .  .  .  .  .  . ", lines[1])
}

func TestPiecePredicates(t *testing.T) {
	require.True(t, WhiteMan.IsWhite())
	require.True(t, WhiteKing.IsWhite())
	require.True(t, BlackKing.IsBlack())
	require.False(t, BlackMan.IsKing())
	require.Equal(t, WhiteKing, WhiteMan.Promote())
	require.Equal(t, BlackKing, BlackMan.Promote())
	require.Equal(t, BlackKing, BlackKing.Promote())
	require.Equal(t, Black, BlackMan.Owner())
	require.True(t, belongsTo(WhiteKing, White))
	require.False(t, belongsTo(WhiteKing, Black))
	require.False(t, belongsTo(NoPiece, White))
}

// A small endgame grid in the branca/preta letter convention.
var endgameGrid = [Size][Size]rune{
	{'p', '.', '.', '.', '.', '.', '.', '.'},
	{'.', '.', '.', '.', '.', '.', '.', '.'},
	{'.', '.', '.', '.', '.', '.', '.', '.'},
	{'.', '.', '.', '.', '.', '.', 'p', '.'},
	{'.', '.', '.', '.', '.', '.', '.', '.'},
	{'.', '.', '.', '.', 'p', '.', '.', '.'},
	{'.', '.', '.', 'b', '.', '.', 'p', '.'},
	{'b', '.', '.', '.', '.', '.', '.', 'b'},
}

func TestBrancaPretaLetters(t *testing.T) {
	g, err := NewGameFromGrid(endgameGrid)
	require.NoError(t, err)
	require.Equal(t, White, g.Turn)
	require.Equal(t, 3, g.Count(White))
	require.Equal(t, 4, g.Count(Black))
	for _, sq := range []Coord{C(3, 6), C(0, 7), C(7, 7)} {
		pc, ok := g.Board.PieceAt(sq)
		require.True(t, ok)
		require.Equal(t, WhiteMan, pc, "%v", sq)
	}
	pc, _ := g.Board.PieceAt(C(0, 0))
	require.Equal(t, BlackMan, pc)

	var rows []string
	for _, row := range endgameGrid {
		rows = append(rows, string(row[:]))
	}
	fromLayout, err := NewGameFromLayout(strings.Join(rows, "\n"))
	require.NoError(t, err)
	require.Equal(t, g.Board, fromLayout.Board)
	require.Equal(t, strings.Join(rows, "\n"), g.Board.Layout())

	kings, err := ParseLayout("B.......\n........\n........\n........\n........\n........\n........\n.......P")
	require.NoError(t, err)
	pc, _ = kings.PieceAt(C(0, 0))
	require.Equal(t, WhiteKing, pc)
	pc, _ = kings.PieceAt(C(7, 7))
	require.Equal(t, BlackKing, pc)

	_, err = ParseLayout(strings.Replace(StandardLayout, "p", "w", 1))
	require.ErrorIs(t, err, ErrInvalidLayout)
}
