package damas

import (
	"fmt"
	"strings"
)

// Board is indexed [row][column]. Accessors do not bounds-check beyond what
// the array does: an off-board Coord panics.
type Board struct {
	Cells [Size][Size]Cell
}

func (b *Board) CellAt(c Coord) Cell { return b.Cells[c.Y][c.X] }

func (b *Board) PieceAt(c Coord) (Piece, bool) { return b.Cells[c.Y][c.X].Piece() }

func (b *Board) SetCell(c Coord, cell Cell) { b.Cells[c.Y][c.X] = cell }

func (b *Board) IsEmpty(c Coord) bool { return b.Cells[c.Y][c.X].IsEmpty() }

// Pieces lists the squares holding pieces of the given player, row by row.
func (b *Board) Pieces(owner Player) []Coord {
	var out []Coord
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if pc, ok := b.Cells[y][x].Piece(); ok && belongsTo(pc, owner) {
				out = append(out, Coord{x, y})
			}
		}
	}
	return out
}

func (b *Board) Count(owner Player) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if pc, ok := b.Cells[y][x].Piece(); ok && belongsTo(pc, owner) {
				n++
			}
		}
	}
	return n
}

// Layout letters: b (branca) for white, p (preta) for black, uppercase for
// kings, '.' empty.
var letterToPiece = map[rune]Piece{
	'b': WhiteMan,
	'p': BlackMan,
	'B': WhiteKing,
	'P': BlackKing,
}

func pieceToLetter(p Piece) rune {
	switch p {
	case WhiteMan:
		return 'b'
	case BlackMan:
		return 'p'
	case WhiteKing:
		return 'B'
	case BlackKing:
		return 'P'
	}
	return '.'
}

// StandardLayout is the opening position. Black sits on rows 0-2 and moves
// down the board, White sits on rows 5-7 and moves up.
const StandardLayout = `p.p.p.p.
.p.p.p.p
p.p.p.p.
........
........
b.b.b.b.
.b.b.b.b
b.b.b.b.`

// ParseLayout reads eight rows of eight layout letters. Blank lines and
// surrounding whitespace are ignored.
func ParseLayout(layout string) (Board, error) {
	var b Board
	rows := make([]string, 0, Size)
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: %d rows", ErrInvalidLayout, len(rows))
	}
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrInvalidLayout, y, len(cells))
		}
		for x, ch := range cells {
			cell, err := cellFromLetter(ch)
			if err != nil {
				return Board{}, fmt.Errorf("%w at (%d, %d)", err, x, y)
			}
			b.Cells[y][x] = cell
		}
	}
	return b, nil
}

// BoardFromGrid builds a board from a fixed grid of layout letters.
func BoardFromGrid(grid [Size][Size]rune) (Board, error) {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			cell, err := cellFromLetter(grid[y][x])
			if err != nil {
				return Board{}, fmt.Errorf("%w at (%d, %d)", err, x, y)
			}
			b.Cells[y][x] = cell
		}
	}
	return b, nil
}

func cellFromLetter(ch rune) (Cell, error) {
	if ch == '.' {
		return Empty, nil
	}
	pc, ok := letterToPiece[ch]
	if !ok {
		return Empty, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidLayout, ch)
	}
	return Occupied(pc), nil
}

// Layout is the inverse of ParseLayout.
func (b *Board) Layout() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Size; x++ {
			pc, _ := b.Cells[y][x].Piece()
			sb.WriteRune(pieceToLetter(pc))
		}
	}
	return sb.String()
}

// Display glyphs, one per piece kind.
const (
	GlyphEmpty     = '.'
	GlyphWhiteMan  = 'x'
	GlyphBlackMan  = 'o'
	GlyphWhiteKing = 'X'
	GlyphBlackKing = 'O'
)

func glyph(c Cell) rune {
	pc, ok := c.Piece()
	if !ok {
		return GlyphEmpty
	}
	switch pc {
	case WhiteMan:
		return GlyphWhiteMan
	case BlackMan:
		return GlyphBlackMan
	case WhiteKing:
		return GlyphWhiteKing
	case BlackKing:
		return GlyphBlackKing
	}
	panic(fmt.Sprintf("unknown piece %d", pc))
}

// Render maps every cell to its display glyph.
func (b *Board) Render() [Size][Size]rune {
	var out [Size][Size]rune
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			out[y][x] = glyph(b.Cells[y][x])
		}
	}
	return out
}

// String draws the glyph grid with column and row labels.
func (b *Board) String() string {
	grid := b.Render()
	var sb strings.Builder
	sb.WriteString("   0  1  2  3  4  5  6  7\n")
	for y := 0; y < Size; y++ {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < Size; x++ {
			sb.WriteByte(' ')
			sb.WriteRune(grid[y][x])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
