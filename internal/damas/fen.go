package damas

import (
	"fmt"
	"strconv"
	"strings"
)

// Side letters reuse the man letter of the side to move.
var sideLetters = map[Player]string{White: "b", Black: "p"}

// Encode writes the position as eight '/'-separated rows, with runs of empty
// cells compressed to a digit, then the side to move. In the middle of a
// multi-capture turn a third field "x,y" names the piece that must go on.
func (g *Game) Encode() string {
	rows := make([]string, Size)
	for y := range g.Board.Cells {
		rows[y] = encodeRow(g.Board.Cells[y])
	}
	fields := []string{strings.Join(rows, "/"), sideLetters[g.Turn]}
	if at, ok := g.ContinuingFrom(); ok {
		fields = append(fields, fmt.Sprintf("%d,%d", at.X, at.Y))
	}
	return strings.Join(fields, " ")
}

func encodeRow(row [Size]Cell) string {
	var sb strings.Builder
	gap := 0
	flush := func() {
		if gap > 0 {
			sb.WriteString(strconv.Itoa(gap))
			gap = 0
		}
	}
	for _, cell := range row {
		pc, ok := cell.Piece()
		if !ok {
			gap++
			continue
		}
		flush()
		sb.WriteRune(pieceToLetter(pc))
	}
	flush()
	return sb.String()
}

// DecodePosition parses the output of Encode. '.' is accepted for a single
// empty cell as well as digits.
//
// A continuation field restores the multi-capture turn as the longest
// chains of that piece on the decoded board. Pieces captured earlier in the
// turn are gone from that board, so they no longer block.
func DecodePosition(enc string) (*Game, error) {
	parts := strings.Fields(enc)
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("%w: want board, side and optional continuation, got %q", ErrInvalidPosition, enc)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidPosition, len(rows))
	}
	var b Board
	for y, row := range rows {
		if err := decodeRow(&b.Cells[y], row); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidPosition, y, err)
		}
	}

	var turn Player
	switch parts[1] {
	case sideLetters[White]:
		turn = White
	case sideLetters[Black]:
		turn = Black
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidPosition, parts[1])
	}
	g := NewGameFromBoard(b, turn)
	if len(parts) == 3 {
		if err := g.resumeFrom(parts[2]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
		}
	}
	return g, nil
}

func decodeRow(dst *[Size]Cell, row string) error {
	x := 0
	for _, ch := range row {
		if x >= Size {
			return fmt.Errorf("more than %d cells", Size)
		}
		switch {
		case ch >= '1' && ch <= '8':
			x += int(ch - '0')
			continue
		case ch == '.':
			x++
			continue
		}
		pc, ok := letterToPiece[ch]
		if !ok {
			return fmt.Errorf("unknown piece letter %q", ch)
		}
		dst[x] = Occupied(pc)
		x++
	}
	if x != Size {
		return fmt.Errorf("%d cells", x)
	}
	return nil
}

func (g *Game) resumeFrom(field string) error {
	xs, ys, ok := strings.Cut(field, ",")
	if !ok {
		return fmt.Errorf("continuation %q", field)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	at := C(x, y)
	if errX != nil || errY != nil || !at.Valid() {
		return fmt.Errorf("continuation %q", field)
	}
	pc, ok := g.Board.PieceAt(at)
	if !ok || !belongsTo(pc, g.Turn) {
		return fmt.Errorf("no %s piece on %s", g.Turn, at)
	}
	chains := g.ChainsFrom(at)
	if len(chains) == 0 {
		return fmt.Errorf("piece on %s has nothing to capture", at)
	}
	g.pending = chains
	g.Hash ^= continueHashKey(at)
	return nil
}
