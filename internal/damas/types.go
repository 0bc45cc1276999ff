package damas

import (
	"fmt"
	"strings"
)

type Player int8

const (
	White Player = iota
	Black
)

func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Player(%d)", int8(p))
}

// Piece is one of the four piece kinds. The zero value is not a piece.
type Piece int8

const (
	NoPiece Piece = iota
	WhiteMan
	BlackMan
	WhiteKing
	BlackKing
)

func (p Piece) IsWhite() bool { return p == WhiteMan || p == WhiteKing }
func (p Piece) IsBlack() bool { return p == BlackMan || p == BlackKing }
func (p Piece) IsKing() bool  { return p == WhiteKing || p == BlackKing }

func (p Piece) Owner() Player {
	if p.IsBlack() {
		return Black
	}
	return White
}

// Promote turns a man into the king of the same color. Kings stay kings.
func (p Piece) Promote() Piece {
	switch p {
	case WhiteMan, WhiteKing:
		return WhiteKing
	case BlackMan, BlackKing:
		return BlackKing
	}
	return p
}

func (p Piece) String() string {
	switch p {
	case WhiteMan:
		return "white man"
	case BlackMan:
		return "black man"
	case WhiteKing:
		return "white king"
	case BlackKing:
		return "black king"
	}
	return "none"
}

// belongsTo reports whether p is moved by the side owning the turn.
func belongsTo(p Piece, turn Player) bool {
	switch turn {
	case White:
		return p.IsWhite()
	case Black:
		return p.IsBlack()
	}
	return false
}

// Cell is a board square: Empty, or occupied by exactly one piece.
type Cell int8

const Empty Cell = 0

func Occupied(p Piece) Cell { return Cell(p) }

func (c Cell) IsEmpty() bool { return c == Empty }

func (c Cell) Piece() (Piece, bool) {
	if c == Empty {
		return NoPiece, false
	}
	return Piece(c), true
}

type MoveKind int8

const (
	Relocate MoveKind = iota
	Capture
)

// Move is either a relocation or a single capturing jump. Captured is only
// meaningful for Capture moves.
type Move struct {
	Kind     MoveKind `json:"kind"`
	From     Coord    `json:"from"`
	To       Coord    `json:"to"`
	Captured Coord    `json:"captured"`
}

func RelocateMove(from, to Coord) Move {
	return Move{Kind: Relocate, From: from, To: to}
}

func CaptureMove(from, captured, to Coord) Move {
	return Move{Kind: Capture, From: from, To: to, Captured: captured}
}

func (m Move) IsCapture() bool { return m.Kind == Capture }

func (m Move) Matches(from, to Coord) bool {
	return m.From == from && m.To == to
}

func (m Move) String() string {
	switch m.Kind {
	case Relocate:
		return fmt.Sprintf("%v -> %v", m.From, m.To)
	case Capture:
		return fmt.Sprintf("%v x%v -> %v", m.From, m.Captured, m.To)
	}
	panic(fmt.Sprintf("unknown move kind %d", m.Kind))
}

// Chain is a capture sequence played as one turn. Each move starts where the
// previous one landed and no square is captured twice.
type Chain []Move

func (c Chain) Origin() Coord      { return c[0].From }
func (c Chain) Destination() Coord { return c[len(c)-1].To }

func (c Chain) Captured() []Coord {
	out := make([]Coord, 0, len(c))
	for _, m := range c {
		if m.IsCapture() {
			out = append(out, m.Captured)
		}
	}
	return out
}

func (c Chain) captures(sq Coord) bool {
	for _, m := range c {
		if m.IsCapture() && m.Captured == sq {
			return true
		}
	}
	return false
}

func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, m := range c {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

type Outcome int8

const (
	Rejected Outcome = iota // no matching legal move; nothing changed
	Passed                  // move applied, turn passed to the opponent
	Continue                // capture applied, same player must keep capturing
	GameOver                // capture left the opponent without pieces
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Passed:
		return "passed"
	case Continue:
		return "continue"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("Outcome(%d)", int8(o))
}

// Result describes what Play did. Winner is set only for GameOver.
type Result struct {
	Outcome  Outcome
	Move     Move
	Promoted bool
	Winner   Player
}
