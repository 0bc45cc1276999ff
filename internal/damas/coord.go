package damas

import "fmt"

const Size = 8

// Coord is a (column, row) pair. Off-board values are representable; check
// Valid before indexing a Board with one.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func C(x, y int) Coord { return Coord{X: x, Y: y} }

func (c Coord) Valid() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }
func (c Coord) Times(k int) Coord { return Coord{c.X * k, c.Y * k} }

// Distance is the vector from c to o.
func (c Coord) Distance(o Coord) Coord { return o.Sub(c) }

// Normal reduces a distance to its unit step along each axis.
func (c Coord) Normal() Coord { return Coord{sign(c.X), sign(c.Y)} }

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// diagonal directions a king walks
var kingDirs = [4]Coord{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}

// ForwardDiagonals returns the neighbours one row up (towards row 0).
func (c Coord) ForwardDiagonals() []Coord {
	return c.rowNeighbours(c.Y - 1)
}

// BackwardDiagonals returns the neighbours one row down (towards row 7).
func (c Coord) BackwardDiagonals() []Coord {
	return c.rowNeighbours(c.Y + 1)
}

func (c Coord) rowNeighbours(y int) []Coord {
	if y < 0 || y >= Size {
		return nil
	}
	out := make([]Coord, 0, 2)
	if c.X > 0 {
		out = append(out, Coord{c.X - 1, y})
	}
	if c.X < Size-1 {
		out = append(out, Coord{c.X + 1, y})
	}
	return out
}

// CapturableDiagonals is where a man looks for pieces to jump: both
// directions, although it only walks forward.
func (c Coord) CapturableDiagonals() []Coord {
	return append(c.ForwardDiagonals(), c.BackwardDiagonals()...)
}

// Ray walks from c (exclusive) in direction dir until the edge.
func (c Coord) Ray(dir Coord) []Coord {
	var out []Coord
	for at := c.Add(dir); at.Valid(); at = at.Add(dir) {
		out = append(out, at)
	}
	return out
}
