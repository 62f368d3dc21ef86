package board

import (
	"errors"
	"fmt"
)

// NumArrows is the number of directions an Octi can hold.
const NumArrows = 8

// An Arrow is one of the eight compass directions, counter-clockwise from
// east. The y axis grows downwards, so north is (0, -1).
type Arrow uint8

const (
	East Arrow = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

var ErrInvalidArrow = errors.New("invalid arrow value")

var directions = [NumArrows]Position{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

var arrowNames = [NumArrows]string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}

// NewArrow validates v and returns it as an Arrow.
func NewArrow(v int) (Arrow, error) {
	if v < 0 || v >= NumArrows {
		return 0, fmt.Errorf("%w: %d", ErrInvalidArrow, v)
	}
	return Arrow(v), nil
}

// Direction returns the unit displacement for this arrow.
func (a Arrow) Direction() Position {
	return directions[a]
}

// Mirror reflects the arrow across the vertical axis (east <-> west).
func (a Arrow) Mirror() Arrow {
	return (NumArrows + 4 - a) % NumArrows
}

func (a Arrow) Name() string {
	return arrowNames[a]
}

func (a Arrow) String() string {
	return fmt.Sprintf("%d", uint8(a))
}

// Position is a cell on the grid. Positions order lexicographically on
// (X, Y).
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{x, y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y}
}

func (p Position) Sub(o Position) Position {
	return Position{p.X - o.X, p.Y - o.Y}
}

func (p Position) Scale(k int) Position {
	return Position{p.X * k, p.Y * k}
}

func (p Position) Abs() Position {
	if p.X < 0 {
		p.X = -p.X
	}
	if p.Y < 0 {
		p.Y = -p.Y
	}
	return p
}

// Step returns the position n cells away in the direction of a.
func (p Position) Step(a Arrow, n int) Position {
	return p.Add(a.Direction().Scale(n))
}

func (p Position) Less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds is an inclusive rectangle of cells.
type Bounds struct {
	Min, Max Position
}

// StandardBounds is the 6x7 Octi board.
var StandardBounds = Bounds{Min: Pos(0, 0), Max: Pos(5, 6)}

func (b Bounds) Width() int {
	return b.Max.X - b.Min.X + 1
}

func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

func (b Bounds) NumCells() int {
	return b.Width() * b.Height()
}

func (b Bounds) Contains(p Position) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Index linearizes p in row-major order. p must be in bounds.
func (b Bounds) Index(p Position) int {
	return (p.X - b.Min.X) + (p.Y-b.Min.Y)*b.Width()
}

// At is the inverse of Index.
func (b Bounds) At(idx int) Position {
	w := b.Width()
	return Pos(b.Min.X+idx%w, b.Min.Y+idx/w)
}

// MirrorX reflects p across the vertical center line of the bounds.
func (b Bounds) MirrorX(p Position) Position {
	return Pos(b.Min.X+b.Max.X-p.X, p.Y)
}
