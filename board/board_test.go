package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func budgetInvariant(b *Board, t Team) int {
	total := b.ArrowCount(t)
	for _, o := range b.Octis() {
		if o.Team == t {
			total += o.ArrowCount()
		}
	}
	return total
}

func TestStandardBoard(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	is.Equal(len(b.Octis()), 8)
	is.Equal(b.Turn(), Red)
	is.Equal(b.ArrowCount(Red), 12)
	is.Equal(b.ArrowCount(Green), 12)
	for x := 1; x <= 4; x++ {
		o, ok := b.OctiAt(Pos(x, 5))
		is.True(ok)
		is.Equal(o.Team, Red)
		is.True(IsHome(o.Pos, Red, b.Bounds()))
		o, ok = b.OctiAt(Pos(x, 1))
		is.True(ok)
		is.Equal(o.Team, Green)
	}
	is.True(!IsHome(Pos(0, 5), Red, b.Bounds()))
	is.True(!IsHome(Pos(5, 1), Green, b.Bounds()))
}

func TestArrowPlacement(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	m := NewArrowMove(Pos(1, 5), North)
	events, err := b.MoveEvents(m)
	is.NoErr(err)
	is.Equal(events, []Event{NewArrowEvent(Pos(1, 5), North)})

	is.NoErr(b.MakeMove(m))
	is.Equal(b.ArrowCount(Red), 11)
	o, _ := b.OctiAt(Pos(1, 5))
	is.True(o.HasArrow(North))
	is.Equal(b.Turn(), Green)
	is.Equal(budgetInvariant(b, Red), StartingArrows)
}

func TestArrowAlreadyActive(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	is.NoErr(b.MakeMove(NewArrowMove(Pos(1, 5), North)))
	is.NoErr(b.MakeMove(NewArrowMove(Pos(1, 1), South)))

	before := b.Clone()
	err := b.MakeMove(NewArrowMove(Pos(1, 5), North))
	is.True(errors.Is(err, ErrArrowActive))
	is.True(b.Equals(before))
	is.Equal(b.Turn(), Red)
}

func TestArrowErrors(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	_, err := b.MoveEvents(NewArrowMove(Pos(0, 0), North))
	is.True(errors.Is(err, ErrNoOcti))
	_, err = b.MoveEvents(NewArrowMove(Pos(1, 1), South))
	is.True(errors.Is(err, ErrWrongTurn))

	empty := NewEmpty(StandardBounds, Red, 0, 3)
	is.NoErr(empty.Place(Red, Pos(2, 2)))
	_, err = empty.MoveEvents(NewArrowMove(Pos(2, 2), East))
	is.True(errors.Is(err, ErrNoArrowsLeft))
}

func TestMoveWithoutArrow(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	_, err := b.MoveEvents(NewMovement(Pos(1, 5), NorthEast))
	is.True(errors.Is(err, ErrArrowMissing))
	is.True(!b.IsMoveValid(NewMovement(Pos(1, 5), NorthEast)))
}

func TestSimpleStep(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	is.NoErr(b.MakeMove(NewArrowMove(Pos(1, 5), North)))
	is.NoErr(b.MakeMove(NewArrowMove(Pos(1, 1), South)))

	m := NewMovement(Pos(1, 5), North)
	events, err := b.MoveEvents(m)
	is.NoErr(err)
	is.Equal(events, []Event{NewPositionEvent(Pos(1, 5), Pos(1, 4))})
	is.NoErr(b.MakeMove(m))
	_, ok := b.OctiAt(Pos(1, 5))
	is.True(!ok)
	o, ok := b.OctiAt(Pos(1, 4))
	is.True(ok)
	is.Equal(o.Pos, Pos(1, 4))
	is.Equal(b.Turn(), Green)
}

// jumpBoard has a Red octi at (2,4) facing north into a Green octi at
// (2,3) that holds two arrows.
func jumpBoard(t *testing.T, redArrows ...Arrow) *Board {
	b := NewEmpty(StandardBounds, Red, 10, 9)
	if err := b.Place(Red, Pos(2, 4), redArrows...); err != nil {
		t.Fatal(err)
	}
	if err := b.Place(Green, Pos(2, 3), East, West); err != nil {
		t.Fatal(err)
	}
	if err := b.Place(Green, Pos(4, 0), South); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSingleJumpCapture(t *testing.T) {
	is := is.New(t)
	b := jumpBoard(t, North, South)
	m := NewMovement(Pos(2, 4), North)
	events, err := b.MoveEvents(m)
	is.NoErr(err)
	is.Equal(events, []Event{
		EatenEvent(Pos(2, 3)),
		NewPositionEvent(Pos(2, 4), Pos(2, 2)),
		DivEvent(),
	})

	is.NoErr(b.MakeMove(m))
	_, ok := b.OctiAt(Pos(2, 3))
	is.True(!ok)
	is.Equal(b.ArrowCount(Red), 12)
	is.Equal(len(b.Octis()), 2)
	o, ok := b.OctiAt(Pos(2, 2))
	is.True(ok)
	is.Equal(o.Team, Red)
}

func TestChainLoopsBackToOrigin(t *testing.T) {
	is := is.New(t)
	b := NewEmpty(StandardBounds, Red, 8, 8)
	is.NoErr(b.Place(Red, Pos(1, 5), North, East, South))
	is.NoErr(b.Place(Green, Pos(1, 4)))
	is.NoErr(b.Place(Green, Pos(2, 3)))
	is.NoErr(b.Place(Green, Pos(3, 4)))
	// N to (1,3), E to (3,3), S to (3,5); a fourth hop west over (2,5)
	// would land back on the vacated origin.
	is.NoErr(b.Place(Green, Pos(2, 5)))
	is.NoErr(b.Place(Red, Pos(0, 0), West))

	m := NewMovement(Pos(1, 5), North, East, South)
	events, err := b.MoveEvents(m)
	is.NoErr(err)
	is.Equal(len(events), 9)
	is.Equal(events[0], EatenEvent(Pos(1, 4)))
	is.Equal(events[7], NewPositionEvent(Pos(3, 3), Pos(3, 5)))

	// The octi does not hold West, so it cannot close the loop.
	_, err = b.MoveEvents(NewMovement(Pos(1, 5), North, East, South, West))
	is.True(errors.Is(err, ErrArrowMissing))

	loop := NewEmpty(StandardBounds, Red, 8, 8)
	is.NoErr(loop.Place(Red, Pos(1, 5), North, East, South, West))
	is.NoErr(loop.Place(Green, Pos(1, 4)))
	is.NoErr(loop.Place(Green, Pos(2, 3)))
	is.NoErr(loop.Place(Green, Pos(3, 4)))
	is.NoErr(loop.Place(Green, Pos(2, 5)))
	m = NewMovement(Pos(1, 5), North, East, South, West)
	events, err = loop.MoveEvents(m)
	is.NoErr(err)
	is.Equal(events[len(events)-2], NewPositionEvent(Pos(3, 5), Pos(1, 5)))

	is.NoErr(loop.MakeMove(m))
	is.Equal(len(loop.Octis()), 1)
	o, ok := loop.OctiAt(Pos(1, 5))
	is.True(ok)
	is.Equal(o.Team, Red)
	is.Equal(loop.Turn(), Green)
}

func TestJumpErrors(t *testing.T) {
	is := is.New(t)

	b := jumpBoard(t, North, South, East, SouthEast)
	_, err := b.MoveEvents(NewMovement(Pos(2, 4), East, East))
	is.True(errors.Is(err, ErrNoMidpoint))

	// Jumping back over the piece just captured.
	_, err = b.MoveEvents(NewMovement(Pos(2, 4), North, South))
	is.True(errors.Is(err, ErrAlreadyCaptured))

	edge := NewEmpty(StandardBounds, Red, 10, 10)
	is.NoErr(edge.Place(Red, Pos(0, 1), North))
	is.NoErr(edge.Place(Green, Pos(0, 0)))
	_, err = edge.MoveEvents(NewMovement(Pos(0, 1), North))
	is.True(errors.Is(err, ErrOutOfBounds))

	own := NewEmpty(StandardBounds, Red, 10, 10)
	is.NoErr(own.Place(Red, Pos(2, 4), North))
	is.NoErr(own.Place(Red, Pos(2, 3)))
	_, err = own.MoveEvents(NewMovement(Pos(2, 4), North))
	is.True(errors.Is(err, ErrOwnMidpoint))

	blocked := NewEmpty(StandardBounds, Red, 10, 10)
	is.NoErr(blocked.Place(Red, Pos(2, 4), North))
	is.NoErr(blocked.Place(Green, Pos(2, 3)))
	is.NoErr(blocked.Place(Green, Pos(2, 2)))
	_, err = blocked.MoveEvents(NewMovement(Pos(2, 4), North))
	is.True(errors.Is(err, ErrLandingOccupied))

	_, err = blocked.MoveEvents(NewMovement(Pos(2, 4)))
	is.True(errors.Is(err, ErrEmptyChain))

	blocked.SetTurn(Green)
	_, err = blocked.MoveEvents(NewMovement(Pos(2, 4), North))
	is.True(errors.Is(err, ErrWrongTurn))
}

func TestProcessEventsDeterministic(t *testing.T) {
	is := is.New(t)
	b := jumpBoard(t, North)
	events, err := b.MoveEvents(NewMovement(Pos(2, 4), North))
	is.NoErr(err)
	c1, c2 := b.Clone(), b.Clone()
	c1.ProcessEvents(events)
	c2.ProcessEvents(events)
	is.True(c1.Equals(c2))
	is.Equal(StateKey(c1), StateKey(c2))
	is.True(!c1.Equals(b))
	is.True(StateKey(c1) != StateKey(b))
}

func TestProcessEventsPanicsOnMissingPiece(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	defer func() {
		is.True(recover() != nil)
	}()
	b.ProcessEvents([]Event{EatenEvent(Pos(3, 3))})
}

func TestPositionIndexInverse(t *testing.T) {
	is := is.New(t)
	b := jumpBoard(t, North)
	is.NoErr(b.MakeMove(NewMovement(Pos(2, 4), North)))
	seen := map[Position]bool{}
	for _, o := range b.Octis() {
		is.True(!seen[o.Pos])
		seen[o.Pos] = true
		at, ok := b.OctiAt(o.Pos)
		is.True(ok)
		is.Equal(at, o)
		byID, ok := b.OctiByID(o.ID)
		is.True(ok)
		is.Equal(byID, o)
	}
	is.Equal(len(b.posIndex), len(b.octis))
}

func TestSplitHops(t *testing.T) {
	is := is.New(t)
	events := []Event{
		EatenEvent(Pos(1, 1)), NewPositionEvent(Pos(0, 0), Pos(2, 2)), DivEvent(),
		EatenEvent(Pos(3, 3)), NewPositionEvent(Pos(2, 2), Pos(4, 4)), DivEvent(),
	}
	hops := SplitHops(events)
	is.Equal(len(hops), 2)
	is.Equal(hops[1][1], NewPositionEvent(Pos(2, 2), Pos(4, 4)))
	is.Equal(len(SplitHops([]Event{NewPositionEvent(Pos(0, 0), Pos(0, 1))})), 1)
}

func TestArrowMirror(t *testing.T) {
	is := is.New(t)
	is.Equal(East.Mirror(), West)
	is.Equal(NorthEast.Mirror(), NorthWest)
	is.Equal(North.Mirror(), North)
	is.Equal(SouthEast.Mirror(), SouthWest)
	for a := Arrow(0); a < NumArrows; a++ {
		is.Equal(a.Mirror().Mirror(), a)
		d, m := a.Direction(), a.Mirror().Direction()
		is.Equal(d.X, -m.X)
		is.Equal(d.Y, m.Y)
	}
	is.Equal(ArrowSetOf(East, North).Mirror(), ArrowSetOf(West, North))
}
