package board

import (
	"errors"
	"fmt"
)

var (
	ErrNoOcti          = errors.New("no octi at position")
	ErrWrongTurn       = errors.New("not this team's turn")
	ErrNoArrowsLeft    = errors.New("team has no arrows left")
	ErrArrowActive     = errors.New("arrow already active")
	ErrArrowMissing    = errors.New("octi does not hold this arrow")
	ErrOutOfBounds     = errors.New("position not in bounds")
	ErrNoMidpoint      = errors.New("no octi to jump over")
	ErrOwnMidpoint     = errors.New("cannot capture own octi")
	ErrAlreadyCaptured = errors.New("octi already captured in this chain")
	ErrLandingOccupied = errors.New("landing position is occupied")
	ErrEmptyChain      = errors.New("movement has no arrows")
)

// Boardable is the read side of a board, shared by the rules board and
// the search board so that move generation and evaluation are written
// once.
type Boardable interface {
	Bounds() Bounds
	OctiAt(pos Position) (Octi, bool)
	OctiByID(id OctiID) (Octi, bool)
	// Octis lists every piece on the board.
	Octis() []Octi
	ArrowCount(team Team) int
	InBounds(pos Position) bool
	Turn() Team
	SetTurn(team Team)
}

// EventProcessor applies events that MoveEvents produced. It does not
// validate them; an event referencing a missing piece panics.
type EventProcessor interface {
	Boardable
	ProcessEvents(events []Event)
}

// Cloner is a board that can copy itself. Exploring alternatives is done
// by mutating copies, never by undoing.
type Cloner[B any] interface {
	EventProcessor
	Clone() B
}

// MoveEvents validates m against b and derives the ordered events that
// apply it. It never mutates b.
func MoveEvents(b Boardable, m *Move) ([]Event, error) {
	switch m.Action() {
	case MoveTypeArrow:
		return arrowEvents(b, m.Pos(), m.Arrow())
	case MoveTypeMove:
		return movementEvents(b, m.Pos(), m.Arrows())
	}
	return nil, fmt.Errorf("unhandled move type %d", m.Action())
}

func IsMoveValid(b Boardable, m *Move) bool {
	_, err := MoveEvents(b, m)
	return err == nil
}

// MakeMove derives and applies m, then passes the turn. It fails exactly
// when MoveEvents fails, in which case b is untouched.
func MakeMove(b EventProcessor, m *Move) error {
	events, err := MoveEvents(b, m)
	if err != nil {
		return err
	}
	b.ProcessEvents(events)
	b.SetTurn(b.Turn().Opponent())
	return nil
}

func arrowEvents(b Boardable, pos Position, a Arrow) ([]Event, error) {
	octi, ok := b.OctiAt(pos)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoOcti, pos)
	}
	if b.ArrowCount(octi.Team) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoArrowsLeft, octi.Team)
	}
	if octi.Team != b.Turn() {
		return nil, fmt.Errorf("%w: expected %v, got %v", ErrWrongTurn, b.Turn(), octi.Team)
	}
	if octi.HasArrow(a) {
		return nil, fmt.Errorf("%w: arrow %v on %v", ErrArrowActive, a, pos)
	}
	return []Event{NewArrowEvent(pos, a)}, nil
}

func movementEvents(b Boardable, origin Position, chain []Arrow) ([]Event, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	octi, ok := b.OctiAt(origin)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoOcti, origin)
	}
	if octi.Team != b.Turn() {
		return nil, fmt.Errorf("%w: expected %v, got %v", ErrWrongTurn, b.Turn(), octi.Team)
	}

	if len(chain) == 1 {
		a := chain[0]
		if !octi.HasArrow(a) {
			return nil, fmt.Errorf("%w: arrow %v on %v", ErrArrowMissing, a, origin)
		}
		dest := origin.Step(a, 1)
		if _, occupied := b.OctiAt(dest); b.InBounds(dest) && !occupied {
			return []Event{NewPositionEvent(origin, dest)}, nil
		}
	}

	// Every hop is a jump. Up to three events per hop.
	events := make([]Event, 0, len(chain)*3)
	captured := make([]Position, 0, len(chain))
	cur := origin
	for _, a := range chain {
		if !octi.HasArrow(a) {
			return nil, fmt.Errorf("%w: arrow %v on %v", ErrArrowMissing, a, origin)
		}
		mid := cur.Step(a, 1)
		land := cur.Step(a, 2)
		if !b.InBounds(land) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, land)
		}
		midOcti, ok := b.OctiAt(mid)
		if mid == origin {
			ok = false
		}
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: %v", ErrNoMidpoint, mid)
		case midOcti.Team == octi.Team:
			return nil, fmt.Errorf("%w: %v", ErrOwnMidpoint, mid)
		case containsPos(captured, mid):
			return nil, fmt.Errorf("%w: %v", ErrAlreadyCaptured, mid)
		}
		// The origin is vacated by the time a chain loops back to it.
		if _, occupied := b.OctiAt(land); occupied && land != origin {
			return nil, fmt.Errorf("%w: %v", ErrLandingOccupied, land)
		}
		captured = append(captured, mid)
		events = append(events, EatenEvent(mid), NewPositionEvent(cur, land), DivEvent())
		cur = land
	}
	return events, nil
}

func containsPos(ps []Position, p Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

// Play returns a copy of b with m applied and the turn passed, together
// with the events that were applied. b itself is never modified.
func Play[B Cloner[B]](b B, m *Move) (B, []Event, error) {
	events, err := MoveEvents(b, m)
	if err != nil {
		var zero B
		return zero, nil, err
	}
	c := b.Clone()
	c.ProcessEvents(events)
	c.SetTurn(c.Turn().Opponent())
	return c, events, nil
}
