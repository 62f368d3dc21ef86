package board

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// StartingArrows is each team's arrow budget at the start of a game.
const StartingArrows = 12

var ErrCellTaken = errors.New("cell already occupied")

// Board is the authoritative game state. Octis are indexed both by id and
// by position; the two indexes are always inverses of each other.
type Board struct {
	turn        Team
	bounds      Bounds
	octis       map[OctiID]*Octi
	posIndex    map[Position]OctiID
	arrowCounts [NumTeams]int
	nextID      OctiID
}

// NewStandard returns the starting position: four Octis per team on the
// interior of each home row, 12 arrows each, Red to move.
func NewStandard() *Board {
	b := NewEmpty(StandardBounds, Red, StartingArrows, StartingArrows)
	for _, t := range []Team{Red, Green} {
		row := HomeRow(t, b.bounds)
		for x := b.bounds.Min.X + 1; x < b.bounds.Max.X; x++ {
			if err := b.Place(t, Pos(x, row)); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// NewEmpty returns a board with no pieces. It is used with Place to set up
// arbitrary positions.
func NewEmpty(bounds Bounds, turn Team, redArrows, greenArrows int) *Board {
	return &Board{
		turn:        turn,
		bounds:      bounds,
		octis:       make(map[OctiID]*Octi),
		posIndex:    make(map[Position]OctiID),
		arrowCounts: [NumTeams]int{redArrows, greenArrows},
	}
}

// Place puts a new Octi on the board during setup. Ids are assigned in
// placement order. The arrow budgets are not touched.
func (b *Board) Place(t Team, pos Position, arrows ...Arrow) error {
	if !b.bounds.Contains(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if _, ok := b.posIndex[pos]; ok {
		return fmt.Errorf("%w: %v", ErrCellTaken, pos)
	}
	id := b.nextID
	b.nextID++
	b.octis[id] = &Octi{ID: id, Team: t, Pos: pos, Arrows: ArrowSetOf(arrows...)}
	b.posIndex[pos] = id
	return nil
}

func (b *Board) Bounds() Bounds {
	return b.bounds
}

func (b *Board) OctiAt(pos Position) (Octi, bool) {
	id, ok := b.posIndex[pos]
	if !ok {
		return Octi{}, false
	}
	return *b.octis[id], true
}

func (b *Board) OctiByID(id OctiID) (Octi, bool) {
	o, ok := b.octis[id]
	if !ok {
		return Octi{}, false
	}
	return *o, true
}

// Octis lists every piece in id order.
func (b *Board) Octis() []Octi {
	ids := slices.Sorted(maps.Keys(b.octis))
	octis := make([]Octi, len(ids))
	for i, id := range ids {
		octis[i] = *b.octis[id]
	}
	return octis
}

func (b *Board) ArrowCount(t Team) int {
	return b.arrowCounts[t]
}

func (b *Board) InBounds(pos Position) bool {
	return b.bounds.Contains(pos)
}

func (b *Board) Turn() Team {
	return b.turn
}

func (b *Board) SetTurn(t Team) {
	b.turn = t
}

// ProcessEvents applies pre-validated events.
func (b *Board) ProcessEvents(events []Event) {
	for _, e := range events {
		switch e.Type {
		case EventNewArrow:
			o := b.mustOctiAt(e.Pos)
			o.addArrow(e.Arrow)
			b.arrowCounts[o.Team]--
		case EventNewPosition:
			o := b.mustOctiAt(e.Pos)
			delete(b.posIndex, e.Pos)
			b.posIndex[e.To] = o.ID
			o.Pos = e.To
		case EventEaten:
			o := b.mustOctiAt(e.Pos)
			delete(b.posIndex, e.Pos)
			delete(b.octis, o.ID)
			b.arrowCounts[o.Team.Opponent()] += o.ArrowCount()
		case EventDiv:
		}
	}
}

func (b *Board) mustOctiAt(pos Position) *Octi {
	id, ok := b.posIndex[pos]
	if !ok {
		panic(fmt.Sprintf("event references empty cell %v", pos))
	}
	return b.octis[id]
}

func (b *Board) MoveEvents(m *Move) ([]Event, error) {
	return MoveEvents(b, m)
}

func (b *Board) IsMoveValid(m *Move) bool {
	return IsMoveValid(b, m)
}

func (b *Board) MakeMove(m *Move) error {
	return MakeMove(b, m)
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	c := &Board{
		turn:        b.turn,
		bounds:      b.bounds,
		octis:       make(map[OctiID]*Octi, len(b.octis)),
		posIndex:    maps.Clone(b.posIndex),
		arrowCounts: b.arrowCounts,
		nextID:      b.nextID,
	}
	for id, o := range b.octis {
		cp := *o
		c.octis[id] = &cp
	}
	return c
}

// Equals compares full game state, including ids.
func (b *Board) Equals(o *Board) bool {
	if b.turn != o.turn || b.bounds != o.bounds || b.arrowCounts != o.arrowCounts ||
		b.nextID != o.nextID || len(b.octis) != len(o.octis) {
		return false
	}
	for id, oc := range b.octis {
		other, ok := o.octis[id]
		if !ok || *oc != *other {
			return false
		}
	}
	return maps.Equal(b.posIndex, o.posIndex)
}
