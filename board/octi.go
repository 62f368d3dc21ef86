package board

import (
	"fmt"
	"math/bits"
)

// NumTeams is fixed; arrays indexed by Team have this length.
const NumTeams = 2

// Team owns Octis. Red moves first.
type Team uint8

const (
	Red Team = iota
	Green
)

func (t Team) Opponent() Team {
	return 1 - t
}

func (t Team) String() string {
	switch t {
	case Red:
		return "Red"
	case Green:
		return "Green"
	}
	return fmt.Sprintf("Team(%d)", uint8(t))
}

// Letter is the single-character abbreviation used in board displays.
func (t Team) Letter() string {
	if t == Red {
		return "R"
	}
	return "G"
}

// HomeRow is the row a team starts on. Red starts near the bottom edge,
// Green near the top.
func HomeRow(t Team, b Bounds) int {
	if t == Red {
		return b.Max.Y - 1
	}
	return b.Min.Y + 1
}

// IsHome reports whether pos is one of the interior cells of the team's
// starting row. An opposing Octi reaching one of these wins the game.
func IsHome(pos Position, t Team, b Bounds) bool {
	return pos.Y == HomeRow(t, b) && pos.X > b.Min.X && pos.X < b.Max.X
}

type OctiID uint32

// ArrowSet holds one activation flag per Arrow.
type ArrowSet uint8

func ArrowSetOf(arrows ...Arrow) ArrowSet {
	var s ArrowSet
	for _, a := range arrows {
		s |= 1 << a
	}
	return s
}

func (s ArrowSet) Has(a Arrow) bool {
	return s&(1<<a) != 0
}

func (s ArrowSet) With(a Arrow) ArrowSet {
	return s | 1<<a
}

func (s ArrowSet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// Arrows lists the active arrows in ascending order.
func (s ArrowSet) Arrows() []Arrow {
	arrows := make([]Arrow, 0, s.Count())
	for a := Arrow(0); a < NumArrows; a++ {
		if s.Has(a) {
			arrows = append(arrows, a)
		}
	}
	return arrows
}

func (s ArrowSet) Mirror() ArrowSet {
	var m ArrowSet
	for a := Arrow(0); a < NumArrows; a++ {
		if s.Has(a) {
			m = m.With(a.Mirror())
		}
	}
	return m
}

// Octi is a single piece. It is a plain value; boards hand out copies.
type Octi struct {
	ID     OctiID
	Team   Team
	Pos    Position
	Arrows ArrowSet
}

func (o Octi) HasArrow(a Arrow) bool {
	return o.Arrows.Has(a)
}

func (o Octi) ArrowCount() int {
	return o.Arrows.Count()
}

// addArrow panics if a is already active; event derivation rules that out.
func (o *Octi) addArrow(a Arrow) {
	if o.Arrows.Has(a) {
		panic(fmt.Sprintf("octi %d at %v already holds arrow %v", o.ID, o.Pos, a))
	}
	o.Arrows = o.Arrows.With(a)
}

func (o Octi) String() string {
	return fmt.Sprintf("%s#%d %v arrows:%v", o.Team.Letter(), o.ID, o.Pos, o.Arrows.Arrows())
}
