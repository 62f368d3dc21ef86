package board

import (
	"fmt"
	"slices"
	"strings"
)

// MoveType is either an arrow placement or a movement.
type MoveType uint8

const (
	MoveTypeArrow MoveType = iota
	MoveTypeMove
)

// Move is an OctiMove: either place one arrow on the Octi at pos, or move
// the Octi at pos along one arrow (a step) or a chain of arrows (jumps).
type Move struct {
	action MoveType
	pos    Position
	arrows []Arrow
}

func NewArrowMove(pos Position, a Arrow) *Move {
	return &Move{action: MoveTypeArrow, pos: pos, arrows: []Arrow{a}}
}

// NewMovement builds a movement. The chain is copied.
func NewMovement(pos Position, chain ...Arrow) *Move {
	return &Move{action: MoveTypeMove, pos: pos, arrows: slices.Clone(chain)}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Pos() Position {
	return m.pos
}

// Arrow is the placed arrow for an arrow move, or the first hop otherwise.
func (m *Move) Arrow() Arrow {
	return m.arrows[0]
}

// Arrows returns the chain. Callers must not modify it.
func (m *Move) Arrows() []Arrow {
	return m.arrows
}

// Extend returns a new movement with a appended to the chain.
func (m *Move) Extend(a Arrow) *Move {
	chain := make([]Arrow, len(m.arrows)+1)
	copy(chain, m.arrows)
	chain[len(m.arrows)] = a
	return &Move{action: MoveTypeMove, pos: m.pos, arrows: chain}
}

func (m *Move) Equals(o *Move) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.action == o.action && m.pos == o.pos && slices.Equal(m.arrows, o.arrows)
}

// String renders the move in the textual move syntax, e.g. "arr (1,5) 2"
// or "mov (1,5) 2 0".
func (m *Move) String() string {
	var sb strings.Builder
	switch m.action {
	case MoveTypeArrow:
		sb.WriteString("arr ")
	case MoveTypeMove:
		sb.WriteString("mov ")
	}
	sb.WriteString(m.pos.String())
	for _, a := range m.arrows {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	return sb.String()
}

func (m *Move) ShortDescription() string {
	if m.action == MoveTypeArrow {
		return fmt.Sprintf("%v +%s", m.pos, m.arrows[0].Name())
	}
	names := make([]string, len(m.arrows))
	for i, a := range m.arrows {
		names[i] = a.Name()
	}
	return fmt.Sprintf("%v %s", m.pos, strings.Join(names, "-"))
}
