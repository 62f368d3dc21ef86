// Package fastboard is a flattened, fixed-size snapshot of an Octi board
// used by the search. A Board is a plain comparable value: copying it is a
// bulk copy, and == compares the full state.
package fastboard

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/cespare/xxhash"

	"github.com/domino14/octi/board"
)

const (
	Width  = 6
	Height = 7
	Cells  = Width * Height
)

var ErrUnsupportedBounds = errors.New("search board only supports the standard 6x7 bounds")

// Board indexes Octis by linearized position. There is no id index; ids
// only matter for finding a piece again after a move.
type Board struct {
	turn        board.Team
	filled      uint64
	cells       [Cells]board.Octi
	arrowCounts [board.NumTeams]int
}

var bounds = board.StandardBounds

// New snapshots any board with the standard bounds.
func New(b board.Boardable) (*Board, error) {
	if b.Bounds() != bounds {
		return nil, fmt.Errorf("%w: got %v-%v", ErrUnsupportedBounds, b.Bounds().Min, b.Bounds().Max)
	}
	fb := &Board{turn: b.Turn()}
	for idx := 0; idx < Cells; idx++ {
		if o, ok := b.OctiAt(bounds.At(idx)); ok {
			fb.set(idx, o)
		}
	}
	fb.arrowCounts[board.Red] = b.ArrowCount(board.Red)
	fb.arrowCounts[board.Green] = b.ArrowCount(board.Green)
	return fb, nil
}

func (b *Board) set(idx int, o board.Octi) {
	b.cells[idx] = o
	b.filled |= 1 << idx
}

func (b *Board) take(idx int) board.Octi {
	o := b.cells[idx]
	b.cells[idx] = board.Octi{}
	b.filled &^= 1 << idx
	return o
}

func (b *Board) occupied(idx int) bool {
	return b.filled&(1<<idx) != 0
}

func (b *Board) Bounds() board.Bounds {
	return bounds
}

func (b *Board) OctiAt(pos board.Position) (board.Octi, bool) {
	if !bounds.Contains(pos) {
		return board.Octi{}, false
	}
	idx := bounds.Index(pos)
	if !b.occupied(idx) {
		return board.Octi{}, false
	}
	return b.cells[idx], true
}

func (b *Board) OctiByID(id board.OctiID) (board.Octi, bool) {
	for f := b.filled; f != 0; f &= f - 1 {
		idx := bits.TrailingZeros64(f)
		if b.cells[idx].ID == id {
			return b.cells[idx], true
		}
	}
	return board.Octi{}, false
}

// Octis lists pieces in cell order (row by row).
func (b *Board) Octis() []board.Octi {
	octis := make([]board.Octi, 0, bits.OnesCount64(b.filled))
	for f := b.filled; f != 0; f &= f - 1 {
		octis = append(octis, b.cells[bits.TrailingZeros64(f)])
	}
	return octis
}

// NumOctis counts the pieces of team t.
func (b *Board) NumOctis(t board.Team) int {
	n := 0
	for f := b.filled; f != 0; f &= f - 1 {
		if b.cells[bits.TrailingZeros64(f)].Team == t {
			n++
		}
	}
	return n
}

func (b *Board) ArrowCount(t board.Team) int {
	return b.arrowCounts[t]
}

func (b *Board) InBounds(pos board.Position) bool {
	return bounds.Contains(pos)
}

func (b *Board) Turn() board.Team {
	return b.turn
}

func (b *Board) SetTurn(t board.Team) {
	b.turn = t
}

// ProcessEvents mirrors board.Board.ProcessEvents.
func (b *Board) ProcessEvents(events []board.Event) {
	for _, e := range events {
		switch e.Type {
		case board.EventNewArrow:
			idx := b.mustIndex(e.Pos)
			o := b.cells[idx]
			if o.HasArrow(e.Arrow) {
				panic(fmt.Sprintf("octi at %v already holds arrow %v", e.Pos, e.Arrow))
			}
			o.Arrows = o.Arrows.With(e.Arrow)
			b.cells[idx] = o
			b.arrowCounts[o.Team]--
		case board.EventNewPosition:
			o := b.take(b.mustIndex(e.Pos))
			o.Pos = e.To
			b.set(bounds.Index(e.To), o)
		case board.EventEaten:
			o := b.take(b.mustIndex(e.Pos))
			b.arrowCounts[o.Team.Opponent()] += o.ArrowCount()
		case board.EventDiv:
		}
	}
}

func (b *Board) mustIndex(pos board.Position) int {
	if !bounds.Contains(pos) || !b.occupied(bounds.Index(pos)) {
		panic(fmt.Sprintf("event references empty cell %v", pos))
	}
	return bounds.Index(pos)
}

func (b *Board) MoveEvents(m *board.Move) ([]board.Event, error) {
	return board.MoveEvents(b, m)
}

func (b *Board) IsMoveValid(m *board.Move) bool {
	return board.IsMoveValid(b, m)
}

func (b *Board) MakeMove(m *board.Move) error {
	return board.MakeMove(b, m)
}

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) Equals(o *Board) bool {
	return *b == *o
}

// Mirror reflects the board left to right, arrows included.
func (b *Board) Mirror() Board {
	m := Board{turn: b.turn, arrowCounts: b.arrowCounts}
	for f := b.filled; f != 0; f &= f - 1 {
		o := b.cells[bits.TrailingZeros64(f)]
		o.Pos = bounds.MirrorX(o.Pos)
		o.Arrows = o.Arrows.Mirror()
		m.set(bounds.Index(o.Pos), o)
	}
	return m
}

// Key is b with every piece id cleared. Ids never affect the rules or the
// evaluation, so two boards with equal keys are the same game state; a
// mirrored board only matches the position reached by the mirror-image
// line once ids are gone.
func (b *Board) Key() Board {
	k := *b
	for f := k.filled; f != 0; f &= f - 1 {
		k.cells[bits.TrailingZeros64(f)].ID = 0
	}
	return k
}

// AppendBinary appends a canonical encoding of the full state.
func (b *Board) AppendBinary(buf []byte) []byte {
	buf = append(buf, byte(b.turn))
	buf = binary.LittleEndian.AppendUint64(buf, b.filled)
	buf = binary.AppendVarint(buf, int64(b.arrowCounts[board.Red]))
	buf = binary.AppendVarint(buf, int64(b.arrowCounts[board.Green]))
	for f := b.filled; f != 0; f &= f - 1 {
		o := b.cells[bits.TrailingZeros64(f)]
		buf = binary.AppendUvarint(buf, uint64(o.ID))
		buf = append(buf, byte(o.Team), byte(o.Arrows))
	}
	return buf
}

// Hash is stable across processes; equal boards hash equally.
func (b *Board) Hash() uint64 {
	var scratch [64]byte
	return xxhash.Sum64(b.AppendBinary(scratch[:0]))
}
