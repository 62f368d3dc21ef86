// Package movegen enumerates the legal moves of the side to move. Arrow
// placements come first, then movement: single steps and capture chains
// found by a depth-first search over arrow sequences.
package movegen

import (
	"github.com/samber/lo"

	"github.com/domino14/octi/board"
)

// DefaultRepetitionThreshold is the chain length above which a chain is
// replayed to check that it does not revisit a board state. Shorter
// chains cannot repeat.
const DefaultRepetitionThreshold = 4

// Generator lazily yields every legal move on a board. It is consumed
// once; build a new one to start over.
type Generator[B board.Cloner[B]] struct {
	b         B
	threshold int

	pieces []board.Position

	// arrow placements
	arrowPiece int
	nextArrow  int

	// movement
	movePiece int
	stack     []*board.Move

	// Pruned counts chains abandoned by the repetition guard.
	Pruned int
}

// NewGenerator builds a generator for the side to move on b. A threshold
// below 1 means DefaultRepetitionThreshold.
func NewGenerator[B board.Cloner[B]](b B, threshold int) *Generator[B] {
	if threshold < 1 {
		threshold = DefaultRepetitionThreshold
	}
	turn := b.Turn()
	own := lo.Filter(b.Octis(), func(o board.Octi, _ int) bool {
		return o.Team == turn
	})
	return &Generator[B]{
		b:         b,
		threshold: threshold,
		pieces:    lo.Map(own, func(o board.Octi, _ int) board.Position { return o.Pos }),
	}
}

// Next returns the next legal move, or false once all have been yielded.
func (g *Generator[B]) Next() (*board.Move, bool) {
	if m, ok := g.nextArrowMove(); ok {
		return m, true
	}
	return g.nextMovement()
}

func (g *Generator[B]) nextArrowMove() (*board.Move, bool) {
	for g.arrowPiece < len(g.pieces) {
		pos := g.pieces[g.arrowPiece]
		for g.nextArrow < board.NumArrows {
			m := board.NewArrowMove(pos, board.Arrow(g.nextArrow))
			g.nextArrow++
			if board.IsMoveValid(g.b, m) {
				return m, true
			}
		}
		g.arrowPiece++
		g.nextArrow = 0
	}
	return nil, false
}

func (g *Generator[B]) nextMovement() (*board.Move, bool) {
	for {
		if len(g.stack) == 0 {
			if g.movePiece >= len(g.pieces) {
				return nil, false
			}
			pos := g.pieces[g.movePiece]
			g.movePiece++
			for a := board.NumArrows - 1; a >= 0; a-- {
				g.stack = append(g.stack, board.NewMovement(pos, board.Arrow(a)))
			}
		}
		m := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]

		events, err := board.MoveEvents(g.b, m)
		if err != nil {
			continue
		}
		if len(m.Arrows()) > g.threshold && g.repeats(events) {
			g.Pruned++
			continue
		}
		for a := board.NumArrows - 1; a >= 0; a-- {
			g.stack = append(g.stack, m.Extend(board.Arrow(a)))
		}
		return m, true
	}
}

// repeats replays a chain hop by hop and reports whether any intermediate
// state occurs twice. While every hop has to eat a piece this never fires.
func (g *Generator[B]) repeats(events []board.Event) bool {
	scratch := g.b.Clone()
	hops := board.SplitHops(events)
	seen := make(map[string]struct{}, len(hops))
	for _, hop := range hops {
		scratch.ProcessEvents(hop)
		key := board.StateKey(scratch)
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// GenAll drains a fresh generator for b.
func GenAll[B board.Cloner[B]](b B, threshold int) []*board.Move {
	g := NewGenerator(b, threshold)
	var moves []*board.Move
	for m, ok := g.Next(); ok; m, ok = g.Next() {
		moves = append(moves, m)
	}
	return moves
}

// GenMovements yields only the movement moves of the side to move.
func GenMovements[B board.Cloner[B]](b B, threshold int) []*board.Move {
	g := NewGenerator(b, threshold)
	g.arrowPiece = len(g.pieces)
	var moves []*board.Move
	for m, ok := g.nextMovement(); ok; m, ok = g.nextMovement() {
		moves = append(moves, m)
	}
	return moves
}
