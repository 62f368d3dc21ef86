package equity

import (
	"fmt"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/movegen"
)

// Evaluate scores b statically. Decided games get the winner's sentinel.
// Otherwise each piece earns its team the piece value, the value of its
// active arrows and the value of its cell, and each team's possible
// movements earn a bonus for the cell they reach.
//
// threshold is passed to the move generator. The grids in d must match
// the bounds of b; Evaluate panics otherwise.
func Evaluate[B board.Cloner[B]](b B, d *EvalData, threshold int) Value {
	bounds := b.Bounds()
	if !d.covers(bounds) {
		panic(fmt.Sprintf("evaluation grids do not cover board bounds %v-%v", bounds.Min, bounds.Max))
	}
	if w, ok := Winner(b); ok {
		return WinValue(w)
	}
	var totals [board.NumTeams]int64

	for _, o := range b.Octis() {
		w := d.team(o.Team)
		totals[o.Team] += int64(d.OctiValue)
		for _, a := range o.Arrows.Arrows() {
			totals[o.Team] += int64(w.Arrows[a])
		}
		totals[o.Team] += w.Positions.at(o.Pos, bounds)
	}

	toMove := b.Turn()
	for _, team := range []board.Team{board.Red, board.Green} {
		probe := b.Clone()
		probe.SetTurn(team)
		w := d.team(team)
		for _, m := range movegen.GenMovements(probe, threshold) {
			next, events, err := board.Play(probe, m)
			if err != nil {
				panic("generated move failed to apply: " + err.Error())
			}
			if winner, ok := Winner(next); ok && winner == toMove && winner == team {
				return WinValue(winner)
			}
			dest := finalPosition(events)
			grid := w.JumpMoves
			if delta := dest.Sub(m.Pos()).Abs(); delta.X <= 1 && delta.Y <= 1 && len(m.Arrows()) == 1 {
				grid = w.SimpleMoves
			}
			totals[team] += grid.at(dest, bounds)
		}
	}
	return scoreValue(totals[board.Red] - totals[board.Green])
}

func finalPosition(events []board.Event) board.Position {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == board.EventNewPosition {
			return events[i].To
		}
	}
	panic("movement produced no position event")
}
