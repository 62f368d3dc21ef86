package minimax

import (
	"fmt"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/equity"
)

// Score is a value together with the ply, counted from the root, at which
// it was reached.
type Score struct {
	Value equity.Value
	Plies int
}

func (s Score) String() string {
	return fmt.Sprintf("<val: %v plies: %d>", s.Value, s.Plies)
}

// better reports whether t would rather have s than o. Between equal
// values either side takes the one that ends more plies away, so a lost
// game is dragged out as long as possible.
func (s Score) better(o Score, t board.Team) bool {
	if s.Value != o.Value {
		if t == board.Red {
			return s.Value > o.Value
		}
		return s.Value < o.Value
	}
	return s.Plies > o.Plies
}

// Better is better from Red's side.
func (s Score) Better(o Score) bool {
	return s.better(o, board.Red)
}
