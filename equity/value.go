package equity

import (
	"fmt"
	"math"

	"github.com/domino14/octi/board"
)

// Value is a score from Red's point of view. The two extremes are
// reserved for decided games, so they order above and below every
// ordinary score.
type Value int32

const (
	RedWin   Value = math.MaxInt32
	GreenWin Value = math.MinInt32
)

// WinValue is the sentinel for a win by t.
func WinValue(t board.Team) Value {
	if t == board.Red {
		return RedWin
	}
	return GreenWin
}

func (v Value) IsWin() bool {
	return v == RedWin || v == GreenWin
}

func (v Value) String() string {
	switch v {
	case RedWin:
		return "Red wins"
	case GreenWin:
		return "Green wins"
	}
	return fmt.Sprintf("%d", int32(v))
}

// scoreValue narrows an additive total. Reaching a sentinel means the
// weights are out of range, which is not recoverable.
func scoreValue(total int64) Value {
	if total >= int64(RedWin) || total <= int64(GreenWin) {
		panic(fmt.Sprintf("evaluation %d collides with a win sentinel", total))
	}
	return Value(total)
}
