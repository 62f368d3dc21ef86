package priority

import (
	"math"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/fastboard"
	"github.com/domino14/octi/movegen"
)

var testWeights = &Weights{HasMoved: 10, Movement: 100, Capture: 50, ArrowConcentration: 5}

func TestPrioritizeOrdering(t *testing.T) {
	is := is.New(t)
	b := board.NewEmpty(board.StandardBounds, board.Red, 10, 12)
	is.NoErr(b.Place(board.Red, board.Pos(2, 5), board.North))
	is.NoErr(b.Place(board.Red, board.Pos(0, 3), board.East))
	is.NoErr(b.Place(board.Green, board.Pos(2, 4)))
	is.NoErr(b.Place(board.Green, board.Pos(5, 0)))
	fb, err := fastboard.New(b)
	is.NoErr(err)

	contexts := Prioritize(fb, movegen.GenAll(fb, 0), testWeights)
	is.Equal(contexts[0].Move.String(), "mov (2,5) 2")
	is.Equal(contexts[0].Priority, 150)
	is.Equal(contexts[1].Move.String(), "mov (0,3) 0")
	is.Equal(contexts[1].Priority, 110)
	// Arrows on the piece that already left home come next, in
	// generation order.
	is.Equal(contexts[2].Move.String(), "arr (0,3) 1")
	is.Equal(contexts[2].Priority, 15)
	last := contexts[len(contexts)-1]
	is.Equal(last.Priority, 5)
	is.Equal(last.Move.Pos(), board.Pos(2, 5))

	// Each context carries the board after its move.
	_, ok := contexts[0].Board.OctiAt(board.Pos(2, 4))
	is.True(!ok)
	is.Equal(contexts[0].Board.Turn(), board.Green)
	is.Equal(contexts[0].Board.ArrowCount(board.Red), 10)
	// The input board is untouched.
	_, ok = fb.OctiAt(board.Pos(2, 4))
	is.True(ok)
}

func TestPrioritizeWinFirst(t *testing.T) {
	is := is.New(t)
	b := board.NewEmpty(board.StandardBounds, board.Red, 11, 12)
	is.NoErr(b.Place(board.Red, board.Pos(2, 2), board.North))
	is.NoErr(b.Place(board.Green, board.Pos(5, 6)))
	contexts := Prioritize(b, movegen.GenAll(b, 0), testWeights)
	is.Equal(contexts[0].Move.String(), "mov (2,2) 2")
	is.Equal(contexts[0].Priority, math.MaxInt)
}

func TestScoreLosingMove(t *testing.T) {
	is := is.New(t)
	before := board.NewEmpty(board.StandardBounds, board.Red, 12, 12)
	is.NoErr(before.Place(board.Red, board.Pos(0, 3)))
	is.NoErr(before.Place(board.Green, board.Pos(2, 5)))
	mover, _ := before.OctiAt(board.Pos(0, 3))
	m := board.NewArrowMove(board.Pos(0, 3), board.East)
	is.Equal(score(before, before, m, mover, board.StandardBounds, testWeights), math.MinInt)
}

func TestReadWeights(t *testing.T) {
	w, err := ReadWeights(strings.NewReader("has-moved: 1\nmovement: 2\ncapture: 3\narrow-concentration: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, Weights{HasMoved: 1, Movement: 2, Capture: 3, ArrowConcentration: 4}, *w)

	_, err = ReadWeights(strings.NewReader("kill: 3\n"))
	assert.Error(t, err)
}
