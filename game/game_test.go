package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/config"
	"github.com/domino14/octi/minimax"
)

func mustMove(t *testing.T, s string) *board.Move {
	m, err := board.ParseMove(s)
	require.NoError(t, err)
	return m
}

func newTestGame(t *testing.T) *Game {
	solver, err := minimax.NewSolverFromConfig(config.DefaultConfig())
	require.NoError(t, err)
	return NewGame(board.NewStandard(), solver, 1)
}

func TestPlayAndNavigate(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	for _, s := range []string{"arr (1,5) 2", "arr (1,1) 6", "mov (1,5) 2"} {
		is.NoErr(g.PlayMove(mustMove(t, s)))
	}
	is.Equal(g.Cursor(), 3)
	is.Equal(g.HistoryStrings(), []string{"arr (1,5) 2", "arr (1,1) 6", "mov (1,5) 2"})
	_, ok := g.State().OctiAt(board.Pos(1, 4))
	is.True(ok)

	g.Backward(2)
	is.Equal(g.Cursor(), 1)
	is.Equal(g.State().Turn(), board.Green)
	is.Equal(g.State().ArrowCount(board.Red), 11)
	is.Equal(g.State().ArrowCount(board.Green), 12)

	// Moves can only be played at the head.
	err := g.PlayMove(mustMove(t, "arr (2,1) 6"))
	is.True(errors.Is(err, ErrNotAtHead))

	g.Forward(10)
	is.Equal(g.Cursor(), 3)
	g.ToStart()
	is.Equal(g.Cursor(), 0)
	is.True(g.State().Equals(g.Start()))
	g.Backward(1)
	is.Equal(g.Cursor(), 0)
	g.ToEnd()
	is.Equal(g.Cursor(), 3)
	g.SetCursor(2)
	is.Equal(g.State().ArrowCount(board.Green), 11)
}

func TestOverwrite(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	is.NoErr(g.PlayMove(mustMove(t, "arr (1,5) 2")))
	is.NoErr(g.PlayMove(mustMove(t, "arr (1,1) 6")))
	g.Backward(1)
	g.Overwrite()
	is.Equal(len(g.History()), 1)
	is.NoErr(g.PlayMove(mustMove(t, "arr (2,1) 6")))
	is.Equal(g.HistoryStrings(), []string{"arr (1,5) 2", "arr (2,1) 6"})
}

func TestIllegalMoveLeavesGameAlone(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	err := g.PlayMove(mustMove(t, "mov (1,5) 1"))
	is.True(errors.Is(err, board.ErrArrowMissing))
	is.Equal(g.Cursor(), 0)
	is.Equal(g.State().Turn(), board.Red)
}

func TestAIMove(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	m, _, err := g.AIMove(0)
	is.NoErr(err)
	is.Equal(g.Cursor(), 1)
	is.True(g.History()[0].Equals(m))
	is.Equal(g.State().Turn(), board.Green)

	g.Backward(1)
	_, _, err = g.AIMove(1)
	is.True(errors.Is(err, ErrNotAtHead))

	noAI := NewGame(board.NewStandard(), nil, 1)
	_, _, err = noAI.AIMove(1)
	is.True(errors.Is(err, ErrNoSolver))
}

func TestWinner(t *testing.T) {
	is := is.New(t)
	b := board.NewEmpty(board.StandardBounds, board.Red, 11, 12)
	is.NoErr(b.Place(board.Red, board.Pos(2, 2), board.North))
	is.NoErr(b.Place(board.Green, board.Pos(5, 6)))
	g := NewGame(b, nil, 1)
	_, ok := g.Winner()
	is.True(!ok)
	is.NoErr(g.PlayMove(mustMove(t, "mov (2,2) 2")))
	w, ok := g.Winner()
	is.True(ok)
	is.Equal(w, board.Red)
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		in   string
		want Action
	}{
		{"start", Action{Type: ActionStart}},
		{"end", Action{Type: ActionEnd}},
		{"forward 3", Action{Type: ActionForward, N: 3}},
		{"backward 2", Action{Type: ActionBackward, N: 2}},
		{"ai", Action{Type: ActionAI}},
		{"ai 4", Action{Type: ActionAI, N: 4}},
		{"overwrite", Action{Type: ActionOverwrite}},
	}
	for _, c := range cases {
		got, err := ParseAction(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	a, err := ParseAction("move mov (2,4) 2 0")
	require.NoError(t, err)
	assert.Equal(t, ActionMove, a.Type)
	assert.Equal(t, "mov (2,4) 2 0", a.Move.String())

	for _, bad := range []string{"", "jump", "forward", "forward x", "backward -1", "ai 1 2", "move arr"} {
		_, err := ParseAction(bad)
		assert.Error(t, err, bad)
	}
	_, err = ParseAction("ai 0")
	assert.ErrorIs(t, err, minimax.ErrZeroDepth)
}

func TestProcess(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	for _, s := range []string{"move arr (1,5) 2", "move arr (1,1) 6", "backward 1", "overwrite", "ai 1", "start", "end"} {
		a, err := ParseAction(s)
		is.NoErr(err)
		is.NoErr(g.Process(a))
	}
	is.Equal(g.Cursor(), 2)
	is.Equal(len(g.History()), 2)
	is.Equal(g.History()[0].String(), "arr (1,5) 2")
}
