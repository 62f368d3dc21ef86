// Package game wraps a rules board with a move history and a cursor that
// can be moved back and forth through it.
package game

import (
	"errors"

	"github.com/samber/lo"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/equity"
	"github.com/domino14/octi/minimax"
)

var (
	ErrNotAtHead = errors.New("cannot make a move when the cursor is not at the end of the history")
	ErrNoSolver  = errors.New("no AI configured for this game")
)

type Game struct {
	state   *board.Board
	start   *board.Board
	history []*board.Move
	cursor  int

	solver       *minimax.Solver
	defaultDepth int
}

// NewGame starts a game from start. solver may be nil if AI moves are
// never requested.
func NewGame(start *board.Board, solver *minimax.Solver, defaultDepth int) *Game {
	return &Game{
		state:        start.Clone(),
		start:        start.Clone(),
		solver:       solver,
		defaultDepth: defaultDepth,
	}
}

// State is the board at the cursor.
func (g *Game) State() *board.Board {
	return g.state
}

func (g *Game) Start() *board.Board {
	return g.start
}

func (g *Game) History() []*board.Move {
	return g.history
}

func (g *Game) HistoryStrings() []string {
	return lo.Map(g.history, func(m *board.Move, _ int) string { return m.String() })
}

func (g *Game) Cursor() int {
	return g.cursor
}

func (g *Game) Solver() *minimax.Solver {
	return g.solver
}

func (g *Game) Winner() (board.Team, bool) {
	return equity.Winner(g.state)
}

// PlayMove plays m at the head of the history.
func (g *Game) PlayMove(m *board.Move) error {
	if g.cursor < len(g.history) {
		return ErrNotAtHead
	}
	if err := g.state.MakeMove(m); err != nil {
		return err
	}
	g.history = append(g.history, m)
	g.cursor++
	return nil
}

// AIMove asks the solver for a move at depth and plays it. A depth of 0
// means the game's default depth.
func (g *Game) AIMove(depth int) (*board.Move, minimax.Score, error) {
	if g.solver == nil {
		return nil, minimax.Score{}, ErrNoSolver
	}
	if g.cursor < len(g.history) {
		return nil, minimax.Score{}, ErrNotAtHead
	}
	if depth == 0 {
		depth = g.defaultDepth
	}
	m, score, err := g.solver.Solve(g.state, depth)
	if err != nil {
		return nil, minimax.Score{}, err
	}
	if err := g.PlayMove(m); err != nil {
		return nil, minimax.Score{}, err
	}
	return m, score, nil
}

// Forward replays up to n moves from the cursor.
func (g *Game) Forward(n int) {
	to := min(g.cursor+n, len(g.history))
	for ; g.cursor < to; g.cursor++ {
		if err := g.state.MakeMove(g.history[g.cursor]); err != nil {
			panic("history move no longer applies: " + err.Error())
		}
	}
}

// Backward rewinds n moves by replaying the history from the start.
func (g *Game) Backward(n int) {
	g.SetCursor(max(g.cursor-n, 0))
}

func (g *Game) ToStart() {
	g.SetCursor(0)
}

func (g *Game) ToEnd() {
	g.Forward(len(g.history))
}

// SetCursor moves the cursor to position to, clamped to the history.
func (g *Game) SetCursor(to int) {
	g.state = g.start.Clone()
	g.cursor = 0
	g.Forward(max(to, 0))
}

// Overwrite drops every move after the cursor.
func (g *Game) Overwrite() {
	g.history = g.history[:g.cursor]
}

// Process carries out a parsed action.
func (g *Game) Process(a Action) error {
	switch a.Type {
	case ActionStart:
		g.ToStart()
	case ActionEnd:
		g.ToEnd()
	case ActionForward:
		g.Forward(a.N)
	case ActionBackward:
		g.Backward(a.N)
	case ActionMove:
		return g.PlayMove(a.Move)
	case ActionAI:
		_, _, err := g.AIMove(a.N)
		return err
	case ActionOverwrite:
		g.Overwrite()
	}
	return nil
}
