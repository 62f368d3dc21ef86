package automatic

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/config"
	"github.com/domino14/octi/game"
	"github.com/domino14/octi/minimax"
	"github.com/domino14/octi/movegen"
)

// Outcome is how a self-play game ended.
type Outcome int

const (
	OutcomeWin Outcome = iota
	// OutcomePlyCap is a game stopped at the ply limit.
	OutcomePlyCap
	// OutcomeStuck is a game where the side to move had no legal move.
	OutcomeStuck
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomePlyCap:
		return "ply-cap"
	case OutcomeStuck:
		return "stuck"
	}
	return "unknown"
}

// GameResult is one finished self-play game. Winner is only meaningful
// when Outcome is OutcomeWin; every other outcome counts as a draw.
type GameResult struct {
	ID      int
	Outcome Outcome
	Winner  board.Team
	Plies   int
	Octis   [board.NumTeams]int
	Arrows  [board.NumTeams]int
	Moves   []string
}

func (r GameResult) winnerString() string {
	if r.Outcome != OutcomeWin {
		return "draw"
	}
	return strings.ToLower(r.Winner.String())
}

// csvRecord lays the result out in logHeader's column order.
func (r GameResult) csvRecord() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.winnerString(),
		r.Outcome.String(),
		strconv.Itoa(r.Plies),
		strconv.Itoa(r.Octis[board.Red]),
		strconv.Itoa(r.Octis[board.Green]),
		strconv.Itoa(r.Arrows[board.Red]),
		strconv.Itoa(r.Arrows[board.Green]),
		strings.Join(r.Moves, ";"),
	}
}

var logHeader = []string{"game_id", "winner", "outcome", "plies",
	"red_octis", "green_octis", "red_arrows", "green_arrows", "moves"}

// GameRunner plays computer vs computer games. It owns a solver and so
// must not be shared between goroutines.
type GameRunner struct {
	solver      *minimax.Solver
	depth       int
	randomPlies int
	maxPlies    int
	threshold   int
}

func NewGameRunner(cfg *config.Config) (*GameRunner, error) {
	solver, err := minimax.NewSolverFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &GameRunner{
		solver:      solver,
		depth:       cfg.GetInt(config.ConfigAutoplayDepth),
		randomPlies: cfg.GetInt(config.ConfigAutoplayRandomPlies),
		maxPlies:    cfg.GetInt(config.ConfigAutoplayMaxPlies),
		threshold:   cfg.GetInt(config.ConfigRepetitionThreshold),
	}, nil
}

// PlayGame plays one game from the standard start. The first randomPlies
// moves are drawn uniformly from the legal moves using an RNG seeded with
// seed; the rest are the solver's choice at the runner's depth.
func (r *GameRunner) PlayGame(ctx context.Context, id int, seed [32]byte) (GameResult, error) {
	rng := frand.NewCustom(seed[:], 32, 12)
	g := game.NewGame(board.NewStandard(), r.solver, r.depth)
	res := GameResult{ID: id, Outcome: OutcomePlyCap}

	for g.Cursor() < r.maxPlies {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if w, ok := g.Winner(); ok {
			res.Outcome, res.Winner = OutcomeWin, w
			break
		}
		var err error
		if g.Cursor() < r.randomPlies {
			err = r.playRandom(g, rng)
		} else {
			_, _, err = g.AIMove(r.depth)
		}
		if errors.Is(err, minimax.ErrNoMoves) {
			res.Outcome = OutcomeStuck
			break
		}
		if err != nil {
			return res, err
		}
	}
	// A win on the final allowed ply still counts.
	if w, ok := g.Winner(); ok {
		res.Outcome, res.Winner = OutcomeWin, w
	}

	st := g.State()
	for _, o := range st.Octis() {
		res.Octis[o.Team]++
	}
	res.Arrows[board.Red] = st.ArrowCount(board.Red)
	res.Arrows[board.Green] = st.ArrowCount(board.Green)
	res.Plies = g.Cursor()
	res.Moves = g.HistoryStrings()
	log.Debug().Int("game", id).Str("outcome", res.Outcome.String()).
		Str("winner", res.winnerString()).Int("plies", res.Plies).Msg("game-finished")
	return res, nil
}

func (r *GameRunner) playRandom(g *game.Game, rng *frand.RNG) error {
	moves := movegen.GenAll(g.State(), r.threshold)
	if len(moves) == 0 {
		return minimax.ErrNoMoves
	}
	return g.PlayMove(moves[rng.Intn(len(moves))])
}
