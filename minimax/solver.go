// Package minimax picks a move with a fixed-depth minimax search with
// alpha-beta pruning over search boards. Red maximizes, Green minimizes.
package minimax

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/config"
	"github.com/domino14/octi/equity"
	"github.com/domino14/octi/fastboard"
	"github.com/domino14/octi/movegen"
	"github.com/domino14/octi/priority"
)

var (
	ErrZeroDepth = errors.New("search depth must be at least 1")
	ErrNoMoves   = errors.New("no possible moves from current state")
	ErrGameOver  = errors.New("game is already decided")
)

// Stats describes the last Solve.
type Stats struct {
	Nodes       int
	Evaluations int
	Cutoffs     int
	MemoLookups uint64
	MemoHits    uint64
	MemoUsed    int
	MemoStored  uint64
	Elapsed     time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes: %d evaluations: %d cutoffs: %d memo: %d/%d hits (%d used, %d stored) time: %v",
		s.Nodes, s.Evaluations, s.Cutoffs, s.MemoHits, s.MemoLookups, s.MemoUsed, s.MemoStored, s.Elapsed)
}

// Solver holds the weights and the memo table. It is not safe for
// concurrent use; give every goroutine its own.
type Solver struct {
	eval      *equity.EvalData
	weights   *priority.Weights
	threshold int
	mirror    bool

	memo      *memo
	stats     Stats
	principal *board.Move
	pv        PVLine
}

func NewSolver(eval *equity.EvalData, weights *priority.Weights) *Solver {
	return &Solver{
		eval:      eval,
		weights:   weights,
		threshold: movegen.DefaultRepetitionThreshold,
	}
}

// NewSolverFromConfig loads the weight documents the config names.
func NewSolverFromConfig(cfg *config.Config) (*Solver, error) {
	eval, err := equity.LoadEvalData(cfg)
	if err != nil {
		return nil, err
	}
	weights, err := priority.LoadWeights(cfg)
	if err != nil {
		return nil, err
	}
	s := NewSolver(eval, weights)
	s.SetRepetitionThreshold(cfg.GetInt(config.ConfigRepetitionThreshold))
	s.SetMirrorMemo(cfg.GetBool(config.ConfigMirrorMemo))
	return s, nil
}

func (s *Solver) SetRepetitionThreshold(n int) {
	s.threshold = n
}

// SetMirrorMemo turns on mirrored memo lookups. It has no effect unless
// the evaluation weights are left-right symmetric.
func (s *Solver) SetMirrorMemo(on bool) {
	s.mirror = on && s.eval.MirrorSymmetric()
}

func (s *Solver) MirrorMemo() bool {
	return s.mirror
}

func (s *Solver) Stats() Stats {
	return s.stats
}

// PrincipalMove is the move the last successful Solve returned.
func (s *Solver) PrincipalMove() *board.Move {
	return s.principal
}

// PrincipalVariation is the line of best play found by the last Solve.
func (s *Solver) PrincipalVariation() PVLine {
	return s.pv
}

// Solve searches depth plies from b and returns the best move for the side
// to move with its score.
func (s *Solver) Solve(b board.Boardable, depth int) (*board.Move, Score, error) {
	if depth < 1 {
		return nil, Score{}, ErrZeroDepth
	}
	root, err := fastboard.New(b)
	if err != nil {
		return nil, Score{}, err
	}
	if w, ok := equity.Winner(root); ok {
		return nil, Score{}, fmt.Errorf("%w: %v won", ErrGameOver, w)
	}
	log.Debug().Int("depth", depth).
		Bool("mirror-memo", s.mirror).
		Int("repetition-threshold", s.threshold).
		Str("turn", root.Turn().String()).
		Msg("minimax-solve-config")

	tstart := time.Now()
	s.memo = newMemo()
	s.stats = Stats{}
	s.principal = nil

	alpha := Score{Value: equity.GreenWin, Plies: math.MinInt}
	beta := Score{Value: equity.RedWin, Plies: math.MinInt}
	s.pv.Clear()
	score, m := s.search(root, depth, 0, alpha, beta, &s.pv)

	s.stats.MemoLookups = s.memo.lookups
	s.stats.MemoHits = s.memo.hits
	s.stats.MemoStored = s.memo.created
	s.stats.Elapsed = time.Since(tstart)
	log.Debug().Int("nodes", s.stats.Nodes).
		Uint64("memo-hits", s.stats.MemoHits).
		Int("cutoffs", s.stats.Cutoffs).
		Float64("time-elapsed-sec", s.stats.Elapsed.Seconds()).
		Str("pv", s.pv.NLBString()).
		Msg("solve-returning")

	if m == nil {
		return nil, Score{}, ErrNoMoves
	}
	s.principal = m
	return m, score, nil
}

func (s *Solver) search(b *fastboard.Board, depth, ply int, alpha, beta Score, pv *PVLine) (Score, *board.Move) {
	s.stats.Nodes++
	if _, over := equity.Winner(b); over || depth == 0 {
		s.stats.Evaluations++
		return Score{Value: equity.Evaluate(b, s.eval, s.threshold), Plies: ply}, nil
	}

	turn := b.Turn()
	contexts := priority.Prioritize(b, movegen.GenAll(b, s.threshold), s.weights)

	var best Score
	var bestMove *board.Move
	for _, c := range contexts {
		var childPV PVLine
		childScore, ok := s.probe(c.Board, depth-1, ply+1, alpha, beta)
		if !ok {
			childScore, _ = s.search(c.Board, depth-1, ply+1, alpha, beta, &childPV)
			s.remember(c.Board, depth-1, ply+1, alpha, beta, childScore)
		}
		if bestMove == nil || childScore.better(best, turn) {
			best, bestMove = childScore, c.Move
			pv.Update(c.Move, childPV, childScore)
		}

		if turn == board.Red {
			if best.better(alpha, board.Red) {
				alpha = best
			}
			if best.Value >= beta.Value {
				s.stats.Cutoffs++
				break
			}
		} else {
			if best.better(beta, board.Green) {
				beta = best
			}
			if best.Value <= alpha.Value {
				s.stats.Cutoffs++
				break
			}
		}
	}
	if bestMove == nil {
		// No legal move for the side to move: nothing to search below.
		s.stats.Evaluations++
		return Score{Value: equity.Evaluate(b, s.eval, s.threshold), Plies: ply}, nil
	}
	return best, bestMove
}

// probe looks b up in the memo, and its mirror image if enabled. An entry
// is only used when it was searched at least depth deep and its bound
// settles the question for the current window.
func (s *Solver) probe(b *fastboard.Board, depth, ply int, alpha, beta Score) (Score, bool) {
	e := s.memo.lookup(b)
	if e == nil && s.mirror {
		mb := b.Mirror()
		e = s.memo.lookup(&mb)
	}
	if e == nil || e.depth < depth {
		return Score{}, false
	}
	switch e.flag {
	case boundLower:
		if e.value < beta.Value {
			return Score{}, false
		}
	case boundUpper:
		if e.value > alpha.Value {
			return Score{}, false
		}
	}
	s.stats.MemoUsed++
	return Score{Value: e.value, Plies: e.plies + ply}, true
}

func (s *Solver) remember(b *fastboard.Board, depth, ply int, alpha, beta, sc Score) {
	flag := boundExact
	switch {
	case sc.Value <= alpha.Value:
		flag = boundUpper
	case sc.Value >= beta.Value:
		flag = boundLower
	}
	s.memo.store(memoEntry{
		board: *b,
		value: sc.Value,
		plies: sc.Plies - ply,
		depth: depth,
		flag:  flag,
	})
}
