package equity

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/domino14/octi/board"
)

var ErrBadEvalData = errors.New("malformed evaluation weights")

// Grid holds one weight per cell, indexed [y][x] relative to the board's
// top-left corner.
type Grid [][]int32

func (g Grid) at(pos board.Position, bounds board.Bounds) int64 {
	return int64(g[pos.Y-bounds.Min.Y][pos.X-bounds.Min.X])
}

func (g Grid) check(bounds board.Bounds) error {
	if len(g) != bounds.Height() {
		return fmt.Errorf("%d rows, want %d", len(g), bounds.Height())
	}
	for y, row := range g {
		if len(row) != bounds.Width() {
			return fmt.Errorf("row %d has %d cells, want %d", y, len(row), bounds.Width())
		}
	}
	return nil
}

func (g Grid) mirrorSymmetric() bool {
	for _, row := range g {
		r := slices.Clone(row)
		slices.Reverse(r)
		if !slices.Equal(r, row) {
			return false
		}
	}
	return true
}

type TeamWeights struct {
	Arrows      [board.NumArrows]int32 `yaml:"arrows"`
	Positions   Grid                   `yaml:"positions"`
	SimpleMoves Grid                   `yaml:"simple-moves"`
	JumpMoves   Grid                   `yaml:"jump-moves"`
}

// EvalData is the evaluation document. It is read once and never
// modified afterwards.
type EvalData struct {
	OctiValue int32 `yaml:"octi-value"`
	Teams     struct {
		Red   TeamWeights `yaml:"red"`
		Green TeamWeights `yaml:"green"`
	} `yaml:"teams"`
}

func (d *EvalData) team(t board.Team) *TeamWeights {
	if t == board.Red {
		return &d.Teams.Red
	}
	return &d.Teams.Green
}

// ReadEvalData parses an evaluation document and checks its grids against
// bounds.
func ReadEvalData(r io.Reader, bounds board.Bounds) (*EvalData, error) {
	d := &EvalData{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadEvalData, err)
	}
	if err := d.Validate(bounds); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *EvalData) Validate(bounds board.Bounds) error {
	for _, t := range []board.Team{board.Red, board.Green} {
		w := d.team(t)
		for name, g := range map[string]Grid{
			"positions":    w.Positions,
			"simple-moves": w.SimpleMoves,
			"jump-moves":   w.JumpMoves,
		} {
			if err := g.check(bounds); err != nil {
				return fmt.Errorf("%w: %v %s: %v", ErrBadEvalData, t, name, err)
			}
		}
	}
	return nil
}

// covers is a quick size check of every grid against bounds. Row lengths
// past the first are left to Validate.
func (d *EvalData) covers(bounds board.Bounds) bool {
	for _, w := range []*TeamWeights{&d.Teams.Red, &d.Teams.Green} {
		for _, g := range []Grid{w.Positions, w.SimpleMoves, w.JumpMoves} {
			if len(g) == 0 || len(g) != bounds.Height() || len(g[0]) != bounds.Width() {
				return false
			}
		}
	}
	return true
}

// MirrorSymmetric reports whether a position and its left-right mirror
// image always score the same under these weights.
func (d *EvalData) MirrorSymmetric() bool {
	for _, t := range []board.Team{board.Red, board.Green} {
		w := d.team(t)
		for a := board.Arrow(0); a < board.NumArrows; a++ {
			if w.Arrows[a] != w.Arrows[a.Mirror()] {
				return false
			}
		}
		if !w.Positions.mirrorSymmetric() || !w.SimpleMoves.mirrorSymmetric() ||
			!w.JumpMoves.mirrorSymmetric() {
			return false
		}
	}
	return true
}
