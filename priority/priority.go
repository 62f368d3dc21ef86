// Package priority orders candidate moves so the search looks at the most
// promising ones first. Ordering only changes how fast alpha-beta prunes,
// never what it returns.
package priority

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/cache"
	"github.com/domino14/octi/config"
	"github.com/domino14/octi/dataloaders"
	"github.com/domino14/octi/equity"
)

const (
	WinPriority  = math.MaxInt
	LossPriority = math.MinInt
)

type Weights struct {
	HasMoved           int `yaml:"has-moved"`
	Movement           int `yaml:"movement"`
	Capture            int `yaml:"capture"`
	ArrowConcentration int `yaml:"arrow-concentration"`
}

// Context is a move together with the board it leads to, so the board is
// only computed once.
type Context[B any] struct {
	Move     *board.Move
	Board    B
	Priority int
}

// Prioritize applies every move to a copy of b and returns the results
// sorted by descending priority. Moves of equal priority keep their
// generation order.
func Prioritize[B board.Cloner[B]](b B, moves []*board.Move, w *Weights) []Context[B] {
	bounds := b.Bounds()
	contexts := make([]Context[B], 0, len(moves))
	for _, m := range moves {
		mover, ok := b.OctiAt(m.Pos())
		if !ok {
			panic(fmt.Sprintf("no octi for move %v", m))
		}
		next, _, err := board.Play(b, m)
		if err != nil {
			panic(fmt.Sprintf("move %v does not apply: %v", m, err))
		}
		contexts = append(contexts, Context[B]{
			Move:     m,
			Board:    next,
			Priority: score(b, next, m, mover, bounds, w),
		})
	}
	slices.SortStableFunc(contexts, func(a, c Context[B]) int {
		switch {
		case a.Priority > c.Priority:
			return -1
		case a.Priority < c.Priority:
			return 1
		}
		return 0
	})
	return contexts
}

func score(before, after board.Boardable, m *board.Move, mover board.Octi,
	bounds board.Bounds, w *Weights) int {

	if winner, ok := equity.Winner(after); ok {
		if winner == mover.Team {
			return WinPriority
		}
		return LossPriority
	}
	p := 0
	if !board.IsHome(m.Pos(), mover.Team, bounds) {
		p += w.HasMoved
	}
	switch m.Action() {
	case board.MoveTypeArrow:
		p += mover.ArrowCount() * w.ArrowConcentration
	case board.MoveTypeMove:
		p += w.Movement
		p += (enemies(before, mover.Team) - enemies(after, mover.Team)) * w.Capture
	}
	return p
}

func enemies(b board.Boardable, t board.Team) int {
	return lo.CountBy(b.Octis(), func(o board.Octi) bool { return o.Team != t })
}

// ReadWeights parses a priority document.
func ReadWeights(r io.Reader) (*Weights, error) {
	w := &Weights{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(w); err != nil {
		return nil, fmt.Errorf("malformed priority weights: %w", err)
	}
	return w, nil
}

func loadWeights(cfg *config.Config, key string) (any, error) {
	dataPath, filename := filepath.Split(key)
	r, err := dataloaders.OpenWeights(dataPath, filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadWeights(r)
}

// LoadWeights returns the priority document named by the config.
func LoadWeights(cfg *config.Config) (*Weights, error) {
	key := filepath.Join(cfg.GetString(config.ConfigDataPath), cfg.GetString(config.ConfigPriorityFile))
	obj, err := cache.Load(cfg, key, loadWeights)
	if err != nil {
		return nil, err
	}
	return obj.(*Weights), nil
}
