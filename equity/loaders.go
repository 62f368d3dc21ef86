package equity

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/cache"
	"github.com/domino14/octi/config"
	"github.com/domino14/octi/dataloaders"
)

func loadEvalData(cfg *config.Config, key string) (any, error) {
	dataPath, filename := filepath.Split(key)
	r, err := dataloaders.OpenWeights(dataPath, filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := ReadEvalData(r, board.StandardBounds)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", key).Bool("mirror-symmetric", d.MirrorSymmetric()).
		Msg("loaded-eval-data")
	return d, nil
}

// LoadEvalData returns the evaluation document named by the config,
// sharing one parsed copy per file.
func LoadEvalData(cfg *config.Config) (*EvalData, error) {
	key := filepath.Join(cfg.GetString(config.ConfigDataPath), cfg.GetString(config.ConfigEvalFile))
	obj, err := cache.Load(cfg, key, loadEvalData)
	if err != nil {
		return nil, err
	}
	return obj.(*EvalData), nil
}
