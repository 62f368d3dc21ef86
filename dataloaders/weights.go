package dataloaders

import (
	"bytes"
	"embed"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

//go:embed defaults/*.yaml
var defaults embed.FS

// OpenWeights opens a weight document from dataPath. If the data path has
// no such file, the built-in document of the same name is used.
func OpenWeights(dataPath, filename string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(dataPath, filename))
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	bts, err := defaults.ReadFile("defaults/" + filename)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("weights-file", filename).Str("dir", dataPath).
		Msg("no weights file in data path; using built-in")
	return io.NopCloser(bytes.NewReader(bts)), nil
}
