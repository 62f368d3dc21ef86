package automatic

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// GenerateSeeds creates n random opening seeds.
func GenerateSeeds(n int) [][32]byte {
	seeds := make([][32]byte, n)
	for i := range seeds {
		frand.Read(seeds[i][:])
	}
	return seeds
}

// SaveSeeds writes one URL-safe base64 seed per line.
func SaveSeeds(seeds [][32]byte, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating seed file: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := w.WriteString("# octi autoplay opening seeds\n"); err != nil {
		return err
	}
	for _, seed := range seeds {
		if _, err := w.WriteString(base64.RawURLEncoding.EncodeToString(seed[:]) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadSeeds reads a file written by SaveSeeds. Blank lines and lines
// starting with # are skipped.
func LoadSeeds(path string) ([][32]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var seeds [][32]byte
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("seed at line %d: %w", lineNum, err)
		}
		if len(decoded) != 32 {
			return nil, fmt.Errorf("seed at line %d has %d bytes, expected 32", lineNum, len(decoded))
		}
		var seed [32]byte
		copy(seed[:], decoded)
		seeds = append(seeds, seed)
	}
	return seeds, scanner.Err()
}

// seedsFor returns n seeds. With no path they are random. Otherwise they
// are read from path, topped up with random seeds if the file is short,
// and a missing file is created with fresh ones.
func seedsFor(path string, n int) ([][32]byte, error) {
	if path == "" {
		return GenerateSeeds(n), nil
	}
	seeds, err := LoadSeeds(path)
	if errors.Is(err, fs.ErrNotExist) {
		seeds = GenerateSeeds(n)
		log.Info().Str("path", path).Int("n", n).Msg("saving-new-seeds")
		return seeds, SaveSeeds(seeds, path)
	}
	if err != nil {
		return nil, err
	}
	if len(seeds) < n {
		log.Warn().Int("have", len(seeds)).Int("need", n).Msg("seed-file-short")
		seeds = append(seeds, GenerateSeeds(n-len(seeds))...)
	}
	return seeds[:n], nil
}
