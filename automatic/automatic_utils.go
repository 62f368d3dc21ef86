package automatic

// Computer vs computer games, played in parallel, with a CSV line per game.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/octi/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int

	ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

	running atomic.Bool
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// StartCompVComp plays numGames games over threads workers, writing one
// CSV record per game to outputFilename, and returns the summary of the
// games that finished. Only one batch may run at a time.
func StartCompVComp(ctx context.Context, cfg *config.Config, numGames, threads int,
	outputFilename string) (*Summary, error) {

	if !running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	defer running.Store(false)

	threads = max(min(threads, numGames), 1)
	seeds, err := seedsFor(cfg.GetString(config.ConfigAutoplaySeedFile), numGames)
	if err != nil {
		return nil, err
	}
	runners := make([]*GameRunner, threads)
	for i := range runners {
		if runners[i], err = NewGameRunner(cfg); err != nil {
			return nil, err
		}
	}

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return nil, err
	}
	defer logfile.Close()
	log.Debug().Int("games", numGames).Int("threads", threads).Msg("starting-autoplay")

	CVCCounter.Set(0)
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int, 100)
	results := make(chan GameResult, 100)

	g.Go(func() error {
		defer close(jobs)
		for i := range numGames {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for _, r := range runners {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for id := range jobs {
				res, err := r.PlayGame(gctx, id, seeds[id])
				if err != nil {
					return err
				}
				select {
				case results <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	summary := &Summary{}
	w := csv.NewWriter(logfile)
	writeErr := w.Write(logHeader)
	for res := range results {
		if writeErr == nil {
			writeErr = w.Write(res.csvRecord())
		}
		summary.Add(res.winnerString(), res.Plies)
		CVCCounter.Add(1)
	}
	w.Flush()

	if err := g.Wait(); err != nil {
		return summary, err
	}
	if writeErr == nil {
		writeErr = w.Error()
	}
	log.Info().Int("games", summary.Games).Msg("autoplay-finished")
	return summary, writeErr
}
