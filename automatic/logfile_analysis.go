package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/domino14/octi/stats"
)

// Summary aggregates finished games. A draw counts as half a win for the
// win-rate interval.
type Summary struct {
	Games     int
	RedWins   int
	GreenWins int
	Draws     int
	Plies     stats.Statistic
}

// Add records one game. winner is "red", "green" or "draw".
func (s *Summary) Add(winner string, plies int) {
	s.Games++
	switch winner {
	case "red":
		s.RedWins++
	case "green":
		s.GreenWins++
	default:
		s.Draws++
	}
	s.Plies.Push(float64(plies))
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", s.Games)
	fmt.Fprintf(&sb, "Red wins: %d, Green wins: %d, Draws: %d\n", s.RedWins, s.GreenWins, s.Draws)
	rate, margin := stats.WinRate(s.RedWins, s.Draws, s.Games, 95)
	fmt.Fprintf(&sb, "Red win rate: %.3f +/- %.3f (95%% confidence)\n", rate, margin)
	fmt.Fprintf(&sb, "Game length: mean %.2f, stdev %.2f, min %.0f, max %.0f plies\n",
		s.Plies.Mean(), s.Plies.Stdev(), s.Plies.Min(), s.Plies.Max())
	return sb.String()
}

// AnalyzeLogFile summarizes a game log written by StartCompVComp.
func AnalyzeLogFile(path string) (*Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r := csv.NewReader(file)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading log header: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[h] = i
	}
	winnerCol, ok1 := cols["winner"]
	pliesCol, ok2 := cols["plies"]
	if !ok1 || !ok2 {
		return nil, errors.New("log file is missing the winner or plies column")
	}

	summary := &Summary{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		plies, err := strconv.Atoi(record[pliesCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", summary.Games+2, err)
		}
		summary.Add(record[winnerCol], plies)
	}
	return summary, nil
}
