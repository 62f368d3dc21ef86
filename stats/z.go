package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed Z-value for a confidence interval given in
// percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidenceInterval/100) / 2)
}

// WinRate returns the win fraction over games, counting a draw as half a
// win, and the half-width of its normal-approximation confidence
// interval.
func WinRate(wins, draws, games int, confidenceInterval float64) (rate, margin float64) {
	if games == 0 {
		return 0, 0
	}
	n := float64(games)
	rate = (float64(wins) + float64(draws)/2) / n
	margin = ZVal(confidenceInterval) * math.Sqrt(rate*(1-rate)/n)
	return rate, margin
}
