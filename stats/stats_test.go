package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		plies []int
		mean  float64
		stdev float64
		min   float64
		max   float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 10, 23},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 10, 124},
		{[]int{1}, 1, 0, 1, 1},
		{[]int{}, 0, 0, 0, 0},
		{[]int{1, 1}, 1, 0, 1, 1},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, p := range c.plies {
			s.Push(float64(p))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.True(FuzzyEqual(s.Min(), c.min))
		is.True(FuzzyEqual(s.Max(), c.max))
		is.Equal(s.Iterations(), len(c.plies))
	}
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(99), 2.5758293035489))
}

func TestWinRate(t *testing.T) {
	is := is.New(t)
	rate, margin := WinRate(60, 20, 100, 95)
	is.True(FuzzyEqual(rate, 0.7))
	is.True(FuzzyEqual(margin, 1.959963984540054*0.0458257569495584))

	rate, margin = WinRate(0, 0, 0, 95)
	is.Equal(rate, 0.0)
	is.Equal(margin, 0.0)
}
