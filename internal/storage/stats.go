package storage

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary — сводка по времени выживания.
type Summary struct {
	Count  int
	Best   float64
	Mean   float64
	StdDev float64
	Median float64
}

// Summarize считает сводку по survived_seconds.
func Summarize(runs []Run) Summary {
	if len(runs) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(runs))
	for i, r := range runs {
		xs[i] = r.SurvivedSeconds
	}
	sort.Float64s(xs)

	s := Summary{
		Count: len(xs),
		Best:  xs[len(xs)-1],
	}
	if len(xs) == 1 {
		s.Mean = xs[0]
		s.Median = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	s.Median = median(xs)
	return s
}

// median ожидает отсортированный срез. При чётной длине берётся среднее двух центральных.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
