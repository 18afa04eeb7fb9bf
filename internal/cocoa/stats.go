package cocoa

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of the non-NaN values, or NaN when there
// are none.
func Mean(xs []float64) float64 {
	clean := dropNaN(xs)
	if len(clean) == 0 {
		return math.NaN()
	}
	return stat.Mean(clean, nil)
}

// StdDev returns the sample standard deviation of the non-NaN values.
func StdDev(xs []float64) float64 {
	clean := dropNaN(xs)
	if len(clean) < 2 {
		return math.NaN()
	}
	return stat.StdDev(clean, nil)
}

// PctChange returns element-over-previous percent changes. The first element
// has no predecessor and is NaN, as is any change involving a NaN input.
func PctChange(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		if i == 0 || math.IsNaN(xs[i]) || math.IsNaN(xs[i-1]) || xs[i-1] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (xs[i] - xs[i-1]) / xs[i-1] * 100
	}
	return out
}

// Correlation returns the Pearson correlation of the pairwise-complete
// observations of xs and ys. Pairs with a NaN on either side are dropped.
func Correlation(xs, ys []float64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	var cx, cy []float64
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		cx = append(cx, xs[i])
		cy = append(cy, ys[i])
	}
	if len(cx) < 2 {
		return math.NaN()
	}
	return stat.Correlation(cx, cy, nil)
}

// MonthPoint is one month of a resampled series.
type MonthPoint struct {
	Month time.Time // first day of the month
	Value float64
}

// MonthlyMean resamples daily price observations to monthly means of the
// picked field, in chronological order. Months whose observations are all
// NaN yield NaN.
func MonthlyMean(days []PriceDay, pick func(PriceDay) float64) []MonthPoint {
	byMonth := map[time.Time][]float64{}
	for _, d := range days {
		m := time.Date(d.Date.Year(), d.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[m] = append(byMonth[m], pick(d))
	}
	months := make([]time.Time, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]MonthPoint, 0, len(months))
	for _, m := range months {
		out = append(out, MonthPoint{Month: m, Value: Mean(byMonth[m])})
	}
	return out
}

func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
