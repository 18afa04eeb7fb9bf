package cocoa

import (
	"fmt"
	"math"
)

// Decomposition splits a series into additive trend, seasonal, and residual
// components. All three slices have the length of the input; positions where
// the centered moving average is undefined (the half-window at each end) are
// NaN in Trend and Resid.
type Decomposition struct {
	Trend    []float64
	Seasonal []float64
	Resid    []float64
}

// Decompose performs a classical additive seasonal decomposition with the
// given period: centered moving-average trend, per-phase means of the
// detrended series (centered to zero) as the seasonal component, and what
// remains as residual. The series must cover at least two full periods.
func Decompose(xs []float64, period int) (Decomposition, error) {
	if period < 2 {
		return Decomposition{}, fmt.Errorf("decompose: period %d too small", period)
	}
	if len(xs) < 2*period {
		return Decomposition{}, fmt.Errorf("decompose: need at least %d observations, have %d", 2*period, len(xs))
	}

	trend := movingAverage(xs, period)

	// Per-phase means of the detrended series.
	sums := make([]float64, period)
	counts := make([]int, period)
	for i, x := range xs {
		if math.IsNaN(trend[i]) || math.IsNaN(x) {
			continue
		}
		sums[i%period] += x - trend[i]
		counts[i%period]++
	}
	phase := make([]float64, period)
	var total float64
	for i := range phase {
		if counts[i] == 0 {
			return Decomposition{}, fmt.Errorf("decompose: phase %d has no observations", i)
		}
		phase[i] = sums[i] / float64(counts[i])
		total += phase[i]
	}
	// Center the seasonal indexes so they sum to zero over one period.
	offset := total / float64(period)
	for i := range phase {
		phase[i] -= offset
	}

	d := Decomposition{
		Trend:    trend,
		Seasonal: make([]float64, len(xs)),
		Resid:    make([]float64, len(xs)),
	}
	for i, x := range xs {
		d.Seasonal[i] = phase[i%period]
		d.Resid[i] = x - trend[i] - d.Seasonal[i]
	}
	return d, nil
}

// movingAverage computes the centered moving average of window w. For even
// windows the two edge points carry half weight, the standard 2xMA used in
// classical decomposition.
func movingAverage(xs []float64, w int) []float64 {
	out := make([]float64, len(xs))
	for i := range out {
		out[i] = math.NaN()
	}
	half := w / 2
	for i := half; i < len(xs)-half; i++ {
		var sum float64
		ok := true
		if w%2 == 1 {
			for j := i - half; j <= i+half; j++ {
				if math.IsNaN(xs[j]) {
					ok = false
					break
				}
				sum += xs[j]
			}
			if ok {
				out[i] = sum / float64(w)
			}
			continue
		}
		for j := i - half; j <= i+half; j++ {
			if math.IsNaN(xs[j]) {
				ok = false
				break
			}
			weight := 1.0
			if j == i-half || j == i+half {
				weight = 0.5
			}
			sum += weight * xs[j]
		}
		if ok {
			out[i] = sum / float64(w)
		}
	}
	return out
}
