package goabnorm

import (
	"math"
	"sort"
)

// finite returns the non-NaN entries of xs, in order.
func finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountFinite returns the number of non-NaN entries in xs.
func CountFinite(xs []float64) int {
	n := 0
	for _, v := range xs {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// NaNMedian returns the median of the non-NaN entries of xs, or NaN when no
// such entry exists. Even-length medians are the midpoint of the two central
// values.
func NaNMedian(xs []float64) float64 {
	vals := finite(xs)
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

// FractionBelow returns the fraction of non-NaN entries of xs that are less
// than or equal to thresh, or NaN when xs has no non-NaN entries.
func FractionBelow(xs []float64, thresh float64) float64 {
	n, below := 0, 0
	for _, v := range xs {
		if math.IsNaN(v) {
			continue
		}
		n++
		if v <= thresh {
			below++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return float64(below) / float64(n)
}

// MaskSeries copies xs, replacing entries whose keep flag is false with NaN.
// It is used to restrict a D_RS series to interictal or periictal windows.
// The slices must have equal length; mismatches return nil.
func MaskSeries(xs []float64, keep []bool) []float64 {
	if len(xs) != len(keep) {
		return nil
	}
	out := make([]float64, len(xs))
	for i, v := range xs {
		if keep[i] {
			out[i] = v
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// DaysOfData converts the count of non-NaN windows in xs to days of
// recording, given the number of windows per hour.
func DaysOfData(xs []float64, winsPerHour int) float64 {
	if winsPerHour <= 0 {
		return math.NaN()
	}
	return float64(CountFinite(xs)) / float64(winsPerHour*24)
}
