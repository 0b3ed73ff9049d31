package goabnorm

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Alternative selects the alternative hypothesis of a rank test.
type Alternative int

const (
	// TwoSided tests for any difference between the samples.
	TwoSided Alternative = iota
	// Less tests whether the first sample is stochastically smaller.
	Less
	// Greater tests whether the first sample is stochastically larger.
	Greater
)

var errEmptySample = errors.New("goabnorm: rank test requires non-empty samples")

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// averageRanks assigns 1-based ranks to xs, averaging over ties. It also
// returns the tie-size correction term sum(t^3 - t) over tie groups.
func averageRanks(xs []float64) (ranks []float64, tieTerm float64) {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks = make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		// tie group spans positions i..j-1
		avg := float64(i+j+1) / 2 // mean of ranks i+1..j
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		t := float64(j - i)
		tieTerm += t*t*t - t
		i = j
	}
	return ranks, tieTerm
}

func pValue(z float64, alt Alternative) float64 {
	switch alt {
	case Less:
		return stdNormal.CDF(z)
	case Greater:
		return stdNormal.Survival(z)
	default:
		return 2 * stdNormal.Survival(math.Abs(z))
	}
}

// RankSum performs the Wilcoxon rank-sum (Mann-Whitney) test of x against y
// using the tie-corrected normal approximation. NaN entries are dropped
// before ranking. It returns the z statistic and the p-value for the chosen
// alternative.
func RankSum(x, y []float64, alt Alternative) (z, p float64, err error) {
	x = finite(x)
	y = finite(y)
	n1, n2 := len(x), len(y)
	if n1 == 0 || n2 == 0 {
		return math.NaN(), math.NaN(), errEmptySample
	}

	combined := make([]float64, 0, n1+n2)
	combined = append(combined, x...)
	combined = append(combined, y...)
	ranks, tieTerm := averageRanks(combined)

	var rankSumX float64
	for i := 0; i < n1; i++ {
		rankSumX += ranks[i]
	}

	n := float64(n1 + n2)
	mean := float64(n1) * (n + 1) / 2
	variance := float64(n1) * float64(n2) / 12 * ((n + 1) - tieTerm/(n*(n-1)))
	if variance <= 0 {
		// all observations tied
		return 0, pValue(0, alt), nil
	}
	z = (rankSumX - mean) / math.Sqrt(variance)
	return z, pValue(z, alt), nil
}

// WilcoxonSignedRank performs the Wilcoxon signed-rank test on paired samples
// x and y, or on x against zero when y is nil. Pairs with a NaN member and
// zero differences are dropped, and the p-value comes from the tie-corrected
// normal approximation. The returned statistic is the positive-rank sum W+.
func WilcoxonSignedRank(x, y []float64, alt Alternative) (w, p float64, err error) {
	if y != nil && len(x) != len(y) {
		return math.NaN(), math.NaN(), errors.New("goabnorm: signed-rank samples must be paired")
	}

	diffs := make([]float64, 0, len(x))
	for i, v := range x {
		d := v
		if y != nil {
			d = v - y[i]
		}
		if math.IsNaN(d) || d == 0 {
			continue
		}
		diffs = append(diffs, d)
	}
	n := len(diffs)
	if n == 0 {
		return math.NaN(), math.NaN(), errEmptySample
	}

	abs := make([]float64, n)
	for i, d := range diffs {
		abs[i] = math.Abs(d)
	}
	ranks, tieTerm := averageRanks(abs)

	for i, d := range diffs {
		if d > 0 {
			w += ranks[i]
		}
	}

	nf := float64(n)
	mean := nf * (nf + 1) / 4
	variance := nf*(nf+1)*(2*nf+1)/24 - tieTerm/48
	if variance <= 0 {
		return w, pValue(0, alt), nil
	}
	z := (w - mean) / math.Sqrt(variance)
	return w, pValue(z, alt), nil
}
