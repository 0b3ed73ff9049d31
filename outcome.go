package goabnorm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// OutcomeResult summarizes how well a per-patient scalar measure classifies
// surgical outcome. Poor outcome is the positive class throughout.
type OutcomeResult struct {
	// AUC of classifying poor outcome from the measure, NaN when a class is
	// missing after NaN removal.
	AUC float64
	// P is the rank-sum p-value comparing good against poor outcome measures
	// under the requested alternative.
	P float64
	// N is the number of patients kept; Removed counts patients dropped for
	// a NaN measure.
	N, Removed int
	// FPR and TPR are the ROC points of the classification, for plotting.
	FPR, TPR []float64
}

// OutcomeAUC evaluates a per-patient measure as a classifier of poor surgical
// outcome. Patients with a NaN measure are removed first. alt is the
// alternative for the accompanying rank-sum test of good- against
// poor-outcome measures; the paper uses Less (good-outcome measures are
// expected to be smaller).
func OutcomeAUC(good []bool, meas []float64, alt Alternative) (*OutcomeResult, error) {
	if len(good) != len(meas) {
		return nil, fmt.Errorf("goabnorm: %d outcomes for %d measures", len(good), len(meas))
	}

	res := &OutcomeResult{AUC: math.NaN(), P: math.NaN()}
	var (
		keptMeas []float64
		poor     []bool
		goodVals []float64
		poorVals []float64
	)
	for i, v := range meas {
		if math.IsNaN(v) {
			res.Removed++
			continue
		}
		keptMeas = append(keptMeas, v)
		poor = append(poor, !good[i])
		if good[i] {
			goodVals = append(goodVals, v)
		} else {
			poorVals = append(poorVals, v)
		}
	}
	res.N = len(keptMeas)
	if len(goodVals) == 0 || len(poorVals) == 0 {
		return res, nil
	}

	y := append([]float64(nil), keptMeas...)
	classes := append([]bool(nil), poor...)
	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)
	res.TPR, res.FPR = tpr, fpr
	res.AUC = integrate.Trapezoidal(fpr, tpr)

	if _, p, err := RankSum(goodVals, poorVals, alt); err == nil {
		res.P = p
	}
	return res, nil
}
