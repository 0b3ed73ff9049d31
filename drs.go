// Package goabnorm computes abnormality-based separability measures from
// continuous intracranial EEG recordings and the cohort statistics built on
// top of them.
//
// The central quantity is D_RS: for each time window, the ROC-AUC of using a
// per-ROI abnormality value to separate spared from resected tissue, with
// spared membership as the positive class. D_RS below 0.5 means abnormality
// is on average higher in resected tissue.
package goabnorm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ComputeDRS computes D_RS for every time window of an ROI-by-window
// abnormality matrix. resected marks which matrix rows belong to resected
// ROIs and must have one entry per row.
//
// A window's D_RS is defined only when, after discarding NaN entries, the
// window still contains at least one resected and one spared value; otherwise
// that window is NaN. If the resection vector contains no resected or no
// spared ROIs at all, every window is NaN.
//
// The returned slice has one entry per matrix column. Defined values lie in
// [0, 1]; tied values contribute 0.5 per tied pair.
func ComputeDRS(m mat.Matrix, resected []bool) ([]float64, error) {
	nROI, nWin := m.Dims()
	if len(resected) != nROI {
		return nil, fmt.Errorf("goabnorm: resection vector length %d does not match %d matrix rows",
			len(resected), nROI)
	}

	d := make([]float64, nWin)

	nResected := 0
	for _, r := range resected {
		if r {
			nResected++
		}
	}
	if nResected == 0 || nResected == nROI {
		for i := range d {
			d[i] = math.NaN()
		}
		return d, nil
	}

	vals := make([]float64, 0, nROI)
	spared := make([]bool, 0, nROI)
	for w := 0; w < nWin; w++ {
		vals = vals[:0]
		spared = spared[:0]
		for r := 0; r < nROI; r++ {
			v := m.At(r, w)
			if math.IsNaN(v) {
				continue
			}
			vals = append(vals, v)
			spared = append(spared, !resected[r])
		}
		d[w] = windowAUC(vals, spared)
	}
	return d, nil
}

// windowAUC returns the AUC of scores vals against boolean labels positive,
// or NaN when only one class remains.
func windowAUC(vals []float64, positive []bool) float64 {
	nPos := 0
	for _, p := range positive {
		if p {
			nPos++
		}
	}
	if nPos == 0 || nPos == len(positive) {
		return math.NaN()
	}

	y := append([]float64(nil), vals...)
	classes := append([]bool(nil), positive...)
	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)
	return integrate.Trapezoidal(fpr, tpr)
}
