package goabnorm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// NormalizeColumns returns a copy of m with every column divided by its
// NaN-ignoring sum, so each window's abnormalities sum to one. NaN entries
// stay NaN; a column with no finite entries stays NaN throughout.
func NormalizeColumns(m *mat.Dense) *mat.Dense {
	nROI, nWin := m.Dims()
	out := mat.NewDense(nROI, nWin, nil)
	for w := 0; w < nWin; w++ {
		var sum float64
		hasData := false
		for r := 0; r < nROI; r++ {
			v := m.At(r, w)
			if !math.IsNaN(v) {
				sum += v
				hasData = true
			}
		}
		for r := 0; r < nROI; r++ {
			v := m.At(r, w)
			if !hasData || math.IsNaN(v) {
				out.Set(r, w, math.NaN())
				continue
			}
			out.Set(r, w, v/sum)
		}
	}
	return out
}
