package vis

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ROCCurve plots an ROC curve over its chance diagonal. fpr and tpr must be
// paired and ordered as returned by the outcome classification.
func ROCCurve(fpr, tpr []float64, title string) (*plot.Plot, error) {
	if len(fpr) != len(tpr) {
		return nil, fmt.Errorf("vis: %d FPR points for %d TPR points", len(fpr), len(tpr))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "false positive rate"
	p.Y.Label.Text = "true positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, err
	}
	diag.LineStyle.Color = Reference
	p.Add(diag)

	pts := make(plotter.XYs, len(fpr))
	for i := range fpr {
		pts[i] = plotter.XY{X: fpr[i], Y: tpr[i]}
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Color = color.Black
	curve.LineStyle.Width = vg.Points(2)
	p.Add(curve)

	return p, nil
}

// MedianScatter plots one median measure against another (interictal vs
// periictal) with an identity reference, points colored by outcome. Pairs
// with a NaN member are skipped.
func MedianScatter(x, y []float64, good []bool, title, xLabel, yLabel string) (*plot.Plot, error) {
	if len(x) != len(y) || len(x) != len(good) {
		return nil, fmt.Errorf("vis: mismatched scatter inputs (%d, %d, %d)", len(x), len(y), len(good))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	ident, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, err
	}
	ident.LineStyle.Color = Reference
	p.Add(ident)

	for g := 0; g < 2; g++ {
		var pts plotter.XYs
		for i := range x {
			if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
				continue
			}
			if (g == 0) == good[i] {
				pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		c := GoodOutcome
		if g == 1 {
			c = PoorOutcome
		}
		s.GlyphStyle.Color = WithAlpha(c, 128)
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
	}

	return p, nil
}
