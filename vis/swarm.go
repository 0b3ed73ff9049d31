package vis

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// SwarmOptions configures OutcomeSwarm.
type SwarmOptions struct {
	// MeasureName labels the y axis, e.g. "median D_RS".
	MeasureName string
	// RefLine is the y level of the reference line (default 0.5).
	RefLine float64
	// GroupColors are the good- and poor-outcome colors; zero value uses
	// GoodOutcome and PoorOutcome.
	GroupColors [2]color.NRGBA
	// Quartiles overlays a quartile box per group, the stand-in for the
	// paper's violins.
	Quartiles bool
	// PointRadius is the swarm glyph radius (default 3.5pt).
	PointRadius vg.Length
}

// OutcomeSwarm compares a per-patient measure between good- and poor-outcome
// groups as a beeswarm, with poor outcome in the right column. NaN measures
// are skipped.
func OutcomeSwarm(good []bool, meas []float64, opts SwarmOptions) (*plot.Plot, error) {
	if len(good) != len(meas) {
		return nil, fmt.Errorf("vis: %d outcomes for %d measures", len(good), len(meas))
	}
	if opts.GroupColors[0].A == 0 && opts.GroupColors[1].A == 0 {
		opts.GroupColors = [2]color.NRGBA{GoodOutcome, PoorOutcome}
	}
	if opts.RefLine == 0 {
		opts.RefLine = 0.5
	}
	if opts.PointRadius == 0 {
		opts.PointRadius = vg.Points(3.5)
	}

	var groups [2][]float64
	for i, v := range meas {
		if math.IsNaN(v) {
			continue
		}
		g := 0
		if !good[i] {
			g = 1
		}
		groups[g] = append(groups[g], v)
	}

	p := plot.New()
	p.Y.Label.Text = opts.MeasureName
	p.X.Label.Text = "surgical outcome"
	p.Y.Min, p.Y.Max = 0, 1
	p.X.Min, p.X.Max = -0.5, 1.5
	p.NominalX("ILAE 1", "ILAE 2+")

	ref, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: opts.RefLine},
		{X: 1.5, Y: opts.RefLine},
	})
	if err != nil {
		return nil, err
	}
	ref.LineStyle.Color = Reference
	p.Add(ref)

	for g, vals := range groups {
		if len(vals) == 0 {
			continue
		}
		if opts.Quartiles {
			box, err := plotter.NewBoxPlot(vg.Points(28), float64(g), plotter.Values(vals))
			if err != nil {
				return nil, err
			}
			box.FillColor = Lighten(opts.GroupColors[g], 0.9)
			p.Add(box)
		}
		s, err := plotter.NewScatter(beeswarm(vals, float64(g), 0.3))
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Color = opts.GroupColors[g]
		s.GlyphStyle.Radius = opts.PointRadius
		p.Add(s)
	}

	return p, nil
}

// WindowSwarm shows one time window's per-ROI values split into spared and
// resected groups, each point colored by its value like the heatmap cells.
// maxValue scales the colormap; values at or above it saturate.
func WindowSwarm(values []float64, resected []bool, maxValue float64, title string) (*plot.Plot, error) {
	if len(values) != len(resected) {
		return nil, fmt.Errorf("vis: %d values for %d resection flags", len(values), len(resected))
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(maxValue)

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "normalized abnormality"
	p.Y.Min, p.Y.Max = 0, maxValue
	p.X.Min, p.X.Max = -0.5, 1.5
	p.NominalX("spared", "resected")

	for g := 0; g < 2; g++ {
		var vals []float64
		for i, v := range values {
			if math.IsNaN(v) {
				continue
			}
			if (g == 1) == resected[i] {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(30), float64(g), plotter.Values(vals))
		if err != nil {
			return nil, err
		}
		box.FillColor = color.NRGBA{R: 242, G: 242, B: 242, A: 255}
		p.Add(box)

		xys := beeswarm(vals, float64(g), 0.3)
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			c, err := cm.At(math.Min(xys[i].Y, maxValue))
			if err != nil {
				c = color.Black
			}
			return draw.GlyphStyle{
				Shape:  draw.CircleGlyph{},
				Color:  c,
				Radius: vg.Points(5),
			}
		}
		p.Add(s)
	}

	return p, nil
}

// beeswarm spreads values around a column center so near-equal values do not
// overlap. Values are binned by closeness in y; within a bin, points fan out
// symmetrically up to span on either side. The layout is deterministic.
func beeswarm(vals []float64, center, span float64) plotter.XYs {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	binHeight := (hi - lo) / 25
	if binHeight == 0 {
		binHeight = 1
	}

	xys := make(plotter.XYs, len(sorted))
	i := 0
	for i < len(sorted) {
		j := i
		for j < len(sorted) && sorted[j]-sorted[i] < binHeight {
			j++
		}
		n := j - i
		step := 2 * span / float64(n+1)
		for k := i; k < j; k++ {
			offset := -span + float64(k-i+1)*step
			xys[k] = plotter.XY{X: center + offset, Y: sorted[k]}
		}
		i = j
	}
	return xys
}
