package vis

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// NewDRSPlot builds the base plot for a D_RS time series: y fixed to [0, 1],
// x spanning the recording, a 0.5 reference line, and a tick every 12 hours.
// Series are added with AddSeries. The time axis must contain an integer
// number of windows per hour.
func NewDRSPlot(tDays []float64) (*plot.Plot, error) {
	winsPerHour, err := WindowsPerHour(tDays)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "D_RS"
	p.Y.Label.Text = "D_RS"
	p.X.Label.Text = "time (days)"
	p.X.Min, p.X.Max = tDays[0], tDays[len(tDays)-1]
	p.Y.Min, p.Y.Max = 0, 1
	p.X.Tick.Marker = constTicker(dayTicks(tDays, winsPerHour, func(i int) float64 {
		return tDays[i]
	}))

	ref, err := plotter.NewLine(plotter.XYs{
		{X: tDays[0], Y: 0.5},
		{X: tDays[len(tDays)-1], Y: 0.5},
	})
	if err != nil {
		return nil, err
	}
	ref.LineStyle.Color = color.Black
	ref.LineStyle.Width = vg.Points(0.25)
	p.Add(ref)

	return p, nil
}

// AddSeries draws series against tDays on p as a thin line in c. NaN entries
// break the line, exactly as missing windows leave gaps in the rendering; a
// lone defined window between NaNs is invisible rather than interpolated.
func AddSeries(p *plot.Plot, tDays, series []float64, c color.Color) error {
	for _, seg := range splitAtNaN(tDays, series) {
		if len(seg) < 2 {
			continue
		}
		line, err := plotter.NewLine(seg)
		if err != nil {
			return err
		}
		line.LineStyle.Color = c
		line.LineStyle.Width = vg.Points(0.5)
		p.Add(line)
	}
	return nil
}

// MarkWindow highlights one window of a series with a filled dot.
func MarkWindow(p *plot.Plot, t, value float64, c color.Color) error {
	if math.IsNaN(value) {
		return nil
	}
	s, err := plotter.NewScatter(plotter.XYs{{X: t, Y: value}})
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(s)
	return nil
}

// splitAtNaN cuts (tDays, series) into runs of consecutive defined values.
func splitAtNaN(tDays, series []float64) []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for i, v := range series {
		if i >= len(tDays) {
			break
		}
		if math.IsNaN(v) {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: tDays[i], Y: v})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}
