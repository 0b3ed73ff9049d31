package vis

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HeatmapOptions configures Heatmap.
type HeatmapOptions struct {
	// TDays is the elapsed time of each matrix column, in days. Required.
	TDays []float64
	// ROINames labels the matrix rows. Required.
	ROINames []string
	// ROIIsResected, when non-nil, sorts resected ROIs to the top of the
	// plot and draws a separator line below them.
	ROIIsResected []bool
	// SeparatorColor overrides the resected/spared divider color (default
	// black).
	SeparatorColor color.Color
	// Title is the plot title.
	Title string
}

// roiGrid adapts an abnormality matrix to plotter.GridXYZ. Rows are drawn
// bottom-up, so row r of the grid maps to order[nROI-1-r] of the matrix. NaN
// cells are pinned to the finite minimum; the discrete heatmap palette has no
// notion of missing data.
type roiGrid struct {
	m     mat.Matrix
	order []int
	min   float64
}

func (g roiGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g roiGrid) X(c int) float64 { return float64(c) }
func (g roiGrid) Y(r int) float64 { return float64(r) }

func (g roiGrid) Z(c, r int) float64 {
	row := g.order[len(g.order)-1-r]
	v := g.m.At(row, c)
	if math.IsNaN(v) {
		return g.min
	}
	return v
}

// Heatmap renders an ROI-by-time heatmap. It returns the plot and the row
// order used (resected ROIs first when labels are given), so callers can
// relate plot rows back to matrix rows. The time axis must contain an integer
// number of windows per hour.
func Heatmap(m mat.Matrix, opts HeatmapOptions) (*plot.Plot, []int, error) {
	nROI, nWin := m.Dims()

	winsPerHour, err := WindowsPerHour(opts.TDays)
	if err != nil {
		return nil, nil, err
	}

	order := make([]int, 0, nROI)
	nResected := 0
	if opts.ROIIsResected != nil {
		for r, res := range opts.ROIIsResected {
			if res {
				order = append(order, r)
				nResected++
			}
		}
		for r, res := range opts.ROIIsResected {
			if !res {
				order = append(order, r)
			}
		}
	} else {
		for r := 0; r < nROI; r++ {
			order = append(order, r)
		}
	}

	grid := roiGrid{m: m, order: order, min: finiteMin(m)}
	hm := plotter.NewHeatMap(grid, moreland.Kindlmann().Palette(256))

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "time (days)"
	p.Y.Label.Text = "ROI"
	p.Add(hm)

	p.X.Tick.Marker = constTicker(dayTicks(opts.TDays, winsPerHour, func(i int) float64 {
		return float64(i)
	}))
	p.Y.Tick.Marker = constTicker(roiTicks(opts.ROINames, order))

	if opts.ROIIsResected != nil {
		sep := opts.SeparatorColor
		if sep == nil {
			sep = color.Black
		}
		// divider sits between the resected block and the spared block
		y := float64(nROI-nResected) - 0.5
		line, err := plotter.NewLine(plotter.XYs{
			{X: -0.5, Y: y},
			{X: float64(nWin) - 0.5, Y: y},
		})
		if err != nil {
			return nil, nil, err
		}
		line.LineStyle.Color = sep
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}

	return p, order, nil
}

// roiTicks labels every plot row with its ROI name, top row first in order.
func roiTicks(names []string, order []int) []plot.Tick {
	n := len(order)
	ticks := make([]plot.Tick, 0, n)
	for r := 0; r < n; r++ {
		row := order[n-1-r]
		label := ""
		if row < len(names) {
			label = names[row]
		}
		ticks = append(ticks, plot.Tick{Value: float64(r), Label: label})
	}
	return ticks
}

func finiteMin(m mat.Matrix) float64 {
	nr, nc := m.Dims()
	min := math.Inf(1)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			if v := m.At(r, c); !math.IsNaN(v) && v < min {
				min = v
			}
		}
	}
	if math.IsInf(min, 1) {
		return 0
	}
	return min
}

// VerticalLine adds a vertical marker to p, used to flag seizure windows.
func VerticalLine(p *plot.Plot, x, ymin, ymax float64, c color.Color, width vg.Length) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = width
	p.Add(line)
	return nil
}
