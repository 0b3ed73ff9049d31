package vis

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BinEdges returns evenly spaced bin edges from lo to hi in steps of width,
// including both ends. Edges are scaled from the index rather than
// accumulated, so the last edge is exactly hi.
func BinEdges(lo, hi, width float64) []float64 {
	n := int(math.Round((hi - lo) / width))
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	return edges
}

// BinCounts histograms the non-NaN entries of xs over the given edges. Each
// bin is half-open [e_i, e_i+1) except the last, which also includes its
// upper edge.
func BinCounts(xs, edges []float64) []float64 {
	counts := make([]float64, len(edges)-1)
	for _, v := range xs {
		if math.IsNaN(v) || v < edges[0] || v > edges[len(edges)-1] {
			continue
		}
		b := len(counts) - 1
		for i := 0; i < len(counts); i++ {
			if v < edges[i+1] {
				b = i
				break
			}
		}
		counts[b]++
	}
	return counts
}

// histBars renders fixed-bin counts as a bar chart. Bars sit at x positions
// 0..len(counts)-1; edgeTicks converts edge values to those positions.
func histBars(counts []float64, c color.NRGBA) (*plotter.BarChart, error) {
	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Color = c
	bars.LineStyle.Width = 0
	return bars, nil
}

// edgeTicks places ticks at the given edge values of a bar-chart histogram.
// Bar i spans plot positions [i-0.5, i+0.5], so edge e maps to e/width-0.5
// relative to the lowest edge.
func edgeTicks(edges []float64, at []float64) []plot.Tick {
	width := edges[1] - edges[0]
	ticks := make([]plot.Tick, 0, len(at))
	for _, e := range at {
		ticks = append(ticks, plot.Tick{
			Value: (e-edges[0])/width - 0.5,
			Label: strconv.FormatFloat(e, 'g', -1, 64),
		})
	}
	return ticks
}

// HistSeries is one overlaid distribution in a DistributionPanel.
type HistSeries struct {
	Values []float64
	Color  color.NRGBA
	// Median, when not NaN, is marked with a vertical line.
	Median float64
}

// DistributionPanel renders one patient's D_RS distribution(s) over fixed
// bins spanning [0, 1] in steps of 0.1, with medians marked. Multiple series
// overlay with translucent fills (interictal vs periictal panels).
func DistributionPanel(title string, series []HistSeries) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("vis: distribution panel needs at least one series")
	}
	edges := BinEdges(0, 1, 0.1)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "D_RS"
	p.X.Tick.Marker = constTicker(edgeTicks(edges, []float64{0, 0.5, 1}))
	p.Y.Tick.Marker = constTicker(nil)
	p.X.Min = -0.5
	p.X.Max = float64(len(edges)-1) - 0.5

	maxCount := 1.0
	for _, s := range series {
		counts := BinCounts(s.Values, edges)
		for _, c := range counts {
			if c > maxCount {
				maxCount = c
			}
		}
		bars, err := histBars(counts, WithAlpha(s.Color, 102))
		if err != nil {
			return nil, err
		}
		p.Add(bars)
	}
	for _, s := range series {
		if math.IsNaN(s.Median) {
			continue
		}
		x := (s.Median-edges[0])/(edges[1]-edges[0]) - 0.5
		if err := VerticalLine(p, x, 0, maxCount, s.Color, vg.Points(2)); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// CountHistogram renders a single fixed-bin histogram with counts on the y
// axis, used for the localizing-percentage panels.
func CountHistogram(title, xLabel string, xs, edges []float64, c color.NRGBA) (*plot.Plot, error) {
	counts := BinCounts(xs, edges)
	bars, err := histBars(counts, WithAlpha(c, 128))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Points(1.5)
	bars.LineStyle.Color = color.Black

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "number of patients"
	p.X.Tick.Marker = constTicker(edgeTicks(edges, edges))
	p.Add(bars)
	return p, nil
}
