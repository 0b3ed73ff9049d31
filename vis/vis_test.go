package vis

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var nan = math.NaN()

// hourlyTDays returns n windows at one window per hour, in days.
func hourlyTDays(n int) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / 24
	}
	return t
}

func TestWindowsPerHour(t *testing.T) {
	got, err := WindowsPerHour(hourlyTDays(3))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = WindowsPerHour([]float64{0, 1.0 / 48, 2.0 / 48})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestWindowsPerHour_Errors(t *testing.T) {
	// 1.5 windows per hour is not a window rate
	_, err := WindowsPerHour([]float64{0, 1.0 / 36})
	assert.ErrorIs(t, err, ErrBadTimeAxis)

	_, err = WindowsPerHour([]float64{0})
	assert.Error(t, err)
}

func TestDayTicks(t *testing.T) {
	ticks := dayTicks(hourlyTDays(25), 1, func(i int) float64 { return float64(i) })
	require.Len(t, ticks, 3)
	assert.Equal(t, 0.0, ticks[0].Value)
	assert.Equal(t, 12.0, ticks[1].Value)
	assert.Equal(t, 24.0, ticks[2].Value)
	assert.Equal(t, "0.5", ticks[1].Label)
	assert.Equal(t, "1", ticks[2].Label)
}

func TestSplitAtNaN(t *testing.T) {
	tDays := []float64{0, 1, 2, 3, 4}
	segs := splitAtNaN(tDays, []float64{0.1, 0.2, nan, 0.4, 0.5})
	require.Len(t, segs, 2)
	assert.Len(t, segs[0], 2)
	assert.Len(t, segs[1], 2)
	assert.Equal(t, 3.0, segs[1][0].X)

	segs = splitAtNaN(tDays, []float64{nan, nan, nan, nan, nan})
	assert.Empty(t, segs)
}

func TestBinEdges(t *testing.T) {
	edges := BinEdges(0, 1, 0.1)
	require.Len(t, edges, 11)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 1.0, edges[10])
}

func TestBinCounts(t *testing.T) {
	edges := BinEdges(0, 1, 0.1)
	counts := BinCounts([]float64{0.05, 0.95, 1.0, nan, -0.1, 1.1}, edges)
	require.Len(t, counts, 10)
	assert.Equal(t, 1.0, counts[0])
	// the last bin includes its upper edge
	assert.Equal(t, 2.0, counts[9])

	var total float64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 3.0, total)
}

func TestEdgeTicks(t *testing.T) {
	edges := BinEdges(0, 1, 0.1)
	ticks := edgeTicks(edges, []float64{0, 0.5, 1})
	require.Len(t, ticks, 3)
	assert.InDelta(t, -0.5, ticks[0].Value, 1e-12)
	assert.InDelta(t, 4.5, ticks[1].Value, 1e-12)
	assert.InDelta(t, 9.5, ticks[2].Value, 1e-12)
}

func TestBeeswarm(t *testing.T) {
	xys := beeswarm([]float64{0.5, 0.5, 0.5}, 1, 0.3)
	require.Len(t, xys, 3)
	for _, xy := range xys {
		assert.Equal(t, 0.5, xy.Y)
		assert.GreaterOrEqual(t, xy.X, 0.7)
		assert.LessOrEqual(t, xy.X, 1.3)
	}
	// points fan out instead of stacking
	assert.NotEqual(t, xys[0].X, xys[1].X)

	// well-separated values stay centered
	xys = beeswarm([]float64{0.1, 0.5, 0.9}, 0, 0.3)
	for _, xy := range xys {
		assert.InDelta(t, 0.0, xy.X, 1e-12)
	}
}

func TestFiniteMin(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{nan, 3, 2, 5})
	assert.Equal(t, 2.0, finiteMin(m))

	m = mat.NewDense(1, 2, []float64{nan, nan})
	assert.Equal(t, 0.0, finiteMin(m))
}

func TestHeatmap_ResectedFirstOrder(t *testing.T) {
	m := mat.NewDense(3, 24, nil)
	p, order, err := Heatmap(m, HeatmapOptions{
		TDays:         hourlyTDays(24),
		ROINames:      []string{"A", "B", "C"},
		ROIIsResected: []bool{false, true, false},
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []int{1, 0, 2}, order)
}

func TestHeatmap_BadTimeAxis(t *testing.T) {
	m := mat.NewDense(2, 2, nil)
	_, _, err := Heatmap(m, HeatmapOptions{TDays: []float64{0, 1.0 / 36}})
	assert.ErrorIs(t, err, ErrBadTimeAxis)
}

func TestNewDRSPlot(t *testing.T) {
	p, err := NewDRSPlot(hourlyTDays(24))
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, 1.0, p.Y.Max)

	_, err = NewDRSPlot([]float64{0, 1.0 / 36})
	assert.ErrorIs(t, err, ErrBadTimeAxis)
}

func TestAddSeries(t *testing.T) {
	p, err := NewDRSPlot(hourlyTDays(24))
	require.NoError(t, err)

	series := make([]float64, 24)
	for i := range series {
		series[i] = 0.5
	}
	series[5] = nan
	assert.NoError(t, AddSeries(p, hourlyTDays(24), series, Interictal))
}

func TestOutcomeSwarm(t *testing.T) {
	p, err := OutcomeSwarm(
		[]bool{true, true, false, false},
		[]float64{0.2, 0.3, nan, 0.8},
		SwarmOptions{MeasureName: "median D_RS", Quartiles: true},
	)
	require.NoError(t, err)
	assert.Equal(t, "median D_RS", p.Y.Label.Text)

	_, err = OutcomeSwarm([]bool{true}, []float64{0.1, 0.2}, SwarmOptions{})
	assert.Error(t, err)
}

func TestWindowSwarm(t *testing.T) {
	_, err := WindowSwarm([]float64{0.1, 0.2, nan}, []bool{true, false, false}, 0.25, "window")
	assert.NoError(t, err)

	_, err = WindowSwarm([]float64{0.1}, []bool{true, false}, 1, "window")
	assert.Error(t, err)
}

func TestDistributionPanel(t *testing.T) {
	_, err := DistributionPanel("patient_1", nil)
	assert.Error(t, err)

	_, err = DistributionPanel("patient_1", []HistSeries{
		{Values: []float64{0.2, 0.4, nan}, Color: GoodOutcome, Median: 0.3},
		{Values: []float64{0.6, 0.8}, Color: Periictal, Median: nan},
	})
	assert.NoError(t, err)
}

func TestCountHistogram(t *testing.T) {
	p, err := CountHistogram("ILAE 1", "percentage D_RS <= 0.5",
		[]float64{10, 45, 80}, BinEdges(0, 100, 10), GoodOutcome)
	require.NoError(t, err)
	assert.Equal(t, "number of patients", p.Y.Label.Text)
}

func TestROCCurve(t *testing.T) {
	_, err := ROCCurve([]float64{0, 0.5, 1}, []float64{0, 1, 1}, "ROC")
	assert.NoError(t, err)

	_, err = ROCCurve([]float64{0, 1}, []float64{0}, "ROC")
	assert.Error(t, err)
}

func TestMedianScatter(t *testing.T) {
	_, err := MedianScatter(
		[]float64{0.2, nan, 0.6},
		[]float64{0.3, 0.5, nan},
		[]bool{true, false, true},
		"medians", "x", "y",
	)
	assert.NoError(t, err)

	_, err = MedianScatter([]float64{0.1}, []float64{0.1, 0.2}, []bool{true}, "", "", "")
	assert.Error(t, err)
}

func TestSavePlot_Formats(t *testing.T) {
	p, err := NewDRSPlot(hourlyTDays(24))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, SavePlot(p, 3*vg.Inch, 2*vg.Inch, dir, "drs", []string{"pdf", "png", "svg"}))
	for _, format := range []string{"pdf", "png", "svg"} {
		info, err := os.Stat(filepath.Join(dir, "drs."+format))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	assert.Error(t, SavePlot(p, 3*vg.Inch, 2*vg.Inch, dir, "drs", []string{"bmp"}))
}

func TestSavePlot_DefaultFormat(t *testing.T) {
	p, err := NewDRSPlot(hourlyTDays(24))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, SavePlot(p, 3*vg.Inch, 2*vg.Inch, dir, "drs", nil))
	_, err = os.Stat(filepath.Join(dir, "drs.pdf"))
	assert.NoError(t, err)
}

func TestSaveStacked(t *testing.T) {
	top, err := NewDRSPlot(hourlyTDays(24))
	require.NoError(t, err)
	bottom, err := NewDRSPlot(hourlyTDays(24))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, SaveStacked(top, bottom, 0.75, 4*vg.Inch, 4*vg.Inch, dir, "stacked", nil))
	_, err = os.Stat(filepath.Join(dir, "stacked.pdf"))
	assert.NoError(t, err)
}

func TestSaveGrid_RaggedRows(t *testing.T) {
	mk := func() *plot.Plot {
		p, err := NewDRSPlot(hourlyTDays(24))
		require.NoError(t, err)
		return p
	}
	dir := t.TempDir()
	err := SaveGrid([][]*plot.Plot{{mk(), mk()}, {mk()}}, 6*vg.Inch, 4*vg.Inch, dir, "grid", nil)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "grid.pdf"))
	assert.NoError(t, err)
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(GoodOutcome, 128)
	assert.Equal(t, GoodOutcome.R, c.R)
	assert.Equal(t, uint8(128), c.A)
}

func TestLighten(t *testing.T) {
	c := Lighten(PoorOutcome, 0.9)
	assert.Greater(t, c.R, PoorOutcome.R)
	assert.Greater(t, c.G, PoorOutcome.G)
	assert.Equal(t, uint8(255), c.A)
}
