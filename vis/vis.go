// Package vis renders the figures of the abnormality analysis: ROI-by-time
// heatmaps, D_RS line plots, outcome swarms, distribution grids, and ROC
// curves. Every constructor is stateless: arrays in, a *plot.Plot out.
// Persistence is a separate explicit step (SavePlot and friends).
package vis

import "image/color"

// Colors used across the paper's figures.
var (
	// GoodOutcome and PoorOutcome label ILAE 1 and ILAE 2+ patients.
	GoodOutcome = color.NRGBA{R: 0, G: 118, B: 192, A: 255}
	PoorOutcome = color.NRGBA{R: 163, G: 2, B: 52, A: 255}

	// Interictal, Periictal and Ictal mark seizure context.
	Interictal = color.NRGBA{R: 178, G: 178, B: 178, A: 255}
	Periictal  = color.NRGBA{R: 227, G: 124, B: 29, A: 255}
	Ictal      = color.NRGBA{R: 206, G: 128, B: 128, A: 255}

	// DRSLine is the default line color for a D_RS series.
	DRSLine = color.NRGBA{R: 92, G: 52, B: 127, A: 255}

	// Reference is the color of reference lines (identity, 0.5 level).
	Reference = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}

// Lighten moves c toward white by tint in [0, 1].
func Lighten(c color.NRGBA, tint float64) color.NRGBA {
	l := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*tint)
	}
	return color.NRGBA{R: l(c.R), G: l(c.G), B: l(c.B), A: c.A}
}
