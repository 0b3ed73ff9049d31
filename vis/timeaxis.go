package vis

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// ErrBadTimeAxis reports a time axis whose window spacing does not divide an
// hour evenly. Tick marks are placed every 12 hours and must land on exact
// window boundaries.
var ErrBadTimeAxis = errors.New("vis: time axis must have an integer number of windows per hour")

// WindowsPerHour derives the window rate from a time vector in days. It
// returns ErrBadTimeAxis when the rate is not a positive integer.
func WindowsPerHour(tDays []float64) (int, error) {
	if len(tDays) < 2 {
		return 0, fmt.Errorf("vis: time axis needs at least two windows, got %d", len(tDays))
	}
	perHour := 1 / ((tDays[1] - tDays[0]) * 24)
	rounded := math.Round(perHour)
	if rounded < 1 || math.Abs(perHour-rounded) > 1e-6*rounded {
		return 0, ErrBadTimeAxis
	}
	return int(rounded), nil
}

// dayTicks returns one tick every 12 hours. Tick positions come from xAt
// (window index or elapsed days, depending on the plot's x unit); labels are
// the elapsed days.
func dayTicks(tDays []float64, winsPerHour int, xAt func(i int) float64) []plot.Tick {
	step := winsPerHour * 12
	var ticks []plot.Tick
	for i := 0; i < len(tDays); i += step {
		ticks = append(ticks, plot.Tick{
			Value: xAt(i),
			Label: strconv.FormatFloat(tDays[i], 'g', -1, 64),
		})
	}
	return ticks
}

// constTicker adapts a fixed tick slice to the plot.Ticker interface.
type constTicker []plot.Tick

func (t constTicker) Ticks(min, max float64) []plot.Tick { return t }
