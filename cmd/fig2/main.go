// Command fig2 renders the example-patient figure: time-varying normalized
// abnormalities over D_RS, plus a swarm of one example window at the median
// D_RS. The paper uses patient 1 (good outcome) and patient 2 (poor outcome).
package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/cnnp-lab/goabnorm"
	"github.com/cnnp-lab/goabnorm/vis"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
)

func main() {
	patient := pflag.String("patient", "patient 1", "example patient to plot")
	dataDir := pflag.String("data", "data", "directory containing patient files")
	plotDir := pflag.String("plots", "plots", "directory in which to save figures")
	formats := pflag.StringSlice("formats", vis.DefaultFormats, "figure output formats (pdf, png, svg)")
	pflag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	stem := strings.ReplaceAll(*patient, " ", "_")
	figDir := filepath.Join(*plotDir, "fig2")

	p, err := goabnorm.LoadPatient(*dataDir, stem)
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("computing D_RS of %s", p.ID)
	drs, err := goabnorm.ComputeDRS(p.ROIAbnormality, p.ROIIsResected)
	if err != nil {
		log.Fatal(err)
	}
	med := goabnorm.NaNMedian(drs)
	exampleWin := medianWindow(drs, med, p.ID)

	clr := vis.PoorOutcome
	if p.GoodOutcome {
		clr = vis.GoodOutcome
	}

	norm := goabnorm.NormalizeColumns(p.ROIAbnormality)

	heat, _, err := vis.Heatmap(norm, vis.HeatmapOptions{
		TDays:         p.TDays,
		ROINames:      p.ROINames,
		ROIIsResected: p.ROIIsResected,
		Title:         fmt.Sprintf("%s abnormalities (normalized)", p.Label),
	})
	if err != nil {
		log.Fatal(err)
	}

	line, err := vis.NewDRSPlot(p.TDays)
	if err != nil {
		log.Fatal(err)
	}
	if err := vis.AddSeries(line, p.TDays, drs, vis.WithAlpha(clr, 128)); err != nil {
		log.Fatal(err)
	}
	if exampleWin >= 0 {
		if err := vis.MarkWindow(line, p.TDays[exampleWin], drs[exampleWin], clr); err != nil {
			log.Fatal(err)
		}
	}

	name := stem + "_abnormalities_and_d_rs"
	if err := vis.SaveStacked(heat, line, 0.75, 8*vg.Inch, 6*vg.Inch, figDir, name, *formats); err != nil {
		log.Fatal(err)
	}
	log.Infof("saved %s", name)

	if exampleWin < 0 {
		log.Warnf("no window matches the median D_RS of %s, skipping example window figure", p.ID)
		return
	}

	window := mat.Col(nil, exampleWin, norm)
	maxVal := 0.0
	for _, v := range window {
		if !math.IsNaN(v) && v > maxVal {
			maxVal = v
		}
	}
	swarm, err := vis.WindowSwarm(window, p.ROIIsResected, maxVal*1.125,
		fmt.Sprintf("%s example window, D_RS = %.2f", p.Label, med))
	if err != nil {
		log.Fatal(err)
	}
	name = stem + "_abnormalities_example"
	if err := vis.SavePlot(swarm, 3*vg.Inch, 4*vg.Inch, figDir, name, *formats); err != nil {
		log.Fatal(err)
	}
	log.Infof("saved %s", name)
}

// medianWindow picks the example window to highlight: among windows whose
// D_RS equals the median, the one later in the recording than a per-patient
// share of the candidates. Returns -1 when the median falls between samples
// and no window matches exactly.
func medianWindow(drs []float64, med float64, patientID string) int {
	var candidates []int
	for i, v := range drs {
		if v == med {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1
	}

	scale := 0.3
	switch patientID {
	case "patient 1", "patient_1":
		scale = 0.8
	case "patient 2", "patient_2":
		scale = 0.4
	}

	i := int(math.Ceil(float64(len(candidates)) * scale))
	if i >= len(candidates) {
		i = len(candidates) - 1
	}
	return candidates[i]
}
