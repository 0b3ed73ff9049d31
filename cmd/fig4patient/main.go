// Command fig4patient renders one patient's abnormalities and D_RS with
// seizure context: ictal windows marked on the heatmap, and the D_RS series
// split into its interictal and periictal parts. The paper uses patient 3.
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cnnp-lab/goabnorm"
	"github.com/cnnp-lab/goabnorm/vis"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

func main() {
	patient := pflag.String("patient", "patient 3", "example patient to plot")
	dataDir := pflag.String("data", "data", "directory containing patient files")
	plotDir := pflag.String("plots", "plots", "directory in which to save figures")
	formats := pflag.StringSlice("formats", vis.DefaultFormats, "figure output formats (pdf, png, svg)")
	pflag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	stem := strings.ReplaceAll(*patient, " ", "_")
	figDir := filepath.Join(*plotDir, "fig4_example")

	p, err := goabnorm.LoadPatient(*dataDir, stem)
	if err != nil {
		log.Fatal(err)
	}
	if p.WinInterictal == nil || p.WinPeriictal == nil || p.WinIctal == nil {
		log.Fatalf("%s has no seizure-context window flags", p.ID)
	}

	log.Infof("computing D_RS of %s", p.ID)
	drs, err := goabnorm.ComputeDRS(p.ROIAbnormality, p.ROIIsResected)
	if err != nil {
		log.Fatal(err)
	}

	var seizureWins []int
	for i, ictal := range p.WinIctal {
		if ictal {
			seizureWins = append(seizureWins, i)
		}
	}

	norm := goabnorm.NormalizeColumns(p.ROIAbnormality)
	heat, _, err := vis.Heatmap(norm, vis.HeatmapOptions{
		TDays:         p.TDays,
		ROINames:      p.ROINames,
		ROIIsResected: p.ROIIsResected,
		Title:         fmt.Sprintf("%s abnormalities, periictal vs. interictal", p.Label),
	})
	if err != nil {
		log.Fatal(err)
	}
	nROI, _ := p.Dims()
	for _, w := range seizureWins {
		if err := vis.VerticalLine(heat, float64(w), -0.5, float64(nROI)-0.5, vis.Ictal, vg.Points(2)); err != nil {
			log.Fatal(err)
		}
	}

	line, err := vis.NewDRSPlot(p.TDays)
	if err != nil {
		log.Fatal(err)
	}
	interictal := goabnorm.MaskSeries(drs, p.WinInterictal)
	periictal := goabnorm.MaskSeries(drs, p.WinPeriictal)
	if err := vis.AddSeries(line, p.TDays, interictal, vis.WithAlpha(vis.Interictal, 128)); err != nil {
		log.Fatal(err)
	}
	if err := vis.AddSeries(line, p.TDays, periictal, vis.WithAlpha(vis.Periictal, 128)); err != nil {
		log.Fatal(err)
	}
	for _, w := range seizureWins {
		if err := vis.VerticalLine(line, p.TDays[w], 0, 1, vis.Ictal, vg.Points(0.5)); err != nil {
			log.Fatal(err)
		}
	}

	name := stem + "_interictal_vs_periictal"
	if err := vis.SaveStacked(heat, line, 0.75, 8*vg.Inch, 8*vg.Inch, figDir, name, *formats); err != nil {
		log.Fatal(err)
	}
	log.Infof("saved %s", name)
}
