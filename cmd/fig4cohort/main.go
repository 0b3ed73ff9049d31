// Command fig4cohort renders the across-patient comparison of interictal and
// periictal D_RS: per-patient distributions of both periods, a scatter of
// their medians against the identity line, paired signed-rank tests, and the
// outcome-classification swarms of each period's median.
package main

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"github.com/cnnp-lab/goabnorm"
	"github.com/cnnp-lab/goabnorm/vis"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const gridCols = 8

type record struct {
	id       string
	good     bool
	inter    []float64
	peri     []float64
	interMed float64
	periMed  float64
}

func main() {
	dataDir := pflag.String("data", "data", "directory containing patient files")
	plotDir := pflag.String("plots", "plots", "directory in which to save figures")
	formats := pflag.StringSlice("formats", vis.DefaultFormats, "figure output formats (pdf, png, svg)")
	pflag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	figDir := filepath.Join(*plotDir, "fig4_across_patients")

	stems, err := goabnorm.DiscoverPatients(*dataDir)
	if err != nil {
		log.Fatal(err)
	}
	patients, err := goabnorm.LoadCohort(*dataDir, stems,
		goabnorm.FieldAbnormality, goabnorm.FieldResected,
		goabnorm.FieldInterictal, goabnorm.FieldPeriictal)
	if err != nil {
		log.Fatal(err)
	}

	records := make([]record, 0, len(patients))
	for _, p := range patients {
		log.Infof("computing D_RS of %s", p.ID)
		drs, err := goabnorm.ComputeDRS(p.ROIAbnormality, p.ROIIsResected)
		if err != nil {
			log.Fatal(err)
		}
		inter := goabnorm.MaskSeries(drs, p.WinInterictal)
		peri := goabnorm.MaskSeries(drs, p.WinPeriictal)
		records = append(records, record{
			id:       p.ID,
			good:     p.GoodOutcome,
			inter:    inter,
			peri:     peri,
			interMed: goabnorm.NaNMedian(inter),
			periMed:  goabnorm.NaNMedian(peri),
		})
	}

	// good outcome first, stable within groups
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].good && !records[j].good
	})

	// interictal and periictal distributions per patient
	var panels [][]*plot.Plot
	for i, r := range records {
		panel, err := vis.DistributionPanel(
			fmt.Sprintf("%s: inter %.2f, peri %.2f", r.id, r.interMed, r.periMed),
			[]vis.HistSeries{
				{Values: r.inter, Color: vis.Interictal, Median: r.interMed},
				{Values: r.peri, Color: vis.Periictal, Median: r.periMed},
			},
		)
		if err != nil {
			log.Fatal(err)
		}
		if i%gridCols == 0 {
			panels = append(panels, nil)
		}
		panels[len(panels)-1] = append(panels[len(panels)-1], panel)
	}
	err = vis.SaveGrid(panels, 12*vg.Inch, 10*vg.Inch, figDir,
		"interictal_and_periictal_d_rs_distributions", *formats)
	if err != nil {
		log.Fatal(err)
	}

	// compare medians only in patients with both periods
	n := len(records)
	goods := make([]bool, n)
	interMeds := make([]float64, n)
	periMeds := make([]float64, n)
	for i, r := range records {
		goods[i] = r.good
		interMeds[i] = r.interMed
		periMeds[i] = r.periMed
		if math.IsNaN(r.periMed) {
			interMeds[i] = math.NaN()
		}
	}

	scatter, err := vis.MedianScatter(interMeds, periMeds, goods,
		"Median interictal vs. periictal D_RS",
		"median interictal D_RS", "median periictal D_RS")
	if err != nil {
		log.Fatal(err)
	}
	err = vis.SavePlot(scatter, 5*vg.Inch, 5*vg.Inch, figDir,
		"median_interictal_and_periictal_d_rs", *formats)
	if err != nil {
		log.Fatal(err)
	}

	// paired signed-rank tests of interictal against periictal medians
	logSignedRank := func(label string, x, y []float64) {
		if _, p, err := goabnorm.WilcoxonSignedRank(x, y, goabnorm.TwoSided); err == nil {
			log.Infof("interictal vs periictal medians, %s: p = %.5f (Wilcoxon signed rank)", label, p)
		} else {
			log.Warnf("signed-rank test, %s: %v", label, err)
		}
	}
	logSignedRank("all patients", interMeds, periMeds)
	var gi, gp, pi, pp []float64
	for i := range records {
		if goods[i] {
			gi = append(gi, interMeds[i])
			gp = append(gp, periMeds[i])
		} else {
			pi = append(pi, interMeds[i])
			pp = append(pp, periMeds[i])
		}
	}
	logSignedRank("good outcome", gi, gp)
	logSignedRank("poor outcome", pi, pp)

	// outcome classification from each period's median
	swarms := make([]*plot.Plot, 0, 2)
	for _, period := range []struct {
		name string
		meds []float64
	}{
		{"median interictal D_RS", interMeds},
		{"median periictal D_RS", periMeds},
	} {
		res, err := goabnorm.OutcomeAUC(goods, period.meds, goabnorm.Less)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("%s: removed %d patients due to NaN measure", period.name, res.Removed)
		swarm, err := vis.OutcomeSwarm(goods, period.meds, vis.SwarmOptions{
			MeasureName: period.name,
			Quartiles:   true,
		})
		if err != nil {
			log.Fatal(err)
		}
		swarm.Title.Text = fmt.Sprintf("%s: AUC = %.2f, p = %.4f (less), n = %d",
			period.name, res.AUC, res.P, res.N)
		swarms = append(swarms, swarm)
	}
	err = vis.SaveGrid([][]*plot.Plot{swarms}, 6*vg.Inch, 4*vg.Inch, figDir,
		"interictal_periictal_d_rs_auc", *formats)
	if err != nil {
		log.Fatal(err)
	}
}
