// Command fig3 renders the across-patient D_RS summary: per-patient D_RS
// distributions, localizing-percentage histograms by outcome, the
// outcome-classification swarm with its AUC, and the ROC curve of median
// D_RS. It also runs the one-sample signed-rank tests of median D_RS against
// 0.5 within each outcome group.
package main

import (
	"fmt"
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
	id   string
	good bool
	drs  []float64
	med  float64
	days float64
}

func main() {
	dataDir := pflag.String("data", "data", "directory containing patient files")
	plotDir := pflag.String("plots", "plots", "directory in which to save figures")
	formats := pflag.StringSlice("formats", vis.DefaultFormats, "figure output formats (pdf, png, svg)")
	pflag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	figDir := filepath.Join(*plotDir, "fig3")

	stems, err := goabnorm.DiscoverPatients(*dataDir)
	if err != nil {
		log.Fatal(err)
	}
	patients, err := goabnorm.LoadCohort(*dataDir, stems,
		goabnorm.FieldAbnormality, goabnorm.FieldResected)
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
		records = append(records, record{
			id:   p.ID,
			good: p.GoodOutcome,
			drs:  drs,
			med:  goabnorm.NaNMedian(drs),
			days: goabnorm.DaysOfData(drs, p.WinsPerHour),
		})
	}

	// good outcome first, stable within groups
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].good && !records[j].good
	})

	// D_RS distribution grid
	var panels [][]*plot.Plot
	for i, r := range records {
		clr := vis.PoorOutcome
		if r.good {
			clr = vis.GoodOutcome
		}
		panel, err := vis.DistributionPanel(
			fmt.Sprintf("%s (%.1f days)", r.id, r.days),
			[]vis.HistSeries{{Values: r.drs, Color: clr, Median: r.med}},
		)
		if err != nil {
			log.Fatal(err)
		}
		if i%gridCols == 0 {
			panels = append(panels, nil)
		}
		panels[len(panels)-1] = append(panels[len(panels)-1], panel)
	}
	if err := vis.SaveGrid(panels, 12*vg.Inch, 10*vg.Inch, figDir, "d_rs_distributions", *formats); err != nil {
		log.Fatal(err)
	}

	// localizing percentage by outcome
	var percGood, percPoor []float64
	for _, r := range records {
		perc := goabnorm.FractionBelow(r.drs, 0.5) * 100
		if r.good {
			percGood = append(percGood, perc)
		} else {
			percPoor = append(percPoor, perc)
		}
	}
	edges := vis.BinEdges(0, 100, 10)
	histGood, err := vis.CountHistogram("ILAE 1", "percentage D_RS <= 0.5", percGood, edges, vis.GoodOutcome)
	if err != nil {
		log.Fatal(err)
	}
	histPoor, err := vis.CountHistogram("ILAE 2+", "percentage D_RS <= 0.5", percPoor, edges, vis.PoorOutcome)
	if err != nil {
		log.Fatal(err)
	}
	err = vis.SaveGrid([][]*plot.Plot{{histGood}, {histPoor}}, 8*vg.Inch, 8*vg.Inch,
		figDir, "localising_percentage", *formats)
	if err != nil {
		log.Fatal(err)
	}

	// outcome classification from median D_RS
	goods := make([]bool, len(records))
	meds := make([]float64, len(records))
	for i, r := range records {
		goods[i] = r.good
		meds[i] = r.med
	}
	res, err := goabnorm.OutcomeAUC(goods, meds, goabnorm.Less)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("removed %d patients due to NaN measure", res.Removed)

	swarm, err := vis.OutcomeSwarm(goods, meds, vis.SwarmOptions{
		MeasureName: "median D_RS",
		Quartiles:   true,
	})
	if err != nil {
		log.Fatal(err)
	}
	swarm.Title.Text = fmt.Sprintf("median D_RS: AUC = %.2f, p = %.4f (less), n = %d", res.AUC, res.P, res.N)
	if err := vis.SavePlot(swarm, 3*vg.Inch, 4*vg.Inch, figDir, "d_rs_auc", *formats); err != nil {
		log.Fatal(err)
	}

	roc, err := vis.ROCCurve(res.FPR, res.TPR, "ROC curve of median D_RS")
	if err != nil {
		log.Fatal(err)
	}
	if err := vis.SavePlot(roc, 4*vg.Inch, 4*vg.Inch, figDir, "d_rs_roc", *formats); err != nil {
		log.Fatal(err)
	}

	// signed-rank tests of median D_RS against the 0.5 chance level
	var goodDiff, poorDiff []float64
	for _, r := range records {
		if r.good {
			goodDiff = append(goodDiff, 0.5-r.med)
		} else {
			poorDiff = append(poorDiff, 0.5-r.med)
		}
	}
	if _, p, err := goabnorm.WilcoxonSignedRank(goodDiff, nil, goabnorm.Greater); err == nil {
		log.Infof("p for good outcome median D_RS < 0.5 (Wilcoxon signed rank): %.5f", p)
	} else {
		log.Warnf("signed-rank test for good outcome patients: %v", err)
	}
	if _, p, err := goabnorm.WilcoxonSignedRank(poorDiff, nil, goabnorm.Less); err == nil {
		log.Infof("p for poor outcome median D_RS > 0.5 (Wilcoxon signed rank): %.5f", p)
	} else {
		log.Warnf("signed-rank test for poor outcome patients: %v", err)
	}
}
