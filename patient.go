package goabnorm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Patient is one subject's record: the ROI-by-window abnormality matrix and
// the labels needed to interpret it. Matrix entries may be NaN where data is
// missing. Records are read once at script start and never mutated.
type Patient struct {
	// ID is the machine identifier, e.g. "patient_3".
	ID string
	// Label is the display string used in figure titles.
	Label string
	// GoodOutcome is true for ILAE class 1, false for class 2+.
	GoodOutcome bool

	// ROIAbnormality holds one row per ROI and one column per time window.
	ROIAbnormality *mat.Dense
	// ROIIsResected marks which rows belong to surgically resected tissue.
	ROIIsResected []bool
	// ROINames holds one name per row.
	ROINames []string

	// TDays is the elapsed time of each window, in days.
	TDays []float64
	// WinsPerHour is the number of time windows per hour of recording.
	WinsPerHour int

	// Optional per-window seizure-context flags. Nil when not loaded.
	WinInterictal []bool
	WinPeriictal  []bool
	WinIctal      []bool
}

// Dims returns the ROI and window counts of the abnormality matrix.
func (p *Patient) Dims() (nROI, nWin int) {
	if p.ROIAbnormality == nil {
		return 0, 0
	}
	return p.ROIAbnormality.Dims()
}

// Validate checks the shape invariants between the abnormality matrix and
// every per-ROI or per-window field that is present. Fields left empty by a
// partial load are skipped.
func (p *Patient) Validate() error {
	if p.ROIAbnormality == nil {
		return nil
	}
	nROI, nWin := p.ROIAbnormality.Dims()

	if p.ROIIsResected != nil && len(p.ROIIsResected) != nROI {
		return fmt.Errorf("goabnorm: %s: %d resection flags for %d ROIs", p.ID, len(p.ROIIsResected), nROI)
	}
	if p.ROINames != nil && len(p.ROINames) != nROI {
		return fmt.Errorf("goabnorm: %s: %d ROI names for %d ROIs", p.ID, len(p.ROINames), nROI)
	}
	if p.TDays != nil && len(p.TDays) != nWin {
		return fmt.Errorf("goabnorm: %s: %d time stamps for %d windows", p.ID, len(p.TDays), nWin)
	}
	for name, flags := range map[string][]bool{
		"interictal": p.WinInterictal,
		"periictal":  p.WinPeriictal,
		"ictal":      p.WinIctal,
	} {
		if flags != nil && len(flags) != nWin {
			return fmt.Errorf("goabnorm: %s: %d %s flags for %d windows", p.ID, len(flags), name, nWin)
		}
	}
	return nil
}
