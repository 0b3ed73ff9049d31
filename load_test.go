package goabnorm_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cnnp-lab/goabnorm"
)

// writePatientFixture writes the <stem>.npz / <stem>.json pair of a small
// two-ROI, three-window patient.
func writePatientFixture(t *testing.T, dir, stem string, good bool, withWinFlags bool) {
	t.Helper()

	entries := map[string]interface{}{
		goabnorm.FieldAbnormality: mat.NewDense(2, 3, []float64{0.1, nan, 0.3, 0.4, 0.5, 0.6}),
		goabnorm.FieldResected:    []bool{true, false},
		goabnorm.FieldTDays:       []float64{0, 1.0 / 48, 2.0 / 48},
	}
	if withWinFlags {
		entries[goabnorm.FieldInterictal] = []bool{true, false, true}
		entries[goabnorm.FieldPeriictal] = []bool{false, true, false}
		entries[goabnorm.FieldIctal] = []bool{false, true, false}
	}
	writeNPZ(t, filepath.Join(dir, stem+".npz"), entries)

	meta := fmt.Sprintf(`{
  "pnt_id": %q,
  "patient_string": "patient x",
  "good_outcome": %t,
  "n_win_per_hr": 2,
  "roi_names": ["ROI A", "ROI B"]
}`, stem, good)
	require.NoError(t, os.WriteFile(filepath.Join(dir, stem+".json"), []byte(meta), 0o644))
}

func TestLoadPatient(t *testing.T) {
	dir := t.TempDir()
	writePatientFixture(t, dir, "patient_1", true, true)

	p, err := goabnorm.LoadPatient(dir, "patient_1")
	require.NoError(t, err)

	assert.Equal(t, "patient_1", p.ID)
	assert.Equal(t, "patient x", p.Label)
	assert.True(t, p.GoodOutcome)
	assert.Equal(t, 2, p.WinsPerHour)
	assert.Equal(t, []string{"ROI A", "ROI B"}, p.ROINames)
	assert.Equal(t, []bool{true, false}, p.ROIIsResected)
	assert.Equal(t, []bool{true, false, true}, p.WinInterictal)
	assert.Equal(t, []bool{false, true, false}, p.WinIctal)

	nROI, nWin := p.Dims()
	assert.Equal(t, 2, nROI)
	assert.Equal(t, 3, nWin)
}

func TestLoadPatient_SubsetOfFields(t *testing.T) {
	dir := t.TempDir()
	writePatientFixture(t, dir, "patient_1", true, true)

	p, err := goabnorm.LoadPatient(dir, "patient_1", goabnorm.FieldAbnormality, goabnorm.FieldResected)
	require.NoError(t, err)

	assert.NotNil(t, p.ROIAbnormality)
	assert.NotNil(t, p.ROIIsResected)
	assert.Nil(t, p.TDays)
	assert.Nil(t, p.WinInterictal)
	assert.Nil(t, p.WinPeriictal)
	assert.Nil(t, p.WinIctal)
}

func TestLoadPatient_WindowFlagsOptional(t *testing.T) {
	dir := t.TempDir()
	writePatientFixture(t, dir, "patient_1", true, false)

	p, err := goabnorm.LoadPatient(dir, "patient_1")
	require.NoError(t, err)
	assert.Nil(t, p.WinInterictal)
	assert.Nil(t, p.WinPeriictal)
	assert.Nil(t, p.WinIctal)
}

func TestLoadPatient_ShapeMismatch(t *testing.T) {
	dir := t.TempDir()
	writeNPZ(t, filepath.Join(dir, "patient_1.npz"), map[string]interface{}{
		goabnorm.FieldAbnormality: mat.NewDense(2, 3, nil),
		goabnorm.FieldResected:    []bool{true, false, false},
	})
	meta := `{"pnt_id": "patient_1", "patient_string": "patient 1", "good_outcome": true, "n_win_per_hr": 2, "roi_names": ["ROI A", "ROI B"]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patient_1.json"), []byte(meta), 0o644))

	_, err := goabnorm.LoadPatient(dir, "patient_1", goabnorm.FieldAbnormality, goabnorm.FieldResected)
	assert.Error(t, err)
}

func TestLoadPatient_MissingSidecar(t *testing.T) {
	_, err := goabnorm.LoadPatient(t.TempDir(), "patient_1")
	assert.Error(t, err)
}
