package goabnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/cnnp-lab/goabnorm"
)

func validPatient() *goabnorm.Patient {
	return &goabnorm.Patient{
		ID:             "patient_1",
		Label:          "patient 1",
		GoodOutcome:    true,
		ROIAbnormality: mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
		ROIIsResected:  []bool{true, false},
		ROINames:       []string{"A", "B"},
		TDays:          []float64{0, 1.0 / 48, 2.0 / 48},
		WinsPerHour:    2,
	}
}

func TestPatientValidate(t *testing.T) {
	p := validPatient()
	assert.NoError(t, p.Validate())

	nROI, nWin := p.Dims()
	assert.Equal(t, 2, nROI)
	assert.Equal(t, 3, nWin)
}

func TestPatientValidate_SkipsAbsentFields(t *testing.T) {
	p := validPatient()
	p.ROIIsResected = nil
	p.TDays = nil
	assert.NoError(t, p.Validate())

	p.ROIAbnormality = nil
	assert.NoError(t, p.Validate())
}

func TestPatientValidate_Mismatches(t *testing.T) {
	p := validPatient()
	p.ROIIsResected = []bool{true}
	assert.Error(t, p.Validate())

	p = validPatient()
	p.ROINames = []string{"A"}
	assert.Error(t, p.Validate())

	p = validPatient()
	p.TDays = []float64{0}
	assert.Error(t, p.Validate())

	p = validPatient()
	p.WinIctal = []bool{false}
	assert.Error(t, p.Validate())
}
