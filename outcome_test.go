package goabnorm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnnp-lab/goabnorm"
)

func TestOutcomeAUC_PerfectClassifier(t *testing.T) {
	good := []bool{true, true, false, false}
	meas := []float64{0.2, 0.3, 0.7, 0.8}

	res, err := goabnorm.OutcomeAUC(good, meas, goabnorm.Less)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.AUC, 1e-12)
	assert.Equal(t, 4, res.N)
	assert.Equal(t, 0, res.Removed)
	assert.InDelta(t, 0.0607, res.P, 1e-3)
	assert.NotEmpty(t, res.FPR)
	assert.Len(t, res.TPR, len(res.FPR))
}

func TestOutcomeAUC_RemovesNaNMeasures(t *testing.T) {
	good := []bool{true, true, false, false}
	meas := []float64{nan, 0.3, 0.7, nan}

	res, err := goabnorm.OutcomeAUC(good, meas, goabnorm.Less)
	require.NoError(t, err)
	assert.Equal(t, 2, res.N)
	assert.Equal(t, 2, res.Removed)
	assert.InDelta(t, 1.0, res.AUC, 1e-12)
}

func TestOutcomeAUC_SingleClass(t *testing.T) {
	res, err := goabnorm.OutcomeAUC([]bool{true, true}, []float64{0.2, 0.3}, goabnorm.Less)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res.AUC))
	assert.True(t, math.IsNaN(res.P))
	assert.Equal(t, 2, res.N)
}

func TestOutcomeAUC_LengthMismatch(t *testing.T) {
	_, err := goabnorm.OutcomeAUC([]bool{true}, []float64{0.1, 0.2}, goabnorm.Less)
	assert.Error(t, err)
}
