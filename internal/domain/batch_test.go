package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudTopPressureBatch_MatchesScalar(t *testing.T) {
	parcels := []Parcel{
		{Temp: 15, Dewpoint: 10, Pressure: 1000},
		{Temp: 25, Dewpoint: 20, Pressure: 1000},
		{Temp: 0, Dewpoint: -5, Pressure: 850},
		{Temp: 20, Dewpoint: 14, Pressure: 925},
	}
	bt := []float64{-60, -70, -45, -55}

	got, err := CloudTopPressureBatch(HighPrecisionAdiabat, parcels, bt)
	require.NoError(t, err)
	require.Len(t, got, len(parcels))

	for i, pc := range parcels {
		want := CloudTopPressure(HighPrecisionAdiabat, pc.Temp, pc.Dewpoint, pc.Pressure, bt[i])
		assert.Equal(t, want, got[i], "element %d must match the scalar call exactly", i)
	}
}

func TestCloudTopPressureBatch_LengthMismatch(t *testing.T) {
	_, err := CloudTopPressureBatch(StandardAdiabat, []Parcel{{Temp: 15, Dewpoint: 10, Pressure: 1000}}, []float64{-60, -65})
	assert.ErrorContains(t, err, "length mismatch")
}

func TestCloudTopPressureBatch_BadPixelIsIsolated(t *testing.T) {
	parcels := []Parcel{
		{Temp: 15, Dewpoint: 10, Pressure: 1000},
		{Temp: 15, Dewpoint: -300, Pressure: 1000}, // domain error
		{Temp: 25, Dewpoint: 20, Pressure: 1000},
	}
	bt := []float64{-60, -60, -70}

	got, err := CloudTopPressureBatch(HighPrecisionAdiabat, parcels, bt)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]), "bad pixel propagates NaN")
	assert.False(t, math.IsNaN(got[2]), "neighbours are unaffected")
}

func TestCloudTopPressureFromThetaEBatch_MatchesScalar(t *testing.T) {
	thetaE := []float64{310.05, 341.57, 295.21}
	bt := []float64{-60, -70, -45}

	got, err := CloudTopPressureFromThetaEBatch(StandardAdiabat, thetaE, bt)
	require.NoError(t, err)

	for i := range thetaE {
		assert.Equal(t, CloudTopPressureFromThetaE(StandardAdiabat, thetaE[i], bt[i]), got[i])
	}

	_, err = CloudTopPressureFromThetaEBatch(StandardAdiabat, thetaE, bt[:2])
	assert.ErrorContains(t, err, "length mismatch")
}

func TestPressureToHeightBatch(t *testing.T) {
	ps := []float64{1013.25, 500, 226.32, 100}
	got := PressureToHeightBatch(ps)
	require.Len(t, got, len(ps))
	for i, p := range ps {
		assert.Equal(t, PressureToHeight(p), got[i])
	}
}
