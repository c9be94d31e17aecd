package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdiabatModel_Degree(t *testing.T) {
	assert.Equal(t, 5, StandardAdiabat.Degree())
	assert.Equal(t, 6, HighPrecisionAdiabat.Degree())
}

func TestTierByName(t *testing.T) {
	m, err := TierByName("standard")
	require.NoError(t, err)
	assert.Same(t, StandardAdiabat, m)

	m, err = TierByName("high_precision")
	require.NoError(t, err)
	assert.Same(t, HighPrecisionAdiabat, m)

	_, err = TierByName("ultra")
	assert.Error(t, err)
}

func TestAdiabatModel_CoefficientsAtZeroThetaW(t *testing.T) {
	// At tw = 0 °C every quartic collapses to its constant term.
	cs := StandardAdiabat.Coefficients(0)
	require.Len(t, cs, 6)
	assert.Equal(t, 9.98111805e+02, cs[5])

	cs = HighPrecisionAdiabat.Coefficients(0)
	require.Len(t, cs, 7)
	assert.Equal(t, 9.99811121e+02, cs[6])
}

func TestCloudTopPressure_GoldenValues(t *testing.T) {
	// Reference values computed by direct evaluation of the documented
	// formula chain with the baked coefficients.
	tests := []struct {
		name         string
		model        *AdiabatModel
		t, td, p, bt float64
		want         float64
	}{
		{"high precision, -60 BT", HighPrecisionAdiabat, 15, 10, 1000, -60, 249.26052533530208},
		{"standard, -60 BT", StandardAdiabat, 15, 10, 1000, -60, 250.09450089064353},
		{"high precision, -70 BT", HighPrecisionAdiabat, 25, 20, 1000, -70, 148.7220856436212},
		{"standard, -70 BT", StandardAdiabat, 25, 20, 1000, -70, 148.0628566883302},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CloudTopPressure(tt.model, tt.t, tt.td, tt.p, tt.bt)
			assert.InDelta(t, tt.want, got, 1e-8)
		})
	}
}

func TestCloudTopPressure_MonotonicInBT(t *testing.T) {
	// Colder cloud top means higher cloud, so pressure must strictly
	// decrease as BT decreases across the validated envelope.
	for _, m := range []*AdiabatModel{StandardAdiabat, HighPrecisionAdiabat} {
		prev := CloudTopPressure(m, 25, 18, 1000, -10) // corrected -15
		for btRaw := -11.0; btRaw >= -70; btRaw-- {    // corrected -16..-75
			p := CloudTopPressure(m, 25, 18, 1000, btRaw)
			assert.Less(t, p, prev, "%s tier: pressure must fall with BT (btRaw=%v)", m.Name(), btRaw)
			prev = p
		}
	}
}

func TestCloudTopPressure_ThetaEEntryPointAgrees(t *testing.T) {
	// Both entry points must produce the identical pressure for a
	// consistent theta-e. The computation path is the same, so equality
	// is exact.
	for temp := 5.0; temp <= 30; temp += 5 {
		for _, p := range []float64{1000, 925, 850} {
			for btRaw := -20.0; btRaw >= -70; btRaw -= 10 {
				td := temp - 6
				the := ThetaE(temp, td, p)
				direct := CloudTopPressure(HighPrecisionAdiabat, temp, td, p, btRaw)
				viaThetaE := CloudTopPressureFromThetaE(HighPrecisionAdiabat, the, btRaw)
				assert.Equal(t, direct, viaThetaE,
					"entry points disagree (t=%v p=%v bt=%v)", temp, p, btRaw)
			}
		}
	}
}
