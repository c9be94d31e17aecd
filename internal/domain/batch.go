package domain

import "fmt"

// Batch helpers evaluate the solver element-wise over equal-length slices,
// the intended per-pixel production usage. Results are numerically identical
// to the corresponding scalar calls; an invalid element propagates NaN
// without affecting its neighbours, so one bad pixel never fails a batch.

// CloudTopPressureBatch evaluates [CloudTopPressure] element-wise.
func CloudTopPressureBatch(m *AdiabatModel, parcels []Parcel, btRaw []float64) ([]float64, error) {
	if len(parcels) != len(btRaw) {
		return nil, fmt.Errorf("batch length mismatch: %d parcels, %d brightness temperatures", len(parcels), len(btRaw))
	}
	out := make([]float64, len(parcels))
	for i, pc := range parcels {
		out[i] = CloudTopPressure(m, pc.Temp, pc.Dewpoint, pc.Pressure, btRaw[i])
	}
	return out, nil
}

// CloudTopPressureFromThetaEBatch evaluates [CloudTopPressureFromThetaE]
// element-wise.
func CloudTopPressureFromThetaEBatch(m *AdiabatModel, thetaE, btRaw []float64) ([]float64, error) {
	if len(thetaE) != len(btRaw) {
		return nil, fmt.Errorf("batch length mismatch: %d theta-e values, %d brightness temperatures", len(thetaE), len(btRaw))
	}
	out := make([]float64, len(thetaE))
	for i, the := range thetaE {
		out[i] = CloudTopPressureFromThetaE(m, the, btRaw[i])
	}
	return out, nil
}

// PressureToHeightBatch converts pressures [hPa] to ISA heights [m]
// element-wise.
func PressureToHeightBatch(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = PressureToHeight(v)
	}
	return out
}
