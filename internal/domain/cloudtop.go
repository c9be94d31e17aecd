package domain

import "math"

// btCorrection is the fixed empirical bias applied to a raw IR brightness
// temperature before evaluation [°C]. It compensates for systematic
// emissivity and viewing-angle effects and is not configurable.
const btCorrection = -5.0

// Corrected-BT envelope inside which the polynomial fit error bounds hold [°C].
const (
	envelopeWarmBT = -15.0
	envelopeColdBT = -75.0
)

// InEnvelope reports whether a corrected brightness temperature lies inside
// the validated -15..-75 °C fit envelope. Outside of it the solver still
// returns a numeric result, but the approximation error is unbounded.
func InEnvelope(bt float64) bool {
	return bt >= envelopeColdBT && bt <= envelopeWarmBT
}

// CloudTopPressure estimates the convective cloud top pressure [hPa] from a
// parcel (t, td [°C] at pressure level p [hPa]) and a raw IR brightness
// temperature [°C].
func CloudTopPressure(m *AdiabatModel, t, td, p, btRaw float64) float64 {
	return m.PressureAt(ThetaW(t, td, p)-zeroCK, btRaw+btCorrection)
}

// CloudTopPressureFromThetaE estimates the cloud top pressure [hPa] from an
// equivalent potential temperature [K], typically the maximum over a search
// volume around the pixel, and a raw IR brightness temperature [°C]. Given a
// consistent theta-e it produces exactly the same pressure as
// [CloudTopPressure].
func CloudTopPressureFromThetaE(m *AdiabatModel, thetaE, btRaw float64) float64 {
	return m.PressureAt(ThetaWFromThetaE(thetaE)-zeroCK, btRaw+btCorrection)
}

// CloudTop is a fully derived cloud top estimate.
type CloudTop struct {
	Pressure    float64 // [hPa]; NaN when the chain hit a domain error
	Height      float64 // ISA pressure altitude [m]; zero when invalid
	FlightLevel int     // [hft]; zero when invalid
	Valid       bool    // false when Pressure is not a usable pressure
	InEnvelope  bool    // corrected BT inside the validated fit envelope
}

// EstimateCloudTop runs the full chain for a parcel observation, deriving
// height and flight level from the solved pressure.
func EstimateCloudTop(m *AdiabatModel, t, td, p, btRaw float64) CloudTop {
	return newCloudTop(CloudTopPressure(m, t, td, p, btRaw), btRaw+btCorrection)
}

// EstimateCloudTopFromThetaE runs the chain from a theta-e maximum [K].
func EstimateCloudTopFromThetaE(m *AdiabatModel, thetaE, btRaw float64) CloudTop {
	return newCloudTop(CloudTopPressureFromThetaE(m, thetaE, btRaw), btRaw+btCorrection)
}

func newCloudTop(pressure, bt float64) CloudTop {
	ct := CloudTop{Pressure: pressure, InEnvelope: InEnvelope(bt)}
	if math.IsNaN(pressure) || math.IsInf(pressure, 0) || pressure <= 0 {
		return ct
	}
	ct.Valid = true
	ct.Height = PressureToHeight(pressure)
	ct.FlightLevel = PressureToFlightLevel(pressure)
	return ct
}

// SolveObservation solves a pixel observation at the given tier and reports
// which entry point was used ("theta_e" or "parcel"). A precomputed theta-e
// maximum wins over a parcel when both are present: it already represents the
// most unstable parcel of the search volume.
func SolveObservation(m *AdiabatModel, obs PixelObservation) (CloudTop, string) {
	if obs.ThetaEMax != nil {
		return EstimateCloudTopFromThetaE(m, *obs.ThetaEMax, obs.BrightnessTemp), "theta_e"
	}
	pc := *obs.Parcel
	return EstimateCloudTop(m, pc.Temp, pc.Dewpoint, pc.Pressure, obs.BrightnessTemp), "parcel"
}

// MaxThetaE returns the maximum equivalent potential temperature [K] over a
// sampled search volume and the index of the most unstable parcel. NaN
// parcels never win the reduction; an empty or all-NaN sample yields
// (NaN, -1).
func MaxThetaE(parcels []Parcel) (float64, int) {
	best := math.NaN()
	idx := -1
	for i, pc := range parcels {
		the := ThetaE(pc.Temp, pc.Dewpoint, pc.Pressure)
		if math.IsNaN(the) {
			continue
		}
		if idx == -1 || the > best {
			best, idx = the, i
		}
	}
	return best, idx
}
