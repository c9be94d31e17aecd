package domain

import "math"

// PotentialTemperature returns the potential temperature [°C] of air at
// temperature t [°C] on pressure level p [hPa].
func PotentialTemperature(p, t float64) float64 {
	return (t+zeroCK)*math.Pow(1000/p, kappa) - zeroCK
}

// SaturationVaporPressure returns the saturation vapor pressure [Pa] at
// dewpoint td [°C], using the Bolton (1980) formula.
func SaturationVaporPressure(td float64) float64 {
	return 611.2 * math.Exp(17.67*td/(td+243.5))
}

// MixingRatio returns the dimensionless mass mixing ratio from a vapor
// partial pressure and a total pressure, both in Pa.
func MixingRatio(vaporPressure, totalPressure float64) float64 {
	return epsilon * vaporPressure / (totalPressure - vaporPressure)
}

// SaturationMixingRatio returns the saturation mixing ratio at pressure
// level p [hPa] and dewpoint td [°C].
func SaturationMixingRatio(p, td float64) float64 {
	return MixingRatio(SaturationVaporPressure(td), p*100)
}

// ThetaE returns Bolton's approximation of equivalent potential temperature
// [K] for a parcel at temperature t [°C], dewpoint td [°C] and pressure
// level p [hPa]. A dewpoint below absolute zero takes the log term out of
// its domain and the result is NaN; callers must treat NaN as an invalid
// estimate, never clamp it.
func ThetaE(t, td, p float64) float64 {
	rs := SaturationMixingRatio(p, td)
	e := SaturationVaporPressure(td)
	// Subtract the vapor pressure from the total before computing theta:
	// the dry formula applies to the dry-air partial pressure.
	theta := PotentialTemperature(p-e/100, t) + zeroCK

	tK := t + zeroCK
	tdK := td + zeroCK

	// Bolton (1980) eq. 15: temperature at the lifting condensation level.
	tl := 56 + 1/(1/(tdK-56)+math.Log(tK/tdK)/800)
	thetaL := theta * math.Pow(tK/tl, 0.28*rs)
	return thetaL * math.Exp(rs*(1+0.448*rs)*(3036/tl-1.78))
}

// ThetaWFromThetaE converts equivalent potential temperature [K] to wet-bulb
// potential temperature [K] with the Davies-Jones (2008) rational
// approximation. Values at or below 173.15 K pass through unchanged; the
// approximation is neither valid nor needed there.
func ThetaWFromThetaE(thetaE float64) float64 {
	if thetaE <= 173.15 {
		return thetaE
	}
	x := thetaE / 273.15
	x2 := x * x
	x3 := x2 * x
	x4 := x3 * x
	a := 7.101574 - 20.68208*x + 16.11182*x2 + 2.574631*x3 - 5.205688*x4
	b := 1 - 3.552497*x + 3.781782*x2 - 0.6899655*x3 - 0.5929340*x4
	return thetaE - math.Exp(a/b)
}

// ThetaW returns the wet-bulb potential temperature [K] of a parcel at
// temperature t [°C], dewpoint td [°C] and pressure level p [hPa].
func ThetaW(t, td, p float64) float64 {
	return ThetaWFromThetaE(ThetaE(t, td, p))
}
