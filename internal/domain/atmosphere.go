package domain

import "math"

// PressureToHeight converts a pressure level [hPa] to pressure altitude [m]
// in the ICAO standard atmosphere. At and above the tropopause
// (p <= 226.32 hPa) the isothermal-layer formula applies; below it, the
// troposphere power law. Inputs are assumed physically plausible (roughly
// 50-1050 hPa); nothing is validated.
func PressureToHeight(p float64) float64 {
	if p <= tropopausePressure {
		return tropopauseHeight - dryGasConstant*(zeroCK-56.5)/gravity*math.Log(p/tropopausePressure)
	}
	return seaLevelTemp / lapseRate * (1 - math.Pow(p/seaLevelPressure, isaExponent))
}

// PressureToFlightLevel converts a pressure level [hPa] to a flight level
// [hft]. Rounding is half away from zero (math.Round); it decides the last
// digit, e.g. 500 hPa is 5574.44 m = 182.88 hft and reports as FL183.
func PressureToFlightLevel(p float64) int {
	return int(math.Round(PressureToHeight(p) * feetPerMeter / 100))
}
