package domain

// Physical constants for the thermodynamic chain and the ICAO standard
// atmosphere. Values follow Bolton (1980), Davies-Jones (2008) and ICAO
// Doc 7488. The baked values must not drift: they are part of the fitted
// approximation, and changing one changes the physical answer.
const (
	// zeroCK converts between Celsius and Kelvin.
	zeroCK = 273.15

	// dryGasConstant is the specific gas constant of dry air Rd [J/(kg·K)].
	dryGasConstant = 287.0

	// kappa is Rd/Cpd, the Poisson exponent.
	kappa = 0.28571428571428564

	// epsilon is the molecular weight ratio of water vapour to dry air.
	epsilon = 0.6219569100577033

	universalGasConstant = 8.31432   // [J/(K·mol)]
	molarMassAir         = 0.0289644 // [kg/mol]
	gravity              = 9.80665   // [m/s²]
	lapseRate            = 0.0065    // ISA troposphere lapse rate [K/m]
	seaLevelTemp         = 15.0 + zeroCK
	seaLevelPressure     = 1013.25 // [hPa]

	// tropopausePressure is the ISA pressure at the 11 km tropopause [hPa].
	tropopausePressure = 226.32
	tropopauseHeight   = 11000.0 // [m]

	feetPerMeter = 3.28084
)

// airGasConstant is the gas constant of mean air [J/(K·kg)] and isaExponent
// is R·γ/g, the exponent of the troposphere pressure-height power law.
// Computed at run time so the rounding matches plain float64 arithmetic.
var (
	airGasConstant = universalGasConstant / molarMassAir
	isaExponent    = airGasConstant * lapseRate / gravity
)
