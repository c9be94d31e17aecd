// Package domain estimates the top pressure level of deep convective clouds
// with the BT-parcel method.
//
// # Method
//
// An infrared (10.8 µm) satellite brightness temperature (BT) is treated as
// the temperature of an adiabatically rising convective updraft. The pressure
// where BT intersects the parcel's moist adiabat is the theoretical cloud top
// pressure. Instead of integrating the adiabat step by step, the adiabat
// family is approximated by a polynomial in BT whose coefficients are quartic
// polynomials in wet-bulb potential temperature (theta-w), which indexes the
// adiabat shape. Two baked coefficient tiers exist:
//
//	standard        degree-5 adiabat polynomial, max altitude error 28 m
//	high_precision  degree-6 adiabat polynomial, max altitude error 7.5 m
//
// Both error bounds hold for brightness temperatures between -15 and -75 °C,
// the usual range of deep convective cloud tops. Outside that envelope the
// solver still returns a numeric result but the approximation error is
// unbounded; [InEnvelope] reports which side of the contract a value is on.
//
// # Input conventions
//
// The estimate only applies to convective clouds. A raw BT is biased 5 °C
// warm by emissivity and viewing-angle effects, so a fixed -5 °C correction
// is applied inside both solver entry points.
//
// The result is sensitive to the starting parcel, so production callers
// should feed the most unstable parcel from a search volume around the
// target pixel (e.g. a 30-40 km radius, surface to 700 hPa): compute
// equivalent potential temperature (theta-e) for every sample, take the
// maximum ([MaxThetaE]), and solve via [CloudTopPressureFromThetaE]. Parcels
// are assumed physically consistent (dewpoint not above temperature); the
// chain does not validate this, matching the upstream data contract.
//
// # Error policy
//
// Every function here is a pure, deterministic computation with no shared
// state, safe to evaluate concurrently per pixel. Domain errors (such as the
// logarithm of a non-positive ratio for sub-absolute-zero dewpoints)
// propagate as NaN rather than being clamped, so one bad pixel cannot
// silently corrupt a field of estimates; [CloudTop.Valid] and
// [Estimate.Valid] carry the invalid signal outward.
package domain
