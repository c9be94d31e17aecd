package domain

import "fmt"

// AdiabatModel approximates the family of moist adiabats as a polynomial in
// brightness temperature whose coefficients are themselves quartic
// polynomials in wet-bulb potential temperature. It is pure data plus one
// evaluation routine; both solver entry points share it.
type AdiabatModel struct {
	name string
	// table holds one quartic per coefficient slot, in descending powers of
	// theta-w [°C]: {a·tw⁴, b·tw³, c·tw², d·tw, e}. Row order is descending
	// powers of BT.
	table [][5]float64
}

// Precision tiers. The coefficient values are fitted constants and must be
// reproduced exactly; see the package documentation for the error bounds.
var (
	// StandardAdiabat approximates each moist adiabat with a degree-5
	// polynomial. Maximum absolute altitude error inside the BT envelope
	// is 28 m against the iterative adiabat integration.
	StandardAdiabat = &AdiabatModel{
		name: "standard",
		table: [][5]float64{
			{1.34900172e-13, -9.43979160e-12, 1.87653668e-10, -7.65322959e-11, 2.92814658e-08},
			{1.83574985e-11, -1.34431358e-09, 1.98697357e-08, 2.98476410e-07, 1.27504708e-05},
			{9.71770820e-10, -6.82962603e-08, -2.29995000e-07, 5.36097021e-05, 2.28596093e-03},
			{1.53207987e-08, -1.92972790e-07, -1.22319198e-04, 2.46185591e-03, 2.34738009e-01},
			{-1.69715923e-07, 7.78264909e-05, -5.65297782e-03, -1.58431571e-01, 1.86846195e+01},
			{4.15209383e-05, -1.28889861e-04, -7.22894532e-02, -1.86535189e+01, 9.98111805e+02},
		},
	}

	// HighPrecisionAdiabat approximates each moist adiabat with a degree-6
	// polynomial. Maximum absolute altitude error inside the BT envelope
	// is 7.5 m.
	HighPrecisionAdiabat = &AdiabatModel{
		name: "high_precision",
		table: [][5]float64{
			{1.34598934e-15, -6.95711517e-14, 7.06772534e-13, 3.27562146e-13, 2.14085111e-10},
			{1.46826594e-13, -3.28095045e-12, -1.90355508e-10, 2.99865474e-09, 1.17192247e-07},
			{-4.03819245e-12, 1.04339580e-09, -5.57183537e-08, 5.66654023e-07, 2.72099202e-05},
			{-1.04764419e-09, 1.09514749e-07, -4.37757525e-06, 3.47578633e-05, 3.40521208e-03},
			{-4.13270841e-08, 3.51397283e-06, -1.36808612e-04, -2.81625246e-04, 2.74722979e-01},
			{4.86347926e-08, 1.76182949e-05, -1.78557297e-03, -2.44625335e-01, 1.92406642e+01},
			{5.64716869e-05, -1.62042578e-03, -2.23587882e-02, -1.92635339e+01, 9.99811121e+02},
		},
	}
)

// TierByName resolves a configuration tier name to its model.
func TierByName(name string) (*AdiabatModel, error) {
	switch name {
	case "standard":
		return StandardAdiabat, nil
	case "high_precision":
		return HighPrecisionAdiabat, nil
	}
	return nil, fmt.Errorf("unknown adiabat tier %q", name)
}

// Name returns the tier name ("standard" or "high_precision").
func (m *AdiabatModel) Name() string { return m.name }

// Degree returns the degree of the moist adiabat polynomial.
func (m *AdiabatModel) Degree() int { return len(m.table) - 1 }

// Coefficients evaluates the coefficient quartics at wet-bulb potential
// temperature tw [°C], yielding the moist adiabat polynomial in descending
// powers of brightness temperature.
func (m *AdiabatModel) Coefficients(tw float64) []float64 {
	tw2 := tw * tw
	tw3 := tw2 * tw
	tw4 := tw3 * tw
	cs := make([]float64, len(m.table))
	for i, q := range m.table {
		cs[i] = q[0]*tw4 + q[1]*tw3 + q[2]*tw2 + q[3]*tw + q[4]
	}
	return cs
}

// PressureAt evaluates the moist adiabat indexed by tw [°C, wet-bulb
// potential temperature] at brightness temperature bt [°C] and returns the
// pressure level [hPa] where the adiabat reaches bt.
func (m *AdiabatModel) PressureAt(tw, bt float64) float64 {
	var p float64
	for _, c := range m.Coefficients(tw) {
		p = p*bt + c
	}
	return p
}
