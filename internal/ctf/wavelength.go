package ctf

import "math"

// Wavelength returns the relativistic electron wavelength in Angstrom
// for an accelerating voltage in kV. At 300 kV this is ~0.0197 A.
func Wavelength(kv float64) float64 {
	v := kv * 1000
	// lambda = h / sqrt(2*m0*e*V * (1 + e*V/(2*m0*c^2)))
	// with constants folded: 12.2639 / sqrt(V + 0.97845e-6 * V^2)
	return 12.2639 / math.Sqrt(v+0.97845e-6*v*v)
}
