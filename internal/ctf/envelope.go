package ctf

import "math"

// Exposure-damage envelope constants, empirical fit of the critical
// exposure as a function of spatial frequency. The exponent applies to
// the squared radius, so it is half the published per-frequency value.
const (
	expA = 0.245
	expB = -0.8325
	expC = 2.81

	// voltageScale corrects the critical exposure for the accelerating
	// voltage. Fixed at 1.0 (300 kV); other voltages need a correction
	// factor applied here.
	voltageScale = 1.0
)

// ExposureEnvelope returns the exposure-dependent damping factor for a
// squared spatial frequency r2 and an accumulated exposure in e-/A^2.
//
// The critical-exposure denominator diverges as r2 -> 0+, so the
// envelope is defined as exactly 1 at zero frequency rather than left
// to Inf propagation through the negative exponent.
func ExposureEnvelope(r2, totalExposure float64) float64 {
	if totalExposure == 0 || r2 <= 0 {
		return 1
	}
	critical := voltageScale * (expA*math.Pow(r2, expB) + expC)
	return math.Exp(-0.5 * totalExposure / critical)
}
