package ctf

import (
	"math"
	"testing"
)

func TestEnvelopeAtZeroFrequency(t *testing.T) {
	for _, exposure := range []float64{0, 1, 40, 200} {
		if got := ExposureEnvelope(0, exposure); got != 1 {
			t.Errorf("ExposureEnvelope(0, %g) = %g, want 1", exposure, got)
		}
	}
}

func TestEnvelopeZeroExposure(t *testing.T) {
	for _, r2 := range []float64{0, 0.001, 0.0625, 0.25} {
		if got := ExposureEnvelope(r2, 0); got != 1 {
			t.Errorf("ExposureEnvelope(%g, 0) = %g, want 1", r2, got)
		}
	}
}

func TestEnvelopeMonotonicInExposure(t *testing.T) {
	// For fixed r2 > 0 the envelope strictly decreases as exposure grows.
	const r2 = 0.0625
	prev := ExposureEnvelope(r2, 0)
	for _, exposure := range []float64{1, 5, 20, 60, 120} {
		cur := ExposureEnvelope(r2, exposure)
		if !(cur < prev) {
			t.Errorf("envelope not decreasing: e(%g) = %g >= %g", exposure, cur, prev)
		}
		prev = cur
	}
}

func TestEnvelopeDampsHighFrequenciesMore(t *testing.T) {
	// Higher frequencies have lower critical exposure, so for the same
	// accumulated exposure they are damped harder.
	const exposure = 60.0
	lo := ExposureEnvelope(0.01, exposure)
	hi := ExposureEnvelope(0.25, exposure)
	if !(hi < lo) {
		t.Errorf("high-frequency envelope %g not below low-frequency %g", hi, lo)
	}
}

func TestEnvelopeValue(t *testing.T) {
	// Spot check against the closed form.
	const r2, exposure = 0.04, 30.0
	critical := 0.245*math.Pow(r2, -0.8325) + 2.81
	want := math.Exp(-0.5 * exposure / critical)
	if got := ExposureEnvelope(r2, exposure); !closeEnough(got, want) {
		t.Errorf("ExposureEnvelope(%g, %g) = %g, want %g", r2, exposure, got, want)
	}
}
