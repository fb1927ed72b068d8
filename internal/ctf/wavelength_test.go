package ctf

import (
	"math"
	"testing"
)

func TestWavelength(t *testing.T) {
	tests := []struct {
		kv   float64
		want float64 // Angstrom
	}{
		{300, 0.01969},
		{200, 0.02508},
		{120, 0.03349},
	}

	for _, tt := range tests {
		got := Wavelength(tt.kv)
		if math.Abs(got-tt.want)/tt.want > 1e-3 {
			t.Errorf("Wavelength(%g) = %g, want %g", tt.kv, got, tt.want)
		}
	}
}

func TestWavelengthMonotonic(t *testing.T) {
	// Wavelength shortens as voltage rises.
	prev := Wavelength(80)
	for _, kv := range []float64{120, 200, 300} {
		cur := Wavelength(kv)
		if !(cur < prev) {
			t.Errorf("Wavelength(%g) = %g not below %g", kv, cur, prev)
		}
		prev = cur
	}
}
