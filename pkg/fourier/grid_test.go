package fourier

import (
	"math"
	"testing"
)

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVectorConventions(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		origin Origin
		want   []float64
	}{
		{"natural even", 4, OriginNatural, []float64{0, 1, 2, -1}},
		{"natural odd", 5, OriginNatural, []float64{0, 1, 2, -2, -1}},
		{"natural 8", 8, OriginNatural, []float64{0, 1, 2, 3, 4, -3, -2, -1}},
		{"centered even", 4, OriginCentered, []float64{-2, -1, 0, 1}},
		{"centered odd", 5, OriginCentered, []float64{-2, -1, 0, 1, 2}},
		{"half even", 4, OriginHalf, []float64{0, 1, 2}},
		{"half odd", 5, OriginHalf, []float64{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vector(tt.n, tt.origin)
			if !vectorsEqual(got, tt.want) {
				t.Errorf("Vector(%d, %v) = %v, want %v", tt.n, tt.origin, got, tt.want)
			}
		})
	}
}

func TestVoxelSize(t *testing.T) {
	// 4 samples at 0.25 A/pixel spans 1 A, so the frequency step is 1 cycle/A.
	if got := VoxelSize(4, 0.25); math.Abs(got-1.0) > 1e-15 {
		t.Errorf("VoxelSize(4, 0.25) = %g, want 1", got)
	}
	if got := VoxelSize(100, 1.0); math.Abs(got-0.01) > 1e-15 {
		t.Errorf("VoxelSize(100, 1) = %g, want 0.01", got)
	}
}

func TestFreqVectorScaling(t *testing.T) {
	got := FreqVector(4, 1.0, OriginNatural)
	want := []float64{0, 0.25, 0.5, -0.25}
	if !vectorsEqual(got, want) {
		t.Errorf("FreqVector(4, 1, natural) = %v, want %v", got, want)
	}
}

func TestNewGrid2D(t *testing.T) {
	g := NewGrid2D(4, 8, 1.0, 2.0, OriginCentered)
	if len(g.X) != 4 || len(g.Y) != 8 {
		t.Fatalf("grid axis lengths = %d, %d; want 4, 8", len(g.X), len(g.Y))
	}
	// Centered origin: the n/2 element is zero frequency.
	if g.X[2] != 0 || g.Y[4] != 0 {
		t.Errorf("centered grid origin not at half index: X[2]=%g Y[4]=%g", g.X[2], g.Y[4])
	}
	// Y axis frequency step is 1/(8*2) = 0.0625.
	if math.Abs(g.Y[5]-0.0625) > 1e-15 {
		t.Errorf("Y frequency step = %g, want 0.0625", g.Y[5])
	}
}

func TestOriginString(t *testing.T) {
	if OriginNatural.String() != "natural" || OriginCentered.String() != "centered" ||
		OriginHalf.String() != "half" || Origin(99).String() != "unknown" {
		t.Error("Origin.String mismatch")
	}
}
