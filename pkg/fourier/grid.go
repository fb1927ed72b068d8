// Package fourier provides coordinate vectors for Fourier-space sampling.
package fourier

// Origin selects the coordinate-origin convention for a sampled axis.
type Origin int

const (
	// OriginNatural is the standard unshifted FFT layout: the origin sits
	// at index 0 and indices past n/2 wrap into the negative range.
	OriginNatural Origin = iota

	// OriginCentered places the origin at index n/2 (fftshifted layout).
	OriginCentered

	// OriginHalf is the non-redundant half of a Hermitian-symmetric
	// transform: indices 0..n/2 inclusive, no negative frequencies.
	OriginHalf
)

func (o Origin) String() string {
	switch o {
	case OriginNatural:
		return "natural"
	case OriginCentered:
		return "centered"
	case OriginHalf:
		return "half"
	default:
		return "unknown"
	}
}

// VoxelSize returns the Fourier voxel size (spatial-frequency increment
// per pixel) for an axis of n samples at the given real-space pixel size.
func VoxelSize(n int, pixelSize float64) float64 {
	return 1.0 / (float64(n) * pixelSize)
}

// Vector returns the integer coordinate vector for an axis of n samples
// under the given origin convention. For OriginHalf the vector has
// n/2+1 elements; otherwise n elements.
func Vector(n int, origin Origin) []float64 {
	half := n / 2

	switch origin {
	case OriginCentered:
		v := make([]float64, n)
		for i := range v {
			v[i] = float64(i - half)
		}
		return v
	case OriginHalf:
		v := make([]float64, half+1)
		for i := range v {
			v[i] = float64(i)
		}
		return v
	default:
		v := make([]float64, n)
		for i := range v {
			if i > half {
				v[i] = float64(i - n)
			} else {
				v[i] = float64(i)
			}
		}
		return v
	}
}

// FreqVector returns the coordinate vector scaled to spatial frequency
// (cycles per unit length) using the Fourier voxel size for the axis.
func FreqVector(n int, pixelSize float64, origin Origin) []float64 {
	v := Vector(n, origin)
	dk := VoxelSize(n, pixelSize)
	for i := range v {
		v[i] *= dk
	}
	return v
}

// Grid2D holds per-axis frequency vectors for a 2D sampling grid.
type Grid2D struct {
	X []float64
	Y []float64
}

// NewGrid2D builds frequency vectors for an nx-by-ny grid with the given
// real-space pixel sizes and a common origin convention.
func NewGrid2D(nx, ny int, pixelX, pixelY float64, origin Origin) Grid2D {
	return Grid2D{
		X: FreqVector(nx, pixelX, origin),
		Y: FreqVector(ny, pixelY, origin),
	}
}
