package filter

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// ApplyGo is the pure Go counterpart of Apply, using gonum's FFT. It
// exists for builds without OpenCV and for testing; results agree with
// Apply to single precision.
func ApplyGo(data []float32, width, height int, tf []float32) ([]float32, error) {
	if err := checkDims(data, width, height, tf); err != nil {
		return nil, err
	}

	grid := make([]complex128, width*height)
	for i, v := range data {
		grid[i] = complex(float64(v), 0)
	}

	fft2(grid, width, height, false)

	for i, v := range tf {
		grid[i] *= complex(float64(v), 0)
	}

	fft2(grid, width, height, true)

	// The inverse pass is unnormalized; fold in the 1/(w*h) scale while
	// taking the real part.
	scale := 1.0 / float64(width*height)
	out := make([]float32, width*height)
	for i, v := range grid {
		out[i] = float32(real(v) * scale)
	}
	return out, nil
}

// fft2 runs an in-place 2D transform as row passes followed by column
// passes. Inverse transforms are left unnormalized.
func fft2(grid []complex128, width, height int, inverse bool) {
	rowFFT := fourier.NewCmplxFFT(width)
	row := make([]complex128, width)
	for y := 0; y < height; y++ {
		copy(row, grid[y*width:(y+1)*width])
		transform(rowFFT, grid[y*width:(y+1)*width], row, inverse)
	}

	colFFT := fourier.NewCmplxFFT(height)
	col := make([]complex128, height)
	dst := make([]complex128, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			col[y] = grid[y*width+x]
		}
		transform(colFFT, dst, col, inverse)
		for y := 0; y < height; y++ {
			grid[y*width+x] = dst[y]
		}
	}
}

func transform(fft *fourier.CmplxFFT, dst, src []complex128, inverse bool) {
	if inverse {
		fft.Sequence(dst, src)
	} else {
		fft.Coefficients(dst, src)
	}
}
