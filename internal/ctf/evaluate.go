package ctf

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/bHimes/emClarity/pkg/fourier"
)

// Grid describes the 2D Fourier-space sampling the CTF is evaluated on.
type Grid struct {
	Width  int
	Height int

	// HalfWidth and HalfHeight locate the origin for the centering and
	// wrap conventions; normally Width/2 and Height/2.
	HalfWidth  int
	HalfHeight int

	// VoxelX and VoxelY are the per-axis Fourier voxel sizes
	// (spatial-frequency increment per pixel, 1/A).
	VoxelX float64
	VoxelY float64
}

// NewGrid builds a grid for a width-by-height image at the given
// real-space pixel sizes in Angstrom.
func NewGrid(width, height int, pixelX, pixelY float64) Grid {
	return Grid{
		Width:      width,
		Height:     height,
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
		VoxelX:     fourier.VoxelSize(width, pixelX),
		VoxelY:     fourier.VoxelSize(height, pixelY),
	}
}

// Validate rejects grids the kernel would silently fill with NaN/Inf.
// The kernel itself performs no checks; callers handling external input
// should validate first.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("invalid grid dimensions %dx%d", g.Width, g.Height)
	}
	if g.HalfWidth < 0 || g.HalfHeight < 0 {
		return fmt.Errorf("invalid half-dimensions %d,%d", g.HalfWidth, g.HalfHeight)
	}
	if !isFinite(g.VoxelX) || !isFinite(g.VoxelY) || g.VoxelX <= 0 || g.VoxelY <= 0 {
		return fmt.Errorf("invalid Fourier voxel size %g,%g", g.VoxelX, g.VoxelY)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Options holds the per-call evaluation switches.
type Options struct {
	// Centered places the zero frequency at the grid center instead of
	// the unshifted FFT layout.
	Centered bool

	// RadialWeight scales each cell by |x|+1, the ramp weighting used
	// when accumulating tilted projections.
	RadialWeight bool

	// TotalExposure is the accumulated exposure in e-/A^2 driving the
	// damage envelope; zero disables it.
	TotalExposure float64
}

// Evaluate fills a row-major Width*Height buffer with the CTF amplitude
// at every grid cell. Each cell is independent and written exactly
// once, so rows are striped across the available CPUs.
func Evaluate(g Grid, p Params, opts Options) []float32 {
	out := make([]float32, g.Width*g.Height)

	numWorkers := runtime.NumCPU()
	rowsPerWorker := (g.Height + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > g.Height {
			endY = g.Height
		}
		if startY >= g.Height {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			for y := yStart; y < yEnd; y++ {
				for x := 0; x < g.Width; x++ {
					out[y*g.Width+x] = float32(cellValue(g, p, opts, x, y))
				}
			}
		}(startY, endY)
	}
	wg.Wait()

	return out
}

// cellValue evaluates the CTF at one grid cell.
func cellValue(g Grid, p Params, opts Options, x, y int) float64 {
	if opts.Centered {
		// Half grids keep x anchored at zero frequency.
		if !p.HalfGrid {
			x -= g.HalfWidth
		}
		y -= g.HalfHeight
	} else {
		if x > g.HalfWidth {
			x -= g.Width
		}
		if y > g.HalfHeight {
			y -= g.Height
		}
	}

	fx := float64(x) * g.VoxelX
	fy := float64(y) * g.VoxelY

	phi := math.Atan2(fy, fx)
	r2 := fx*fx + fy*fy

	defocus := p.Defocus1 + p.Defocus2*math.Cos(2*(phi-p.AstigmatismAngle))

	lambda := p.Wavelength
	t1 := 0.5 * math.Pi * p.SphericalAberration * lambda * lambda * lambda
	t2 := math.Pi * lambda

	v := math.Sin(t1*r2*r2 + t2*r2*defocus + p.AmplitudeContrast)
	if p.Squared {
		v *= v
	}

	if opts.RadialWeight {
		v *= math.Abs(float64(x)) + 1
	}

	return v * ExposureEnvelope(r2, opts.TotalExposure)
}
