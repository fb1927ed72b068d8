// Package filter applies transfer functions to real images in Fourier
// space.
package filter

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Apply multiplies the DFT of a real width-by-height image by a real
// transfer function given in the natural (unshifted, full-grid) layout
// and transforms back. Both buffers are row-major; the result is a new
// buffer of the same size.
//
// This path uses OpenCV's DFT. See ApplyGo for the pure Go
// implementation used when OpenCV is not available.
func Apply(data []float32, width, height int, tf []float32) ([]float32, error) {
	if err := checkDims(data, width, height, tf); err != nil {
		return nil, err
	}

	src := gocv.NewMatWithSize(height, width, gocv.MatTypeCV32F)
	defer src.Close()
	srcBuf, err := src.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("failed to access source mat: %w", err)
	}
	copy(srcBuf, data)

	spectrum := gocv.NewMat()
	defer spectrum.Close()
	gocv.DFT(src, &spectrum, gocv.DftComplexOutput)

	// The transfer function becomes the real channel of a complex
	// spectrum so MulSpectrums can do the per-bin product.
	re := gocv.NewMatWithSize(height, width, gocv.MatTypeCV32F)
	defer re.Close()
	reBuf, err := re.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("failed to access filter mat: %w", err)
	}
	copy(reBuf, tf)

	im := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV32F)
	defer im.Close()

	filt := gocv.NewMat()
	defer filt.Close()
	gocv.Merge([]gocv.Mat{re, im}, &filt)

	product := gocv.NewMat()
	defer product.Close()
	gocv.MulSpectrums(spectrum, filt, &product, 0)

	out := gocv.NewMat()
	defer out.Close()
	// IDFT takes its flags as a plain int, unlike DFT and MulSpectrums.
	gocv.IDFT(product, &out, int(gocv.DftScale|gocv.DftRealOutput), 0)

	outBuf, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("failed to access result mat: %w", err)
	}
	result := make([]float32, width*height)
	copy(result, outBuf)
	return result, nil
}

func checkDims(data []float32, width, height int, tf []float32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if len(data) != width*height {
		return fmt.Errorf("image length %d does not match %dx%d", len(data), width, height)
	}
	if len(tf) != width*height {
		return fmt.Errorf("transfer function length %d does not match %dx%d", len(tf), width, height)
	}
	return nil
}
