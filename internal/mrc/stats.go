package mrc

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ComputeStats returns the density minimum, maximum, mean, and RMS
// deviation from the mean for a pixel buffer. An empty buffer yields
// all zeros.
func ComputeStats(data []float32) (min, max, mean, rms float64) {
	if len(data) == 0 {
		return 0, 0, 0, 0
	}

	ds := make([]float64, len(data))
	for i, v := range data {
		ds[i] = float64(v)
	}

	min = floats.Min(ds)
	max = floats.Max(ds)
	mean = stat.Mean(ds, nil)
	rms = stat.PopStdDev(ds, nil)
	return min, max, mean, rms
}
