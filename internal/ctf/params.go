// Package ctf implements the microscope contrast transfer function model
// evaluated over 2D Fourier-space grids.
package ctf

import (
	"encoding/json"
	"fmt"
	"os"
)

// Params describes a CTF model. All lengths are in Angstrom and angles
// in radians. The parameter set is immutable input to each evaluation.
type Params struct {
	// SphericalAberration is the Cs coefficient of the objective lens.
	SphericalAberration float64 `json:"spherical_aberration"`

	// Wavelength is the relativistic electron wavelength. Use
	// Wavelength() to derive it from the accelerating voltage.
	Wavelength float64 `json:"wavelength"`

	// Defocus1 and Defocus2 describe astigmatic defocus: Defocus1 is the
	// mean defocus and Defocus2 the half-difference between the two
	// principal axes. Underfocus is positive.
	Defocus1 float64 `json:"defocus_1"`
	Defocus2 float64 `json:"defocus_2"`

	// AstigmatismAngle orients the major defocus axis.
	AstigmatismAngle float64 `json:"astigmatism_angle"`

	// AmplitudeContrast is the amplitude-contrast fraction folded into
	// the phase term.
	AmplitudeContrast float64 `json:"amplitude_contrast"`

	// HalfGrid marks the grid as the non-redundant half of a Hermitian
	// transform: the x axis then starts at zero frequency and is never
	// recentered.
	HalfGrid bool `json:"half_grid"`

	// Squared requests |CTF|^2 instead of the signed amplitude.
	Squared bool `json:"squared"`
}

// DefaultParams returns parameters for a typical 300 kV tomography
// acquisition: Cs 2.7 mm, 1.5 um underfocus, 7% amplitude contrast.
func DefaultParams() Params {
	return Params{
		SphericalAberration: 2.7e7, // 2.7 mm in Angstrom
		Wavelength:          Wavelength(300),
		Defocus1:            15000,
		Defocus2:            0,
		AstigmatismAngle:    0,
		AmplitudeContrast:   0.07,
	}
}

// WithVoltage returns a copy of params with the wavelength set from the
// accelerating voltage in kV.
func (p Params) WithVoltage(kv float64) Params {
	p.Wavelength = Wavelength(kv)
	return p
}

// WithDefocus returns a copy of params with astigmatic defocus set from
// the two principal-axis values and the major-axis angle.
func (p Params) WithDefocus(zMajor, zMinor, angle float64) Params {
	p.Defocus1, p.Defocus2 = DefocusFromAxes(zMajor, zMinor)
	p.AstigmatismAngle = angle
	return p
}

// DefocusFromAxes converts per-axis defocus values into the (mean,
// half-difference) pair the evaluator takes.
func DefocusFromAxes(zMajor, zMinor float64) (mean, halfDiff float64) {
	return (zMajor + zMinor) / 2, (zMajor - zMinor) / 2
}

// LoadParams reads a JSON parameter file.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read params file: %w", err)
	}

	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("failed to parse params file %s: %w", path, err)
	}
	return p, nil
}

// Save writes the parameter set as indented JSON.
func (p Params) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
