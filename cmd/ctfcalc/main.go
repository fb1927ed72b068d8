// Command ctfcalc evaluates a CTF over a 2D Fourier grid and writes the
// result as an MRC image, with an optional grayscale preview.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/bHimes/emClarity/internal/ctf"
	"github.com/bHimes/emClarity/internal/mrc"
	"github.com/bHimes/emClarity/internal/version"

	"golang.org/x/image/tiff"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	width := flag.Int("width", 512, "Grid width in pixels")
	height := flag.Int("height", 512, "Grid height in pixels")
	pixel := flag.Float64("pixel", 1.0, "Real-space pixel size in Angstrom")
	kv := flag.Float64("kv", 300, "Accelerating voltage in kV")
	cs := flag.Float64("cs", 2.7, "Spherical aberration in mm")
	defocus1 := flag.Float64("defocus1", 15000, "Major-axis defocus in Angstrom (underfocus positive)")
	defocus2 := flag.Float64("defocus2", 15000, "Minor-axis defocus in Angstrom")
	astigmatism := flag.Float64("astigmatism", 0, "Astigmatism angle in degrees")
	amplitudeContrast := flag.Float64("amplitude-contrast", 0.07, "Amplitude-contrast fraction")
	exposure := flag.Float64("exposure", 0, "Accumulated exposure in e-/A^2 (0 disables damping)")
	centered := flag.Bool("centered", false, "Place zero frequency at the grid center")
	half := flag.Bool("half", false, "Evaluate on the Hermitian half grid")
	squared := flag.Bool("squared", false, "Output |CTF|^2 instead of the signed amplitude")
	radial := flag.Bool("radial", false, "Apply the |x|+1 radial ramp weight")
	paramsPath := flag.String("params", "", "JSON parameter file (overrides the optics flags)")
	output := flag.String("o", "ctf.mrc", "Output MRC path")
	preview := flag.String("preview", "", "Optional PNG or TIFF preview path")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	var p ctf.Params
	if *paramsPath != "" {
		var err error
		p, err = ctf.LoadParams(*paramsPath)
		if err != nil {
			log.Fatalf("Failed to load params: %v", err)
		}
	} else {
		p = ctf.Params{
			SphericalAberration: *cs * 1e7, // mm -> Angstrom
			Wavelength:          ctf.Wavelength(*kv),
			AmplitudeContrast:   *amplitudeContrast,
			HalfGrid:            *half,
			Squared:             *squared,
		}
		p = p.WithDefocus(*defocus1, *defocus2, *astigmatism*math.Pi/180)
	}

	grid := ctf.NewGrid(*width, *height, *pixel, *pixel)
	if err := grid.Validate(); err != nil {
		log.Fatalf("Invalid grid: %v", err)
	}

	log.Printf("Evaluating %dx%d CTF: lambda=%.4f A, defocus=%.0f/%.0f A, exposure=%.1f e-/A^2",
		*width, *height, p.Wavelength, p.Defocus1+p.Defocus2, p.Defocus1-p.Defocus2, *exposure)

	data := ctf.Evaluate(grid, p, ctf.Options{
		Centered:      *centered,
		RadialWeight:  *radial,
		TotalExposure: *exposure,
	})

	header := mrc.NewHeader(*width, *height, 1, *pixel)
	if err := mrc.WriteFile(*output, header, data); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("Wrote %s", *output)

	if *preview != "" {
		if err := writePreview(*preview, data, *width, *height); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Wrote %s", *preview)
	}
}

// writePreview normalizes the buffer to 8-bit grayscale and encodes it
// as PNG or TIFF based on the file extension.
func writePreview(path string, data []float32, width, height int) error {
	img := image.NewGray(image.Rect(0, 0, width, height))

	min, max, _, _ := mrc.ComputeStats(data)
	scale := 0.0
	if max > min {
		scale = 255.0 / (max - min)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := (float64(data[y*width+x]) - min) * scale
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return tiff.Encode(f, img, nil)
	case ".png":
		return png.Encode(f, img)
	default:
		return fmt.Errorf("unsupported preview format %q (use .png or .tiff)", filepath.Ext(path))
	}
}
