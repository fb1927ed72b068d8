// Command ctfapply filters every section of an MRC image stack by a
// computed CTF in Fourier space.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/bHimes/emClarity/internal/ctf"
	"github.com/bHimes/emClarity/internal/filter"
	"github.com/bHimes/emClarity/internal/mrc"
	"github.com/bHimes/emClarity/internal/version"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	input := flag.String("in", "", "Input MRC path")
	output := flag.String("out", "", "Output MRC path")
	kv := flag.Float64("kv", 300, "Accelerating voltage in kV")
	cs := flag.Float64("cs", 2.7, "Spherical aberration in mm")
	defocus1 := flag.Float64("defocus1", 15000, "Major-axis defocus in Angstrom")
	defocus2 := flag.Float64("defocus2", 15000, "Minor-axis defocus in Angstrom")
	astigmatism := flag.Float64("astigmatism", 0, "Astigmatism angle in degrees")
	amplitudeContrast := flag.Float64("amplitude-contrast", 0.07, "Amplitude-contrast fraction")
	exposure := flag.Float64("exposure", 0, "Accumulated exposure in e-/A^2")
	paramsPath := flag.String("params", "", "JSON parameter file (overrides the optics flags)")
	useOpenCV := flag.Bool("opencv", false, "Use the OpenCV DFT instead of the pure Go path")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *input == "" || *output == "" {
		fmt.Println("Usage: ctfapply -in <input.mrc> -out <output.mrc> [optics flags]")
		os.Exit(1)
	}

	header, data, err := mrc.ReadFile(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	width, height, sections := int(header.NX), int(header.NY), int(header.NZ)
	pixel := header.PixelSize()
	if pixel <= 0 {
		log.Fatalf("Input %s has no pixel size in its header", *input)
	}
	log.Printf("Loaded %s: %dx%dx%d at %.3f A/pixel", *input, width, height, sections, pixel)

	var p ctf.Params
	if *paramsPath != "" {
		p, err = ctf.LoadParams(*paramsPath)
		if err != nil {
			log.Fatalf("Failed to load params: %v", err)
		}
	} else {
		p = ctf.Params{
			SphericalAberration: *cs * 1e7,
			Wavelength:          ctf.Wavelength(*kv),
			AmplitudeContrast:   *amplitudeContrast,
		}
		p = p.WithDefocus(*defocus1, *defocus2, *astigmatism*math.Pi/180)
	}

	// The DFT layout is unshifted, so the CTF is evaluated in the
	// natural origin convention.
	grid := ctf.NewGrid(width, height, pixel, pixel)
	tf := ctf.Evaluate(grid, p, ctf.Options{TotalExposure: *exposure})

	apply := filter.ApplyGo
	if *useOpenCV {
		apply = filter.Apply
	}

	out := make([]float32, len(data))
	sectionSize := header.SectionSize()
	for z := 0; z < sections; z++ {
		section := data[z*sectionSize : (z+1)*sectionSize]
		filtered, err := apply(section, width, height, tf)
		if err != nil {
			log.Fatalf("Failed to filter section %d: %v", z, err)
		}
		copy(out[z*sectionSize:], filtered)
	}

	header.AddLabel("ctfapply")
	if err := mrc.WriteFile(*output, header, out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Wrote %s (%d sections)", *output, sections)
}
