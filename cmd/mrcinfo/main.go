// Command mrcinfo prints MRC header information, including the density
// statistics stored in the header.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bHimes/emClarity/internal/mrc"
	"github.com/bHimes/emClarity/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if flag.NArg() == 0 {
		fmt.Println("Usage: mrcinfo <file.mrc> [...]")
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := printInfo(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func printInfo(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h, err := mrc.ReadHeader(f)
	if err != nil {
		return err
	}

	fmt.Printf("%s:\n", path)
	fmt.Printf("  dimensions:  %d x %d x %d\n", h.NX, h.NY, h.NZ)
	fmt.Printf("  mode:        %d (%s)\n", h.Mode, modeName(h.Mode))
	fmt.Printf("  pixel size:  %.4f A\n", h.PixelSize())
	fmt.Printf("  density:     min %.6g  max %.6g  mean %.6g  rms %.6g\n",
		h.DensityMin(), h.DensityMax(), h.DensityMean(), h.RMS)
	if h.NSymBT > 0 {
		fmt.Printf("  extended:    %d bytes\n", h.NSymBT)
	}
	for i := int32(0); i < h.NLabl && i < 10; i++ {
		label := strings.TrimRight(string(h.Labels[i][:]), " \x00")
		if label != "" {
			fmt.Printf("  label %d:     %s\n", i, label)
		}
	}
	return nil
}

func modeName(mode int32) string {
	switch mode {
	case mrc.ModeInt8:
		return "int8"
	case mrc.ModeInt16:
		return "int16"
	case mrc.ModeFloat32:
		return "float32"
	case mrc.ModeComplex32:
		return "complex float32"
	case mrc.ModeUint16:
		return "uint16"
	default:
		return "unknown"
	}
}
