// Package mrc reads and writes MRC2014 image stacks and volumes.
package mrc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the fixed size of the main MRC header in bytes.
const HeaderSize = 1024

// Data modes. Image density values are stored per-pixel in one of these
// representations.
const (
	ModeInt8      = 0
	ModeInt16     = 1
	ModeFloat32   = 2
	ModeComplex32 = 4
	ModeUint16    = 6
)

// ErrBadMagic is returned when the MAP identifier is missing; the file
// is either not MRC or predates the 2000 format revision.
var ErrBadMagic = errors.New("mrc: missing MAP identifier")

// Header is the 1024-byte MRC2014 main header. Field order matches the
// on-disk layout exactly; it is serialized with encoding/binary.
type Header struct {
	NX, NY, NZ int32 // column, row, section counts
	Mode       int32

	NXStart, NYStart, NZStart int32 // sub-volume offsets
	MX, MY, MZ                int32 // sampling intervals along cell axes

	CellA, CellB, CellC float32 // cell dimensions in Angstrom
	Alpha, Beta, Gamma  float32 // cell angles in degrees
	MapC, MapR, MapS    int32   // axis correspondence (1,2,3)
	DMin, DMax, DMean   float32 // density statistics
	ISpg                int32   // space group; 0 for stacks, 1 for volumes
	NSymBT              int32   // extended header size in bytes
	Extra               [25]int32
	XOrigin, YOrigin, ZOrigin float32
	Map          [4]byte // "MAP "
	MachineStamp [4]byte
	RMS          float32
	NLabl        int32
	Labels       [10][80]byte
}

var mapMagic = [4]byte{'M', 'A', 'P', ' '}

// littleEndianStamp marks little-endian data per the MRC2014 convention.
var littleEndianStamp = [4]byte{0x44, 0x44, 0x00, 0x00}

// NewHeader returns a header for an nx-by-ny-by-nz float32 stack at the
// given isotropic pixel size in Angstrom.
func NewHeader(nx, ny, nz int, pixelSize float64) Header {
	h := Header{
		NX: int32(nx), NY: int32(ny), NZ: int32(nz),
		Mode: ModeFloat32,
		MX:   int32(nx), MY: int32(ny), MZ: int32(nz),
		CellA: float32(float64(nx) * pixelSize),
		CellB: float32(float64(ny) * pixelSize),
		CellC: float32(float64(nz) * pixelSize),
		Alpha: 90, Beta: 90, Gamma: 90,
		MapC: 1, MapR: 2, MapS: 3,
		Map:          mapMagic,
		MachineStamp: littleEndianStamp,
	}
	h.AddLabel("emClarity")
	return h
}

// DensityMin returns the minimum pixel density recorded in the header.
func (h *Header) DensityMin() float64 { return float64(h.DMin) }

// DensityMax returns the maximum pixel density recorded in the header.
func (h *Header) DensityMax() float64 { return float64(h.DMax) }

// DensityMean returns the mean pixel density recorded in the header.
func (h *Header) DensityMean() float64 { return float64(h.DMean) }

// SetDensityRange records the density statistics.
func (h *Header) SetDensityRange(min, max, mean float64) {
	h.DMin = float32(min)
	h.DMax = float32(max)
	h.DMean = float32(mean)
}

// PixelSize returns the pixel size along X in Angstrom, zero if the
// sampling fields are unset.
func (h *Header) PixelSize() float64 {
	if h.MX == 0 {
		return 0
	}
	return float64(h.CellA) / float64(h.MX)
}

// SectionSize returns the number of pixels in one XY section.
func (h *Header) SectionSize() int {
	return int(h.NX) * int(h.NY)
}

// AddLabel appends a text label, dropping the oldest if all ten slots
// are in use. Labels longer than 80 bytes are truncated.
func (h *Header) AddLabel(text string) {
	if h.NLabl >= 10 {
		copy(h.Labels[0:], h.Labels[1:])
		h.NLabl = 9
	}
	var label [80]byte
	for i := range label {
		label[i] = ' '
	}
	copy(label[:], text)
	h.Labels[h.NLabl] = label
	h.NLabl++
}

// Validate checks the identifier and data mode.
func (h *Header) Validate() error {
	if h.Map != mapMagic {
		return ErrBadMagic
	}
	switch h.Mode {
	case ModeInt8, ModeInt16, ModeFloat32, ModeComplex32, ModeUint16:
	default:
		return fmt.Errorf("mrc: unsupported data mode %d", h.Mode)
	}
	if h.NX <= 0 || h.NY <= 0 || h.NZ <= 0 {
		return fmt.Errorf("mrc: invalid dimensions %dx%dx%d", h.NX, h.NY, h.NZ)
	}
	return nil
}

// ReadHeader reads and validates a main header.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("failed to read MRC header: %w", err)
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Write serializes the header.
func (h *Header) Write(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("failed to write MRC header: %w", err)
	}
	return nil
}
