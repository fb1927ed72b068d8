package mrc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestHeaderSize(t *testing.T) {
	if size := binary.Size(Header{}); size != HeaderSize {
		t.Fatalf("header serializes to %d bytes, want %d", size, HeaderSize)
	}
}

func TestNewHeader(t *testing.T) {
	h := NewHeader(64, 32, 10, 2.1)

	if h.NX != 64 || h.NY != 32 || h.NZ != 10 {
		t.Errorf("dimensions = %dx%dx%d, want 64x32x10", h.NX, h.NY, h.NZ)
	}
	if h.Mode != ModeFloat32 {
		t.Errorf("mode = %d, want %d", h.Mode, ModeFloat32)
	}
	if math.Abs(h.PixelSize()-2.1) > 1e-5 {
		t.Errorf("pixel size = %g, want 2.1", h.PixelSize())
	}
	if h.SectionSize() != 64*32 {
		t.Errorf("section size = %d, want %d", h.SectionSize(), 64*32)
	}
	if err := h.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDensityAccessors(t *testing.T) {
	var h Header
	h.SetDensityRange(-1.5, 2.5, 0.25)

	if h.DensityMin() != -1.5 || h.DensityMax() != 2.5 || h.DensityMean() != 0.25 {
		t.Errorf("density accessors = %g, %g, %g; want -1.5, 2.5, 0.25",
			h.DensityMin(), h.DensityMax(), h.DensityMean())
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader(16, 16, 1, 1.0)
	h.SetDensityRange(-3, 3, 0.1)
	h.RMS = 0.9

	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != HeaderSize {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), HeaderSize)
	}

	got, err := ReadHeader(&buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got != h {
		t.Error("header round trip mismatch")
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	h := NewHeader(4, 4, 1, 1.0)
	h.Map = [4]byte{'X', 'X', 'X', 'X'}

	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := ReadHeader(&buf); !errors.Is(err, ErrBadMagic) {
		t.Errorf("error = %v, want ErrBadMagic", err)
	}
}

func TestReadHeaderBadMode(t *testing.T) {
	h := NewHeader(4, 4, 1, 1.0)
	h.Mode = 99

	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := ReadHeader(&buf); err == nil {
		t.Error("expected error for unsupported mode")
	}
}

func TestAddLabelOverflow(t *testing.T) {
	var h Header
	for i := 0; i < 12; i++ {
		h.AddLabel("label")
	}
	if h.NLabl != 10 {
		t.Errorf("label count = %d, want 10", h.NLabl)
	}
}
