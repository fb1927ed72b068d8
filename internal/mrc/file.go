package mrc

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// ReadImage reads a whole MRC file into a flat row-major float32 buffer
// of NX*NY*NZ values, converting integer modes as needed. The extended
// header, if any, is skipped.
func ReadImage(r io.Reader) (Header, []float32, error) {
	br := bufio.NewReader(r)

	h, err := ReadHeader(br)
	if err != nil {
		return Header{}, nil, err
	}

	if h.NSymBT > 0 {
		if _, err := io.CopyN(io.Discard, br, int64(h.NSymBT)); err != nil {
			return Header{}, nil, fmt.Errorf("failed to skip extended header: %w", err)
		}
	}

	n := int(h.NX) * int(h.NY) * int(h.NZ)
	data := make([]float32, n)

	switch h.Mode {
	case ModeFloat32:
		if err := binary.Read(br, binary.LittleEndian, data); err != nil {
			return Header{}, nil, fmt.Errorf("failed to read image data: %w", err)
		}
	case ModeInt8:
		raw := make([]int8, n)
		if err := binary.Read(br, binary.LittleEndian, raw); err != nil {
			return Header{}, nil, fmt.Errorf("failed to read image data: %w", err)
		}
		for i, v := range raw {
			data[i] = float32(v)
		}
	case ModeInt16:
		raw := make([]int16, n)
		if err := binary.Read(br, binary.LittleEndian, raw); err != nil {
			return Header{}, nil, fmt.Errorf("failed to read image data: %w", err)
		}
		for i, v := range raw {
			data[i] = float32(v)
		}
	case ModeUint16:
		raw := make([]uint16, n)
		if err := binary.Read(br, binary.LittleEndian, raw); err != nil {
			return Header{}, nil, fmt.Errorf("failed to read image data: %w", err)
		}
		for i, v := range raw {
			data[i] = float32(v)
		}
	default:
		return Header{}, nil, fmt.Errorf("mrc: cannot read data mode %d", h.Mode)
	}

	return h, data, nil
}

// WriteImage writes a float32 buffer as a mode-2 MRC file, recomputing
// the header density statistics from the data first.
func WriteImage(w io.Writer, h Header, data []float32) error {
	n := int(h.NX) * int(h.NY) * int(h.NZ)
	if len(data) != n {
		return fmt.Errorf("mrc: data length %d does not match header dimensions %dx%dx%d",
			len(data), h.NX, h.NY, h.NZ)
	}

	h.Mode = ModeFloat32
	h.NSymBT = 0
	min, max, mean, rms := ComputeStats(data)
	h.SetDensityRange(min, max, mean)
	h.RMS = float32(rms)

	bw := bufio.NewWriter(w)
	if err := h.Write(bw); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("failed to write image data: %w", err)
	}
	return bw.Flush()
}

// ReadFile reads an MRC file from disk.
func ReadFile(path string) (Header, []float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h, data, err := ReadImage(f)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, data, nil
}

// WriteFile writes a mode-2 MRC file to disk.
func WriteFile(path string, h Header, data []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteImage(f, h, data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Sync()
}
