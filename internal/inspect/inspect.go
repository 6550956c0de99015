// Package inspect reads header-level metadata from exported icon files.
package inspect

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/davesmith10/icongen/internal/winicon"
)

const (
	icnsMagic      = 0x69636e73 // 'icns'
	icnsHeaderSize = 8
	maxFileSize    = 64 * 1024 * 1024
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Frame describes one image stored in a container.
type Frame struct {
	Type   string // ICNS OSType; empty for ICO frames
	Width  int    // 0 when the ICNS type has no known pixel size
	Height int
	Length int // ICNS element length in bytes
}

// Info describes an icon file.
type Info struct {
	Format string // "PNG", "ICO" or "ICNS"
	Width  int    // largest frame
	Height int
	Frames []Frame
	Size   int
}

// File reads path and dispatches on its magic bytes.
func File(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Bytes(data)
}

// Bytes inspects an in-memory icon file.
func Bytes(data []byte) (*Info, error) {
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("file too large (%d bytes, max %d)", len(data), maxFileSize)
	}
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return PNG(data)
	case len(data) >= 4 && binary.BigEndian.Uint32(data[0:4]) == icnsMagic:
		return ICNS(data)
	case len(data) >= 4 && binary.LittleEndian.Uint16(data[0:2]) == 0 && binary.LittleEndian.Uint16(data[2:4]) == 1:
		return ICO(data)
	default:
		return nil, errors.New("unrecognized icon format")
	}
}

// PNG returns the dimensions of a PNG file.
func PNG(data []byte) (*Info, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing PNG: %w", err)
	}
	return &Info{
		Format: "PNG",
		Width:  cfg.Width,
		Height: cfg.Height,
		Frames: []Frame{{Width: cfg.Width, Height: cfg.Height}},
		Size:   len(data),
	}, nil
}

// ICO decodes every frame of an ICO container.
func ICO(data []byte) (*Info, error) {
	imgs, err := winicon.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	info := &Info{Format: "ICO", Size: len(data)}
	for _, img := range imgs {
		b := img.Bounds()
		info.Frames = append(info.Frames, Frame{Width: b.Dx(), Height: b.Dy()})
		info.grow(b.Dx(), b.Dy())
	}
	return info, nil
}

// ICNS walks the element list of an ICNS container. Each element is a
// 4-byte OSType followed by a big-endian length that includes its own
// 8-byte header.
func ICNS(data []byte) (*Info, error) {
	if len(data) < icnsHeaderSize {
		return nil, errors.New("ICNS too short (< 8 bytes)")
	}
	sig := binary.BigEndian.Uint32(data[0:4])
	if sig != icnsMagic {
		return nil, fmt.Errorf("invalid ICNS signature: 0x%08x (expected 0x%08x)", sig, icnsMagic)
	}
	total := binary.BigEndian.Uint32(data[4:8])
	if int(total) != len(data) {
		return nil, fmt.Errorf("ICNS length field %d does not match file size %d", total, len(data))
	}

	info := &Info{Format: "ICNS", Size: len(data)}
	for off := icnsHeaderSize; off < len(data); {
		if len(data)-off < 8 {
			return nil, fmt.Errorf("truncated ICNS element at offset %d", off)
		}
		typ := string(data[off : off+4])
		n := int(binary.BigEndian.Uint32(data[off+4 : off+8]))
		if n < 8 || off+n > len(data) {
			return nil, fmt.Errorf("ICNS element %q has invalid length %d", typ, n)
		}
		px := OSTypeSize(typ)
		info.Frames = append(info.Frames, Frame{Type: typ, Width: px, Height: px, Length: n})
		info.grow(px, px)
		off += n
	}
	return info, nil
}

func (i *Info) grow(w, h int) {
	if w*h > i.Width*i.Height {
		i.Width, i.Height = w, h
	}
}

// OSTypeSize returns the pixel size of an ICNS image element, or 0 for
// types that are not images or are unknown.
func OSTypeSize(t string) int {
	switch t {
	case "is32", "s8mk", "icp4", "ic04":
		return 16
	case "il32", "l8mk", "icp5", "ic05", "ic11":
		return 32
	case "icp6", "ic12":
		return 64
	case "it32", "t8mk", "ic07":
		return 128
	case "ic08", "ic13":
		return 256
	case "ic09", "ic14":
		return 512
	case "ic10":
		return 1024
	default:
		return 0
	}
}
