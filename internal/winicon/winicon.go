// Package winicon reads and writes multi-resolution Windows ICO containers.
package winicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	sgico "github.com/sergeymakinen/go-ico"
	ico "github.com/ur65/go-ico"

	"github.com/davesmith10/icongen/internal/raster"
)

const maxSize = 256

// ErrNoFrames is returned when an ICO would contain no images.
var ErrNoFrames = errors.New("ico: no frames to encode")

// Encode writes frames as a single ICO in the order given. Frames may be
// at most 256 px per side.
func Encode(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	for i, img := range frames {
		b := img.Bounds()
		if b.Dx() <= 0 || b.Dy() <= 0 || b.Dx() > maxSize || b.Dy() > maxSize {
			return fmt.Errorf("ico: frame %d is %dx%d, must be 1..%d px", i, b.Dx(), b.Dy(), maxSize)
		}
	}
	if err := sgico.EncodeAll(w, frames); err != nil {
		return fmt.Errorf("ico: %w", err)
	}
	return nil
}

// WriteFile resamples src to each of sizes and writes the resulting ICO to
// path. Sizes larger than the source are left out; the omitted sizes are
// returned so the caller can report them.
func WriteFile(path string, src image.Image, sizes []int) (omitted []int, err error) {
	b := src.Bounds()
	var keep []int
	for _, s := range sizes {
		if s > b.Dx() || s > b.Dy() || s > maxSize {
			omitted = append(omitted, s)
			continue
		}
		keep = append(keep, s)
	}

	frames := make([]image.Image, 0, len(keep))
	for _, s := range keep {
		frames = append(frames, raster.Resize(src, s))
	}

	var buf bytes.Buffer
	if err := Encode(&buf, frames); err != nil {
		return omitted, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return omitted, err
	}
	return omitted, nil
}

// Decode returns every image stored in an ICO, in directory order.
func Decode(r io.Reader) ([]image.Image, error) {
	imgs, err := ico.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("ico: %w", err)
	}
	return imgs, nil
}
