// Package raster decodes icon sources and produces resampled PNG variants.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/webp"

	"github.com/davesmith10/icongen/internal/manifest"
)

// DefaultSVGSize is the raster size for vector sources, matching the
// largest iconset entry.
const DefaultSVGSize = 1024

// Load decodes the file at path into a 4-channel NRGBA raster, whatever the
// source channel layout. SVG files are rasterized at svgSize x svgSize;
// a non-positive svgSize means DefaultSVGSize.
func Load(path string, svgSize int) (*image.NRGBA, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return loadSVG(path, svgSize)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba, nil
	}
	return imaging.Clone(img), nil
}

func loadSVG(path string, size int) (*image.NRGBA, error) {
	if size <= 0 {
		size = DefaultSVGSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing SVG %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := rasterx.NewDasher(size, size, rasterx.NewScannerGV(size, size, rgba, rgba.Bounds()))
	icon.Draw(dc, 1.0)

	return imaging.Clone(rgba), nil
}

// Resize returns a new size x size copy of src using Lanczos resampling.
// src is never modified.
func Resize(src image.Image, size int) *image.NRGBA {
	return imaging.Resize(src, size, size, imaging.Lanczos)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
}

// WritePNG encodes img as PNG at path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Variants resamples src once per distinct size and calls fn for each entry
// in order. Entries that share a size reuse the first resample.
func Variants(src image.Image, entries []manifest.Entry, fn func(e manifest.Entry, img *image.NRGBA) error) error {
	cache := make(map[int]*image.NRGBA, len(entries))
	for _, e := range entries {
		img, ok := cache[e.Size]
		if !ok {
			img = Resize(src, e.Size)
			cache[e.Size] = img
		}
		if err := fn(e, img); err != nil {
			return err
		}
	}
	return nil
}
