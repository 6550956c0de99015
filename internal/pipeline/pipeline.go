// Package pipeline exports one source image as the full set of desktop and
// web icon assets.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/davesmith10/icongen/internal/icns"
	"github.com/davesmith10/icongen/internal/manifest"
	"github.com/davesmith10/icongen/internal/raster"
	"github.com/davesmith10/icongen/internal/report"
	"github.com/davesmith10/icongen/internal/winicon"
)

// ErrSourceNotFound is returned before any output is written.
var ErrSourceNotFound = errors.New("source file not found")

// writeIconsetPNG writes one iconset entry; tests replace it to fail midway.
var writeIconsetPNG = raster.WritePNG

// Reporter receives one message per completed step and per notice.
type Reporter interface {
	Step(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Options controls a single export.
type Options struct {
	Source  string // source raster or SVG
	IconDir string // app icons: PNG set, icon.ico, icon.icns
	WebDir  string // favicon.ico
	WorkDir string // parent of the temporary iconset; empty means os.TempDir
	SVGSize int    // raster size for SVG sources

	Compiler icns.Compiler // nil means iconutil
	Reporter Reporter      // nil discards messages
}

// Result holds the outcome of an export.
type Result struct {
	Files     []string // written paths, in order
	ICNS      bool     // icon.icns was produced
	Warnings  []error  // non-fatal compiler problems
	SrcWidth  int
	SrcHeight int
}

// Export runs the full pipeline: decode → PNG set → icon.ico → favicon.ico
// → iconset → icon.icns. Compiler problems are reported and recorded in
// Result.Warnings; every other failure aborts the export.
func Export(ctx context.Context, opts Options) (*Result, error) {
	rep := opts.Reporter
	if rep == nil {
		rep = report.Discard{}
	}
	compiler := opts.Compiler
	if compiler == nil {
		compiler = icns.Iconutil{}
	}

	// 1. Decode source
	if _, err := os.Stat(opts.Source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, opts.Source)
		}
		return nil, fmt.Errorf("checking source: %w", err)
	}
	src, err := raster.Load(opts.Source, opts.SVGSize)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for _, dir := range []string{opts.IconDir, opts.WebDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	b := src.Bounds()
	res := &Result{SrcWidth: b.Dx(), SrcHeight: b.Dy()}

	// 2. Standard PNGs
	for _, e := range manifest.PNG {
		path := filepath.Join(opts.IconDir, e.Name)
		if err := raster.WritePNG(path, raster.Resize(src, e.Size)); err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
		rep.Step("Generated %s", e.Name)
	}

	// 3. Windows icon and web favicon
	icos := []struct {
		dir   string
		name  string
		sizes []int
	}{
		{opts.IconDir, manifest.AppICO, manifest.AppICOSizes},
		{opts.WebDir, manifest.FaviconICO, manifest.FaviconICOSizes},
	}
	for _, ico := range icos {
		path := filepath.Join(ico.dir, ico.name)
		omitted, err := winicon.WriteFile(path, src, ico.sizes)
		if err != nil {
			return res, fmt.Errorf("writing %s: %w", ico.name, err)
		}
		if len(omitted) > 0 {
			rep.Warn("%s: source is %dx%d, left out sizes %v", ico.name, b.Dx(), b.Dy(), omitted)
		}
		res.Files = append(res.Files, path)
		rep.Step("Generated %s", ico.name)
	}

	// 4. macOS bundle
	if err := buildICNS(ctx, src, opts, compiler, rep, res); err != nil {
		return res, err
	}
	return res, nil
}

// buildICNS writes the iconset into a fresh temporary directory, runs the
// compiler on it, and always removes the directory before returning.
func buildICNS(ctx context.Context, src image.Image, opts Options, compiler icns.Compiler, rep Reporter, res *Result) error {
	dir, err := os.MkdirTemp(opts.WorkDir, "icongen-*.iconset")
	if err != nil {
		return fmt.Errorf("creating iconset directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			rep.Warn("removing %s: %v", dir, err)
			return
		}
		rep.Step("Cleaned up iconset directory")
	}()

	err = raster.Variants(src, manifest.Iconset, func(e manifest.Entry, img *image.NRGBA) error {
		return writeIconsetPNG(filepath.Join(dir, e.Name), img)
	})
	if err != nil {
		return fmt.Errorf("iconset: %w", err)
	}

	out := filepath.Join(opts.IconDir, manifest.ICNS)
	err = compiler.Compile(ctx, dir, out)
	switch {
	case err == nil:
		res.ICNS = true
		res.Files = append(res.Files, out)
		rep.Step("Generated %s", manifest.ICNS)
	case errors.Is(err, icns.ErrToolUnavailable):
		res.Warnings = append(res.Warnings, err)
		rep.Warn("%v, skipping icns generation", err)
		if _, statErr := os.Stat(out); statErr == nil {
			rep.Warn("%s from an earlier run was left unchanged", out)
		}
	default:
		res.Warnings = append(res.Warnings, err)
		rep.Error("generating icns: %v", err)
		if rmErr := os.Remove(out); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			rep.Warn("removing partial %s: %v", manifest.ICNS, rmErr)
		}
	}
	return nil
}
