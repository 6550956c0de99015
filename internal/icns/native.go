package icns

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	icnsenc "github.com/jackmordaunt/icns/v3"

	"github.com/davesmith10/icongen/internal/raster"
)

// Native builds the bundle in-process from the largest PNG in the iconset,
// for hosts without iconutil.
type Native struct{}

func (Native) Compile(_ context.Context, iconsetDir, outPath string) error {
	src, err := largestPNG(iconsetDir)
	if err != nil {
		return &ToolFailedError{Tool: NameNative, Err: err}
	}

	img, err := raster.Load(src, 0)
	if err != nil {
		return &ToolFailedError{Tool: NameNative, Err: err}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return &ToolFailedError{Tool: NameNative, Err: err}
	}
	if err := icnsenc.Encode(f, img); err != nil {
		f.Close()
		return &ToolFailedError{Tool: NameNative, Err: fmt.Errorf("encoding icns: %w", err)}
	}
	if err := f.Close(); err != nil {
		return &ToolFailedError{Tool: NameNative, Err: err}
	}
	return nil
}

func largestPNG(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var best string
	bestSize := 0
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		size, err := pngWidth(path)
		if err != nil {
			return "", err
		}
		if size > bestSize {
			best, bestSize = path, size
		}
	}
	if best == "" {
		return "", fmt.Errorf("no PNG files in %s", dir)
	}
	return best, nil
}

func pngWidth(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return cfg.Width, nil
}
