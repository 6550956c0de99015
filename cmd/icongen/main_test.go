package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/davesmith10/icongen/internal/raster"
)

// resetFlags restores every subcommand flag to its default so values from
// one execution do not leak into the next.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := f.Value.Set(f.DefValue); err != nil {
				t.Fatalf("resetting --%s: %v", f.Name, err)
			}
			f.Changed = false
		})
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestExportAndIdentify(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "logo.png")
	img := image.NewNRGBA(image.Rect(0, 0, 256, 256))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 90, 255
	}
	img.SetNRGBA(10, 10, color.NRGBA{255, 255, 255, 255})
	if err := raster.WritePNG(src, img); err != nil {
		t.Fatal(err)
	}

	iconDir := filepath.Join(root, "icons")
	webDir := filepath.Join(root, "public")
	out, err := execute(t, "export",
		"--source", src,
		"--icon-dir", iconDir,
		"--web-dir", webDir,
		"--work-dir", root,
		"--compiler", "none",
		"--no-color",
	)
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	for _, want := range []string{"Generated icon.png", "Warning: icon compiler not available", "Exported 6 files from 256x256 source"} {
		if !strings.Contains(out, want) {
			t.Errorf("export output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "identify", filepath.Join(iconDir, "icon.ico"), filepath.Join(webDir, "favicon.ico"))
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	if !strings.Contains(out, "Format:     ICO") || !strings.Contains(out, "Frames:     6") || !strings.Contains(out, "Frames:     3") {
		t.Errorf("unexpected identify output:\n%s", out)
	}
}

func TestExportMissingSource(t *testing.T) {
	root := t.TempDir()
	_, err := execute(t, "export",
		"--source", filepath.Join(root, "nope.png"),
		"--icon-dir", filepath.Join(root, "icons"),
		"--web-dir", filepath.Join(root, "public"),
		"--compiler", "none",
	)
	if err == nil || !strings.Contains(err.Error(), "source file not found") {
		t.Fatalf("expected source not found, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "icons")); !os.IsNotExist(err) {
		t.Error("icon dir should not be created")
	}
}

func TestSizes(t *testing.T) {
	out, err := execute(t, "sizes")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"icon_512x512@2x.png", "1024x1024", "favicon.ico", "[48 32 16]"} {
		if !strings.Contains(out, want) {
			t.Errorf("sizes output missing %q", want)
		}
	}
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	root := t.TempDir()
	if _, err := execute(t, "export",
		"--source", filepath.Join(root, "nope.png"),
		"--work-dir", filepath.Join(root, "gone"),
		"--compiler", "none",
	); err == nil {
		t.Fatal("expected error for missing source")
	}

	resetFlags(t)
	cfg, err := loadConfig(exportCmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.WorkDir != "" || cfg.Compiler != "iconutil" || cfg.Source != "src/public/logo.png" {
		t.Errorf("flags leaked into next run: %+v", cfg)
	}
}
