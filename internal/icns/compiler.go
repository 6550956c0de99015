// Package icns compiles a macOS iconset directory into an .icns bundle.
package icns

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolUnavailable means the compiler cannot run on this host.
var ErrToolUnavailable = errors.New("icon compiler not available")

// ToolFailedError is returned when the compiler ran and failed.
type ToolFailedError struct {
	Tool   string
	Err    error
	Output []byte
}

func (e *ToolFailedError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	if out := strings.TrimSpace(string(e.Output)); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ToolFailedError) Unwrap() error { return e.Err }

// Compiler turns an iconset directory into a single .icns file.
type Compiler interface {
	Compile(ctx context.Context, iconsetDir, outPath string) error
}

// Compiler names accepted by New.
const (
	NameIconutil = "iconutil"
	NameNative   = "native"
	NameAuto     = "auto"
	NameNone     = "none"
)

// New returns the compiler registered under name. An empty name selects
// iconutil.
func New(name string) (Compiler, error) {
	switch strings.ToLower(name) {
	case "", NameIconutil:
		return Iconutil{}, nil
	case NameNative:
		return Native{}, nil
	case NameAuto:
		if _, err := exec.LookPath("iconutil"); err == nil {
			return Iconutil{}, nil
		}
		return Native{}, nil
	case NameNone:
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown icon compiler %q (iconutil, native, auto, none)", name)
	}
}

// Iconutil runs Apple's iconutil. Path overrides the binary looked up on
// PATH.
type Iconutil struct {
	Path string
}

func (c Iconutil) Compile(ctx context.Context, iconsetDir, outPath string) error {
	bin := c.Path
	if bin == "" {
		bin = "iconutil"
	}
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("%w: %s not found on PATH (are you on macOS?)", ErrToolUnavailable, bin)
	}

	cmd := exec.CommandContext(ctx, resolved, "-c", "icns", iconsetDir, "-o", outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return &ToolFailedError{Tool: bin, Err: err, Output: out}
	}
	return nil
}

// Disabled skips bundle compilation.
type Disabled struct{}

func (Disabled) Compile(context.Context, string, string) error {
	return fmt.Errorf("%w: compilation disabled", ErrToolUnavailable)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(ctx context.Context, iconsetDir, outPath string) error

func (f CompilerFunc) Compile(ctx context.Context, iconsetDir, outPath string) error {
	return f(ctx, iconsetDir, outPath)
}
