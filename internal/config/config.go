// Package config assembles export settings from defaults, an optional TOML
// file, and ICONGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "icongen.toml"

// Config holds the paths and options for one export.
type Config struct {
	Source   string `toml:"source"    env:"ICONGEN_SOURCE"`
	IconDir  string `toml:"icon_dir"  env:"ICONGEN_ICON_DIR"`
	WebDir   string `toml:"web_dir"   env:"ICONGEN_WEB_DIR"`
	WorkDir  string `toml:"work_dir"  env:"ICONGEN_WORK_DIR"`
	Compiler string `toml:"compiler"  env:"ICONGEN_COMPILER"`
	SVGSize  int    `toml:"svg_size"  env:"ICONGEN_SVG_SIZE"`
	NoColor  bool   `toml:"no_color"  env:"ICONGEN_NO_COLOR"`
}

// Default returns the layout of a Tauri project run from its root.
func Default() Config {
	return Config{
		Source:   "src/public/logo.png",
		IconDir:  "src-tauri/icons",
		WebDir:   "src/public",
		Compiler: "iconutil",
		SVGSize:  1024,
	}
}

// Load returns Default overlaid with the TOML file at path and then the
// environment. An empty path reads DefaultFile if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return cfg, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports the first missing or out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Source == "":
		return errors.New("source path is required")
	case c.IconDir == "":
		return errors.New("icon output directory is required")
	case c.WebDir == "":
		return errors.New("web output directory is required")
	case c.SVGSize < 16 || c.SVGSize > 8192:
		return fmt.Errorf("svg size %d out of range (16-8192)", c.SVGSize)
	}
	return nil
}
