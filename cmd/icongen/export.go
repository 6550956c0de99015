package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/icongen/internal/config"
	"github.com/davesmith10/icongen/internal/icns"
	"github.com/davesmith10/icongen/internal/pipeline"
	"github.com/davesmith10/icongen/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export PNG, ICO, favicon and ICNS icons from a source image",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("config", "c", "", "Config file (default ./"+config.DefaultFile+" if present)")
	exportCmd.Flags().StringP("source", "s", "", "Source image (PNG, JPEG, WebP, SVG, ...)")
	exportCmd.Flags().String("icon-dir", "", "Output directory for app icons")
	exportCmd.Flags().String("web-dir", "", "Output directory for favicon.ico")
	exportCmd.Flags().String("work-dir", "", "Parent directory for the temporary iconset")
	exportCmd.Flags().String("compiler", "", "ICNS compiler (iconutil, native, auto, none)")
	exportCmd.Flags().Int("svg-size", 0, "Raster size for SVG sources")
	exportCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.AddCommand(exportCmd)
}

// loadConfig layers explicitly set flags over the file and environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	strs := map[string]*string{
		"source":   &cfg.Source,
		"icon-dir": &cfg.IconDir,
		"web-dir":  &cfg.WebDir,
		"work-dir": &cfg.WorkDir,
		"compiler": &cfg.Compiler,
	}
	for name, dst := range strs {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	if flags.Changed("svg-size") {
		cfg.SVGSize, _ = flags.GetInt("svg-size")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}

	return cfg, cfg.Validate()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	compiler, err := icns.New(cfg.Compiler)
	if err != nil {
		return err
	}

	result, err := pipeline.Export(cmd.Context(), pipeline.Options{
		Source:   cfg.Source,
		IconDir:  cfg.IconDir,
		WebDir:   cfg.WebDir,
		WorkDir:  cfg.WorkDir,
		SVGSize:  cfg.SVGSize,
		Compiler: compiler,
		Reporter: report.NewConsole(cmd.OutOrStdout(), cfg.NoColor),
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files from %dx%d source\n", len(result.Files), result.SrcWidth, result.SrcHeight)
	return nil
}
