package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/icongen/internal/inspect"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]...",
	Short: "Inspect PNG, ICO and ICNS icon files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, path := range args {
		info, err := inspect.File(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "File:       %s\n", path)
		fmt.Fprintf(out, "Format:     %s\n", info.Format)
		fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
		fmt.Fprintf(out, "File size:  %d bytes (%.1f KB)\n", info.Size, float64(info.Size)/1024)
		if info.Format == "PNG" {
			continue
		}

		fmt.Fprintf(out, "Frames:     %d\n", len(info.Frames))
		for _, f := range info.Frames {
			switch {
			case f.Type == "":
				fmt.Fprintf(out, "  %d x %d\n", f.Width, f.Height)
			case f.Width == 0:
				fmt.Fprintf(out, "  %s  %8d bytes\n", f.Type, f.Length)
			default:
				fmt.Fprintf(out, "  %s  %8d bytes  %d x %d\n", f.Type, f.Length, f.Width, f.Height)
			}
		}
	}
	return nil
}
