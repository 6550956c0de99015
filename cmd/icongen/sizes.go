package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/icongen/internal/manifest"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List every file and size an export produces",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Icon directory:")
		for _, e := range manifest.PNG {
			fmt.Fprintf(out, "  %-22s %dx%d\n", e.Name, e.Size, e.Size)
		}
		fmt.Fprintf(out, "  %-22s %v\n", manifest.AppICO, manifest.AppICOSizes)
		fmt.Fprintf(out, "  %-22s iconset below\n", manifest.ICNS)
		fmt.Fprintln(out, "Web directory:")
		fmt.Fprintf(out, "  %-22s %v\n", manifest.FaviconICO, manifest.FaviconICOSizes)
		fmt.Fprintln(out, "Iconset:")
		for _, e := range manifest.Iconset {
			fmt.Fprintf(out, "  %-22s %dx%d\n", e.Name, e.Size, e.Size)
		}
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
}
