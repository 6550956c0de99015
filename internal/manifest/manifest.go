// Package manifest holds the fixed output tables for an icon export.
package manifest

import "fmt"

// Entry names one output and the square pixel size it is resampled to.
type Entry struct {
	Name string
	Size int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%dx%d)", e.Name, e.Size, e.Size)
}

// Output file names.
const (
	AppICO     = "icon.ico"
	FaviconICO = "favicon.ico"
	ICNS       = "icon.icns"
)

// PNG is written into the icon directory. icon.png is the primary app icon.
var PNG = []Entry{
	{"32x32.png", 32},
	{"128x128.png", 128},
	{"128x128@2x.png", 256},
	{"icon.png", 512},
}

// Iconset follows Apple's iconset naming: five logical sizes at 1x and 2x.
// 16@2x shares 32 px with 32x32, and 256@2x shares 512 px with 512x512.
var Iconset = []Entry{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
	{"icon_512x512@2x.png", 1024},
}

// Frame sizes embedded in the ICO containers, largest first.
var (
	AppICOSizes     = []int{256, 128, 64, 48, 32, 16}
	FaviconICOSizes = []int{48, 32, 16}
)

// IconDirFiles lists every file an export places in the icon directory
// when the bundle compiler succeeds.
func IconDirFiles() []string {
	names := make([]string, 0, len(PNG)+2)
	for _, e := range PNG {
		names = append(names, e.Name)
	}
	return append(names, AppICO, ICNS)
}

// DistinctSizes returns the pixel sizes used by entries, in first-seen order.
func DistinctSizes(entries []Entry) []int {
	seen := make(map[int]bool, len(entries))
	var sizes []int
	for _, e := range entries {
		if seen[e.Size] {
			continue
		}
		seen[e.Size] = true
		sizes = append(sizes, e.Size)
	}
	return sizes
}
