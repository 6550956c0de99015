package manifest

import (
	"reflect"
	"testing"
)

func TestIconsetDistinctSizes(t *testing.T) {
	got := DistinctSizes(Iconset)
	want := []int{16, 32, 64, 128, 256, 512, 1024}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("iconset sizes = %v, want %v", got, want)
	}
	if len(Iconset) != 10 {
		t.Errorf("expected 10 iconset entries, got %d", len(Iconset))
	}
}

func TestIconDirFiles(t *testing.T) {
	want := []string{"32x32.png", "128x128.png", "128x128@2x.png", "icon.png", "icon.ico", "icon.icns"}
	if got := IconDirFiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("IconDirFiles() = %v, want %v", got, want)
	}
}

func TestEntryNamesUnique(t *testing.T) {
	for _, table := range [][]Entry{PNG, Iconset} {
		seen := map[string]bool{}
		for _, e := range table {
			if seen[e.Name] {
				t.Errorf("duplicate entry %s", e.Name)
			}
			seen[e.Name] = true
			if e.Size <= 0 {
				t.Errorf("%s has non-positive size %d", e.Name, e.Size)
			}
		}
	}
}
