package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsolePlain(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.Step("Generated %s", "icon.png")
	c.Warn("iconutil not found")
	c.Error("generating icns: %v", "exit status 1")

	want := "Generated icon.png\nWarning: iconutil not found\nError: generating icns: exit status 1\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("no-color output contains escape sequences")
	}
}
