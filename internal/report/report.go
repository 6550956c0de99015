// Package report prints export progress to the console.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console writes one line per step. Warnings and errors are colored when
// the writer is a color-capable terminal.
type Console struct {
	out  io.Writer
	step lipgloss.Style
	warn lipgloss.Style
	fail lipgloss.Style
}

// NewConsole returns a Console writing to w. noColor forces plain text.
func NewConsole(w io.Writer, noColor bool) *Console {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		out:  w,
		step: r.NewStyle(),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (c *Console) Step(format string, args ...any) {
	fmt.Fprintln(c.out, c.step.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.out, c.warn.Render("Warning: "+fmt.Sprintf(format, args...)))
}

func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.out, c.fail.Render("Error: "+fmt.Sprintf(format, args...)))
}

// Discard drops every message.
type Discard struct{}

func (Discard) Step(string, ...any)  {}
func (Discard) Warn(string, ...any)  {}
func (Discard) Error(string, ...any) {}
