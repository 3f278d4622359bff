// Package termio centralizes terminal streams, capability detection, and
// styled output for command-line front ends.
package termio

import (
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Manager owns the three standard streams and decides whether styled
// output is appropriate for them.
type Manager struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *Manager {
	return &Manager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *Manager) WithIn(r io.Reader) *Manager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w io.Writer) *Manager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *Manager) WithErr(w io.Writer) *Manager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *Manager) ForceColor() *Manager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *Manager) NoColor() *Manager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto restores environment-based color detection.
func (m *Manager) ColorAuto() *Manager { m.noColor = false; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *Manager) In() io.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *Manager) Out() io.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *Manager) Err() io.Writer { return m.err }

// IsTerminal reports whether the output stream is an interactive terminal.
func (m *Manager) IsTerminal() bool {
	f, ok := m.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether input comes from a terminal outside CI.
func (m *Manager) IsInteractive() bool {
	f, ok := m.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) && os.Getenv("CI") == ""
}

// Width returns the terminal column count, falling back to the COLUMNS
// variable and finally to 80.
func (m *Manager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return 80
}

// SupportsColor reports whether styled output should be emitted, honoring
// explicit overrides first, then NO_COLOR/FORCE_COLOR, then terminal
// detection.
func (m *Manager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTerminal() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// Style returns a color value honoring this manager's color decision
// rather than the package-global default.
func (m *Manager) Style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if m.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Colorize renders s with the given attributes when color is supported;
// otherwise it returns s unchanged.
func (m *Manager) Colorize(s string, attrs ...color.Attribute) string {
	return m.Style(attrs...).Sprint(s)
}

// Bold returns s in bold when supported; otherwise s unchanged.
func (m *Manager) Bold(s string) string { return m.Colorize(s, color.Bold) }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *Manager) Faint(s string) string { return m.Colorize(s, color.Faint) }

// Underline returns s underlined when supported; otherwise s unchanged.
func (m *Manager) Underline(s string) string { return m.Colorize(s, color.Underline) }
