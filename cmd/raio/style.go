package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/raioenergia/raio-frontend/internal/theme"
)

// styles holds the lipgloss styles used for command output.
type styles struct {
	Title   lipgloss.Style
	Accent  lipgloss.Style
	Dim     lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// newStyles derives output styles from t's primary ramp and its first
// other palette.
// Output is plain for "never", and for "auto" when w is not a terminal.
func newStyles(mode string, w io.Writer, t *theme.Theme) styles {
	if mode == "never" || (mode == "auto" && !isTerminal(w)) {
		return styles{
			Title:   lipgloss.NewStyle(),
			Accent:  lipgloss.NewStyle(),
			Dim:     lipgloss.NewStyle(),
			Success: lipgloss.NewStyle(),
			Error:   lipgloss.NewStyle(),
		}
	}

	primary := t.PrimaryRamp()
	accent := lipgloss.AdaptiveColor{Light: primary[8], Dark: primary[theme.PrimaryShade]}
	neutral := neutralRamp(t)
	muted := lipgloss.AdaptiveColor{Light: neutral[6], Dark: neutral[4]}

	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Accent:  lipgloss.NewStyle().Foreground(accent),
		Dim:     lipgloss.NewStyle().Foreground(muted),
		Success: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F07178")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// neutralRamp returns the first palette that is not the primary one, or the
// primary ramp for single-palette themes.
func neutralRamp(t *theme.Theme) theme.ColorRamp {
	for _, name := range t.PaletteNames() {
		if name == t.PrimaryColor() {
			continue
		}
		if ramp, ok := t.Ramp(name); ok {
			return ramp
		}
	}
	return t.PrimaryRamp()
}
