// Package tui provides the BubbleTea-based terminal preview of a theme.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raioenergia/raio-frontend/internal/config"
	"github.com/raioenergia/raio-frontend/internal/theme"
)

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	hex string
	err error
}

// Model is the theme preview model.
type Model struct {
	theme    *theme.Theme
	palettes []string

	// Selection
	palette int
	shade   int

	help help.Model
	keys KeyMap

	width int

	// Status message
	statusMsg string
	statusErr bool

	copy func(string) error
}

// New creates a preview of t. The cursor starts on the primary palette's
// base shade.
func New(t *theme.Theme, cfg *config.Config) Model {
	palettes := t.PaletteNames()
	start := 0
	for i, name := range palettes {
		if name == t.PrimaryColor() {
			start = i
		}
	}

	return Model{
		theme:    t,
		palettes: palettes,
		palette:  start,
		shade:    theme.PrimaryShade,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		copy: func(text string) error {
			return copyText(text, cfg)
		},
	}
}

// Run starts the preview full screen and blocks until the user quits.
func Run(t *theme.Theme, cfg *config.Config) error {
	p := tea.NewProgram(New(t, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Selected returns the palette name, shade index and hex under the cursor.
func (m Model) Selected() (string, int, string) {
	name := m.palettes[m.palette]
	hex, _ := m.theme.Shade(name, m.shade)
	return name, m.shade, hex
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.statusMsg = "copy failed: " + msg.err.Error()
			m.statusErr = true
		} else {
			m.statusMsg = "copied " + msg.hex
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.palette > 0 {
			m.palette--
		}
	case key.Matches(msg, m.keys.Down):
		if m.palette < len(m.palettes)-1 {
			m.palette++
		}
	case key.Matches(msg, m.keys.Left):
		if m.shade > 0 {
			m.shade--
		}
	case key.Matches(msg, m.keys.Right):
		if m.shade < theme.RampSize-1 {
			m.shade++
		}
	case key.Matches(msg, m.keys.Home):
		m.shade = 0
	case key.Matches(msg, m.keys.End):
		m.shade = theme.RampSize - 1
	case key.Matches(msg, m.keys.Copy):
		_, _, hex := m.Selected()
		copyFn := m.copy
		return m, func() tea.Msg {
			return copiedMsg{hex: hex, err: copyFn(hex)}
		}
	}
	return m, nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Width(14)
	selectedLabel = labelStyle.Bold(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Theme %s", m.theme.Name())))
	b.WriteString("\n")

	for i, name := range m.palettes {
		label := "  " + name
		style := labelStyle
		if i == m.palette {
			label = "> " + name
			style = selectedLabel
		}
		if name == m.theme.PrimaryColor() {
			label += " *"
		}
		b.WriteString(style.Render(label))

		ramp, _ := m.theme.Ramp(name)
		for j, hex := range ramp {
			b.WriteString(m.swatch(hex, j, i == m.palette && j == m.shade))
		}
		b.WriteString("\n")
	}

	name, shade, hex := m.Selected()
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s[%d] %s", name, shade, hex)
	if shade == theme.PrimaryShade {
		b.WriteString(" (filled)")
	}
	b.WriteString("\n")

	typo := m.theme.Typography()
	fmt.Fprintf(&b, "body: %s\n", theme.FormatFontStack(typo.FontFamily))
	fmt.Fprintf(&b, "headings: %s (%s)\n", theme.FormatFontStack(typo.Headings.FontFamily), typo.Headings.FontWeight)

	if m.statusMsg != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.statusMsg))
		} else {
			b.WriteString(statusStyle.Render(m.statusMsg))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) swatch(hex string, index int, selected bool) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(theme.ContrastText(hex))).
		Padding(0, 1)
	label := fmt.Sprintf("%d", index)
	if selected {
		style = style.Bold(true).Underline(true)
		label = "[" + label + "]"
	} else {
		label = " " + label + " "
	}
	return style.Render(label)
}
