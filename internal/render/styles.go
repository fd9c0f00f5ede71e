// Package render draws theme tokens for the terminal with lipgloss.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokensmith/pkg/color"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

// Styles contains lipgloss styles derived from a resolved theme.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
	Changed lipgloss.Style
	Panel   lipgloss.Style
	Tab     lipgloss.Style
	TabOn   lipgloss.Style
}

// BuildStyles converts the palette of t into lipgloss styles.
func BuildStyles(t theme.Theme) Styles {
	p := t.Palette
	primary := terminalColor(p.Primary.Main)
	muted := terminalColor(p.Text.Secondary)

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(primary).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(muted),
		Label:   lipgloss.NewStyle().Width(14),
		Text:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Added:   lipgloss.NewStyle().Foreground(terminalColor(p.Success.Main)),
		Removed: lipgloss.NewStyle().Foreground(terminalColor(p.Error.Main)),
		Changed: lipgloss.NewStyle().Foreground(terminalColor(p.Warning.Main)),
		Panel:   lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
		Tab:     lipgloss.NewStyle().Padding(0, 2).Foreground(muted),
		TabOn:   lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(terminalColor(p.Primary.ContrastText)).Background(primary),
	}
}

// terminalColor maps a CSS colour to a lipgloss colour. Alpha is dropped and
// unparseable values fall back to the terminal default.
func terminalColor(value string) lipgloss.TerminalColor {
	hex, err := color.Hex(value)
	if err != nil {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}
