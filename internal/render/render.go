package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokensmith/pkg/diff"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
	"github.com/alexisbeaulieu97/tokensmith/pkg/tokens"
)

const swatchWidth = 22

// Swatch draws value as a filled block labelled with the value itself, using
// text as the foreground colour.
func Swatch(value, text string) string {
	return lipgloss.NewStyle().
		Width(swatchWidth).
		Padding(0, 1).
		Background(terminalColor(value)).
		Foreground(terminalColor(text)).
		Render(value)
}

// Category draws one colour category as a labelled row of swatches.
func (s Styles) Category(name string, c tokens.ColorCategory) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		Swatch(c.Main, c.ContrastText),
		Swatch(c.Light, c.ContrastText),
		Swatch(c.Dark, c.ContrastText),
	)
	return s.Label.Render(name) + row
}

// Palette draws every category plus the surface and text colours.
func (s Styles) Palette(p tokens.Palette) string {
	rows := []string{s.Header.Render("palette") + "  " + s.Muted.Render("main / light / dark")}
	for _, name := range tokens.CategoryNames {
		rows = append(rows, s.Category(name, *p.Category(name)))
	}
	rows = append(rows,
		s.Label.Render("background")+lipgloss.JoinHorizontal(lipgloss.Top,
			Swatch(p.Background.Default, p.Text.Primary),
			Swatch(p.Background.Paper, p.Text.Primary)),
		s.Label.Render("text")+lipgloss.JoinHorizontal(lipgloss.Top,
			Swatch(p.Text.Primary, p.Background.Default),
			Swatch(p.Text.Secondary, p.Background.Default),
			Swatch(p.Text.Disabled, p.Background.Default)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Typography lists the type scale, one variant per line.
func (s Styles) Typography(t tokens.Typography) string {
	rows := []string{
		s.Header.Render("typography"),
		s.Muted.Render("font family: " + t.FontFamily),
	}
	for _, name := range tokens.VariantNames {
		v := t.Variant(name)
		line := fmt.Sprintf("%-8s %-4d %-6s", v.FontSize, v.FontWeight, formatNumber(v.LineHeight))
		if v.TextTransform != "" {
			line += " " + v.TextTransform
		}
		if v.FontFamily != t.FontFamily {
			line += " " + s.Changed.Render(v.FontFamily)
		}
		rows = append(rows, s.Label.Render(name)+s.Text.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Shadows lists the elevation scale.
func (s Styles) Shadows(shadows tokens.Shadows) string {
	rows := []string{s.Header.Render("shadows")}
	for i, shadow := range shadows {
		rows = append(rows, s.Label.Render(fmt.Sprintf("%d", i))+s.Muted.Render(shadow))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Layout shows spacing, breakpoints and shape.
func (s Styles) Layout(t theme.Theme) string {
	rows := []string{s.Header.Render("layout")}

	spacing, _ := t.Spacing.Of(1, 2, 3)
	rows = append(rows, s.Label.Render("spacing")+s.Text.Render(fmt.Sprintf("%s (1, 2, 3)", spacing)))
	for _, key := range tokens.BreakpointKeys {
		width, _ := t.Breakpoints.Value(key)
		query, _ := t.Breakpoints.Up(key)
		rows = append(rows, s.Label.Render("breakpoint "+key)+s.Text.Render(fmt.Sprintf("%-6d", width))+s.Muted.Render(query))
	}
	rows = append(rows, s.Label.Render("radius")+s.Text.Render(formatNumber(t.Shape.BorderRadius)+"px"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Changes renders leaf changes with added, removed and modified colours.
func (s Styles) Changes(changes []diff.Change) string {
	if len(changes) == 0 {
		return s.Muted.Render("no changes")
	}
	lines := make([]string, len(changes))
	for i, c := range changes {
		style := s.Changed
		switch c.Kind {
		case diff.Added:
			style = s.Added
		case diff.Removed:
			style = s.Removed
		}
		lines[i] = style.Render(c.String())
	}
	return strings.Join(lines, "\n")
}

func formatNumber(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
