package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		m.viewport.View(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for i := Tab(0); i < tabCount; i++ {
		style := m.styles.Tab
		if i == m.tab {
			style = m.styles.TabOn
		}
		tabs = append(tabs, style.Render(i.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatus() string {
	if m.err != nil {
		return m.styles.Removed.Render("reload failed: " + firstLine(m.err.Error()))
	}
	return m.styles.Muted.Render(m.status)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
