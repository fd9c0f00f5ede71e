package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tokensmith/internal/render"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

// ReloadedMsg reports the outcome of a reload.
type ReloadedMsg struct {
	Theme theme.Theme
	Err   error
}

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % tabCount
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			if m.reload == nil {
				m.status = "reload unavailable"
				return m, nil
			}
			m.status = "reloading..."
			return m, reloadCmd(m.provider, m.reload)
		}

	case ReloadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.status = ""
			m.refresh()
			return m, nil
		}
		m.err = nil
		m.status = "theme reloaded"
		m.styles = render.BuildStyles(msg.Theme)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// reloadCmd re-reads the override and applies it. A rejected override leaves
// the provider unchanged.
func reloadCmd(p *theme.Provider, reload ReloadFunc) tea.Cmd {
	return func() tea.Msg {
		override, err := reload()
		if err != nil {
			return ReloadedMsg{Err: err}
		}
		t, err := p.Apply(override)
		return ReloadedMsg{Theme: t, Err: err}
	}
}
