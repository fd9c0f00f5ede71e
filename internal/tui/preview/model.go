// Package preview is an interactive terminal previewer for a resolved theme.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tokensmith/internal/render"
	"github.com/alexisbeaulieu97/tokensmith/pkg/merge"
	"github.com/alexisbeaulieu97/tokensmith/pkg/theme"
)

// Tab selects the token group on screen.
type Tab int

const (
	TabPalette Tab = iota
	TabTypography
	TabShadows
	TabLayout
	TabCSS
	tabCount
)

var tabNames = [tabCount]string{"Palette", "Typography", "Shadows", "Layout", "CSS"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabNames[t]
}

// ReloadFunc re-reads the override applied to the previewed theme.
type ReloadFunc func() (merge.Tree, error)

// chromeHeight is the number of lines outside the viewport: tabs, status and help.
const chromeHeight = 4

// Model is the previewer state.
type Model struct {
	provider *theme.Provider
	reload   ReloadFunc

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	styles   render.Styles

	tab    Tab
	status string
	err    error

	width  int
	height int
}

// NewModel previews the theme held by p. reload may be nil, which disables
// reloading.
func NewModel(p *theme.Provider, reload ReloadFunc) Model {
	m := Model{
		provider: p,
		reload:   reload,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 24-chromeHeight),
		styles:   render.BuildStyles(p.Theme()),
		width:    80,
		height:   24,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Tab returns the active tab.
func (m Model) Tab() Tab {
	return m.tab
}

// Err returns the last reload failure, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m Model) content() string {
	body := m.tabContent()
	if m.err == nil {
		return body
	}
	card := m.styles.Card(render.CardData{
		Title:       "override rejected",
		Description: m.err.Error(),
		Status:      "error",
		Metadata:    map[string]string{"showing": "last accepted theme"},
	}, m.width)
	return card + "\n" + body
}

func (m Model) tabContent() string {
	t := m.provider.Theme()
	switch m.tab {
	case TabTypography:
		return m.styles.Typography(t.Typography)
	case TabShadows:
		return m.styles.Shadows(t.Shadows)
	case TabLayout:
		return m.styles.Layout(t)
	case TabCSS:
		return theme.CSSVariables(t, theme.DefaultSelector)
	default:
		return m.styles.Palette(t.Palette)
	}
}
