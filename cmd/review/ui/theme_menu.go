package ui

import (
	"quickreview/internal/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// themeItem adapts theme.Theme to list.Item
type themeItem struct {
	theme theme.Theme
}

func (i themeItem) Title() string       { return i.theme.Icon + " " + i.theme.Name }
func (i themeItem) Description() string { return string(i.theme.ID) + "  " + i.theme.Accent }
func (i themeItem) FilterValue() string { return string(i.theme.ID) + " " + i.theme.Name }

func newThemeMenu(s Styles, current theme.ID) list.Model {
	all := theme.All()
	items := make([]list.Item, len(all))
	selected := 0
	for i, th := range all {
		items[i] = themeItem{theme: th}
		if th.ID == current {
			selected = i
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(s.Accent.GetForeground()).BorderForeground(s.Accent.GetForeground())
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(s.Muted.GetForeground()).BorderForeground(s.Accent.GetForeground())

	l := list.New(items, delegate, 40, len(all)*3+4)
	l.Title = "اختر الثيم"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = s.Button
	l.Select(selected)
	return l
}

func (m *Model) openThemeMenu() {
	m.showThemeMenu = true
	for i, id := range theme.IDs() {
		if id == m.session.ThemeID() {
			m.themeMenu.Select(i)
		}
	}
}

func (m Model) updateThemeMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Theme):
		m.showThemeMenu = false
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.themeMenu.SelectedItem().(themeItem); ok {
			m.applyTheme(item.theme.ID)
		}
		m.showThemeMenu = false
		return m, nil
	}
	var cmd tea.Cmd
	m.themeMenu, cmd = m.themeMenu.Update(msg)
	return m, cmd
}
