package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.search.Width = msg.Width / 2
		return m, nil
	case statusMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
			m.statusErr = true
		} else {
			m.status = msg.text
			m.statusErr = false
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Blur), msg.Type == tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if c, ok := m.current(); ok {
			m.selection.Toggle(c.ID, c.Name)
		}
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Blur):
		m.search.SetValue("")
		m.refilter()
	case key.Matches(msg, m.keys.Reset):
		m.selection.Reset()
	case key.Matches(msg, m.keys.Copy):
		if m.copy == nil {
			return m, nil
		}
		code, copyFn := m.Code(), m.copy
		return m, func() tea.Msg {
			if err := copyFn(code); err != nil {
				return statusMsg{err: err}
			}
			return statusMsg{text: "copied to clipboard"}
		}
	case key.Matches(msg, m.keys.Done):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}
