package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/cyberui/internal/cmd/emoji"
)

// View renders the current state.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("CyberUI Playground"))
	b.WriteString(" ")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d selected", m.selection.Len())))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	list := lipgloss.NewStyle().Width(listWidth).Render(m.renderList())
	preview := m.styles.Code.Render(m.Code())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, preview))
	b.WriteString("\n")

	if m.status != "" {
		st := m.styles.Success
		if m.statusErr {
			st = m.styles.Error
		}
		b.WriteString(st.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderList() string {
	if len(m.visible) == 0 {
		return m.styles.Muted.Render("No components match")
	}

	lines := make([]string, 0, len(m.visible))
	for i, c := range m.visible {
		cursor := " "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render(emoji.Cursor)
		}
		mark := m.styles.Muted.Render(emoji.Unselected)
		name := c.Name
		if m.selection.Contains(c.ID) {
			mark = m.styles.Selected.Render(emoji.Selected)
			name = m.styles.Selected.Render(name)
		}
		lines = append(lines, cursor+" "+mark+" "+name)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, k := range m.keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Muted.Render(strings.Join(parts, " • "))
}
