package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cyberui/internal/cmd/style"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/constants"
	"github.com/agentstation/cyberui/pkg/playground"
)

func newTestModel(t *testing.T, copy CopyFunc) Model {
	t.Helper()
	cat, err := catalogs.NewEmbedded()
	require.NoError(t, err)
	return NewModel(cat, nil, style.New(true), copy)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestToggleSelectsFocusedComponent(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(m, "space", "down", "space")
	require.Equal(t, []playground.Selected{
		{ID: "button", Name: "Button"},
		{ID: "card", Name: "Card"},
	}, m.Selected())

	m = press(m, "up", "space")
	require.Equal(t, []playground.Selected{{ID: "card", Name: "Card"}}, m.Selected())
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "up", "up")
	require.Equal(t, 0, m.cursor)

	for i := 0; i < 40; i++ {
		m = press(m, "j")
	}
	require.Equal(t, len(m.all)-1, m.cursor)
}

func TestSearchNarrowsList(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(m, "/", "g", "r", "i", "d", "enter")
	require.False(t, m.searching)
	require.Len(t, m.visible, 1)
	require.Equal(t, "cyber-grid", m.visible[0].ID)

	m = press(m, "space")
	require.Equal(t, []playground.Selected{{ID: "cyber-grid", Name: "Cyber Grid"}}, m.Selected())

	m = press(m, "esc")
	require.Len(t, m.visible, len(m.all))
}

func TestSearchKeysDoNotToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "/", "r", "q")
	require.True(t, m.searching)
	require.False(t, m.Done())
	require.Empty(t, m.Selected())
}

func TestResetClearsSelection(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "space", "down", "space", "r")
	require.Empty(t, m.Selected())
	require.Equal(t, constants.EmptyPlaygroundCode, m.Code())
}

func TestCopyUsesCopyFunc(t *testing.T) {
	var copied string
	m := newTestModel(t, func(code string) error {
		copied = code
		return nil
	})
	m = press(m, "space")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	updated, _ = updated.(Model).Update(cmd())
	m = updated.(Model)

	require.Equal(t, m.Code(), copied)
	require.Equal(t, "copied to clipboard", m.status)
	require.False(t, m.statusErr)
}

func TestCopyFailureIsReported(t *testing.T) {
	m := newTestModel(t, func(string) error { return errors.New("no clipboard") })

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	updated, _ = updated.(Model).Update(cmd())
	m = updated.(Model)

	require.True(t, m.statusErr)
	require.Contains(t, m.status, "no clipboard")
}

func TestDoneAndCancel(t *testing.T) {
	m := press(newTestModel(t, nil), "q")
	require.True(t, m.Done())
	require.False(t, m.Cancelled())

	m = press(newTestModel(t, nil), "ctrl+c")
	require.True(t, m.Done())
	require.True(t, m.Cancelled())
}

func TestViewShowsSelectionAndCode(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "space")

	view := m.View()
	require.Contains(t, view, "1 selected")
	require.Contains(t, view, "import Button from '@/components/ui/Button'")

	m = press(m, "q")
	require.Empty(t, m.View())
}
