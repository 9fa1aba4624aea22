// Package tui implements the interactive playground: a searchable component
// list with toggle selection and a live preview of the generated page.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/cyberui/internal/cmd/style"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/playground"
)

// CopyFunc writes generated code somewhere outside the program, normally the
// system clipboard.
type CopyFunc func(code string) error

// statusMsg reports the outcome of a copy.
type statusMsg struct {
	text string
	err  error
}

// Model holds the interactive playground state.
type Model struct {
	cat       catalogs.Reader
	all       []catalogs.Component
	visible   []catalogs.Component
	selection *playground.Selection
	search    textinput.Model
	keys      keyMap
	styles    style.Styles
	copy      CopyFunc

	cursor    int
	searching bool
	width     int
	status    string
	statusErr bool
	done      bool
	cancelled bool
}

// NewModel builds a playground model over the catalog. initial is the
// starting selection; copy may be nil to disable copying.
func NewModel(cat catalogs.Reader, initial []playground.Selected, styles style.Styles, copy CopyFunc) Model {
	ti := textinput.New()
	ti.Placeholder = "Search components..."
	ti.CharLimit = 64
	ti.Prompt = "/ "

	all := cat.Components()
	return Model{
		cat:       cat,
		all:       all,
		visible:   all,
		selection: playground.NewSelection(initial...),
		search:    ti,
		keys:      defaultKeyMap(),
		styles:    styles,
		copy:      copy,
		width:     style.DefaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the current selection in order.
func (m Model) Selected() []playground.Selected {
	return m.selection.Items()
}

// Code returns the page source for the current selection.
func (m Model) Code() string {
	return m.selection.Code(m.cat)
}

// Cancelled reports whether the user aborted with ctrl+c.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Done reports whether the program has finished.
func (m Model) Done() bool {
	return m.done
}

func (m *Model) refilter() {
	m.visible = playground.Search(m.all, m.search.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) current() (catalogs.Component, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return catalogs.Component{}, false
	}
	return m.visible[m.cursor], true
}
