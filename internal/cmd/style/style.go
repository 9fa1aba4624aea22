// Package style holds the lipgloss styles used by the human-readable CLI
// views.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// Neon palette shared by the detail and playground views.
const (
	ColorCyan    = lipgloss.Color("51")
	ColorMagenta = lipgloss.Color("201")
	ColorGreen   = lipgloss.Color("46")
	ColorYellow  = lipgloss.Color("226")
	ColorRed     = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("244")
	ColorBorder  = lipgloss.Color("240")
)

// DefaultWidth is used when stdout is not a terminal.
const DefaultWidth = 80

// maxWidth keeps wrapped prose readable on very wide terminals.
const maxWidth = 100

// Styles is a set of renderers. The zero value is unusable; use New.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Badge    lipgloss.Style
	Code     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
}

// New builds the style set. With noColor every style renders plain text
// but keeps its layout (margins, borders).
func New(noColor bool) Styles {
	s := Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorCyan),
		Subtitle: lipgloss.NewStyle().Italic(true).Foreground(ColorMuted),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(ColorMagenta).MarginTop(1),
		Label:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
		Badge:    lipgloss.NewStyle().Foreground(ColorCyan).Padding(0, 1).Border(lipgloss.NormalBorder(), false, true),
		Code:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1),
		Success:  lipgloss.NewStyle().Foreground(ColorGreen),
		Warning:  lipgloss.NewStyle().Foreground(ColorYellow),
		Error:    lipgloss.NewStyle().Foreground(ColorRed).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(ColorGreen).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true),
	}
	if noColor {
		s = s.plain()
	}
	return s
}

func (s Styles) plain() Styles {
	strip := func(st lipgloss.Style) lipgloss.Style {
		return st.UnsetForeground().UnsetBackground().UnsetBorderForeground().UnsetBold().UnsetItalic()
	}
	return Styles{
		Title:    strip(s.Title),
		Subtitle: strip(s.Subtitle),
		Section:  strip(s.Section),
		Label:    strip(s.Label),
		Muted:    strip(s.Muted),
		Badge:    strip(s.Badge),
		Code:     strip(s.Code),
		Success:  strip(s.Success),
		Warning:  strip(s.Warning),
		Error:    strip(s.Error),
		Selected: strip(s.Selected),
		Cursor:   strip(s.Cursor),
	}
}

// Width returns the usable width of f, DefaultWidth when f is not a
// terminal, capped for readability.
func Width(f *os.File) int {
	w := DefaultWidth
	if f != nil && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			w = tw
		}
	}
	if w > maxWidth {
		w = maxWidth
	}
	return w
}

// Wrap word-wraps text to width columns.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
