package playground

import (
	"strings"

	"github.com/agentstation/cyberui/pkg/catalogs"
)

// Selection is the ordered set of components chosen in a playground
// session. The zero value is empty and ready to use. It is not safe for
// concurrent use.
type Selection struct {
	items []Selected
}

// NewSelection returns a selection holding items in order. Later duplicates
// of an id are dropped.
func NewSelection(items ...Selected) *Selection {
	s := &Selection{}
	for _, item := range items {
		if !s.Contains(item.ID) {
			s.items = append(s.items, item)
		}
	}
	return s
}

// Toggle appends the component when absent and removes it when present.
// It reports whether the component is selected afterwards.
func (s *Selection) Toggle(id, name string) bool {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, Selected{ID: id, Name: name})
	return true
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Reset clears the selection.
func (s *Selection) Reset() {
	s.items = nil
}

// Items returns a copy of the selected components in selection order.
func (s *Selection) Items() []Selected {
	return append([]Selected{}, s.items...)
}

// Len returns the number of selected components.
func (s *Selection) Len() int {
	return len(s.items)
}

// Code generates the page source for the current selection.
func (s *Selection) Code(cat catalogs.Reader) string {
	return GenerateCode(cat, s.items)
}

// Search filters the picker list by a case-insensitive substring of the
// component name. An empty query returns every component.
func Search(components []catalogs.Component, query string) []catalogs.Component {
	out := make([]catalogs.Component, 0, len(components))
	needle := strings.ToLower(query)
	for _, c := range components {
		if needle == "" || strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}
