package catalogs

import (
	"strings"

	"github.com/agentstation/cyberui/pkg/constants"
)

// Query selects components by category and free-text search.
//
// Category is overloaded: it matches "all", a top-level category, or a
// subcategory slug. Search is matched case-insensitively as a substring of
// the name or description; an empty Search matches everything.
type Query struct {
	Category string
	Search   string
}

// Matches reports whether c satisfies the query.
func (q Query) Matches(c Component) bool {
	if q.Category != constants.AllCategory &&
		string(c.Category) != q.Category &&
		c.Subcategory != q.Category {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle)
}

// Apply returns copies of the matching components in input order.
// The result is never nil.
func (q Query) Apply(components []Component) []Component {
	out := make([]Component, 0, len(components))
	for _, c := range components {
		if q.Matches(c) {
			out = append(out, c.Clone())
		}
	}
	return out
}
