// Package filter provides query parameter parsing and filtering for API endpoints.
package filter

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/constants"
)

// ComponentFilter holds the component list query parameters.
type ComponentFilter struct {
	// Category is a top-level category slug, a subcategory slug, or "all".
	Category string
	// Search is matched against name and description.
	Search string
}

// ParseComponentFilter extracts component filter parameters from the
// request. A missing or blank category defaults to "all". Search is passed
// through verbatim, surrounding whitespace included.
func ParseComponentFilter(r *http.Request) ComponentFilter {
	q := r.URL.Query()

	f := ComponentFilter{
		Category: strings.TrimSpace(q.Get("category")),
		Search:   q.Get("search"),
	}
	if f.Category == "" {
		f.Category = constants.AllCategory
	}
	return f
}

// Query converts the filter into a catalog query.
func (f ComponentFilter) Query() catalogs.Query {
	return catalogs.Query{Category: f.Category, Search: f.Search}
}

// Apply returns the matching components from cat.
func (f ComponentFilter) Apply(cat catalogs.Reader) []catalogs.Component {
	return cat.Filter(f.Category, f.Search)
}

// CacheKey returns a stable cache key for the filter. Search is folded to
// lower case because matching ignores case.
func (f ComponentFilter) CacheKey() string {
	return "components?" + url.Values{
		"category": {f.Category},
		"search":   {strings.ToLower(f.Search)},
	}.Encode()
}
