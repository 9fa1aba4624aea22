// Package catalogs provides the read-only component catalog behind the
// cyberui CLI and HTTP API.
//
// The catalog is loaded once from YAML (normally the copy compiled into the
// binary), validated, and never mutated afterwards. Every accessor hands out
// copies, so a single *Catalog can be shared by any number of goroutines
// without locking.
//
// Example usage:
//
//	cat, err := catalogs.NewEmbedded()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, c := range cat.Filter("usable", "button") {
//	    fmt.Println(c.ID, c.Name)
//	}
package catalogs

import (
	"github.com/agentstation/cyberui/internal/embedded"
	"github.com/agentstation/cyberui/pkg/errors"
)

// Compile-time interface check.
var _ Reader = (*Catalog)(nil)

// Catalog is an immutable, ordered collection of components and the
// category tree used to browse them.
type Catalog struct {
	components []Component
	index      map[string]int
	categories []Category
}

// New creates a catalog from the given options.
// WithFS loads components.yaml and categories.yaml from a filesystem;
// WithComponents and WithCategories supply records directly.
func New(opts ...Option) (*Catalog, error) {
	options := catalogDefaults().apply(opts...)

	components := options.components
	categories := options.categories

	if options.readFS != nil {
		var err error
		components, categories, err = load(options.readFS)
		if err != nil {
			return nil, errors.WrapResource("load", "catalog", "", err)
		}
	}

	if err := validate(components, categories); err != nil {
		return nil, err
	}

	c := &Catalog{
		components: cloneComponents(components),
		index:      make(map[string]int, len(components)),
		categories: make([]Category, len(categories)),
	}
	for i, comp := range c.components {
		c.index[comp.ID] = i
	}
	for i, cat := range categories {
		c.categories[i] = cat.Clone()
	}
	countCategories(c.categories, c.components)

	return c, nil
}

// NewEmbedded creates a catalog from the data compiled into the binary.
func NewEmbedded() (*Catalog, error) {
	return New(WithFS(embedded.FS()))
}

// Component returns the component with the given id.
func (c *Catalog) Component(id string) (Component, bool) {
	i, ok := c.index[id]
	if !ok {
		return Component{}, false
	}
	return c.components[i].Clone(), true
}

// Components returns every component in declaration order.
func (c *Catalog) Components() []Component {
	return cloneComponents(c.components)
}

// Categories returns the category tree with per-category counts.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Clone()
	}
	return out
}

// Filter returns the components matching category and search, in
// declaration order. See Query for the matching rules.
func (c *Catalog) Filter(category, search string) []Component {
	return Query{Category: category, Search: search}.Apply(c.components)
}

// Neighbors returns the components declared immediately before and after id.
// Either is nil at the ends of the catalog; both are nil for an unknown id.
func (c *Catalog) Neighbors(id string) (prev, next *Component) {
	i, ok := c.index[id]
	if !ok {
		return nil, nil
	}
	if i > 0 {
		p := c.components[i-1].Clone()
		prev = &p
	}
	if i < len(c.components)-1 {
		n := c.components[i+1].Clone()
		next = &n
	}
	return prev, next
}

// Len returns the number of components.
func (c *Catalog) Len() int {
	return len(c.components)
}
