package catalogs

// Reader provides read-only access to the catalog.
// Consumers (CLI commands, HTTP handlers, the playground generator) depend on
// this interface rather than on *Catalog so tests can supply fixtures.
type Reader interface {
	// Component returns the component with the given id.
	Component(id string) (Component, bool)

	// Components returns every component in declaration order.
	Components() []Component

	// Categories returns the category tree.
	Categories() []Category

	// Filter returns components matching a category (or subcategory) slug
	// and a free-text search.
	Filter(category, search string) []Component

	// Neighbors returns the previous and next component in declaration order.
	Neighbors(id string) (prev, next *Component)
}
