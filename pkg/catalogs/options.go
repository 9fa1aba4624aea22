package catalogs

import "io/fs"

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	readFS     fs.FS // For reading catalog files
	components []Component
	categories []Category
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithFS configures the catalog to read components.yaml and categories.yaml
// from fsys. It takes precedence over WithComponents and WithCategories.
func WithFS(fsys fs.FS) Option {
	return func(c *catalogOptions) {
		c.readFS = fsys
	}
}

// WithComponents supplies component records directly.
func WithComponents(components ...Component) Option {
	return func(c *catalogOptions) {
		c.components = append(c.components, components...)
	}
}

// WithCategories supplies the category tree directly.
func WithCategories(categories ...Category) Option {
	return func(c *catalogOptions) {
		c.categories = append(c.categories, categories...)
	}
}
