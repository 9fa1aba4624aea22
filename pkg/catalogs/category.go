package catalogs

import "github.com/agentstation/cyberui/pkg/constants"

// Subcategory is a named grouping inside a top-level category.
type Subcategory struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Slug string `json:"slug" yaml:"slug" validate:"required"`
}

// Category is a node of the browse tree. Count is derived from the
// components when the catalog is built and is not read from YAML.
type Category struct {
	Name          string        `json:"name" yaml:"name" validate:"required"`
	Slug          string        `json:"slug" yaml:"slug" validate:"required"`
	Count         int           `json:"count" yaml:"-"`
	Subcategories []Subcategory `json:"subcategories,omitempty" yaml:"subcategories,omitempty" validate:"dive"`
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	out := c
	if c.Subcategories != nil {
		out.Subcategories = append([]Subcategory(nil), c.Subcategories...)
	}
	return out
}

// HasSubcategory reports whether slug names one of the category's subcategories.
func (c Category) HasSubcategory(slug string) bool {
	for _, sub := range c.Subcategories {
		if sub.Slug == slug {
			return true
		}
	}
	return false
}

// countCategories sets Count on each category. The "all" node counts every
// component; the others count components whose category equals the slug.
func countCategories(categories []Category, components []Component) {
	for i := range categories {
		if categories[i].Slug == constants.AllCategory {
			categories[i].Count = len(components)
			continue
		}
		n := 0
		for _, comp := range components {
			if string(comp.Category) == categories[i].Slug {
				n++
			}
		}
		categories[i].Count = n
	}
}
