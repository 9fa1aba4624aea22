package catalogs

// ComponentCategory is the top-level bucket a component belongs to.
type ComponentCategory string

// Component categories.
const (
	CategoryUsable       ComponentCategory = "usable"
	CategoryExperimental ComponentCategory = "experimental"
)

// String returns the string representation of a ComponentCategory.
func (c ComponentCategory) String() string {
	return string(c)
}

// Prop describes one configurable input of a component.
// All fields are display strings.
type Prop struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Type        string `json:"type" yaml:"type" validate:"required"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Component is one catalog entry.
type Component struct {
	ID          string            `json:"id" yaml:"id" validate:"required"`
	Name        string            `json:"name" yaml:"name" validate:"required"`
	Category    ComponentCategory `json:"category" yaml:"category" validate:"required,oneof=usable experimental"`
	Subcategory string            `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Description string            `json:"description" yaml:"description" validate:"required"`
	Variants    []string          `json:"variants,omitempty" yaml:"variants,omitempty"`
	Props       []Prop            `json:"props,omitempty" yaml:"props,omitempty" validate:"dive"`
	Code        string            `json:"code" yaml:"code" validate:"required"`
	Usage       string            `json:"usage,omitempty" yaml:"usage,omitempty"`
	FullCode    string            `json:"full_code,omitempty" yaml:"full_code,omitempty"`
}

// DefaultVariant returns the first declared variant, or "" when the
// component has none.
func (c Component) DefaultVariant() string {
	if len(c.Variants) == 0 {
		return ""
	}
	return c.Variants[0]
}

// HasVariant reports whether v is one of the component's variants.
func (c Component) HasVariant(v string) bool {
	for _, variant := range c.Variants {
		if variant == v {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the component.
func (c Component) Clone() Component {
	out := c
	if c.Variants != nil {
		out.Variants = append([]string(nil), c.Variants...)
	}
	if c.Props != nil {
		out.Props = append([]Prop(nil), c.Props...)
	}
	return out
}

func cloneComponents(in []Component) []Component {
	out := make([]Component, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
