// Package preview normalizes loosely typed preview props into the concrete
// values a component preview renders with.
package preview

// ButtonVariant is a visual style of the button preview.
type ButtonVariant string

// Button variants.
const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonSize is a size of the button preview.
type ButtonSize string

// Button sizes.
const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

// ButtonProps are the resolved props of the button preview.
type ButtonProps struct {
	Variant  ButtonVariant `json:"variant" yaml:"variant"`
	Size     ButtonSize    `json:"size" yaml:"size"`
	Disabled bool          `json:"disabled" yaml:"disabled"`
	Loading  bool          `json:"loading" yaml:"loading"`
}

// DefaultButtonProps returns the props used when nothing valid is supplied.
func DefaultButtonProps() ButtonProps {
	return ButtonProps{Variant: ButtonPrimary, Size: ButtonMedium}
}

// ResolveButtonProps combines a variant name and free-form custom props.
// Each field falls back to its default when the input is missing, of the
// wrong type, or not one of the allowed values. Other keys are ignored.
func ResolveButtonProps(variant string, custom map[string]any) ButtonProps {
	out := DefaultButtonProps()

	if v := ButtonVariant(variant); v.Valid() {
		out.Variant = v
	}
	if s, ok := custom["size"].(string); ok && ButtonSize(s).Valid() {
		out.Size = ButtonSize(s)
	}
	if b, ok := custom["disabled"].(bool); ok {
		out.Disabled = b
	}
	if b, ok := custom["loading"].(bool); ok {
		out.Loading = b
	}
	return out
}

// Valid reports whether v is a known variant.
func (v ButtonVariant) Valid() bool {
	switch v {
	case ButtonPrimary, ButtonSecondary, ButtonGhost:
		return true
	}
	return false
}

// Valid reports whether s is a known size.
func (s ButtonSize) Valid() bool {
	switch s {
	case ButtonSmall, ButtonMedium, ButtonLarge:
		return true
	}
	return false
}
