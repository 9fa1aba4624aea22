package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveButtonProps(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		custom  map[string]any
		want    ButtonProps
	}{
		{
			name: "defaults",
			want: ButtonProps{Variant: ButtonPrimary, Size: ButtonMedium},
		},
		{
			name:    "all valid",
			variant: "ghost",
			custom:  map[string]any{"size": "lg", "disabled": true, "loading": true},
			want:    ButtonProps{Variant: ButtonGhost, Size: ButtonLarge, Disabled: true, Loading: true},
		},
		{
			name:    "unknown variant",
			variant: "danger",
			custom:  map[string]any{"size": "sm"},
			want:    ButtonProps{Variant: ButtonPrimary, Size: ButtonSmall},
		},
		{
			name:    "variant is case sensitive",
			variant: "Secondary",
			want:    ButtonProps{Variant: ButtonPrimary, Size: ButtonMedium},
		},
		{
			name:   "wrong types fall back",
			custom: map[string]any{"size": 3, "disabled": "true", "loading": 1},
			want:   ButtonProps{Variant: ButtonPrimary, Size: ButtonMedium},
		},
		{
			name:   "unknown size",
			custom: map[string]any{"size": "xl", "loading": false},
			want:   ButtonProps{Variant: ButtonPrimary, Size: ButtonMedium},
		},
		{
			name:    "extra keys ignored",
			variant: "secondary",
			custom:  map[string]any{"color": "red"},
			want:    ButtonProps{Variant: ButtonSecondary, Size: ButtonMedium},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveButtonProps(tt.variant, tt.custom))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, ButtonSecondary.Valid())
	assert.False(t, ButtonVariant("").Valid())
	assert.True(t, ButtonLarge.Valid())
	assert.False(t, ButtonSize("xs").Valid())
}
