// Package icon renders player symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/mediabar/mediabar/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type variant string

const (
	emoji   variant = "emoji"
	nerd    variant = "nerd"
	plain   variant = "plain"
	kaomoji variant = "kaomoji"
	squares variant = "squares"
)

var variants = []variant{emoji, nerd, plain, kaomoji, squares}

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return lo.Map(variants, func(v variant, _ int) string {
		return string(v)
	})
}

type iconDef struct {
	emoji, nerd, plain, kaomoji, squares string
}

func (d *iconDef) in(v variant) string {
	switch v {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	}
	return ""
}

// Get renders i in the configured variant. Unknown icons and variants render empty.
func Get(i Icon) string {
	if def, ok := icons[i]; ok {
		return def.in(variant(viper.GetString(key.IconsVariant)))
	}
	return ""
}
