package palette

import "github.com/jsvensson/catppuccin/internal/color"

// Upstream values from https://github.com/catppuccin/palette, in Role order.
var hexTable = [flavorCount][roleCount]string{
	Latte: {
		"#dc8a78", "#dd7878", "#ea76cb", "#8839ef", "#d20f39", "#e64553", "#fe640b",
		"#df8e1d", "#40a02b", "#179299", "#04a5e5", "#209fb5", "#1e66f5", "#7287fd",
		"#4c4f69", "#5c5f77", "#6c6f85", "#7c7f93", "#8c8fa1", "#9ca0b0", "#acb0be",
		"#bcc0cc", "#ccd0da", "#eff1f5", "#e6e9ef", "#dce0e8",
	},
	Frappe: {
		"#f2d5cf", "#eebebe", "#f4b8e4", "#ca9ee6", "#e78284", "#ea999c", "#ef9f76",
		"#e5c890", "#a6d189", "#81c8be", "#99d1db", "#85c1dc", "#8caaee", "#babbf1",
		"#c6d0f5", "#b5bfe2", "#a5adce", "#949cbb", "#838ba7", "#737994", "#626880",
		"#51576d", "#414559", "#303446", "#292c3c", "#232634",
	},
	Macchiato: {
		"#f4dbd6", "#f0c6c6", "#f5bde6", "#c6a0f6", "#ed8796", "#ee99a0", "#f5a97f",
		"#eed49f", "#a6da95", "#8bd5ca", "#91d7e3", "#7dc4e4", "#8aadf4", "#b7bdf8",
		"#cad3f5", "#b8c0e0", "#a5adcb", "#939ab7", "#8087a2", "#6e738d", "#5b6078",
		"#494d64", "#363a4f", "#24273a", "#1e2030", "#181926",
	},
	Mocha: {
		"#f5e0dc", "#f2cdcd", "#f5c2e7", "#cba6f7", "#f38ba8", "#eba0ac", "#fab387",
		"#f9e2af", "#a6e3a1", "#94e2d5", "#89dceb", "#74c7ec", "#89b4fa", "#b4befe",
		"#cdd6f4", "#bac2de", "#a6adc8", "#9399b2", "#7f849c", "#6c7086", "#585b70",
		"#45475a", "#313244", "#1e1e2e", "#181825", "#11111b",
	},
}

// Colors is one flavor's palette with a field per role.
type Colors struct {
	Flavor Flavor

	Rosewater color.Color
	Flamingo  color.Color
	Pink      color.Color
	Mauve     color.Color
	Red       color.Color
	Maroon    color.Color
	Peach     color.Color
	Yellow    color.Color
	Green     color.Color
	Teal      color.Color
	Sky       color.Color
	Sapphire  color.Color
	Blue      color.Color
	Lavender  color.Color
	Text      color.Color
	Subtext1  color.Color
	Subtext0  color.Color
	Overlay2  color.Color
	Overlay1  color.Color
	Overlay0  color.Color
	Surface2  color.Color
	Surface1  color.Color
	Surface0  color.Color
	Base      color.Color
	Mantle    color.Color
	Crust     color.Color
}

// ColorsOf returns the palette of f.
func ColorsOf(f Flavor) Colors {
	t := &table[f]
	return Colors{
		Flavor:    f,
		Rosewater: t[Rosewater-1],
		Flamingo:  t[Flamingo-1],
		Pink:      t[Pink-1],
		Mauve:     t[Mauve-1],
		Red:       t[Red-1],
		Maroon:    t[Maroon-1],
		Peach:     t[Peach-1],
		Yellow:    t[Yellow-1],
		Green:     t[Green-1],
		Teal:      t[Teal-1],
		Sky:       t[Sky-1],
		Sapphire:  t[Sapphire-1],
		Blue:      t[Blue-1],
		Lavender:  t[Lavender-1],
		Text:      t[Text-1],
		Subtext1:  t[Subtext1-1],
		Subtext0:  t[Subtext0-1],
		Overlay2:  t[Overlay2-1],
		Overlay1:  t[Overlay1-1],
		Overlay0:  t[Overlay0-1],
		Surface2:  t[Surface2-1],
		Surface1:  t[Surface1-1],
		Surface0:  t[Surface0-1],
		Base:      t[Base-1],
		Mantle:    t[Mantle-1],
		Crust:     t[Crust-1],
	}
}

// Get returns the color of r. It panics on None, like Lookup.
func (c Colors) Get(r Role) color.Color {
	return Lookup(c.Flavor, r)
}

// Map returns the palette keyed by role name.
func (c Colors) Map() map[string]color.Color {
	m := make(map[string]color.Color, roleCount)
	for _, r := range Roles() {
		m[r.String()] = Lookup(c.Flavor, r)
	}
	return m
}
