// Package catppuccin provides the Catppuccin colorschemes for hosts that
// style text through named forms.
//
// Plugging it adds four colorschemes:
//
//   - catppuccin-latte
//   - catppuccin-frappe
//   - catppuccin-macchiato
//   - catppuccin-mocha
//
// Use Modify to adjust more forms from the active palette, and NoBackground
// to keep the host's own background (for example a transparent terminal).
package catppuccin

import (
	"fmt"

	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/host"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/scheme"
)

type (
	Flavor   = palette.Flavor
	Colors   = palette.Colors
	Form     = form.Form
	Batch    = form.Batch
	Modifier = scheme.Modifier
)

const (
	Latte     = palette.Latte
	Frappe    = palette.Frappe
	Macchiato = palette.Macchiato
	Mocha     = palette.Mocha
)

// Registrar is the part of a host that accepts colorschemes.
type Registrar interface {
	AddColorScheme(cs host.ColorScheme) error
}

// Plugin holds the options shared by all four colorschemes.
type Plugin struct {
	noBackground bool
	modify       Modifier
}

// New returns a plugin with backgrounds enabled and no modifications.
func New() *Plugin {
	return &Plugin{}
}

// NoBackground disables the canvas background in every flavor.
func (p *Plugin) NoBackground() *Plugin {
	p.noBackground = true
	return p
}

// Modify registers m to run after the base forms of whichever flavor is
// applied. For red delimiters:
//
//	catppuccin.New().Modify(func(c catppuccin.Colors, b *catppuccin.Batch) error {
//		b.Set("punctuation.delimiter", form.With(c.Red))
//		return nil
//	})
func (p *Plugin) Modify(m Modifier) *Plugin {
	p.modify = m
	return p
}

// Schemes returns the four colorschemes with the plugin's options applied.
func (p *Plugin) Schemes() []scheme.Scheme {
	flavors := palette.Flavors()
	out := make([]scheme.Scheme, len(flavors))
	for i, f := range flavors {
		out[i] = scheme.New(f).NoBackground(p.noBackground).Modify(p.modify)
	}
	return out
}

// Plug advertises the colorschemes to r. Nothing is applied until the host
// selects one.
func (p *Plugin) Plug(r Registrar) error {
	for _, s := range p.Schemes() {
		if err := r.AddColorScheme(s); err != nil {
			return fmt.Errorf("registering %s: %w", s.Name(), err)
		}
	}
	return nil
}
