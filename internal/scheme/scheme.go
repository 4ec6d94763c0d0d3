// Package scheme turns a Catppuccin flavor into form assignments and applies
// them to a form registry.
package scheme

import (
	"fmt"
	"strings"

	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("catppuccin.scheme")

// NamePrefix is prepended to the flavor name to form a scheme name.
const NamePrefix = "catppuccin-"

// Modifier adjusts forms after the base forms have been queued. It writes
// into the same batch, so its changes land atomically with them.
type Modifier func(c palette.Colors, b *form.Batch) error

// Scheme is one Catppuccin flavor bound to its options. The zero value is
// the Latte scheme with backgrounds enabled.
type Scheme struct {
	flavor       palette.Flavor
	noBackground bool
	modify       Modifier
}

// New returns the scheme for flavor f.
func New(f palette.Flavor) Scheme {
	return Scheme{flavor: f}
}

// NoBackground returns a copy of s that leaves the canvas background alone.
func (s Scheme) NoBackground(on bool) Scheme {
	s.noBackground = on
	return s
}

// Modify returns a copy of s that runs m after the base forms.
func (s Scheme) Modify(m Modifier) Scheme {
	s.modify = m
	return s
}

// Flavor returns the scheme's flavor.
func (s Scheme) Flavor() palette.Flavor {
	return s.flavor
}

// BackgroundDisabled reports whether the canvas background is suppressed.
func (s Scheme) BackgroundDisabled() bool {
	return s.noBackground
}

// Name returns the host-facing name, e.g. "catppuccin-mocha".
func (s Scheme) Name() string {
	return NamePrefix + s.flavor.String()
}

// Names returns the names of all four schemes.
func Names() []string {
	flavors := palette.Flavors()
	names := make([]string, len(flavors))
	for i, f := range flavors {
		names[i] = New(f).Name()
	}
	return names
}

// ParseName maps "catppuccin-<flavor>" back to its flavor. A bare flavor
// name is accepted too.
func ParseName(name string) (palette.Flavor, error) {
	f, err := palette.ParseFlavor(strings.TrimPrefix(name, NamePrefix))
	if err != nil {
		return 0, fmt.Errorf("unknown colorscheme %q", name)
	}
	return f, nil
}

// Assignments resolves the role map against the flavor's palette and runs
// the modifier. Every form is replaced outright except the canvas, whose
// background is queued as a separate Background assignment, or not at all
// when backgrounds are disabled.
func (s Scheme) Assignments() ([]form.Assignment, error) {
	var b form.Batch
	for _, e := range entries {
		b.Add(form.Assignment{Name: e.Form, Form: e.Resolve(s.flavor), Canvas: e.Canvas})
		if e.Canvas && e.Bg.Valid() && !s.noBackground {
			b.Add(form.Assignment{
				Name:       e.Form,
				Form:       form.On(palette.Lookup(s.flavor, e.Bg)),
				Background: true,
			})
		}
	}

	if s.modify != nil {
		if err := s.modify(palette.ColorsOf(s.flavor), &b); err != nil {
			return nil, fmt.Errorf("modifying %s: %w", s.Name(), err)
		}
	}

	return b.Assignments(), nil
}

// Apply writes the scheme into reg as one batch.
func (s Scheme) Apply(reg form.Registry) error {
	batch, err := s.Assignments()
	if err != nil {
		return err
	}
	if err := reg.SetMany(batch); err != nil {
		return fmt.Errorf("applying %s: %w", s.Name(), err)
	}
	log.Debugf("applied %s: %d assignments, no_background=%t", s.Name(), len(batch), s.noBackground)
	return nil
}
