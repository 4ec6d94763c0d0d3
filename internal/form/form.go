// Package form models host forms: named styles with a foreground layer,
// a background layer and text attributes.
package form

import (
	"strings"

	"github.com/jsvensson/catppuccin/internal/color"
)

// Attr is a set of text attributes.
type Attr uint8

const (
	Bold Attr = 1 << iota
	Italic
	Underlined
	Reverse
	CrossedOut
	// Reset clears attributes inherited from a parent form.
	Reset
)

var attrNames = []struct {
	attr Attr
	name string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Underlined, "underlined"},
	{Reverse, "reverse"},
	{CrossedOut, "crossed_out"},
	{Reset, "reset"},
}

// AttrNames returns the attribute names in declaration order.
func AttrNames() []string {
	names := make([]string, len(attrNames))
	for i, a := range attrNames {
		names[i] = a.name
	}
	return names
}

// ParseAttr maps a single attribute name to its flag.
func ParseAttr(name string) (Attr, bool) {
	for _, a := range attrNames {
		if a.name == name {
			return a.attr, true
		}
	}
	return 0, false
}

// Has reports whether every flag in other is set in a.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}

func (a Attr) String() string {
	var parts []string
	for _, an := range attrNames {
		if a.Has(an.attr) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "|")
}

// Form is a style definition. A nil layer is unset.
type Form struct {
	Fg    *color.Color
	Bg    *color.Color
	Attrs Attr
}

// New returns an empty form.
func New() Form {
	return Form{}
}

// With returns a form with foreground c.
func With(c color.Color) Form {
	return Form{Fg: c.Ptr()}
}

// On returns a form with background c.
func On(c color.Color) Form {
	return Form{Bg: c.Ptr()}
}

func (f Form) On(c color.Color) Form {
	f.Bg = c.Ptr()
	return f
}

func (f Form) With(c color.Color) Form {
	f.Fg = c.Ptr()
	return f
}

func (f Form) Bold() Form       { return f.attr(Bold) }
func (f Form) Italic() Form     { return f.attr(Italic) }
func (f Form) Underlined() Form { return f.attr(Underlined) }
func (f Form) Reverse() Form    { return f.attr(Reverse) }
func (f Form) CrossedOut() Form { return f.attr(CrossedOut) }
func (f Form) Reset() Form      { return f.attr(Reset) }

func (f Form) attr(a Attr) Form {
	f.Attrs |= a
	return f
}

// Equal compares layer values rather than pointers.
func (f Form) Equal(other Form) bool {
	return sameLayer(f.Fg, other.Fg) && sameLayer(f.Bg, other.Bg) && f.Attrs == other.Attrs
}

func sameLayer(a, b *color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (f Form) String() string {
	var b strings.Builder
	b.WriteString("fg=")
	b.WriteString(layerString(f.Fg))
	b.WriteString(" bg=")
	b.WriteString(layerString(f.Bg))
	if f.Attrs != 0 {
		b.WriteString(" ")
		b.WriteString(f.Attrs.String())
	}
	return b.String()
}

func layerString(c *color.Color) string {
	if c == nil {
		return "-"
	}
	return c.Hex()
}
