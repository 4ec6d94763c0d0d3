package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output formats are derived from them.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a hex color string like "#f38ba8" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: not a hex number", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is meant for compiled-in literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as a hex string with leading #, e.g. "#f38ba8".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "f38ba8".
func (c Color) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// HexAlpha returns the color in hex format with alpha channel (#rrggbbaa)
func (c Color) HexAlpha() string {
	return c.Hex() + "ff"
}

// RGB returns the color as an rgb() string, e.g. "rgb(243, 139, 168)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA returns the color in rgba() function format with full opacity
func (c Color) RGBA() string {
	return fmt.Sprintf("rgba(%d, %d, %d, 1.0)", c.R, c.G, c.B)
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

// Ptr returns a pointer to a copy of c.
func (c Color) Ptr() *Color {
	return &c
}
