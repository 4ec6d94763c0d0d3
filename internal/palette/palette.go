// Package palette holds the four Catppuccin flavors as compiled-in color tables.
package palette

import (
	"fmt"
	"strings"

	"github.com/jsvensson/catppuccin/internal/color"
)

// Flavor identifies one of the four Catppuccin variants.
type Flavor uint8

const (
	Latte Flavor = iota
	Frappe
	Macchiato
	Mocha

	flavorCount = int(Mocha) + 1
)

var flavorNames = [flavorCount]string{"latte", "frappe", "macchiato", "mocha"}

// Flavors returns all flavors, lightest first.
func Flavors() []Flavor {
	return []Flavor{Latte, Frappe, Macchiato, Mocha}
}

func (f Flavor) String() string {
	if int(f) >= flavorCount {
		return fmt.Sprintf("Flavor(%d)", f)
	}
	return flavorNames[f]
}

// Appearance is "light" for Latte and "dark" for the others.
func (f Flavor) Appearance() string {
	if f == Latte {
		return "light"
	}
	return "dark"
}

// ParseFlavor maps a flavor name to its Flavor. Matching ignores case and
// accepts the accented "frappé".
func ParseFlavor(s string) (Flavor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "frappé" {
		name = "frappe"
	}
	for i, n := range flavorNames {
		if n == name {
			return Flavor(i), nil
		}
	}
	return 0, fmt.Errorf("unknown flavor %q (valid: %s)", s, strings.Join(flavorNames[:], ", "))
}

// Role is a semantic color slot of a Catppuccin palette.
// The zero value None stands for "no color" and has no entry in any palette.
type Role uint8

const (
	None Role = iota
	Rosewater
	Flamingo
	Pink
	Mauve
	Red
	Maroon
	Peach
	Yellow
	Green
	Teal
	Sky
	Sapphire
	Blue
	Lavender
	Text
	Subtext1
	Subtext0
	Overlay2
	Overlay1
	Overlay0
	Surface2
	Surface1
	Surface0
	Base
	Mantle
	Crust

	roleCount = int(Crust)
)

var roleNames = [roleCount + 1]string{
	"", "rosewater", "flamingo", "pink", "mauve", "red", "maroon", "peach", "yellow",
	"green", "teal", "sky", "sapphire", "blue", "lavender", "text", "subtext1",
	"subtext0", "overlay2", "overlay1", "overlay0", "surface2", "surface1",
	"surface0", "base", "mantle", "crust",
}

// Roles returns every role except None, in upstream palette order.
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Rosewater; r <= Crust; r++ {
		roles = append(roles, r)
	}
	return roles
}

func (r Role) String() string {
	if int(r) > roleCount {
		return fmt.Sprintf("Role(%d)", r)
	}
	if r == None {
		return "none"
	}
	return roleNames[r]
}

// Valid reports whether r names a palette color.
func (r Role) Valid() bool {
	return r != None && int(r) <= roleCount
}

// ParseRole maps a role name such as "surface0" to its Role.
func ParseRole(s string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i := 1; i <= roleCount; i++ {
		if roleNames[i] == name {
			return Role(i), nil
		}
	}
	return None, fmt.Errorf("unknown palette role %q", s)
}

// table is indexed by flavor, then by role-1.
var table [flavorCount][roleCount]color.Color

func init() {
	for f, hexes := range hexTable {
		for i, h := range hexes {
			table[f][i] = color.MustParseHex(h)
		}
	}
}

// Lookup returns the color of role r in flavor f.
// It panics if r is None or either value is out of range.
func Lookup(f Flavor, r Role) color.Color {
	if !r.Valid() {
		panic(fmt.Sprintf("palette: lookup of invalid role %s", r))
	}
	return table[f][r-1]
}
