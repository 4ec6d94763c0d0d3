package palette

import (
	"testing"

	"github.com/jsvensson/catppuccin/internal/color"
)

func TestLookupIsTotal(t *testing.T) {
	for _, f := range Flavors() {
		seen := make(map[color.Color]Role)
		for _, r := range Roles() {
			c := Lookup(f, r)
			if prev, dup := seen[c]; dup {
				t.Errorf("%s: %s and %s share color %s", f, prev, r, c.Hex())
			}
			seen[c] = r
		}
		if len(seen) != 26 {
			t.Errorf("%s: got %d distinct colors, want 26", f, len(seen))
		}
	}
}

func TestLookupUpstreamValues(t *testing.T) {
	tests := []struct {
		flavor Flavor
		role   Role
		want   string
	}{
		{Latte, Rosewater, "#dc8a78"},
		{Latte, Base, "#eff1f5"},
		{Frappe, Red, "#e78284"},
		{Frappe, Crust, "#232634"},
		{Macchiato, Lavender, "#b7bdf8"},
		{Macchiato, Surface0, "#363a4f"},
		{Mocha, Red, "#f38ba8"},
		{Mocha, Base, "#1e1e2e"},
		{Mocha, Text, "#cdd6f4"},
		{Mocha, Crust, "#11111b"},
	}

	for _, tt := range tests {
		t.Run(tt.flavor.String()+"/"+tt.role.String(), func(t *testing.T) {
			if got := Lookup(tt.flavor, tt.role).Hex(); got != tt.want {
				t.Errorf("Lookup(%s, %s) = %s, want %s", tt.flavor, tt.role, got, tt.want)
			}
		})
	}
}

func TestFlavorsAreDistinct(t *testing.T) {
	flavors := Flavors()
	for i, a := range flavors {
		for _, b := range flavors[i+1:] {
			differs := false
			for _, r := range Roles() {
				if Lookup(a, r) != Lookup(b, r) {
					differs = true
					break
				}
			}
			if !differs {
				t.Errorf("%s and %s have identical palettes", a, b)
			}
		}
	}
}

func TestLookupNonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Lookup(Mocha, None) did not panic")
		}
	}()
	Lookup(Mocha, None)
}

func TestParseFlavor(t *testing.T) {
	tests := []struct {
		input   string
		want    Flavor
		wantErr bool
	}{
		{"latte", Latte, false},
		{"Frappe", Frappe, false},
		{"frappé", Frappe, false},
		{" macchiato ", Macchiato, false},
		{"MOCHA", Mocha, false},
		{"espresso", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFlavor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFlavor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFlavor(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRoleRoundTrip(t *testing.T) {
	for _, r := range Roles() {
		got, err := ParseRole(r.String())
		if err != nil {
			t.Fatalf("ParseRole(%q) error: %v", r, err)
		}
		if got != r {
			t.Errorf("ParseRole(%q) = %s", r, got)
		}
	}

	if _, err := ParseRole("none"); err == nil {
		t.Error("ParseRole(\"none\") should fail")
	}
	if _, err := ParseRole("purple"); err == nil {
		t.Error("ParseRole(\"purple\") should fail")
	}
}

func TestAppearance(t *testing.T) {
	if Latte.Appearance() != "light" {
		t.Errorf("Latte.Appearance() = %q", Latte.Appearance())
	}
	for _, f := range []Flavor{Frappe, Macchiato, Mocha} {
		if f.Appearance() != "dark" {
			t.Errorf("%s.Appearance() = %q", f, f.Appearance())
		}
	}
}

func TestColorsOfMatchesLookup(t *testing.T) {
	for _, f := range Flavors() {
		c := ColorsOf(f)
		if c.Red != Lookup(f, Red) || c.Base != Lookup(f, Base) || c.Crust != Lookup(f, Crust) {
			t.Errorf("%s: ColorsOf disagrees with Lookup", f)
		}
		m := c.Map()
		if len(m) != 26 {
			t.Errorf("%s: Map() has %d entries, want 26", f, len(m))
		}
		for _, r := range Roles() {
			if m[r.String()] != c.Get(r) {
				t.Errorf("%s: Map()[%s] = %s, want %s", f, r, m[r.String()], c.Get(r))
			}
		}
	}
}
