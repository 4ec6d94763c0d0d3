// Package config loads the host configuration file: the selected
// colorscheme, the no_background switch and per-form overrides written
// against palette roles.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/catppuccin/internal/color"
	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/scheme"
	"github.com/tliron/commonlog"
	"github.com/zclconf/go-cty/cty"
)

var log = commonlog.GetLogger("catppuccin.config")

// DefaultColorScheme is used when the file does not name one.
const DefaultColorScheme = "catppuccin-mocha"

// Config is a decoded host configuration.
type Config struct {
	ColorScheme  string
	NoBackground bool
	Overrides    []Override
}

// Override replaces one form after the colorscheme's own forms. Fg and Bg
// are evaluated against the active flavor's palette; a null value leaves
// that layer unset.
type Override struct {
	Form     string
	Fg       hcl.Expression
	Bg       hcl.Expression
	Attrs    form.Attr
	DefRange hcl.Range
}

type fileSchema struct {
	ColorScheme  string      `hcl:"colorscheme,optional"`
	NoBackground bool        `hcl:"no_background,optional"`
	Forms        []formBlock `hcl:"form,block"`
}

type formBlock struct {
	Name       string         `hcl:"name,label"`
	Fg         hcl.Expression `hcl:"fg,optional"`
	Bg         hcl.Expression `hcl:"bg,optional"`
	Bold       bool           `hcl:"bold,optional"`
	Italic     bool           `hcl:"italic,optional"`
	Underlined bool           `hcl:"underlined,optional"`
	Reverse    bool           `hcl:"reverse,optional"`
	CrossedOut bool           `hcl:"crossed_out,optional"`
	Reset      bool           `hcl:"reset,optional"`
}

func (b formBlock) attrs() form.Attr {
	var a form.Attr
	for _, f := range []struct {
		set  bool
		attr form.Attr
	}{
		{b.Bold, form.Bold},
		{b.Italic, form.Italic},
		{b.Underlined, form.Underlined},
		{b.Reverse, form.Reverse},
		{b.CrossedOut, form.CrossedOut},
		{b.Reset, form.Reset},
	} {
		if f.set {
			a |= f.attr
		}
	}
	return a
}

// Load reads and decodes a configuration file.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(path, src)
}

// Parse decodes configuration source. Overrides are checked against every
// flavor, so a file that loads applies cleanly whichever scheme is chosen.
func Parse(filename string, src []byte) (*Config, error) {
	cfg, diags := Decode(filename, src)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config: %s", diags.Error())
	}
	log.Debugf("loaded %s: colorscheme=%s overrides=%d", filename, cfg.ColorScheme, len(cfg.Overrides))
	return cfg, nil
}

// Decode is Parse without the error flattening. It returns as much of the
// configuration as could be decoded along with every diagnostic.
func Decode(filename string, src []byte) (*Config, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	var raw fileSchema
	if d := gohcl.DecodeBody(file.Body, nil, &raw); d.HasErrors() {
		return nil, append(diags, d...)
	}

	cfg := &Config{
		ColorScheme:  raw.ColorScheme,
		NoBackground: raw.NoBackground,
	}
	if cfg.ColorScheme == "" {
		cfg.ColorScheme = DefaultColorScheme
	} else if _, err := scheme.ParseName(cfg.ColorScheme); err != nil {
		d := &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unknown colorscheme",
			Detail:   fmt.Sprintf("%s; valid names are %v", err, scheme.Names()),
		}
		if body, ok := file.Body.(*hclsyntax.Body); ok {
			if attr, ok := body.Attributes["colorscheme"]; ok {
				d.Subject = attr.Expr.Range().Ptr()
			}
		}
		diags = append(diags, d)
	}

	ranges := formRanges(file.Body)
	for i, b := range raw.Forms {
		o := Override{
			Form:  b.Name,
			Fg:    b.Fg,
			Bg:    b.Bg,
			Attrs: b.attrs(),
		}
		if i < len(ranges) {
			o.DefRange = ranges[i]
		}
		diags = append(diags, o.validate()...)
		cfg.Overrides = append(cfg.Overrides, o)
	}

	return cfg, diags
}

// formRanges returns the header range of each form block in source order,
// matching the order gohcl decodes them in.
func formRanges(body hcl.Body) []hcl.Range {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}
	var out []hcl.Range
	for _, block := range sb.Blocks {
		if block.Type == "form" {
			out = append(out, block.DefRange())
		}
	}
	return out
}

// validate evaluates the override in every flavor, reporting each broken
// expression once.
func (o Override) validate() hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, expr := range []hcl.Expression{o.Fg, o.Bg} {
		if expr == nil {
			continue
		}
		for _, f := range palette.Flavors() {
			if _, d := EvalLayer(expr, EvalContext(palette.ColorsOf(f))); d.HasErrors() {
				diags = append(diags, d...)
				break
			}
		}
	}
	return diags
}

// Flavor returns the flavor of the selected colorscheme.
func (c *Config) Flavor() (palette.Flavor, error) {
	return scheme.ParseName(c.ColorScheme)
}

// Scheme returns the selected colorscheme with the file's options.
func (c *Config) Scheme() (scheme.Scheme, error) {
	f, err := c.Flavor()
	if err != nil {
		return scheme.Scheme{}, err
	}
	return scheme.New(f).NoBackground(c.NoBackground).Modify(c.Modifier()), nil
}

// Modifier queues every override, in file order. An override replaces the
// whole form, except that leaving bg unset on the canvas keeps the host's
// background.
func (c *Config) Modifier() scheme.Modifier {
	overrides := c.Overrides
	return func(colors palette.Colors, b *form.Batch) error {
		for _, o := range overrides {
			f, err := o.Resolve(colors)
			if err != nil {
				return err
			}
			e, _ := scheme.Lookup(o.Form)
			b.Add(form.Assignment{Name: o.Form, Form: f, Canvas: e.Canvas})
		}
		return nil
	}
}

// Resolve evaluates the override against a palette.
func (o Override) Resolve(colors palette.Colors) (form.Form, error) {
	ctx := EvalContext(colors)
	out := form.Form{Attrs: o.Attrs}

	fg, diags := EvalLayer(o.Fg, ctx)
	if diags.HasErrors() {
		return form.Form{}, fmt.Errorf("form %q: %s", o.Form, diags.Error())
	}
	bg, diags := EvalLayer(o.Bg, ctx)
	if diags.HasErrors() {
		return form.Form{}, fmt.Errorf("form %q: %s", o.Form, diags.Error())
	}
	out.Fg, out.Bg = fg, bg
	return out, nil
}

// EvalLayer evaluates a single fg/bg expression. A missing or null
// expression yields nil.
func EvalLayer(expr hcl.Expression, ctx *hcl.EvalContext) (*color.Color, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if val.Type() != cty.String || !val.IsKnown() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid color",
			Detail:   fmt.Sprintf("expected a palette reference or hex string, got %s", val.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	c, err := color.ParseHex(val.AsString())
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid color",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return &c, nil
}

// EvalContext exposes the palette as `palette.<role>` and the flavor name
// as `flavor`.
func EvalContext(colors palette.Colors) *hcl.EvalContext {
	m := colors.Map()

	// Sort keys for deterministic output
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := make(map[string]cty.Value, len(keys))
	for _, k := range keys {
		vals[k] = cty.StringVal(m[k].Hex())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(vals),
			"flavor":  cty.StringVal(colors.Flavor.String()),
		},
	}
}
