// Package export writes a colorscheme's full form table as a host
// configuration file, with every color expressed as a palette reference.
package export

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/scheme"
	"github.com/zclconf/go-cty/cty"
)

// Write renders the configuration for flavor f to w. Loading the output and
// applying its scheme reproduces the plain scheme's forms.
func Write(w io.Writer, f palette.Flavor, noBackground bool) error {
	src, err := Render(f, noBackground)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, src); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Render returns the formatted configuration for flavor f.
func Render(f palette.Flavor, noBackground bool) (string, error) {
	s := scheme.New(f).NoBackground(noBackground)

	file := hclwrite.NewEmptyFile()
	body := file.Body()

	body.AppendUnstructuredTokens(hclwrite.Tokens{{
		Type:  hclsyntax.TokenComment,
		Bytes: []byte(fmt.Sprintf("# %s (%s)\n", s.Name(), f.Appearance())),
	}})
	body.SetAttributeValue("colorscheme", cty.StringVal(s.Name()))
	body.SetAttributeValue("no_background", cty.BoolVal(noBackground))

	for _, e := range scheme.Entries() {
		body.AppendNewline()
		block := body.AppendNewBlock("form", []string{e.Form})
		writeEntry(block.Body(), e, noBackground)
	}

	return Format(string(file.Bytes()))
}

func writeEntry(body *hclwrite.Body, e scheme.Entry, noBackground bool) {
	if e.Fg.Valid() {
		body.SetAttributeTraversal("fg", paletteRef(e.Fg))
	}
	if e.Bg.Valid() && !(e.Canvas && noBackground) {
		body.SetAttributeTraversal("bg", paletteRef(e.Bg))
	}
	for _, name := range form.AttrNames() {
		a, _ := form.ParseAttr(name)
		if e.Attrs.Has(a) {
			body.SetAttributeValue(name, cty.True)
		}
	}
}

func paletteRef(r palette.Role) hcl.Traversal {
	return hcl.Traversal{
		hcl.TraverseRoot{Name: "palette"},
		hcl.TraverseAttr{Name: r.String()},
	}
}
