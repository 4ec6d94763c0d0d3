// Package engine renders Go templates against an applied colorscheme, so
// the same palette and form table can drive other applications' configs.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/catppuccin/internal/color"
	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/scheme"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("catppuccin.engine")

// Engine loads and executes Go templates against a colorscheme.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// Run applies s to a scratch form store, then renders every .tmpl file in
// the templates directory into the output directory.
func (e *Engine) Run(s scheme.Scheme) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := buildTemplateData(s)
	if err != nil {
		return err
	}

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
		log.Debugf("rendered %s for %s", baseName, s.Name())
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no apps are specified, render all.
	if len(e.Apps) == 0 {
		return true
	}

	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Name       string
	Flavor     string
	Appearance string
	Palette    map[string]color.Color
	Forms      map[string]form.Form
	FuncMap    template.FuncMap
}

// resolveColorPath resolves a dot-notation path to a Color. The first
// segment picks the source: "palette.red", "fg.comment", "bg.Default".
// Form names may themselves contain dots ("fg.markup.list.checked").
func resolveColorPath(path string, data templateData, forms *form.Store) (color.Color, error) {
	block, rest, ok := strings.Cut(path, ".")
	if !ok || rest == "" {
		return color.Color{}, fmt.Errorf("invalid path %q: must be block.name format", path)
	}

	switch block {
	case "palette":
		c, ok := data.Palette[rest]
		if !ok {
			return color.Color{}, fmt.Errorf("palette color not found: %s", rest)
		}
		return c, nil

	case "fg", "bg":
		f, ok := forms.Resolve(rest)
		if !ok {
			return color.Color{}, fmt.Errorf("form not found: %s", rest)
		}
		layer := f.Fg
		if block == "bg" {
			layer = f.Bg
		}
		if layer == nil {
			return color.Color{}, fmt.Errorf("form %s has no %s color", rest, block)
		}
		return *layer, nil

	default:
		return color.Color{}, fmt.Errorf("unknown block %q (valid: palette, fg, bg)", block)
	}
}

func buildTemplateData(s scheme.Scheme) (templateData, error) {
	forms := form.NewStore()
	if err := s.Apply(forms); err != nil {
		return templateData{}, fmt.Errorf("resolving %s: %w", s.Name(), err)
	}

	data := templateData{
		Name:       s.Name(),
		Flavor:     s.Flavor().String(),
		Appearance: s.Flavor().Appearance(),
		Palette:    palette.ColorsOf(s.Flavor()).Map(),
		Forms:      forms.Snapshot(),
	}

	// Accept either a Color or a path string.
	toColor := func(v any) (color.Color, error) {
		switch c := v.(type) {
		case color.Color:
			return c, nil
		case *color.Color:
			if c == nil {
				return color.Color{}, fmt.Errorf("color is unset")
			}
			return *c, nil
		case string:
			return resolveColorPath(c, data, forms)
		default:
			return color.Color{}, fmt.Errorf("cannot use %T as a color", v)
		}
	}

	data.FuncMap = template.FuncMap{
		"hex": func(v any) (string, error) {
			c, err := toColor(v)
			return c.Hex(), err
		},
		"hexBare": func(v any) (string, error) {
			c, err := toColor(v)
			return c.HexBare(), err
		},
		"rgb": func(v any) (string, error) {
			c, err := toColor(v)
			return c.RGB(), err
		},
		"palette": func(role string) (color.Color, error) {
			return resolveColorPath("palette."+role, data, forms)
		},
		"form": func(name string) (form.Form, error) {
			f, ok := forms.Resolve(name)
			if !ok {
				return form.Form{}, fmt.Errorf("form not found: %s", name)
			}
			return f, nil
		},
	}

	return data, nil
}
