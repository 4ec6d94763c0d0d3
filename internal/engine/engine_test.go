package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/scheme"
)

func setupTemplateDir(t *testing.T, templates map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func runTemplate(t *testing.T, s scheme.Scheme, content string) string {
	t.Helper()
	tmplDir := setupTemplateDir(t, map[string]string{"out.txt.tmpl": content})
	outDir := filepath.Join(t.TempDir(), "output")

	e := &Engine{TemplatesDir: tmplDir, OutputDir: outDir}
	if err := e.Run(s); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(outDir, "out.txt"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return string(out)
}

func TestRun(t *testing.T) {
	got := runTemplate(t, scheme.New(palette.Mocha), `name={{ .Name }}
flavor={{ .Flavor }}
appearance={{ .Appearance }}
red={{ hex .Palette.red }}
base={{ hexBare .Palette.base }}`)

	wantLines := []string{
		"name=catppuccin-mocha",
		"flavor=mocha",
		"appearance=dark",
		"red=#f38ba8",
		"base=1e1e2e",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q, got:\n%s", want, got)
		}
	}
}

func TestRunAppFilter(t *testing.T) {
	tmplDir := setupTemplateDir(t, map[string]string{
		"app1.txt.tmpl": "app1={{ .Flavor }}",
		"app2.txt.tmpl": "app2={{ .Flavor }}",
	})
	outDir := filepath.Join(t.TempDir(), "output")

	e := &Engine{
		TemplatesDir: tmplDir,
		OutputDir:    outDir,
		Apps:         []string{"app1.txt"},
	}

	if err := e.Run(scheme.New(palette.Latte)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "app1.txt")); err != nil {
		t.Errorf("app1.txt not rendered: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "app2.txt")); !os.IsNotExist(err) {
		t.Errorf("app2.txt should not be rendered, stat err = %v", err)
	}
}

func TestRunNoTemplates(t *testing.T) {
	e := &Engine{
		TemplatesDir: t.TempDir(),
		OutputDir:    filepath.Join(t.TempDir(), "output"),
	}
	err := e.Run(scheme.New(palette.Mocha))
	if err == nil || !strings.Contains(err.Error(), "no .tmpl files") {
		t.Errorf("Run() error = %v, want no .tmpl files", err)
	}
}

func TestRunFormPaths(t *testing.T) {
	got := runTemplate(t, scheme.New(palette.Frappe), `comment={{ hex "fg.comment" }}
bg={{ hex "bg.Default" }}
checked={{ hex "fg.markup.list.checked" }}
rgb={{ rgb "palette.red" }}
sel={{ hex (form "MainSelection").Bg }}
pal={{ hex (palette "teal") }}`)

	c := palette.ColorsOf(palette.Frappe)
	wantLines := []string{
		"comment=" + c.Overlay1.Hex(),
		"bg=" + c.Base.Hex(),
		"checked=" + c.Green.Hex(),
		"rgb=" + c.Red.RGB(),
		"sel=" + c.Overlay1.Hex(),
		"pal=" + c.Teal.Hex(),
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q, got:\n%s", want, got)
		}
	}
}

func TestRunNoBackgroundHasNoCanvas(t *testing.T) {
	tmplDir := setupTemplateDir(t, map[string]string{"out.tmpl": `{{ hex "bg.Default" }}`})
	e := &Engine{TemplatesDir: tmplDir, OutputDir: t.TempDir()}

	err := e.Run(scheme.New(palette.Mocha).NoBackground(true))
	if err == nil || !strings.Contains(err.Error(), "has no bg color") {
		t.Errorf("Run() error = %v, want missing bg", err)
	}
}

func TestResolveColorPathErrors(t *testing.T) {
	data, err := buildTemplateData(scheme.New(palette.Latte))
	if err != nil {
		t.Fatal(err)
	}

	tests := []string{
		"palette",
		"palette.purple",
		"fg.nope",
		"ansi.black",
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			tmplDir := setupTemplateDir(t, map[string]string{"out.tmpl": `{{ hex "` + path + `" }}`})
			e := &Engine{TemplatesDir: tmplDir, OutputDir: t.TempDir()}
			if err := e.Run(scheme.New(palette.Latte)); err == nil {
				t.Errorf("path %q rendered without error", path)
			}
		})
	}

	if len(data.Forms) == 0 || len(data.Palette) != 26 {
		t.Errorf("template data: %d forms, %d palette colors", len(data.Forms), len(data.Palette))
	}
}
