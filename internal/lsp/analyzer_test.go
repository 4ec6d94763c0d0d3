package lsp

import (
	"strings"
	"testing"

	"github.com/jsvensson/catppuccin/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const validConfig = `colorscheme = "catppuccin-latte"

form "comment" {
  fg     = palette.red
  italic = true
}

form "Default" {
  bg = "#101010"
}
`

func TestAnalyze_ValidConfig(t *testing.T) {
	result := Analyze("test.hcl", validConfig)

	if len(result.Diagnostics) != 0 {
		for _, d := range result.Diagnostics {
			t.Logf("  diagnostic: [%v] %s", *d.Severity, d.Message)
		}
		t.Fatalf("expected 0 diagnostics, got %d", len(result.Diagnostics))
	}

	if result.Config == nil {
		t.Fatal("expected decoded config")
	}
	if result.Flavor != palette.Latte {
		t.Errorf("Flavor = %s, want latte", result.Flavor)
	}
	if len(result.Labels) != 2 || result.Labels[0].Name != "comment" || result.Labels[1].Name != "Default" {
		t.Errorf("Labels = %+v", result.Labels)
	}
}

func TestAnalyze_ColorLocations(t *testing.T) {
	result := Analyze("test.hcl", validConfig)

	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 color locations, got %d", len(result.Colors))
	}

	ref := result.Colors[0]
	if ref.Color.Hex() != "#d20f39" {
		t.Errorf("palette.red in latte = %s, want #d20f39", ref.Color.Hex())
	}
	if !ref.IsRef || ref.Role != palette.Red {
		t.Errorf("expected palette.red reference, got IsRef=%v Role=%s", ref.IsRef, ref.Role)
	}
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 3, Character: 11},
		End:   protocol.Position{Line: 3, Character: 22},
	}
	if ref.Range != wantRange {
		t.Errorf("Range = %+v, want %+v", ref.Range, wantRange)
	}

	lit := result.Colors[1]
	if lit.IsRef || lit.Role.Valid() {
		t.Errorf("hex literal marked as reference: %+v", lit)
	}
	if lit.Color.Hex() != "#101010" {
		t.Errorf("literal = %s, want #101010", lit.Color.Hex())
	}
}

func TestAnalyze_DefaultFlavor(t *testing.T) {
	result := Analyze("test.hcl", `form "comment" { fg = palette.red }`)
	if result.Flavor != palette.Mocha {
		t.Errorf("Flavor = %s, want mocha", result.Flavor)
	}
	if len(result.Colors) != 1 || result.Colors[0].Color.Hex() != "#f38ba8" {
		t.Errorf("Colors = %+v, want mocha red", result.Colors)
	}
}

func TestAnalyze_SyntaxError(t *testing.T) {
	result := Analyze("test.hcl", `form "comment" {`)
	if len(result.Diagnostics) == 0 {
		t.Fatal("expected diagnostics for syntax error")
	}
	if result.Config != nil {
		t.Error("expected no config after syntax error")
	}
}

func TestAnalyze_Diagnostics(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		severity protocol.DiagnosticSeverity
		contains string
		line     uint32
	}{
		{
			name:     "unknown colorscheme",
			content:  `colorscheme = "catppuccin-espresso"`,
			severity: DiagError,
			contains: "Unknown colorscheme",
			line:     0,
		},
		{
			name:     "unknown role",
			content:  "form \"comment\" {\n  fg = palette.purple\n}",
			severity: DiagError,
			line:     1,
		},
		{
			name:     "bad hex",
			content:  "form \"comment\" {\n  bg = \"#12345\"\n}",
			severity: DiagError,
			contains: "Invalid color",
			line:     1,
		},
		{
			name:     "duplicate form",
			content:  "form \"comment\" {\n  bold = true\n}\nform \"comment\" {\n  italic = true\n}",
			severity: DiagWarning,
			contains: "already overridden on line 1",
			line:     3,
		},
		{
			name:     "form not set by colorschemes",
			content:  `form "my.plugin.form" { bold = true }`,
			severity: DiagInfo,
			contains: "not set by the catppuccin colorschemes",
			line:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze("test.hcl", tt.content)
			if len(result.Diagnostics) != 1 {
				for _, d := range result.Diagnostics {
					t.Logf("  diagnostic: [%v] %s", *d.Severity, d.Message)
				}
				t.Fatalf("expected 1 diagnostic, got %d", len(result.Diagnostics))
			}
			d := result.Diagnostics[0]
			if *d.Severity != tt.severity {
				t.Errorf("severity = %v, want %v", *d.Severity, tt.severity)
			}
			if !strings.Contains(d.Message, tt.contains) {
				t.Errorf("message %q does not contain %q", d.Message, tt.contains)
			}
			if d.Range.Start.Line != tt.line {
				t.Errorf("line = %d, want %d", d.Range.Start.Line, tt.line)
			}
			if d.Source == nil || *d.Source != diagnosticSource {
				t.Errorf("source = %v, want %s", d.Source, diagnosticSource)
			}
		})
	}
}

func TestAnalyze_InvalidColorschemeKeepsDefaultFlavor(t *testing.T) {
	result := Analyze("test.hcl", "colorscheme = \"nope\"\nform \"comment\" {\n  fg = palette.red\n}")
	if result.Flavor != palette.Mocha {
		t.Errorf("Flavor = %s, want mocha", result.Flavor)
	}
	if len(result.Colors) != 1 {
		t.Errorf("expected colors to resolve with the default flavor, got %d", len(result.Colors))
	}
}

func TestAnalyze_ConditionalIsReference(t *testing.T) {
	content := `colorscheme = "catppuccin-frappe"
form "comment" {
  fg = flavor == "latte" ? palette.red : palette.blue
}
`
	result := Analyze("test.hcl", content)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", result.Diagnostics)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color, got %d", len(result.Colors))
	}
	c := result.Colors[0]
	if !c.IsRef || c.Role.Valid() {
		t.Errorf("conditional should be a reference without a single role: %+v", c)
	}
	if c.Color != palette.Lookup(palette.Frappe, palette.Blue) {
		t.Errorf("Color = %s, want frappe blue", c.Color.Hex())
	}
}

func TestAnalyze_NullLayerHasNoColor(t *testing.T) {
	result := Analyze("test.hcl", "form \"Default\" {\n  bg = null\n}")
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", result.Diagnostics)
	}
	if len(result.Colors) != 0 {
		t.Errorf("null layer should not produce a color location")
	}
}
