package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/catppuccin/internal/color"
	"github.com/jsvensson/catppuccin/internal/config"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/scheme"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "catppuccin"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagInfo    = protocol.DiagnosticSeverityInformation
)

// AnalysisResult holds everything the handlers need about one config file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	// Config is nil when the file does not decode.
	Config *config.Config
	// Flavor is the flavor named by the colorscheme attribute, or the
	// default flavor when it is missing or invalid.
	Flavor palette.Flavor
	Labels []FormLabel
	Colors []ColorLocation
}

// FormLabel is the quoted name of a form block.
type FormLabel struct {
	Name  string
	Range protocol.Range
}

// ColorLocation records a resolved fg or bg value at a source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	// Role is set when the expression is a plain palette.<role> reference.
	Role palette.Role
	// IsRef is true for any expression that is not a string literal.
	IsRef bool
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses a config file from memory. Syntax errors stop the analysis;
// otherwise every decoding and evaluation problem is reported, and colors
// are resolved against the selected flavor.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{Flavor: defaultFlavor()}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		result.addDiagnostics(diags)
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	cfg, diags := config.Decode(filename, []byte(content))
	result.addDiagnostics(diags)
	result.Config = cfg
	if cfg != nil {
		if f, err := cfg.Flavor(); err == nil {
			result.Flavor = f
		}
	}

	ctx := config.EvalContext(palette.ColorsOf(result.Flavor))
	seen := make(map[string]hcl.Range)

	for _, block := range body.Blocks {
		if block.Type != "form" || len(block.Labels) != 1 {
			continue
		}
		name := block.Labels[0]
		labelRange := block.LabelRanges[0]
		result.Labels = append(result.Labels, FormLabel{Name: name, Range: hclRangeToLSP(labelRange)})

		if prev, dup := seen[name]; dup {
			result.addWarning(labelRange, fmt.Sprintf("form %q is already overridden on line %d; this block replaces it", name, prev.Start.Line))
		} else {
			seen[name] = labelRange
		}
		if _, known := scheme.Lookup(name); !known {
			result.addInfo(labelRange, fmt.Sprintf("form %q is not set by the catppuccin colorschemes", name))
		}

		for _, key := range []string{"fg", "bg"} {
			attr, ok := block.Body.Attributes[key]
			if !ok {
				continue
			}
			// Evaluation errors were already reported by config.Decode.
			c, d := config.EvalLayer(attr.Expr, ctx)
			if d.HasErrors() || c == nil {
				continue
			}
			result.Colors = append(result.Colors, ColorLocation{
				Range: hclRangeToLSP(attr.Expr.Range()),
				Color: *c,
				Role:  paletteRole(attr.Expr),
				IsRef: isReferenceExpr(attr.Expr),
			})
		}
	}

	sort.Slice(result.Colors, func(i, j int) bool {
		a, b := result.Colors[i].Range.Start, result.Colors[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Character < b.Character
	})

	return result
}

func defaultFlavor() palette.Flavor {
	f, err := scheme.ParseName(config.DefaultColorScheme)
	if err != nil {
		panic(err)
	}
	return f
}

func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagnosticSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func (r *AnalysisResult) addDiagnostics(diags hcl.Diagnostics) {
	for _, d := range diags {
		r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d))
	}
}

func (r *AnalysisResult) add(rng hcl.Range, sev protocol.DiagnosticSeverity, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &sev,
		Source:   strPtr(diagnosticSource),
		Message:  msg,
	})
}

func (r *AnalysisResult) addError(rng hcl.Range, msg string)   { r.add(rng, DiagError, msg) }
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) { r.add(rng, DiagWarning, msg) }
func (r *AnalysisResult) addInfo(rng hcl.Range, msg string)    { r.add(rng, DiagInfo, msg) }

func strPtr(s string) *string {
	return &s
}

// isReferenceExpr reports whether the expression is anything other than a
// string literal.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch e := expr.(type) {
	case *hclsyntax.TemplateExpr:
		return !e.IsStringLiteral()
	case *hclsyntax.LiteralValueExpr:
		return false
	default:
		return true
	}
}

// paletteRole returns the role named by a palette.<role> traversal.
func paletteRole(expr hclsyntax.Expression) palette.Role {
	st, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok || len(st.Traversal) != 2 || st.Traversal.RootName() != "palette" {
		return palette.None
	}
	attr, ok := st.Traversal[1].(hcl.TraverseAttr)
	if !ok {
		return palette.None
	}
	r, err := palette.ParseRole(attr.Name)
	if err != nil {
		return palette.None
	}
	return r
}
