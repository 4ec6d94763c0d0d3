package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/catppuccin/internal/scheme"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)

	if startLine >= len(lines) {
		return ""
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	if startLine == endLine {
		line := lines[startLine]
		endChar := min(int(r.End.Character), len(line))
		startChar := min(int(r.Start.Character), endChar)
		return line[startChar:endChar]
	}

	// Multi-line range
	var parts []string
	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		if i == startLine {
			startChar := int(r.Start.Character)
			if startChar > len(line) {
				startChar = len(line)
			}
			parts = append(parts, line[startChar:])
		} else if i == endLine {
			endChar := int(r.End.Character)
			if endChar > len(line) {
				endChar = len(line)
			}
			parts = append(parts, line[:endChar])
		} else {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

// hover describes the color or form label under the cursor. Colors show
// their hex and RGB values in the document's flavor; form labels show what
// the colorschemes assign to that form.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		var md string
		switch {
		case cl.Role.Valid():
			md = fmt.Sprintf("**palette.%s** (%s)\n\n`%s` \u00b7 `%s`", cl.Role, result.Flavor, cl.Color.Hex(), cl.Color.RGB())
		case cl.IsRef:
			sourceText := extractText(content, cl.Range)
			md = fmt.Sprintf("**%s** (%s)\n\n`%s` \u00b7 `%s`", sourceText, result.Flavor, cl.Color.Hex(), cl.Color.RGB())
		default:
			md = fmt.Sprintf("`%s` \u00b7 `%s`", cl.Color.Hex(), cl.Color.RGB())
		}
		return markdownHover(md, cl.Range)
	}

	for _, label := range result.Labels {
		if !posInRange(pos, label.Range) {
			continue
		}
		return markdownHover(describeForm(label.Name, result), label.Range)
	}

	return nil
}

func describeForm(name string, result *AnalysisResult) string {
	e, ok := scheme.Lookup(name)
	if !ok {
		return fmt.Sprintf("**%s**\n\nNot set by the catppuccin colorschemes.", name)
	}

	var parts []string
	if e.Fg.Valid() {
		parts = append(parts, fmt.Sprintf("fg `palette.%s`", e.Fg))
	}
	if e.Bg.Valid() {
		bg := fmt.Sprintf("bg `palette.%s`", e.Bg)
		if e.Canvas {
			bg += " (skipped with no_background)"
		}
		parts = append(parts, bg)
	}
	if e.Attrs != 0 {
		parts = append(parts, e.Attrs.String())
	}

	resolved := e.Resolve(result.Flavor)
	return fmt.Sprintf("**%s**\n\n%s\n\n%s: `%s`", name, strings.Join(parts, ", "), result.Flavor, resolved)
}

func markdownHover(md string, rng protocol.Range) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: md,
		},
		Range: &rng,
	}
}

func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
