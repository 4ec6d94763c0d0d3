package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/scheme"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot  blockContext = iota
	contextForm               // inside form "name" {}
	contextOther              // inside a block the config does not define
)

// layerAttributes take a palette reference or hex string.
var layerAttributes = []string{"fg", "bg"}

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	flavor := defaultFlavor()
	if result != nil {
		flavor = result.Flavor
	}

	if items := tryPaletteCompletion(flavor, textBeforeCursor); items != nil {
		return items
	}

	if prefix, ok := formLabelPrefix(textBeforeCursor); ok {
		return formNameCompletions(prefix)
	}

	ctx := determineBlockContext(lines, int(pos.Line))

	if name, ok := valueAttribute(textBeforeCursor); ok {
		switch {
		case ctx == contextRoot && name == "colorscheme":
			return colorschemeCompletions(textBeforeCursor)
		case ctx == contextRoot && name == "no_background":
			return boolCompletions()
		case ctx == contextForm && isLayerAttribute(name):
			return layerValueCompletions()
		case ctx == contextForm:
			return boolCompletions()
		}
		return nil
	}

	switch ctx {
	case contextForm:
		return formAttributeCompletions(lines, int(pos.Line))
	case contextRoot:
		return topLevelCompletions(lines, int(pos.Line))
	}

	return nil
}

// tryPaletteCompletion offers role names when the text before the cursor
// ends in "palette." or a partial role after it.
func tryPaletteCompletion(flavor palette.Flavor, textBeforeCursor string) []protocol.CompletionItem {
	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 {
		return nil
	}
	if idx > 0 && isIdentChar(textBeforeCursor[idx-1]) {
		return nil
	}

	partial := textBeforeCursor[idx+len("palette."):]
	for i := 0; i < len(partial); i++ {
		if !isIdentChar(partial[i]) {
			return nil
		}
	}

	kind := protocol.CompletionItemKindColor
	items := make([]protocol.CompletionItem, 0, len(palette.Roles()))
	for _, r := range palette.Roles() {
		hex := palette.Lookup(flavor, r).Hex()
		items = append(items, protocol.CompletionItem{
			Label:  r.String(),
			Kind:   &kind,
			Detail: &hex,
		})
	}
	return items
}

// isIdentChar returns true if the byte can appear in an HCL identifier.
func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '-'
}

// formLabelPrefix reports whether the cursor is inside the quoted label of
// a form block header, returning what has been typed so far.
func formLabelPrefix(textBeforeCursor string) (string, bool) {
	trimmed := strings.TrimLeft(textBeforeCursor, " \t")
	rest, ok := strings.CutPrefix(trimmed, "form")
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, " \t")
	label, ok := strings.CutPrefix(rest, "\"")
	if !ok || strings.Contains(label, "\"") {
		return "", false
	}
	return label, true
}

func formNameCompletions(prefix string) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindStruct
	var items []protocol.CompletionItem
	for _, name := range scheme.FormNames() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		e, _ := scheme.Lookup(name)
		detail := entryDetail(e)
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items
}

func entryDetail(e scheme.Entry) string {
	var parts []string
	if e.Fg.Valid() {
		parts = append(parts, "fg "+e.Fg.String())
	}
	if e.Bg.Valid() {
		parts = append(parts, "bg "+e.Bg.String())
	}
	if e.Attrs != 0 {
		parts = append(parts, e.Attrs.String())
	}
	return strings.Join(parts, ", ")
}

// valueAttribute returns the attribute name when the cursor sits right
// after "name =" with nothing but an optional opening quote typed.
func valueAttribute(textBeforeCursor string) (string, bool) {
	eqIdx := strings.LastIndex(textBeforeCursor, "=")
	if eqIdx == -1 {
		return "", false
	}
	afterEq := strings.TrimSpace(textBeforeCursor[eqIdx+1:])
	if afterEq != "" && afterEq != "\"" {
		return "", false
	}
	name := strings.TrimSpace(textBeforeCursor[:eqIdx])
	if name == "" || strings.ContainsAny(name, " \t{") {
		return "", false
	}
	return name, true
}

func isLayerAttribute(name string) bool {
	for _, a := range layerAttributes {
		if a == name {
			return true
		}
	}
	return false
}

func colorschemeCompletions(textBeforeCursor string) []protocol.CompletionItem {
	quoted := strings.HasSuffix(strings.TrimSpace(textBeforeCursor), "\"")
	kind := protocol.CompletionItemKindEnumMember

	var items []protocol.CompletionItem
	for _, name := range scheme.Names() {
		insert := name
		if !quoted {
			insert = "\"" + name + "\""
		}
		f, _ := scheme.ParseName(name)
		detail := fmt.Sprintf("%s flavor, %s", f, f.Appearance())
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       &kind,
			Detail:     &detail,
			InsertText: &insert,
		})
	}
	return items
}

func boolCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindValue
	return []protocol.CompletionItem{
		{Label: "true", Kind: &kind},
		{Label: "false", Kind: &kind},
	}
}

// layerValueCompletions offers the palette namespace and null, which
// leaves the layer unchanged.
func layerValueCompletions() []protocol.CompletionItem {
	paletteSnippet := "palette."
	return []protocol.CompletionItem{
		{
			Label:      "palette",
			Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
			Detail:     strPtr("palette reference"),
			InsertText: &paletteSnippet,
		},
		{
			Label:  "null",
			Kind:   completionKindPtr(protocol.CompletionItemKindValue),
			Detail: strPtr("keep the colorscheme's layer"),
		},
	}
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	switch {
	case len(stack) == 0:
		return contextRoot
	case len(stack) == 1 && stack[0] == "form":
		return contextForm
	default:
		return contextOther
	}
}

// formAttributeCompletions returns layer and attribute names not yet set in
// the current form block.
func formAttributeCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)

	var items []protocol.CompletionItem
	for _, name := range layerAttributes {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label:  name,
				Kind:   completionKindPtr(protocol.CompletionItemKindProperty),
				Detail: strPtr("color"),
			})
		}
	}
	for _, name := range form.AttrNames() {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label:  name,
				Kind:   completionKindPtr(protocol.CompletionItemKindKeyword),
				Detail: strPtr("attribute"),
			})
		}
	}

	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// topLevelCompletions offers the root attributes not yet set, and a form
// block snippet.
func topLevelCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	defined := make(map[string]bool)
	for i, raw := range lines {
		if i == cursorLine {
			continue
		}
		line := strings.TrimSpace(raw)
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			defined[strings.TrimSpace(line[:eqIdx])] = true
		}
	}

	var items []protocol.CompletionItem
	for _, name := range []string{"colorscheme", "no_background"} {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  completionKindPtr(protocol.CompletionItemKindProperty),
			})
		}
	}

	snippetFormat := protocol.InsertTextFormatSnippet
	snippet := "form \"${1:name}\" {\n  $0\n}"
	items = append(items, protocol.CompletionItem{
		Label:            "form",
		Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
		InsertText:       &snippet,
		InsertTextFormat: &snippetFormat,
	})

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	items := complete(s.getResult(uri), content, params.Position)
	return items, nil
}
