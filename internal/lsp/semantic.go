package lsp

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

// Semantic token types in legend order
var semanticTokenTypes = []string{
	"keyword",    // 0: block names and true/false/null
	"property",   // 1: attribute names
	"variable",   // 2: the flavor variable
	"namespace",  // 3: the "palette" namespace identifier
	"string",     // 4: string literals
	"enumMember", // 5: palette roles
	"type",       // 6: form names in block labels
}

// Semantic token modifiers (bit flags)
var semanticTokenModifiers = []string{
	"declaration", // bit 0: defining a new symbol
}

// tokenTypeIndices maps type names to their indices for fast lookup
var tokenTypeIndices map[string]uint32

func init() {
	tokenTypeIndices = make(map[string]uint32, len(semanticTokenTypes))
	for i, t := range semanticTokenTypes {
		tokenTypeIndices[t] = uint32(i)
	}
}

// SemanticToken represents a single token with its metadata
type SemanticToken struct {
	Line      uint32 // 0-based line number
	StartChar uint32 // 0-based character offset
	Length    uint32
	Type      uint32 // index into semanticTokenTypes
	Modifiers uint32 // bit flags
}

// encodeTokens converts tokens to LSP format (5 integers per token)
// Uses delta encoding for line numbers and character positions
func encodeTokens(tokens []SemanticToken) []uint32 {
	if len(tokens) == 0 {
		return []uint32{}
	}

	// Sort tokens by position
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})

	data := make([]uint32, 0, len(tokens)*5)

	var prevLine uint32 = 0
	var prevChar uint32 = 0

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevChar
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data,
			deltaLine,
			deltaStart,
			tok.Length,
			tok.Type,
			tok.Modifiers,
		)

		prevLine = tok.Line
		prevChar = tok.StartChar
	}

	return data
}

// semanticTokensFull generates semantic tokens for the entire document content
func semanticTokensFull(content string) []uint32 {
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return []uint32{}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}

	var tokens []SemanticToken
	tokens = extractTokensFromBody(body, tokens)

	return encodeTokens(tokens)
}

func tokenAt(r hcl.Range, length int, typ string, modifiers uint32) SemanticToken {
	return SemanticToken{
		Line:      uint32(r.Start.Line - 1),
		StartChar: uint32(r.Start.Column - 1),
		Length:    uint32(length),
		Type:      tokenTypeIndices[typ],
		Modifiers: modifiers,
	}
}

// spanLength is the length of a single-line range.
func spanLength(r hcl.Range) int {
	if r.End.Line != r.Start.Line {
		return 0
	}
	return r.End.Column - r.Start.Column
}

func extractTokensFromBody(body *hclsyntax.Body, tokens []SemanticToken) []SemanticToken {
	for _, block := range body.Blocks {
		tokens = append(tokens, tokenAt(block.TypeRange, len(block.Type), "keyword", 0))
		for _, lr := range block.LabelRanges {
			if n := spanLength(lr); n > 0 {
				tokens = append(tokens, tokenAt(lr, n, "type", 1))
			}
		}
		tokens = extractTokensFromBody(block.Body, tokens)
	}

	for name, attr := range body.Attributes {
		tokens = append(tokens, tokenAt(attr.NameRange, len(name), "property", 1))
		tokens = extractTokensFromExpr(attr.Expr, tokens)
	}

	return tokens
}

func extractTokensFromExpr(expr hclsyntax.Expression, tokens []SemanticToken) []SemanticToken {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if n := spanLength(e.SrcRange); n > 0 && (e.Val.IsNull() || e.Val.Type() == cty.Bool) {
			tokens = append(tokens, tokenAt(e.SrcRange, n, "keyword", 0))
		}
	case *hclsyntax.TemplateExpr:
		if n := spanLength(e.SrcRange); n > 0 && e.IsStringLiteral() {
			tokens = append(tokens, tokenAt(e.SrcRange, n, "string", 0))
		}
	case *hclsyntax.ScopeTraversalExpr:
		tokens = extractTokensFromTraversal(e, tokens)
	case *hclsyntax.ConditionalExpr:
		tokens = extractTokensFromExpr(e.Condition, tokens)
		tokens = extractTokensFromExpr(e.TrueResult, tokens)
		tokens = extractTokensFromExpr(e.FalseResult, tokens)
	case *hclsyntax.BinaryOpExpr:
		tokens = extractTokensFromExpr(e.LHS, tokens)
		tokens = extractTokensFromExpr(e.RHS, tokens)
	case *hclsyntax.ParenthesesExpr:
		tokens = extractTokensFromExpr(e.Expression, tokens)
	}
	return tokens
}

// extractTokensFromTraversal marks palette.<role> and the flavor variable.
func extractTokensFromTraversal(expr *hclsyntax.ScopeTraversalExpr, tokens []SemanticToken) []SemanticToken {
	if len(expr.Traversal) == 0 {
		return tokens
	}

	first, ok := expr.Traversal[0].(hcl.TraverseRoot)
	if !ok {
		return tokens
	}

	switch first.Name {
	case "flavor":
		return append(tokens, tokenAt(first.SrcRange, len(first.Name), "variable", 0))
	case "palette":
	default:
		return tokens
	}

	tokens = append(tokens, tokenAt(first.SrcRange, len(first.Name), "namespace", 0))
	for _, seg := range expr.Traversal[1:] {
		if attr, ok := seg.(hcl.TraverseAttr); ok {
			tokens = append(tokens, tokenAt(attr.SrcRange, len(attr.Name), "enumMember", 0))
		}
	}

	return tokens
}

func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return &protocol.SemanticTokens{Data: []protocol.UInteger{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokensFull(content)}, nil
}
