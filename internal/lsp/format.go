package lsp

import (
	"github.com/jsvensson/catppuccin/internal/export"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// format returns content in the same canonical style the exporter writes.
func format(content string) (string, error) {
	return export.Format(content)
}

// wholeDocument is the range covering all of content.
func wholeDocument(content string) protocol.Range {
	lines := splitLines(content)
	last := lines[len(lines)-1]
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: uint32(len(lines) - 1), Character: uint32(len(last))},
	}
}

func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}

	formatted, err := format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	return []protocol.TextEdit{{
		Range:   wholeDocument(content),
		NewText: formatted,
	}}, nil
}
