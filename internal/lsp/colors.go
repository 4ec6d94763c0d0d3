package lsp

import (
	"math"
	"strings"

	"github.com/jsvensson/catppuccin/internal/color"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

func colorFromLSP(c protocol.Color) color.Color {
	return color.Color{R: channel(c.Red), G: channel(c.Green), B: channel(c.Blue)}
}

func channel(v float32) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
}

func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers replacements for a picked color. Every palette
// role of the document's flavor with exactly that color is offered as a
// reference. Hex literals are also offered the picked color as a literal;
// references are never rewritten into literals.
func colorPresentation(result *AnalysisResult, content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	picked := colorFromLSP(params.Color)
	text := extractText(content, params.Range)

	flavor := defaultFlavor()
	if result != nil {
		flavor = result.Flavor
	}

	out := []protocol.ColorPresentation{}
	for _, r := range palette.Roles() {
		if palette.Lookup(flavor, r) != picked {
			continue
		}
		ref := "palette." + r.String()
		out = append(out, protocol.ColorPresentation{
			Label:    ref,
			TextEdit: &protocol.TextEdit{Range: params.Range, NewText: ref},
		})
	}

	if strings.HasPrefix(text, "\"") {
		out = append(out, protocol.ColorPresentation{
			Label: picked.Hex(),
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + picked.Hex() + "\"",
			},
		})
	}

	return out
}

func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(s.getResult(uri), content, params), nil
}
