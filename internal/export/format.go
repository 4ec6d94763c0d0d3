package export

import (
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

// Format rewrites HCL source in canonical style: hclwrite indentation and
// alignment, blank lines only between statements and at most one of them.
// It works on partial input, so editors can call it while typing.
func Format(content string) (string, error) {
	src, newline := strings.CutSuffix(string(hclwrite.Format([]byte(content))), "\n")

	var out []string
	blank := false
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 && !opensBlock(out[len(out)-1]) && !strings.HasPrefix(trimmed, "}") {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}

	formatted := strings.Join(out, "\n")
	if newline && formatted != "" {
		formatted += "\n"
	}
	return formatted, nil
}

func opensBlock(line string) bool {
	return strings.HasSuffix(strings.TrimSpace(line), "{")
}
