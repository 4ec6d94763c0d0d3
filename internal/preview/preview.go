// Package preview draws forms and palettes in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsvensson/catppuccin/internal/color"
	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/palette"
)

const sample = " The quick brown fox "

var (
	nameStyle   = lipgloss.NewStyle().Width(26)
	detailStyle = lipgloss.NewStyle().Faint(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

// Style converts a form to a lipgloss style.
func Style(f form.Form) lipgloss.Style {
	s := lipgloss.NewStyle()
	if f.Fg != nil {
		s = s.Foreground(lipgloss.Color(f.Fg.Hex()))
	}
	if f.Bg != nil {
		s = s.Background(lipgloss.Color(f.Bg.Hex()))
	}
	return s.
		Bold(f.Attrs.Has(form.Bold)).
		Italic(f.Attrs.Has(form.Italic)).
		Underline(f.Attrs.Has(form.Underlined)).
		Reverse(f.Attrs.Has(form.Reverse)).
		Strikethrough(f.Attrs.Has(form.CrossedOut))
}

// Forms renders one line per name: the name, a sample styled with the
// resolved form, and its layers. Names with no form, even via a parent,
// are shown as unset.
func Forms(title string, store *form.Store, names []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for _, name := range names {
		b.WriteString(nameStyle.Render(name))
		f, ok := store.Resolve(name)
		if !ok {
			b.WriteString(detailStyle.Render("(unset)"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(Style(f).Render(sample))
		b.WriteString(" ")
		b.WriteString(detailStyle.Render(f.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// Palette renders a swatch per role of flavor f on its own base color.
func Palette(f palette.Flavor) string {
	c := palette.ColorsOf(f)
	canvas := lipgloss.Color(c.Base.Hex())

	rows := make([]string, 0, len(palette.Roles()))
	for _, r := range palette.Roles() {
		col := c.Get(r)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(col.Hex())).Render("    ")
		label := lipgloss.NewStyle().
			Foreground(lipgloss.Color(col.Hex())).
			Background(canvas).
			Width(12).
			Render(" " + r.String())
		rows = append(rows, fmt.Sprintf("%s %s %s", swatch, label, hexDetail(col)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("catppuccin %s (%s)", f, f.Appearance())),
		strings.Join(rows, "\n"),
	)
}

func hexDetail(c color.Color) string {
	return detailStyle.Render(c.Hex() + "  " + c.RGB())
}
