package preview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsvensson/catppuccin/internal/color"
	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/palette"
	"github.com/jsvensson/catppuccin/internal/scheme"
)

func TestStyle(t *testing.T) {
	red := color.Color{R: 243, G: 139, B: 168}
	base := color.Color{R: 30, G: 30, B: 46}

	s := Style(form.With(red).On(base).Bold().CrossedOut())
	if !s.GetBold() {
		t.Error("bold not set")
	}
	if !s.GetStrikethrough() {
		t.Error("strikethrough not set")
	}
	if s.GetItalic() || s.GetUnderline() || s.GetReverse() {
		t.Error("unexpected attributes set")
	}
	if got := s.GetForeground(); got != lipgloss.Color(red.Hex()) {
		t.Errorf("foreground = %v, want %s", got, red.Hex())
	}
	if got := s.GetBackground(); got != lipgloss.Color(base.Hex()) {
		t.Errorf("background = %v, want %s", got, base.Hex())
	}
}

func TestForms(t *testing.T) {
	store := form.NewStore()
	if err := scheme.New(palette.Mocha).Apply(store); err != nil {
		t.Fatal(err)
	}

	out := Forms("catppuccin-mocha", store, []string{"comment", "markup.list.checked", "markup.heading.1", "nope"})
	for _, want := range []string{"catppuccin-mocha", "comment", sample, "#7f849c", "markup.heading.1", "(unset)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines < 5 {
		t.Errorf("got %d lines, want title plus 4 rows", lines)
	}
}

func TestPalette(t *testing.T) {
	out := Palette(palette.Latte)
	for _, want := range []string{"catppuccin latte (light)", "rosewater", "crust", "#dc8a78", "rgb(220, 224, 232)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
