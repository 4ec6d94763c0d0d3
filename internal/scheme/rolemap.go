package scheme

import (
	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/jsvensson/catppuccin/internal/palette"
)

// Entry maps one host form to palette roles. A None role leaves that layer
// unset. Canvas marks Bg as the editor background, which is skipped when
// backgrounds are disabled.
type Entry struct {
	Form   string
	Fg     palette.Role
	Bg     palette.Role
	Attrs  form.Attr
	Canvas bool
}

func fg(name string, r palette.Role, attrs ...form.Attr) Entry {
	return Entry{Form: name, Fg: r, Attrs: join(attrs)}
}

func fgBg(name string, f, b palette.Role, attrs ...form.Attr) Entry {
	return Entry{Form: name, Fg: f, Bg: b, Attrs: join(attrs)}
}

func attrOnly(name string, attrs ...form.Attr) Entry {
	return Entry{Form: name, Attrs: join(attrs)}
}

func join(attrs []form.Attr) form.Attr {
	var a form.Attr
	for _, x := range attrs {
		a |= x
	}
	return a
}

var entries = []Entry{
	{Form: "Default", Fg: palette.Text, Bg: palette.Base, Canvas: true},

	// Base host forms
	fg("DefaultOk", palette.Sapphire),
	fg("AccentOk", palette.Sky, form.Bold),
	fg("DefaultErr", palette.Maroon),
	fg("AccentErr", palette.Red, form.Bold),
	fg("error", palette.Red),
	fg("DefaultHint", palette.Text),
	fg("AccentHint", palette.Subtext0, form.Bold),
	attrOnly("MainCursor", form.Reverse),
	attrOnly("ExtraCursor", form.Reverse),
	fgBg("MainSelection", palette.Base, palette.Overlay1),
	fgBg("ExtraSelection", palette.Base, palette.Overlay0),
	fg("Inactive", palette.Overlay2),

	// Other host forms
	fg("LineNum", palette.Overlay2),
	fg("MainLineNum", palette.Yellow),
	fg("WrappedLineNum", palette.Teal),
	fg("File", palette.Yellow),
	fg("Selections", palette.Blue),
	fg("Coord", palette.Peach),
	fg("Separator", palette.Teal),
	fg("Mode", palette.Green),

	// Tree-sitter forms
	fg("type", palette.Yellow, form.Italic),
	fg("type.builtin", palette.Yellow, form.Reset),
	fg("function", palette.Blue, form.Reset),
	fg("comment", palette.Overlay1),
	fg("comment.documentation", palette.Overlay1, form.Bold),
	fg("punctuation.bracket", palette.Subtext0),
	fg("punctuation.delimiter", palette.Subtext0),
	fg("constant", palette.Overlay1),
	fg("constant.builtin", palette.Peach),
	fg("character", palette.Peach),
	fg("number", palette.Peach),
	attrOnly("variable.parameter", form.Italic),
	fg("variable.builtin", palette.Peach),
	fg("label", palette.Green),
	fg("keyword", palette.Mauve),
	fg("string", palette.Green),
	fg("escape", palette.Peach),
	fg("attribute", palette.Mauve),
	fg("operator", palette.Sapphire),
	fg("constructor", palette.Peach),
	fg("module", palette.Blue, form.Italic),

	// Markup forms
	attrOnly("markup"),
	fg("markup.strong", palette.Maroon, form.Bold),
	fg("markup.italic", palette.Maroon, form.Italic),
	attrOnly("markup.strikethrough", form.CrossedOut),
	attrOnly("markup.underline", form.Underlined),
	fg("markup.heading", palette.Blue, form.Bold),
	fg("markup.math", palette.Yellow),
	fg("markup.quote", palette.Maroon, form.Bold),
	fg("markup.environment", palette.Pink),
	fg("markup.environment.name", palette.Blue),
	fg("markup.link", palette.Lavender, form.Underlined),
	fg("markup.raw", palette.Teal),
	fg("markup.list", palette.Yellow),
	fg("markup.list.checked", palette.Green),
	fg("markup.list.unchecked", palette.Overlay1),

	// Plugin and UI forms
	fg("VertRule", palette.Subtext0),
	fgBg("Frame", palette.Subtext0, palette.Base),
}

var byForm = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Form] = e
	}
	return m
}()

// Entries returns the role map in application order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry for a form name.
func Lookup(name string) (Entry, bool) {
	e, ok := byForm[name]
	return e, ok
}

// FormNames returns every form the role map assigns, in application order.
func FormNames() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Form
	}
	return names
}

// FormsFor returns the forms that take any layer from role r.
func FormsFor(r palette.Role) []string {
	if !r.Valid() {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.Fg == r || e.Bg == r {
			names = append(names, e.Form)
		}
	}
	return names
}

// Resolve builds the concrete form for e in flavor f. The canvas background
// is left out; see Scheme.Assignments.
func (e Entry) Resolve(f palette.Flavor) form.Form {
	out := form.Form{Attrs: e.Attrs}
	if e.Fg.Valid() {
		out.Fg = palette.Lookup(f, e.Fg).Ptr()
	}
	if e.Bg.Valid() && !e.Canvas {
		out.Bg = palette.Lookup(f, e.Bg).Ptr()
	}
	return out
}
