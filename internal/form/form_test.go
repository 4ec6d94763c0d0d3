package form

import (
	"errors"
	"testing"

	"github.com/jsvensson/catppuccin/internal/color"
)

var (
	red  = color.Color{R: 243, G: 139, B: 168}
	base = color.Color{R: 30, G: 30, B: 46}
	text = color.Color{R: 205, G: 214, B: 244}
)

func TestBuilders(t *testing.T) {
	f := With(red).On(base).Bold().Italic()
	if f.Fg == nil || *f.Fg != red {
		t.Errorf("Fg = %v, want %v", f.Fg, red)
	}
	if f.Bg == nil || *f.Bg != base {
		t.Errorf("Bg = %v, want %v", f.Bg, base)
	}
	if !f.Attrs.Has(Bold | Italic) {
		t.Errorf("Attrs = %s, want bold|italic", f.Attrs)
	}
	if f.Attrs.Has(Underlined) {
		t.Errorf("Attrs = %s, should not be underlined", f.Attrs)
	}

	if g := New().Reverse(); g.Fg != nil || g.Bg != nil || g.Attrs != Reverse {
		t.Errorf("New().Reverse() = %s", g)
	}
	if g := On(base); g.Fg != nil || g.Bg == nil {
		t.Errorf("On(base) = %s", g)
	}
}

func TestBuildersDoNotAlias(t *testing.T) {
	a := With(red)
	b := a.With(text)
	if *a.Fg != red {
		t.Errorf("With() mutated receiver: %s", a)
	}
	if *b.Fg != text {
		t.Errorf("b.Fg = %s, want %s", b.Fg.Hex(), text.Hex())
	}
}

func TestAttrString(t *testing.T) {
	tests := []struct {
		attr Attr
		want string
	}{
		{0, ""},
		{Bold, "bold"},
		{Bold | Underlined, "bold|underlined"},
		{CrossedOut | Reset, "crossed_out|reset"},
	}
	for _, tt := range tests {
		if got := tt.attr.String(); got != tt.want {
			t.Errorf("Attr(%d).String() = %q, want %q", tt.attr, got, tt.want)
		}
	}
}

func TestParseAttr(t *testing.T) {
	for _, name := range AttrNames() {
		a, ok := ParseAttr(name)
		if !ok {
			t.Errorf("ParseAttr(%q) failed", name)
			continue
		}
		if a.String() != name {
			t.Errorf("ParseAttr(%q).String() = %q", name, a.String())
		}
	}
	if _, ok := ParseAttr("blink"); ok {
		t.Error("ParseAttr(\"blink\") should fail")
	}
}

func TestFormEqual(t *testing.T) {
	if !With(red).Equal(With(red)) {
		t.Error("equal layers compared unequal")
	}
	if With(red).Equal(With(base)) {
		t.Error("different fg compared equal")
	}
	if With(red).Equal(With(red).On(base)) {
		t.Error("nil vs set bg compared equal")
	}
	if With(red).Equal(With(red).Bold()) {
		t.Error("different attrs compared equal")
	}
}

func TestStoreWriteReplacesForm(t *testing.T) {
	s := NewStore()
	if err := s.Set("comment", With(text).On(red).Italic()); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("comment", With(red)); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Get("comment")
	if want := With(red); !got.Equal(want) {
		t.Errorf("comment = %s, want %s", got, want)
	}
}

func TestStoreLayeredWrites(t *testing.T) {
	tests := []struct {
		name  string
		prev  Form
		write Assignment
		want  Form
	}{
		{
			name:  "background keeps fg and attrs",
			prev:  With(text).On(red).Bold(),
			write: Assignment{Name: "Default", Form: On(base), Background: true},
			want:  With(text).On(base).Bold(),
		},
		{
			name:  "canvas without bg keeps stored bg",
			prev:  With(red).On(red),
			write: Assignment{Name: "Default", Form: With(text), Canvas: true},
			want:  With(text).On(red),
		},
		{
			name:  "canvas with bg replaces",
			prev:  With(red).On(red).Italic(),
			write: Assignment{Name: "Default", Form: With(text).On(base), Canvas: true},
			want:  With(text).On(base),
		},
		{
			name:  "plain write clears bg",
			prev:  With(red).On(red),
			write: Assignment{Name: "Default", Form: With(text)},
			want:  With(text),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			if err := s.Set("Default", tt.prev); err != nil {
				t.Fatal(err)
			}
			if err := s.SetMany([]Assignment{tt.write}); err != nil {
				t.Fatal(err)
			}
			got, _ := s.Get("Default")
			if !got.Equal(tt.want) {
				t.Errorf("Default = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStoreAttrsAlwaysReplaced(t *testing.T) {
	s := NewStore()
	_ = s.Set("type", With(red).Italic())
	_ = s.Set("type", With(red))

	got, _ := s.Get("type")
	if got.Attrs != 0 {
		t.Errorf("Attrs = %s, want none", got.Attrs)
	}
}

func TestStoreRejectsUnknownBatch(t *testing.T) {
	s := NewStore("Default", "comment")
	err := s.SetMany([]Assignment{
		{Name: "comment", Form: With(red)},
		{Name: "nope", Form: With(red)},
	})
	if !errors.Is(err, ErrUnknownForm) {
		t.Fatalf("SetMany() error = %v, want ErrUnknownForm", err)
	}
	if _, ok := s.Get("comment"); ok {
		t.Error("rejected batch was partially applied")
	}
	if len(s.Names()) != 0 {
		t.Errorf("Names() = %v, want none", s.Names())
	}
}

func TestStoreResolveFallsBackToParent(t *testing.T) {
	s := NewStore()
	_ = s.Set("markup", With(text))
	_ = s.Set("markup.list", With(red))

	tests := []struct {
		name   string
		want   color.Color
		wantOK bool
	}{
		{"markup.list.checked", red, true},
		{"markup.list", red, true},
		{"markup.raw", text, true},
		{"markup", text, true},
		{"comment", color.Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Resolve(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && *got.Fg != tt.want {
				t.Errorf("Resolve(%q).Fg = %s, want %s", tt.name, got.Fg.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	_ = s.Set("comment", With(red))
	snap := s.Snapshot()
	delete(snap, "comment")
	if _, ok := s.Get("comment"); !ok {
		t.Error("deleting from snapshot removed the form from the store")
	}
}

func TestBatch(t *testing.T) {
	var b Batch
	b.Set("comment", With(red))
	b.Add(Assignment{Name: "Default", Form: On(base), Background: true})
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	items := b.Assignments()
	if items[0].Name != "comment" || items[0].Background {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Name != "Default" || !items[1].Background {
		t.Errorf("items[1] = %+v", items[1])
	}
}
