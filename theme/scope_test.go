package theme

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/internal/layout"
)

func mustNew(t *testing.T, data map[string]any) *Scope {
	t.Helper()
	s, err := New(data)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestScope_Get(t *testing.T) {
	type tc struct {
		path    []string
		want    any
		wantErr error
	}

	s := mustNew(t, map[string]any{
		"font":      "goregular",
		"font_size": 12.0,
		"button": map[string]any{
			"font_size": 14.0,
			"down": map[string]any{
				"text_color": "#ff0000",
			},
		},
	})

	tests := map[string]tc{
		"root key":               {path: []string{"font"}, want: "goregular"},
		"shadowed in scope":      {path: []string{"button", "font_size"}, want: 14.0},
		"falls back to parent":   {path: []string{"button", "down", "font"}, want: "goregular"},
		"falls back one level":   {path: []string{"button", "down", "font_size"}, want: 14.0},
		"declared in leaf":       {path: []string{"button", "down", "text_color"}, want: "#ff0000"},
		"missing key":            {path: []string{"button", "up"}, wantErr: ErrMissingKey},
		"descend into non-scope": {path: []string{"font", "x"}, wantErr: ErrWrongType},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := s.Get(tt.path...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Get(%v) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%v) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Get(%v) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestScope_EmptyPathReturnsSelf(t *testing.T) {
	s := mustNew(t, map[string]any{})
	got, err := s.Get()
	if err != nil || got != any(s) {
		t.Errorf("Get() = %v, %v, want the scope itself", got, err)
	}
}

func TestScope_TypedGetters(t *testing.T) {
	s := mustNew(t, map[string]any{
		"font_size": 12.0,
		"padding":   []any{1.0, 2.0, 3.0, 4.0},
		"gui_color": "#102030",
		"tint":      []any{1.0, 2.0, 3.0, 4.0},
		"name":      "x",
	})

	if n, err := s.Int("font_size"); err != nil || n != 12 {
		t.Errorf("Int() = %d, %v, want 12", n, err)
	}
	if ns, err := s.Ints("padding"); err != nil || !cmp.Equal(ns, []int{1, 2, 3, 4}) {
		t.Errorf("Ints() = %v, %v, want [1 2 3 4]", ns, err)
	}
	if c, err := s.Color("gui_color"); err != nil || c != draw.RGBA(0x10, 0x20, 0x30, 255) {
		t.Errorf("Color(hex) = %v, %v", c, err)
	}
	if c, err := s.Color("tint"); err != nil || c != draw.RGBA(1, 2, 3, 4) {
		t.Errorf("Color(list) = %v, %v", c, err)
	}
	if _, err := s.Int("name"); !errors.Is(err, ErrWrongType) {
		t.Errorf("Int(string) error = %v, want ErrWrongType", err)
	}
	if _, err := s.Color("font_size"); !errors.Is(err, ErrWrongType) {
		t.Errorf("Color(number) error = %v, want ErrWrongType", err)
	}
	if _, err := s.Template("name"); !errors.Is(err, ErrWrongType) {
		t.Errorf("Template(string) error = %v, want ErrWrongType", err)
	}
}

func TestScope_Set(t *testing.T) {
	s := mustNew(t, map[string]any{"font": "a"})
	if err := s.Set(map[string]any{"image": []any{2.0, 1.0}}, "widget", "state"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	tmpl, err := s.Template("widget", "state", "image")
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}
	if got := tmpl.Size(); got != (layout.Size{Width: 2, Height: 1}) {
		t.Errorf("Size() = %+v, want {2 1}", got)
	}
	if got, _ := s.String("widget", "state", "font"); got != "a" {
		t.Errorf("String() through new scopes = %q, want %q", got, "a")
	}
}

func TestImage_Drawable(t *testing.T) {
	type tc struct {
		spec          any
		content       [2]int
		needed        [2]int
		outer         layout.Rect
		contentRegion layout.Rect
		framed        bool
	}

	tests := map[string]tc{
		"plain image takes content size": {
			spec:          []any{4.0, 2.0},
			content:       [2]int{10, 3},
			needed:        [2]int{10, 3},
			outer:         layout.NewRect(5, 5, 10, 3),
			contentRegion: layout.NewRect(5, 5, 10, 3),
		},
		"frame adds padding": {
			spec: map[string]any{
				"size":    []any{3.0, 3.0},
				"frame":   []any{1.0, 1.0, 1.0, 1.0},
				"padding": []any{1.0, 2.0, 3.0, 4.0},
			},
			content:       [2]int{10, 10},
			needed:        [2]int{13, 17},
			outer:         layout.NewRect(0, 0, 13, 17),
			contentRegion: layout.NewRect(1, 4, 10, 10),
			framed:        true,
		},
		"frame never shrinks below natural size": {
			spec: map[string]any{
				"size":  []any{8.0, 6.0},
				"frame": []any{2.0, 2.0, 4.0, 2.0},
			},
			content:       [2]int{1, 1},
			needed:        [2]int{8, 6},
			outer:         layout.NewRect(0, 0, 8, 6),
			contentRegion: layout.NewRect(0, 0, 8, 6),
			framed:        true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := mustNew(t, map[string]any{"w": map[string]any{"image": tt.spec}})
			tmpl, err := s.Template("w", "image")
			if err != nil {
				t.Fatalf("Template() error = %v", err)
			}

			b := draw.NewBatch()
			d := tmpl.Generate(draw.RGBA(1, 1, 1, 255), draw.Target{Batch: b, Group: draw.NewGroup(0, nil)})
			if b.Len() != 1 {
				t.Fatalf("Generate() added %d items, want 1", b.Len())
			}

			w, h := d.NeededSize(tt.content[0], tt.content[1])
			if [2]int{w, h} != tt.needed {
				t.Errorf("NeededSize() = %d,%d, want %v", w, h, tt.needed)
			}
			d.Update(tt.outer.X, tt.outer.Y, tt.outer.Width, tt.outer.Height)
			if got := d.ContentRegion(); got != tt.contentRegion {
				t.Errorf("ContentRegion() = %+v, want %+v", got, tt.contentRegion)
			}
			cw, ch := d.ContentSize(tt.outer.Width, tt.outer.Height)
			if cw != tt.contentRegion.Width || ch != tt.contentRegion.Height {
				t.Errorf("ContentSize() = %d,%d, want %d,%d", cw, ch, tt.contentRegion.Width, tt.contentRegion.Height)
			}

			q := d.(*Element).Quad()
			if q.Rect != tt.outer || q.Outline != tt.framed || q.Name != "w/image" {
				t.Errorf("quad = %+v, want rect %+v outline %v name w/image", q, tt.outer, tt.framed)
			}

			d.Unload()
			d.Unload()
			if b.Len() != 0 {
				t.Errorf("Len() after Unload = %d, want 0", b.Len())
			}
		})
	}
}

func TestNewFrame_Margins(t *testing.T) {
	im := NewFrame("f", 10, 8, [4]int{2, 1, 5, 4}, [4]int{})
	if got, want := im.Margins(), [4]int{2, 3, 3, 1}; got != want {
		t.Errorf("Margins() = %v, want %v", got, want)
	}
}

func TestParseImage_Errors(t *testing.T) {
	tests := map[string]any{
		"bad size":     []any{1.0},
		"bad frame":    map[string]any{"size": []any{1.0, 1.0}, "frame": []any{1.0}},
		"bad padding":  map[string]any{"size": []any{1.0, 1.0}, "frame": []any{0.0, 0.0, 1.0, 1.0}, "padding": "x"},
		"not an image": "file.png",
	}
	for name, spec := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := New(map[string]any{"image": spec}); !errors.Is(err, ErrWrongType) {
				t.Errorf("New() error = %v, want ErrWrongType", err)
			}
		})
	}
}

func TestDefault_HasWidgetKeys(t *testing.T) {
	s := MustDefault()
	paths := [][]string{
		{"button", "up", "image"},
		{"button", "down", "image"},
		{"checkbox", "checked", "image"},
		{"frame", "image"},
		{"slider", "bar", "image"},
		{"slider", "knob", "offset"},
		{"hscrollbar", "knob", "image"},
		{"vscrollbar", "bar", "padding"},
		{"input", "image"},
		{"dropdown", "pulldown", "image"},
		{"section", "opened", "image"},
		{"titlebar", "frame", "image"},
		{"button", "down", "highlight", "image"},
		{"input", "focus_color"},
	}
	for _, p := range paths {
		if !s.Has(p...) {
			t.Errorf("default theme missing %s", strings.Join(p, "/"))
		}
	}
}

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(`{"font": "x", "frame": {"image": [2, 2]}}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, _ := s.String("font"); got != "x" {
		t.Errorf("String(font) = %q, want x", got)
	}

	if _, err := Load(strings.NewReader(`{`)); err == nil {
		t.Error("Load() of invalid JSON succeeded, want error")
	}
}

func TestLoadFiles_MergesInOrder(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.json")
	over := filepath.Join(dir, "override.json")
	write := func(path, data string) {
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(base, `{"font": "a", "button": {"font_size": 10, "up": {"image": [4, 2]}}}`)
	write(over, `{"button": {"font_size": 12}, "text_color": "#ffffff"}`)

	s, err := LoadFiles(context.Background(), base, over)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}
	if n, _ := s.Int("button", "font_size"); n != 12 {
		t.Errorf("button/font_size = %d, want 12", n)
	}
	if !s.Has("button", "up", "image") {
		t.Error("merge dropped button/up/image")
	}
	if got, _ := s.String("font"); got != "a" {
		t.Errorf("font = %q, want a", got)
	}

	if _, err := LoadFiles(context.Background(), base, filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadFiles() with missing file succeeded, want error")
	}
}

func TestExtend_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dark.json")
	if err := os.WriteFile(path, []byte(`{"text_color": "#000000", "button": {"font_size": 2}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Extend(context.Background(), path)
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}
	if c, _ := s.Color("text_color"); c != draw.RGBA(0, 0, 0, 255) {
		t.Errorf("text_color = %v, want the override", c)
	}
	if n, _ := s.Int("button", "font_size"); n != 2 {
		t.Errorf("button/font_size = %d, want 2", n)
	}
	if !s.Has("button", "down", "image") || !s.Has("slider", "knob", "image") {
		t.Error("Extend() dropped keys of the built-in theme")
	}
}
