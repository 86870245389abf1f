package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/theme"
)

// TextInputOption configures a TextInput.
type TextInputOption func(*TextInput)

// WithInputLength sets the width of the field in characters. The default
// is 20.
func WithInputLength(chars int) TextInputOption {
	return func(t *TextInput) {
		t.length = chars
	}
}

// WithInputMaxLength caps the text in characters (0 = unlimited).
func WithInputMaxLength(chars int) TextInputOption {
	return func(t *TextInput) {
		t.editor.MaxLength = chars
	}
}

// WithInputPadding adds space between the field's frame and the text.
func WithInputPadding(cells int) TextInputOption {
	return func(t *TextInput) {
		t.padding = cells
	}
}

// WithOnInput is called with the text whenever the field loses focus.
func WithOnInput(fn func(string)) TextInputOption {
	return func(t *TextInput) {
		t.onInput = fn
	}
}

// TextInput is a single-line editable field. It shows its text as a label
// until it gains focus and becomes editable with a caret; losing focus
// reports the text to the input callback.
type TextInput struct {
	Viewer
	BaseController

	editor  *text.Editor
	length  int
	padding int
	onInput func(string)

	focused bool
	focus   *Decoration

	field     theme.Drawable
	target    draw.Target
	run       *draw.Text
	caret     *draw.Quad
	selection *draw.Quad

	measurer  text.Measurer
	style     text.Style
	box       text.Box
	charWidth int
	scroll    int
}

var (
	_ Node       = (*TextInput)(nil)
	_ Controller = (*TextInput)(nil)
)

// NewTextInput creates a field holding s.
func NewTextInput(s string, opts ...TextInputOption) *TextInput {
	t := &TextInput{editor: text.NewEditor(s), length: 20}
	t.Self = t
	t.focus = NewDecoration(&t.Viewer, DecorationFocus)
	for _, opt := range opts {
		opt(t)
	}
	t.editor.SetText(s)
	return t
}

func (t *TextInput) Path() []string { return []string{"input"} }

// --- State Access ---

// Text returns the field's contents.
func (t *TextInput) Text() string {
	return t.editor.Text()
}

// SetText replaces the contents and moves the caret to the end.
func (t *TextInput) SetText(s string) {
	t.editor.SetText(s)
	t.refresh()
}

// Editor returns the buffer behind the field.
func (t *TextInput) Editor() *text.Editor {
	return t.editor
}

// IsWriting reports whether the field has focus and accepts typing.
func (t *TextInput) IsWriting() bool {
	return t.focused
}

// --- Graphics ---

func (t *TextInput) LoadGraphics() error {
	scope, err := t.ThemeScope()
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}
	st, c, err := themeText(scope)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}
	if t.field, err = generate(&t.Viewer, draw.LayerBackground, "gui_color", "image"); err != nil {
		return err
	}

	t.measurer = t.host.Measurer()
	t.style = st
	t.box = t.measurer.Measure("A_", st)
	t.charWidth = max(t.measurer.Measure("A", st).Width, t.measurer.Measure("_", st).Width)

	// text, caret and selection are clipped to the field's content region
	bg := t.host.Target(draw.LayerBackground)
	t.target = draw.Target{Batch: bg.Batch, Group: draw.NewGroup(0, bg.Group)}
	if t.focused {
		caretColor, err := scope.Color("focus_color")
		if err != nil {
			return fmt.Errorf("loading input: %w", err)
		}
		selColor, err := scope.Color("highlight_color")
		if err != nil {
			return fmt.Errorf("loading input: %w", err)
		}
		t.selection = t.target.Quad(Rect{}, selColor)
		t.caret = t.target.Quad(Rect{}, caretColor)
	}
	t.run = t.target.Text(0, 0, t.editor.Text(), c, st.Font, st.Size)
	return t.focus.Load()
}

func (t *TextInput) UnloadGraphics() {
	if t.selection != nil {
		t.target.Remove(t.selection)
		t.selection = nil
	}
	if t.caret != nil {
		t.target.Remove(t.caret)
		t.caret = nil
	}
	if t.run != nil {
		t.target.Remove(t.run)
		t.run = nil
	}
	if t.field != nil {
		t.field.Unload()
		t.field = nil
	}
	t.focus.Unload()
}

// neededSize is the content size for length characters of text.
func (t *TextInput) neededSize() (int, int) {
	return t.length*t.charWidth - 2*t.padding, t.box.Height() + 2*t.padding
}

func (t *TextInput) ComputeSize() (int, int) {
	if t.field == nil {
		return t.Width(), t.Height()
	}
	return t.field.NeededSize(t.neededSize())
}

// Layout places the text at the left of the field. While writing, the
// text scrolls horizontally to keep the caret visible.
func (t *TextInput) Layout() {
	if t.field == nil {
		return
	}
	t.field.Update(t.X(), t.Y(), t.Width(), t.Height())
	t.focus.Layout()
	r := t.field.ContentRegion()
	t.target.Group.SetClip(r)

	left := r.X + t.padding
	bottom := r.Y + t.padding
	avail := r.Width - 2*t.padding

	t.scroll = 0
	if t.focused {
		caretX := t.offsetOf(t.editor.Caret())
		if caretX >= avail {
			t.scroll = caretX - avail + 1
		}
		start, end := t.editor.Selection()
		sx, ex := t.offsetOf(start), t.offsetOf(end)
		t.selection.Rect = NewRect(left+sx-t.scroll, bottom, ex-sx, t.box.Height())
		t.caret.Rect = NewRect(left+caretX-t.scroll, bottom, 1, t.box.Height())
	}
	t.run.Text = t.editor.Text()
	t.run.X = left - t.scroll
	t.run.Y = bottom - t.box.Descent
}

// offsetOf measures the text before byte offset pos.
func (t *TextInput) offsetOf(pos int) int {
	return t.measurer.Measure(t.editor.Text()[:pos], t.style).Width
}

// indexAt returns the caret position nearest to screen column x.
func (t *TextInput) indexAt(x int) int {
	r := t.field.ContentRegion()
	return text.IndexAt(t.measurer, t.style, t.editor.Text(), x-(r.X+t.padding-t.scroll))
}

func (t *TextInput) refresh() {
	if t.field != nil {
		t.Self.Layout()
	}
}

// setState switches between the label and writing states, rebuilding the
// graphics when loaded.
func (t *TextInput) setState(focused bool) {
	if !t.loaded {
		t.focused = focused
		return
	}
	t.Unload()
	t.focused = focused
	if err := t.Load(); err != nil {
		t.host.ReportError(err)
		return
	}
	t.ResetSize(true)
}

// --- Controller ---

func (t *TextInput) HitTest(x, y int) bool {
	return t.Contains(x, y)
}

func (t *TextInput) IsFocusable() bool { return true }

func (t *TextInput) OnGainFocus() {
	t.focus.active = true
	t.setState(true)
}

// OnLoseFocus reports the text to the input callback.
func (t *TextInput) OnLoseFocus() {
	if t.onInput != nil {
		t.onInput(t.editor.Text())
	}
	t.focus.active = false
	t.setState(false)
}

// OnMousePress moves the caret under the pointer.
func (t *TextInput) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	if !t.focused || t.field == nil {
		return false
	}
	t.editor.SetCaret(t.indexAt(x))
	t.refresh()
	return true
}

// OnMouseDrag selects from the press position to the pointer.
func (t *TextInput) OnMouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool {
	if !t.focused || t.field == nil {
		return false
	}
	t.editor.Select(t.indexAt(x))
	t.refresh()
	return true
}

func (t *TextInput) OnText(s string) bool {
	if !t.focused {
		return false
	}
	t.editor.Insert(s)
	t.refresh()
	return true
}

func (t *TextInput) OnTextMotion(m TextMotion) bool {
	if !t.focused {
		return false
	}
	t.editor.Move(m)
	t.refresh()
	return true
}

func (t *TextInput) OnTextMotionSelect(m TextMotion) bool {
	if !t.focused {
		return false
	}
	t.editor.MoveSelect(m)
	t.refresh()
	return true
}
