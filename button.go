package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/theme"
)

// themeText reads the font, size and text color of scope.
func themeText(scope *theme.Scope) (text.Style, draw.Color, error) {
	font, err := scope.String("font")
	if err != nil {
		return text.Style{}, draw.Color{}, err
	}
	size, err := scope.Int("font_size")
	if err != nil {
		return text.Style{}, draw.Color{}, err
	}
	c, err := scope.Color("text_color")
	if err != nil {
		return text.Style{}, draw.Color{}, err
	}
	return text.Style{Font: font, Size: size}, c, nil
}

// ButtonOption configures a Button and the widgets built on it.
type ButtonOption func(*Button)

// WithPressed sets the initial state.
func WithPressed(pressed bool) ButtonOption {
	return func(b *Button) {
		b.pressed = pressed
	}
}

// WithOnPress is called with the new state every time the button toggles.
func WithOnPress(fn func(pressed bool)) ButtonOption {
	return func(b *Button) {
		b.onPress = fn
	}
}

// WithHighlight draws the theme's highlight image over the button while
// the pointer is on it.
func WithHighlight() ButtonOption {
	return func(b *Button) {
		b.highlight = NewDecoration(&b.Viewer, DecorationHighlight)
	}
}

// WithFocus makes the button reachable with TAB and draws the theme's
// focus image over it while it has focus.
func WithFocus() ButtonOption {
	return func(b *Button) {
		b.focus = NewDecoration(&b.Viewer, DecorationFocus)
	}
}

// Button is a two-state toggle. Each press flips the state, restyles the
// button from button/down or button/up and calls the press callback.
type Button struct {
	Viewer
	BaseController

	label   string
	pressed bool
	onPress func(bool)

	highlight *Decoration
	focus     *Decoration

	button theme.Drawable
	run    *draw.Text
	box    text.Box
}

// NewButton creates a button labelled label.
func NewButton(label string, opts ...ButtonOption) *Button {
	b := &Button{}
	b.init(b, label, opts)
	return b
}

func (b *Button) init(self Node, label string, opts []ButtonOption) {
	b.Self = self
	b.label = label
	for _, opt := range opts {
		opt(b)
	}
}

// Path is button/down while pressed and button/up otherwise.
func (b *Button) Path() []string {
	if b.pressed {
		return []string{"button", "down"}
	}
	return []string{"button", "up"}
}

// Label returns the button's text.
func (b *Button) Label() string {
	return b.label
}

// IsPressed reports the button's state.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// ChangeState toggles the button, restyles it and calls the press
// callback.
func (b *Button) ChangeState() {
	b.pressed = !b.pressed
	if b.loaded {
		if err := b.Self.Reload(); err != nil {
			b.host.ReportError(err)
		}
	}
	b.Self.ResetSize(true)
	if b.onPress != nil {
		b.onPress(b.pressed)
	}
}

func (b *Button) LoadGraphics() error {
	scope, err := b.ThemeScope()
	if err != nil {
		return fmt.Errorf("loading button: %w", err)
	}
	st, c, err := themeText(scope)
	if err != nil {
		return fmt.Errorf("loading button: %w", err)
	}
	if b.button, err = generate(&b.Viewer, draw.LayerBackground, "gui_color", "image"); err != nil {
		return err
	}
	b.box = b.host.Measurer().Measure(b.label, st)
	b.run = b.host.Target(draw.LayerForeground).Text(0, 0, b.label, c, st.Font, st.Size)
	for _, d := range b.decorations() {
		if err := d.Load(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Button) UnloadGraphics() {
	if b.button != nil {
		b.button.Unload()
		b.button = nil
	}
	if b.run != nil {
		b.host.Target(draw.LayerForeground).Remove(b.run)
		b.run = nil
	}
	for _, d := range b.decorations() {
		d.Unload()
	}
}

func (b *Button) decorations() []*Decoration {
	var out []*Decoration
	if b.highlight != nil {
		out = append(out, b.highlight)
	}
	if b.focus != nil {
		out = append(out, b.focus)
	}
	return out
}

// ComputeSize returns the size the themed image needs around the label.
func (b *Button) ComputeSize() (int, int) {
	if b.button == nil {
		return b.Width(), b.Height()
	}
	return b.button.NeededSize(b.box.Width, b.box.Height())
}

// Layout stretches the image over the button and centers the label in the
// image's content region.
func (b *Button) Layout() {
	if b.button == nil {
		return
	}
	b.button.Update(b.X(), b.Y(), b.Width(), b.Height())
	r := b.button.ContentRegion()
	b.run.X = r.X + r.Width/2 - b.box.Width/2
	b.run.Y = r.Y + r.Height/2 - b.box.Height()/2 - b.box.Descent
	b.layoutDecorations()
}

func (b *Button) layoutDecorations() {
	for _, d := range b.decorations() {
		d.Layout()
	}
}

// --- Controller ---

func (b *Button) HitTest(x, y int) bool {
	return b.Contains(x, y)
}

func (b *Button) IsFocusable() bool {
	return b.focus != nil
}

func (b *Button) OnGainHighlight() {
	if b.highlight != nil {
		b.highlight.Gain()
	}
}

func (b *Button) OnLoseHighlight() {
	if b.highlight != nil {
		b.highlight.Lose()
	}
}

func (b *Button) OnGainFocus() {
	if b.focus != nil {
		b.focus.Gain()
	}
}

func (b *Button) OnLoseFocus() {
	if b.focus != nil {
		b.focus.Lose()
	}
}

func (b *Button) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	b.ChangeState()
	return true
}

// OnKeyPress toggles a focused button on Enter.
func (b *Button) OnKeyPress(key Key, mod Modifier) bool {
	if key != KeyEnter {
		return false
	}
	b.ChangeState()
	return true
}

// OneTimeButton is a button that springs back up when released and then
// fires its release callback if the pointer is still over it.
type OneTimeButton struct {
	Button
	onRelease func()
}

// NewOneTimeButton creates a push button labelled label.
func NewOneTimeButton(label string, onRelease func(), opts ...ButtonOption) *OneTimeButton {
	b := &OneTimeButton{onRelease: onRelease}
	b.init(b, label, opts)
	return b
}

func (b *OneTimeButton) OnMouseRelease(x, y int, button MouseButton, mod Modifier) bool {
	if !b.pressed {
		return false
	}
	b.ChangeState()
	if b.HitTest(x, y) && b.onRelease != nil {
		b.onRelease()
	}
	return true
}

// OnKeyPress pushes and releases a focused button on Enter.
func (b *OneTimeButton) OnKeyPress(key Key, mod Modifier) bool {
	if key != KeyEnter {
		return false
	}
	if b.onRelease != nil {
		b.onRelease()
	}
	return true
}

// Checkbox is a button drawn as a checkbox icon with its label beside it.
type Checkbox struct {
	Button
	side    HAlign
	padding int
}

// NewCheckbox creates a checkbox. side is HAlignRight to put the label
// right of the icon or HAlignLeft to put it on the left.
func NewCheckbox(label string, side HAlign, opts ...ButtonOption) *Checkbox {
	if side == HAlignCenter {
		panic("gui: checkbox label must be left or right")
	}
	c := &Checkbox{side: side, padding: 4}
	c.init(c, label, opts)
	return c
}

// Path is checkbox/checked while pressed and checkbox/unchecked otherwise.
func (c *Checkbox) Path() []string {
	if c.pressed {
		return []string{"checkbox", "checked"}
	}
	return []string{"checkbox", "unchecked"}
}

// IsChecked reports the checkbox's state.
func (c *Checkbox) IsChecked() bool {
	return c.pressed
}

func (c *Checkbox) ComputeSize() (int, int) {
	if c.button == nil {
		return c.Width(), c.Height()
	}
	return c.button.Width() + c.padding + c.box.Width, max(c.button.Height(), c.box.Height())
}

func (c *Checkbox) Layout() {
	if c.button == nil {
		return
	}
	iconY := c.Y() + c.Height()/2 - c.button.Height()/2
	if c.side == HAlignRight {
		c.button.Update(c.X(), iconY, c.button.Width(), c.button.Height())
		c.run.X = c.X() + c.button.Width() + c.padding
	} else {
		c.run.X = c.X()
		c.button.Update(c.X()+c.box.Width+c.padding, iconY, c.button.Width(), c.button.Height())
	}
	c.run.Y = c.Y() + c.Height()/2 - c.box.Height()/2 - c.box.Descent
	c.layoutDecorations()
}
