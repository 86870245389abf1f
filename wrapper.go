package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/theme"
)

// Wrapper holds a single content node and places it inside its own bounds
// by anchor and offset.
type Wrapper struct {
	Viewer
	content       Node
	anchor        Anchor
	contentOffset Point
	expandable    bool
}

// NewWrapper wraps content. Use WithContentAnchor, WithContentOffset and
// WithExpandable to configure it.
func NewWrapper(content Node, opts ...LayoutOption) *Wrapper {
	w := &Wrapper{}
	w.init(w, content, newLayoutConfig(opts))
	return w
}

func (w *Wrapper) init(self Node, content Node, cfg layoutConfig) {
	w.Self = self
	w.anchor = cfg.anchor
	w.contentOffset = cfg.offset
	w.expandable = cfg.expandable
	if content == nil {
		content = NewSpacer(0, 0)
	}
	w.content = content
	content.SetParent(self)
}

// Content returns the wrapped node.
func (w *Wrapper) Content() Node {
	return w.content
}

// Anchor returns the anchor the content is placed by.
func (w *Wrapper) Anchor() Anchor {
	return w.anchor
}

// SetAnchor changes the content anchor and lays out again.
func (w *Wrapper) SetAnchor(a Anchor) {
	w.anchor = a
	w.Self.Layout()
}

// ContentOffset returns the offset of the content from its anchor point.
func (w *Wrapper) ContentOffset() Point {
	return w.contentOffset
}

// SetContentOffset changes the content offset and lays out again.
func (w *Wrapper) SetContentOffset(dx, dy int) {
	w.contentOffset = Point{X: dx, Y: dy}
	w.Self.Layout()
}

// SetContent deletes the current content and wraps content instead.
func (w *Wrapper) SetContent(content Node) error {
	if content == nil {
		content = NewSpacer(0, 0)
	}
	if w.content != nil {
		w.content.Delete()
	}
	w.content = content
	content.SetParent(w.Self)
	if w.host != nil {
		content.Attach(w.host)
	}
	if !w.loaded {
		return nil
	}
	if err := content.Load(); err != nil {
		return err
	}
	content.ResetSize(false)
	w.Self.ResetSize(true)
	return nil
}

func (w *Wrapper) Attach(h Host) {
	w.Viewer.Attach(h)
	w.content.Attach(h)
}

func (w *Wrapper) Load() error {
	if err := w.Viewer.Load(); err != nil {
		return err
	}
	return loadAll(w.Self, []Node{w.content})
}

func (w *Wrapper) Unload() {
	unloadAll([]Node{w.content})
	w.Viewer.Unload()
}

func (w *Wrapper) ResetSize(propagate bool) {
	if !propagate {
		w.content.ResetSize(false)
	}
	w.Viewer.ResetSize(propagate)
}

func (w *Wrapper) IsExpandable() bool {
	return w.expandable
}

func (w *Wrapper) Expand(width, height int) {
	if w.content.IsExpandable() {
		w.content.Expand(width, height)
	}
	w.SetSize(width, height)
}

// ComputeSize returns the content's size.
func (w *Wrapper) ComputeSize() (int, int) {
	return w.content.Width(), w.content.Height()
}

func (w *Wrapper) Layout() {
	w.place(w.Rect())
}

// place positions the content inside region.
func (w *Wrapper) place(region Rect) {
	size := Size{Width: w.content.Width(), Height: w.content.Height()}
	p := RelativePoint(region, w.anchor, size, w.anchor, w.contentOffset)
	w.content.SetPosition(p.X, p.Y)
}

func (w *Wrapper) Delete() {
	if w.loaded {
		w.Self.Unload()
	}
	w.content.Delete()
	w.Viewer.Delete()
}

// Frame is a Wrapper drawn with a themed, stretchable frame behind its
// content.
type Frame struct {
	Wrapper
	path     []string
	imageKey string
	frame    theme.Drawable
}

// NewFrame frames content with the image at theme path "frame", or the
// path given by WithPath.
func NewFrame(content Node, opts ...LayoutOption) *Frame {
	cfg := newLayoutConfig(opts)
	f := &Frame{path: cfg.path, imageKey: cfg.imageKey}
	if len(f.path) == 0 {
		f.path = []string{"frame"}
	}
	f.init(f, content, cfg)
	return f
}

func (f *Frame) Path() []string { return f.path }

// Drawable returns the frame's drawable, or nil while unloaded.
func (f *Frame) Drawable() theme.Drawable {
	return f.frame
}

func (f *Frame) LoadGraphics() error {
	d, err := generate(&f.Viewer, draw.LayerPanel, "gui_color", f.imageKey)
	if err != nil {
		return err
	}
	f.frame = d
	return nil
}

func (f *Frame) UnloadGraphics() {
	if f.frame != nil {
		f.frame.Unload()
		f.frame = nil
	}
}

func (f *Frame) ComputeSize() (int, int) {
	if f.frame == nil {
		return f.content.Width(), f.content.Height()
	}
	return f.frame.NeededSize(f.content.Width(), f.content.Height())
}

func (f *Frame) Expand(width, height int) {
	if f.content.IsExpandable() && f.frame != nil {
		f.content.Expand(f.frame.ContentSize(width, height))
	}
	f.SetSize(width, height)
}

func (f *Frame) Layout() {
	if f.frame == nil {
		f.Wrapper.Layout()
		return
	}
	f.frame.Update(f.X(), f.Y(), f.Width(), f.Height())
	f.place(f.frame.ContentRegion())
}

// generate creates the drawable for the template at key below v's theme
// path, tinted by colorKey, and adds it to layer of v's host.
func generate(v *Viewer, layer draw.Layer, colorKey string, key ...string) (theme.Drawable, error) {
	scope, err := v.ThemeScope()
	if err != nil {
		return nil, fmt.Errorf("loading %T: %w", v.Self, err)
	}
	tmpl, err := scope.Template(key...)
	if err != nil {
		return nil, fmt.Errorf("loading %T: %w", v.Self, err)
	}
	c, err := scope.Color(colorKey)
	if err != nil {
		return nil, fmt.Errorf("loading %T: %w", v.Self, err)
	}
	return tmpl.Generate(c, v.host.Target(layer)), nil
}
