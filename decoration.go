package gui

import (
	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/theme"
)

// Theme keys of the two decorations widgets can opt into.
const (
	DecorationHighlight = "highlight"
	DecorationFocus     = "focus"
)

// Decoration is an overlay drawn over a widget while it is highlighted or
// focused. The widget calls Gain and Lose from its controller callbacks and
// forwards its own LoadGraphics, UnloadGraphics and Layout.
//
// The image is read from key/image below the widget's theme path and
// tinted by key_color.
type Decoration struct {
	owner    *Viewer
	key      string
	active   bool
	drawable theme.Drawable
}

// NewDecoration creates an inactive decoration for owner.
func NewDecoration(owner *Viewer, key string) *Decoration {
	return &Decoration{owner: owner, key: key}
}

// Active reports whether the decoration is shown.
func (d *Decoration) Active() bool {
	return d.active
}

// Gain shows the decoration. Theme errors go to the host's error handler.
func (d *Decoration) Gain() {
	d.active = true
	if !d.owner.loaded {
		return
	}
	if err := d.Load(); err != nil {
		d.owner.host.ReportError(err)
		return
	}
	d.Layout()
}

// Lose hides the decoration.
func (d *Decoration) Lose() {
	d.active = false
	d.Unload()
}

// Load creates the drawable if the decoration is active.
func (d *Decoration) Load() error {
	if !d.active || d.drawable != nil {
		return nil
	}
	dr, err := generate(d.owner, draw.LayerHighlight, d.key+"_color", d.key, "image")
	if err != nil {
		return err
	}
	d.drawable = dr
	return nil
}

// Unload releases the drawable.
func (d *Decoration) Unload() {
	if d.drawable != nil {
		d.drawable.Unload()
		d.drawable = nil
	}
}

// Layout stretches the drawable over the owner's bounds.
func (d *Decoration) Layout() {
	if d.drawable != nil {
		d.drawable.Update(d.owner.X(), d.owner.Y(), d.owner.Width(), d.owner.Height())
	}
}
