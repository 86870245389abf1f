package gui

import (
	"golang.org/x/exp/slices"

	"github.com/grindlemire/go-gui/internal/debug"
)

// ZOrder hands out increasing draw orders to dialogs sharing a desktop.
// The dialog holding the latest order is on top.
type ZOrder struct {
	top int
}

// Next returns a new order above every order returned so far.
func (z *ZOrder) Next() int {
	z.top++
	return z.top
}

// IsTop reports whether order is the most recent one.
func (z *ZOrder) IsTop(order int) bool {
	return order == z.top
}

// Desktop is the window a set of dialogs is shown on. It keeps a stack of
// input handlers and dispatches each event from the top of the stack down
// until one consumes it.
type Desktop struct {
	width, height int
	handlers      []InputHandler
	zorder        ZOrder
}

// NewDesktop creates a desktop of the given size.
func NewDesktop(width, height int) *Desktop {
	return &Desktop{width: width, height: height}
}

// Size returns the window size.
func (d *Desktop) Size() (int, int) {
	return d.width, d.height
}

// ZOrder returns the order service shared by the desktop's dialogs.
func (d *Desktop) ZOrder() *ZOrder {
	return &d.zorder
}

// PushHandler places h on top of the stack, moving it there if it was
// already pushed.
func (d *Desktop) PushHandler(h InputHandler) {
	d.RemoveHandler(h)
	d.handlers = append(d.handlers, h)
}

// RemoveHandler takes h off the stack. Unknown handlers are ignored.
func (d *Desktop) RemoveHandler(h InputHandler) {
	if i := d.index(h); i >= 0 {
		d.handlers = slices.Delete(d.handlers, i, i+1)
	}
}

// Handlers returns the stack from the top down.
func (d *Desktop) Handlers() []InputHandler {
	out := make([]InputHandler, len(d.handlers))
	for i, h := range d.handlers {
		out[len(out)-1-i] = h
	}
	return out
}

func (d *Desktop) index(h InputHandler) int {
	return slices.IndexFunc(d.handlers, func(e InputHandler) bool { return e == h })
}

// dispatch calls fn on each handler from the top of a snapshot of the stack
// until one returns true. Handlers removed by an earlier handler during the
// same dispatch are skipped.
func (d *Desktop) dispatch(fn func(InputHandler) bool) bool {
	for _, h := range d.Handlers() {
		if d.index(h) < 0 {
			continue
		}
		if fn(h) {
			return true
		}
	}
	return false
}

// Resize records the new window size and notifies every handler.
func (d *Desktop) Resize(width, height int) {
	debug.Log("Desktop.Resize: %dx%d", width, height)
	d.width, d.height = width, height
	d.dispatch(func(h InputHandler) bool { return h.OnResize(width, height) })
}

func (d *Desktop) MouseMotion(x, y, dx, dy int) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnMouseMotion(x, y, dx, dy) })
}

func (d *Desktop) MousePress(x, y int, button MouseButton, mod Modifier) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnMousePress(x, y, button, mod) })
}

func (d *Desktop) MouseRelease(x, y int, button MouseButton, mod Modifier) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnMouseRelease(x, y, button, mod) })
}

func (d *Desktop) MouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnMouseDrag(x, y, dx, dy, buttons, mod) })
}

func (d *Desktop) MouseScroll(x, y, scrollX, scrollY int) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnMouseScroll(x, y, scrollX, scrollY) })
}

func (d *Desktop) KeyPress(key Key, mod Modifier) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnKeyPress(key, mod) })
}

func (d *Desktop) KeyRelease(key Key, mod Modifier) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnKeyRelease(key, mod) })
}

func (d *Desktop) Text(s string) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnText(s) })
}

func (d *Desktop) TextMotion(m TextMotion) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnTextMotion(m) })
}

func (d *Desktop) TextMotionSelect(m TextMotion) bool {
	return d.dispatch(func(h InputHandler) bool { return h.OnTextMotionSelect(m) })
}
