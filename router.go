package gui

import (
	"golang.org/x/exp/slices"

	"github.com/grindlemire/go-gui/internal/debug"
)

// EventRouter tracks which registered controller is hovered, focused and
// targeted by the wheel, and dispatches input to them.
//
// Registration order is authoritative: on motion the first controller whose
// hit test contains the pointer becomes the hover, and TAB navigation walks
// the focusable controllers in the order they were added.
type EventRouter struct {
	controllers []Controller

	hover       Controller
	focus       Controller
	wheelTarget Controller
	wheelHint   Controller
}

// NewEventRouter creates an empty EventRouter.
func NewEventRouter() *EventRouter {
	return &EventRouter{}
}

// Controllers returns a copy of the registered controllers in order.
func (r *EventRouter) Controllers() []Controller {
	return slices.Clone(r.controllers)
}

// Hover returns the hovered controller, or nil.
func (r *EventRouter) Hover() Controller {
	return r.hover
}

// Focus returns the focused controller, or nil.
func (r *EventRouter) Focus() Controller {
	return r.focus
}

// WheelTarget returns the primary wheel receiver, or nil.
func (r *EventRouter) WheelTarget() Controller {
	return r.wheelTarget
}

// WheelHint returns the secondary wheel receiver, or nil.
func (r *EventRouter) WheelHint() Controller {
	return r.wheelHint
}

// AddController registers c. Registering the same controller twice panics.
func (r *EventRouter) AddController(c Controller) {
	if r.indexOf(c) >= 0 {
		panic("gui: controller registered twice")
	}
	r.controllers = append(r.controllers, c)
}

// RemoveController unregisters c, clearing every field that referenced it.
// The lose callbacks fire for a hovered or focused controller. Removing an
// unregistered controller panics.
func (r *EventRouter) RemoveController(c Controller) {
	idx := r.indexOf(c)
	if idx < 0 {
		panic("gui: removing unregistered controller")
	}
	r.controllers = slices.Delete(r.controllers, idx, idx+1)

	if r.hover == c {
		r.SetHover(nil)
	}
	if r.focus == c {
		debug.Log("EventRouter.RemoveController: clearing focus from %T", c)
		r.SetFocus(nil)
	}
	if r.wheelTarget == c {
		r.wheelTarget = nil
	}
	if r.wheelHint == c {
		r.wheelHint = nil
	}
}

func (r *EventRouter) indexOf(c Controller) int {
	return slices.IndexFunc(r.controllers, func(e Controller) bool { return e == c })
}

func (r *EventRouter) registered(c Controller) bool {
	return c != nil && r.indexOf(c) >= 0
}

// SetFocus moves focus to c, which may be nil. Nothing happens when c
// already has focus.
func (r *EventRouter) SetFocus(c Controller) {
	if r.focus == c {
		return
	}
	if r.focus != nil {
		r.focus.OnLoseFocus()
	}
	r.focus = c
	if c != nil {
		debug.Log("EventRouter.SetFocus: %T", c)
		c.OnGainFocus()
	}
}

// SetHover moves the highlight to c, which may be nil.
func (r *EventRouter) SetHover(c Controller) {
	if r.hover == c {
		return
	}
	if r.hover != nil {
		r.hover.OnLoseHighlight()
	}
	r.hover = c
	if c != nil {
		c.OnGainHighlight()
	}
}

// SetNextFocus moves focus dir steps (1 or -1) through the focusable
// controllers, wrapping at either end. Without a current focus, either
// direction picks the first focusable controller.
func (r *EventRouter) SetNextFocus(dir int) {
	if dir != 1 && dir != -1 {
		panic("gui: focus direction must be 1 or -1")
	}

	var focusable []Controller
	for _, c := range r.controllers {
		if c.IsFocusable() {
			focusable = append(focusable, c)
		}
	}
	if len(focusable) == 0 {
		return
	}

	idx := slices.IndexFunc(focusable, func(c Controller) bool { return c == r.focus })
	if r.focus == nil || idx < 0 {
		idx = -dir
	}
	n := len(focusable)
	r.SetFocus(focusable[((idx+dir)%n+n)%n])
}

// SetWheelTarget sets the controller that receives wheel events first.
func (r *EventRouter) SetWheelTarget(c Controller) {
	r.wheelTarget = c
}

// SetWheelHint sets the controller that receives wheel events when there
// is no wheel target.
func (r *EventRouter) SetWheelHint(c Controller) {
	r.wheelHint = c
}

// Reset forgets every controller without firing callbacks.
func (r *EventRouter) Reset() {
	r.controllers = nil
	r.hover = nil
	r.focus = nil
	r.wheelTarget = nil
	r.wheelHint = nil
}

// OnMouseMotion updates the hover to the first controller under the pointer
// and forwards the motion to it.
func (r *EventRouter) OnMouseMotion(x, y, dx, dy int) bool {
	var hover Controller
	for _, c := range r.controllers {
		if c.HitTest(x, y) {
			hover = c
			break
		}
	}
	r.SetHover(hover)

	if r.hover != nil {
		return r.hover.OnMouseMotion(x, y, dx, dy)
	}
	return false
}

// OnMousePress focuses the hovered controller and forwards the press to it.
func (r *EventRouter) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	r.SetFocus(r.hover)
	if r.focus != nil {
		return r.focus.OnMousePress(x, y, button, mod)
	}
	return false
}

// OnMouseRelease forwards to the focused controller.
func (r *EventRouter) OnMouseRelease(x, y int, button MouseButton, mod Modifier) bool {
	if r.focus != nil {
		return r.focus.OnMouseRelease(x, y, button, mod)
	}
	return false
}

// OnMouseDrag forwards to the focused controller.
func (r *EventRouter) OnMouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool {
	if r.focus != nil {
		return r.focus.OnMouseDrag(x, y, dx, dy, buttons, mod)
	}
	return false
}

// OnMouseScroll forwards to the wheel target, or failing that the wheel
// hint, as long as it is still registered.
func (r *EventRouter) OnMouseScroll(x, y, scrollX, scrollY int) bool {
	switch {
	case r.registered(r.wheelTarget):
		return r.wheelTarget.OnMouseScroll(x, y, scrollX, scrollY)
	case r.registered(r.wheelHint):
		return r.wheelHint.OnMouseScroll(x, y, scrollX, scrollY)
	}
	return false
}

// OnKeyPress handles TAB navigation and forwards other keys to the focused
// controller.
func (r *EventRouter) OnKeyPress(key Key, mod Modifier) bool {
	if key == KeyTab {
		dir := 1
		if mod.Has(ModShift) {
			dir = -1
		}
		r.SetNextFocus(dir)
		return true
	}
	if r.focus != nil {
		return r.focus.OnKeyPress(key, mod)
	}
	return false
}

// OnKeyRelease forwards to the focused controller.
func (r *EventRouter) OnKeyRelease(key Key, mod Modifier) bool {
	if r.focus != nil {
		return r.focus.OnKeyRelease(key, mod)
	}
	return false
}

// OnText forwards to the focused controller. A lone carriage return is
// dropped.
func (r *EventRouter) OnText(s string) bool {
	if r.focus != nil && s != "\r" {
		return r.focus.OnText(s)
	}
	return false
}

// OnTextMotion forwards to the focused controller.
func (r *EventRouter) OnTextMotion(m TextMotion) bool {
	if r.focus != nil {
		return r.focus.OnTextMotion(m)
	}
	return false
}

// OnTextMotionSelect forwards to the focused controller.
func (r *EventRouter) OnTextMotionSelect(m TextMotion) bool {
	if r.focus != nil {
		return r.focus.OnTextMotionSelect(m)
	}
	return false
}
