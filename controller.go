package gui

// Controller is a node that reacts to input. Controllers register with the
// EventRouter of their host when attached and leave it when deleted.
type Controller interface {
	EventHandler

	// HitTest reports whether (x, y) is inside the controller's active area.
	HitTest(x, y int) bool

	// IsFocusable reports whether TAB navigation may stop on the controller.
	IsFocusable() bool

	OnGainHighlight()
	OnLoseHighlight()
	OnGainFocus()
	OnLoseFocus()
}

// BaseController provides no-op implementations of every Controller method
// except HitTest. Embed it and override what the widget reacts to.
type BaseController struct{}

func (BaseController) IsFocusable() bool { return false }

func (BaseController) OnGainHighlight() {}
func (BaseController) OnLoseHighlight() {}
func (BaseController) OnGainFocus()     {}
func (BaseController) OnLoseFocus()     {}

func (BaseController) OnMouseMotion(x, y, dx, dy int) bool                            { return false }
func (BaseController) OnMousePress(x, y int, button MouseButton, mod Modifier) bool   { return false }
func (BaseController) OnMouseRelease(x, y int, button MouseButton, mod Modifier) bool { return false }
func (BaseController) OnMouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool {
	return false
}
func (BaseController) OnMouseScroll(x, y, scrollX, scrollY int) bool { return false }
func (BaseController) OnKeyPress(key Key, mod Modifier) bool         { return false }
func (BaseController) OnKeyRelease(key Key, mod Modifier) bool       { return false }
func (BaseController) OnText(s string) bool                          { return false }
func (BaseController) OnTextMotion(m TextMotion) bool                { return false }
func (BaseController) OnTextMotionSelect(m TextMotion) bool          { return false }
