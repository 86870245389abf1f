package gui

// EventHandler receives pointer, keyboard and text input. Each method
// reports whether the event was consumed.
type EventHandler interface {
	OnMouseMotion(x, y, dx, dy int) bool
	OnMousePress(x, y int, button MouseButton, mod Modifier) bool
	OnMouseRelease(x, y int, button MouseButton, mod Modifier) bool
	OnMouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool
	OnMouseScroll(x, y, scrollX, scrollY int) bool
	OnKeyPress(key Key, mod Modifier) bool
	OnKeyRelease(key Key, mod Modifier) bool
	OnText(s string) bool
	OnTextMotion(m TextMotion) bool
	OnTextMotionSelect(m TextMotion) bool
}

// InputHandler is an EventHandler stacked on a Desktop. Unconsumed events
// continue to the handler below it.
type InputHandler interface {
	EventHandler
	OnResize(width, height int) bool
}
