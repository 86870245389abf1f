package gui

import (
	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/theme"
)

// ScrollableOption configures a Scrollable.
type ScrollableOption func(*Scrollable)

// WithMaxSize limits the visible region. Zero leaves that dimension
// unlimited.
func WithMaxSize(width, height int) ScrollableOption {
	return func(s *Scrollable) {
		s.maxWidth, s.maxHeight = width, height
	}
}

// WithFixedSize makes the visible region exactly width x height regardless
// of the content.
func WithFixedSize(width, height int) ScrollableOption {
	return func(s *Scrollable) {
		s.maxWidth, s.maxHeight = width, height
		s.fixedSize = true
	}
}

// Scrollable shows a window onto content that may be larger than the
// region it gets, adding scrollbars for whichever dimension overflows.
//
// The content is attached to the Scrollable rather than to the dialog: the
// Scrollable draws it in a clipped group and routes events to it through
// its own EventRouter. The scrollbars belong to the enclosing host.
type Scrollable struct {
	Wrapper

	router *EventRouter

	maxWidth, maxHeight int
	fixedSize           bool

	hbar *HScrollbar
	vbar *VScrollbar

	// visible part of the content, excluding the scrollbars
	view Rect

	clip   *draw.Group
	layers map[draw.Layer]*draw.Group
}

// NewScrollable wraps content in a scrolled region.
func NewScrollable(content Node, opts ...ScrollableOption) *Scrollable {
	s := &Scrollable{router: NewEventRouter()}
	for _, opt := range opts {
		opt(s)
	}
	if s.fixedSize && (s.maxWidth <= 0 || s.maxHeight <= 0) {
		panic("gui: fixed size scrollable needs a width and a height")
	}
	s.init(s, content, newLayoutConfig(nil))
	return s
}

// Router returns the router dispatching to the content's controllers.
func (s *Scrollable) Router() *EventRouter {
	return s.router
}

// HScrollbar returns the horizontal scrollbar, or nil while the content
// fits horizontally.
func (s *Scrollable) HScrollbar() *HScrollbar {
	return s.hbar
}

// VScrollbar returns the vertical scrollbar, or nil while the content fits
// vertically.
func (s *Scrollable) VScrollbar() *VScrollbar {
	return s.vbar
}

// View returns the visible region of the content.
func (s *Scrollable) View() Rect {
	return s.view
}

// Attach connects the Scrollable to h and its content to the Scrollable.
func (s *Scrollable) Attach(h Host) {
	if s.host == h {
		return
	}
	s.Viewer.Attach(h)
	if h == nil {
		s.content.Attach(nil)
		s.clip, s.layers = nil, nil
		return
	}
	s.clip = draw.NewGroup(0, h.Target(draw.LayerForeground).Group)
	s.layers = map[draw.Layer]*draw.Group{
		draw.LayerPanel:      draw.NewGroup(0, s.clip),
		draw.LayerBackground: draw.NewGroup(10, s.clip),
		draw.LayerForeground: draw.NewGroup(20, s.clip),
		draw.LayerHighlight:  draw.NewGroup(30, s.clip),
	}
	s.content.Attach(s)
	for _, sb := range s.scrollbars() {
		sb.Attach(h)
	}
}

// SetContent deletes the current content and scrolls content instead.
func (s *Scrollable) SetContent(content Node) error {
	if content == nil {
		content = NewSpacer(0, 0)
	}
	s.content.Delete()
	s.content = content
	content.SetParent(s)
	if s.host == nil {
		return nil
	}
	content.Attach(s)
	if !s.loaded {
		return nil
	}
	if err := content.Load(); err != nil {
		return err
	}
	content.ResetSize(false)
	s.ResetSize(true)
	return nil
}

// --- Host ---

func (s *Scrollable) Theme() *theme.Scope { return s.host.Theme() }

// Target draws into the Scrollable's clipped groups.
func (s *Scrollable) Target(layer draw.Layer) draw.Target {
	return draw.Target{Batch: s.host.Target(layer).Batch, Group: s.layers[layer]}
}

func (s *Scrollable) Measurer() text.Measurer { return s.host.Measurer() }

func (s *Scrollable) AddController(c Controller)    { s.router.AddController(c) }
func (s *Scrollable) RemoveController(c Controller) { s.router.RemoveController(c) }
func (s *Scrollable) SetWheelTarget(c Controller)   { s.router.SetWheelTarget(c) }
func (s *Scrollable) SetWheelHint(c Controller)     { s.router.SetWheelHint(c) }

func (s *Scrollable) Desktop() *Desktop { return s.host.Desktop() }
func (s *Scrollable) Manager() *Manager { return s.host.Manager() }

func (s *Scrollable) ReportError(err error) { s.host.ReportError(err) }

// --- Node ---

func (s *Scrollable) UnloadGraphics() {
	if s.hbar != nil {
		s.hbar.Delete()
		s.hbar = nil
	}
	if s.vbar != nil {
		s.vbar.Delete()
		s.vbar = nil
	}
}

func (s *Scrollable) scrollbars() []Node {
	var out []Node
	if s.hbar != nil {
		out = append(out, s.hbar)
	}
	if s.vbar != nil {
		out = append(out, s.vbar)
	}
	return out
}

func (s *Scrollable) IsExpandable() bool { return true }

func (s *Scrollable) Expand(width, height int) {
	if s.content.IsExpandable() {
		vw, vh := width, height
		if s.vbar != nil {
			vw -= s.vbar.Width()
		}
		if s.hbar != nil {
			vh -= s.hbar.Height()
		}
		s.view.SetSize(vw, vh)
		s.content.Expand(max(vw, s.content.Width()), max(vh, s.content.Height()))
	}
	s.SetSize(width, height)
}

// ComputeSize is the visible region plus any scrollbars the content's
// size requires. Scrollbars are created and removed here, since only the
// content's size tells whether they are needed.
func (s *Scrollable) ComputeSize() (int, int) {
	cw, ch := s.content.ComputeSize()

	w, h := cw, ch
	if s.maxWidth > 0 {
		w = min(s.maxWidth, cw)
	}
	if s.maxHeight > 0 {
		h = min(s.maxHeight, ch)
	}
	if s.fixedSize {
		w, h = s.maxWidth, s.maxHeight
	}
	s.view.SetSize(w, h)

	if s.loaded {
		s.updateScrollbars(cw, ch)
	}
	if s.hbar != nil {
		s.hbar.SetLength(w)
		s.hbar.SetKnobSize(w, cw)
		s.hbar.SetSize(s.hbar.ComputeSize())
		h += s.hbar.Height()
	}
	if s.vbar != nil {
		s.vbar.SetLength(s.view.Height)
		s.vbar.SetKnobSize(s.view.Height, ch)
		s.vbar.SetSize(s.vbar.ComputeSize())
		w += s.vbar.Width()
	}
	return w, h
}

// updateScrollbars adds a scrollbar for each dimension in which the
// content overflows the view and removes those no longer needed.
func (s *Scrollable) updateScrollbars(contentWidth, contentHeight int) {
	if contentWidth > s.view.Width {
		if s.hbar == nil {
			s.hbar = NewHScrollbar(s.view.Width)
			if !s.addScrollbar(s.hbar) {
				s.hbar = nil
			}
		}
	} else if s.hbar != nil {
		s.hbar.Delete()
		s.hbar = nil
	}

	if contentHeight > s.view.Height {
		if s.vbar == nil {
			s.vbar = NewVScrollbar(s.view.Height)
			if !s.addScrollbar(s.vbar) {
				s.vbar = nil
			}
		}
	} else if s.vbar != nil {
		s.vbar.Delete()
		s.vbar = nil
	}
}

func (s *Scrollable) addScrollbar(sb Node) bool {
	sb.SetParent(s)
	sb.Attach(s.host)
	if err := sb.Load(); err != nil {
		s.host.ReportError(err)
		sb.Delete()
		return false
	}
	sb.ResetSize(false)
	return true
}

func (s *Scrollable) ResetSize(propagate bool) {
	s.Wrapper.ResetSize(propagate)
	for _, sb := range s.scrollbars() {
		sb.ResetSize(false)
	}
}

// Layout places the scrollbars along the bottom and right edges and
// shifts the content by the knob offsets.
func (s *Scrollable) Layout() {
	y := s.Y()
	if s.hbar != nil {
		s.hbar.SetPosition(s.X(), s.Y())
		y += s.hbar.Height()
	}
	if s.vbar != nil {
		s.vbar.SetPosition(s.X()+s.view.Width, y)
	}
	s.view.SetPosition(s.X(), y)
	if s.clip != nil {
		s.clip.SetClip(s.view)
	}

	left := s.X()
	top := y + s.view.Height - s.content.Height()
	if s.hbar != nil {
		left -= s.hbar.KnobOffset()
	}
	if s.vbar != nil {
		top += s.vbar.KnobOffset()
	}
	s.content.SetPosition(left, top)
}

func (s *Scrollable) Delete() {
	s.Wrapper.Delete()
	s.router.Reset()
}

// --- Controller ---

// HitTest covers the visible content only; the scrollbars handle their
// own events.
func (s *Scrollable) HitTest(x, y int) bool {
	return s.view.Contains(x, y)
}

func (s *Scrollable) IsFocusable() bool { return false }

// OnGainHighlight points the dialog's wheel at the scrollbars.
func (s *Scrollable) OnGainHighlight() {
	if s.host == nil {
		return
	}
	if s.hbar != nil {
		s.host.SetWheelHint(s.hbar)
	}
	if s.vbar != nil {
		s.host.SetWheelTarget(s.vbar)
	}
}

func (s *Scrollable) OnLoseHighlight() {
	if s.host != nil {
		s.host.SetWheelTarget(nil)
		s.host.SetWheelHint(nil)
	}
	s.router.SetHover(nil)
}

func (s *Scrollable) OnGainFocus() {}

func (s *Scrollable) OnLoseFocus() {
	s.router.SetFocus(nil)
}

func (s *Scrollable) OnMouseMotion(x, y, dx, dy int) bool {
	return s.router.OnMouseMotion(x, y, dx, dy)
}

func (s *Scrollable) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	return s.router.OnMousePress(x, y, button, mod)
}

func (s *Scrollable) OnMouseRelease(x, y int, button MouseButton, mod Modifier) bool {
	return s.router.OnMouseRelease(x, y, button, mod)
}

func (s *Scrollable) OnMouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool {
	return s.router.OnMouseDrag(x, y, dx, dy, buttons, mod)
}

func (s *Scrollable) OnMouseScroll(x, y, scrollX, scrollY int) bool {
	return s.router.OnMouseScroll(x, y, scrollX, scrollY)
}

func (s *Scrollable) OnKeyPress(key Key, mod Modifier) bool {
	return s.router.OnKeyPress(key, mod)
}

func (s *Scrollable) OnKeyRelease(key Key, mod Modifier) bool {
	return s.router.OnKeyRelease(key, mod)
}

func (s *Scrollable) OnText(str string) bool {
	return s.router.OnText(str)
}

func (s *Scrollable) OnTextMotion(m TextMotion) bool {
	return s.router.OnTextMotion(m)
}

func (s *Scrollable) OnTextMotionSelect(m TextMotion) bool {
	return s.router.OnTextMotionSelect(m)
}
