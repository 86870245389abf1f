package gui

import (
	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/theme"
)

// A burst of wheel steps larger than this also lays out the scrollbar's
// parent, so the scrolled content follows the knob.
const scrollDebounce = 2

// scrollbar is the shared state of HScrollbar and VScrollbar. The knob
// position is the fraction of the content at the center of the visible
// window; the knob size is the visible fraction.
type scrollbar struct {
	Viewer
	BaseController

	vertical bool
	length   int
	pos      float64
	knobSize float64
	scrolled int

	bar  theme.Drawable
	knob theme.Drawable
}

func (s *scrollbar) init(self Node, vertical bool, length int) {
	s.Self = self
	s.vertical = vertical
	s.length = length
	s.knobSize = 1
}

func (s *scrollbar) Path() []string {
	if s.vertical {
		return []string{"vscrollbar"}
	}
	return []string{"hscrollbar"}
}

// KnobPosition returns the knob's center as a fraction of the content.
func (s *scrollbar) KnobPosition() float64 {
	return s.pos
}

// KnobSize returns the visible fraction of the content.
func (s *scrollbar) KnobSize() float64 {
	return s.knobSize
}

// SetLength changes the scrollbar's length in cells.
func (s *scrollbar) SetLength(length int) {
	s.length = length
}

// SetKnobPosition moves the knob, keeping it fully inside the bar.
func (s *scrollbar) SetKnobPosition(pos float64) {
	half := s.knobSize / 2
	s.pos = min(max(pos, half), 1-half)
}

// SetKnobSize sizes the knob for a window of visible cells onto total
// cells of content.
func (s *scrollbar) SetKnobSize(visible, total int) {
	if total <= 0 {
		s.knobSize = 1
	} else {
		s.knobSize = min(float64(visible)/float64(total), 1)
	}
	s.SetKnobPosition(s.pos)
}

// KnobOffset converts the knob position into the number of content cells
// scrolled past, measured from the left for a horizontal bar and from the
// top for a vertical one.
func (s *scrollbar) KnobOffset() int {
	if s.knobSize <= 0 {
		return 0
	}
	extent := s.Width()
	if s.vertical {
		extent = s.Height()
	}
	return int((s.pos - s.knobSize/2) * float64(extent) / s.knobSize)
}

func (s *scrollbar) LoadGraphics() error {
	var err error
	if s.bar, err = generate(&s.Viewer, draw.LayerForeground, "gui_color", "bar", "image"); err != nil {
		return err
	}
	if s.knob, err = generate(&s.Viewer, draw.LayerHighlight, "gui_color", "knob", "image"); err != nil {
		return err
	}
	return nil
}

func (s *scrollbar) UnloadGraphics() {
	if s.bar != nil {
		s.bar.Unload()
		s.bar = nil
	}
	if s.knob != nil {
		s.knob.Unload()
		s.knob = nil
	}
}

// ComputeSize is the bar's thickness across and the length along.
func (s *scrollbar) ComputeSize() (int, int) {
	if s.bar == nil {
		return s.Width(), s.Height()
	}
	if s.vertical {
		w, _ := s.bar.NeededSize(0, s.length)
		return w, s.length
	}
	_, h := s.bar.NeededSize(s.length, 0)
	return s.length, h
}

func (s *scrollbar) knobRegion() Rect {
	if s.vertical {
		top := s.Y() + s.Height()
		return NewRect(s.X(), int(float64(top)-(s.pos+s.knobSize/2)*float64(s.Height())),
			s.Width(), int(s.knobSize*float64(s.Height())))
	}
	return NewRect(s.X()+int((s.pos-s.knobSize/2)*float64(s.Width())), s.Y(),
		int(s.knobSize*float64(s.Width())), s.Height())
}

func (s *scrollbar) Layout() {
	if s.bar == nil {
		return
	}
	s.bar.Update(s.X(), s.Y(), s.Width(), s.Height())
	r := s.knobRegion()
	s.knob.Update(r.X, r.Y, r.Width, r.Height)
}

// relayout redraws the knob and, once scrolling has moved far enough, the
// parent holding the scrolled content.
func (s *scrollbar) relayout() {
	s.Self.Layout()
	if s.scrolled > scrollDebounce {
		s.scrolled = 0
		if p := s.Parent(); p != nil {
			p.Layout()
		}
	}
}

func (s *scrollbar) HitTest(x, y int) bool {
	return s.Contains(x, y)
}

func (s *scrollbar) IsFocusable() bool { return false }

// OnGainFocus routes the wheel to the scrollbar while it is dragged.
func (s *scrollbar) OnGainFocus() {
	if s.host != nil {
		s.host.SetWheelTarget(s.Self.(Controller))
	}
}

func (s *scrollbar) OnLoseFocus() {
	s.scrolled = 0
	if s.host != nil {
		s.host.SetWheelTarget(nil)
	}
}

func (s *scrollbar) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	return s.OnMouseDrag(x, y, 0, 0, button, mod)
}

// OnMouseDrag centers the knob under the pointer.
func (s *scrollbar) OnMouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool {
	if s.bar == nil {
		return false
	}
	r := s.bar.ContentRegion()
	if s.vertical {
		if r.Height <= 0 {
			return true
		}
		s.SetKnobPosition(1 - float64(y-r.Y)/float64(r.Height))
	} else {
		if r.Width <= 0 {
			return true
		}
		s.SetKnobPosition(float64(x-r.X) / float64(r.Width))
	}
	s.scrolled = scrollDebounce * 5
	s.relayout()
	return true
}

// OnMouseScroll moves the knob by one cell per wheel step.
func (s *scrollbar) OnMouseScroll(x, y, scrollX, scrollY int) bool {
	if s.vertical {
		if s.Height() <= 0 {
			return false
		}
		s.scrolled += abs(scrollY)
		s.SetKnobPosition(s.pos + float64(scrollY)/float64(s.Height()))
	} else {
		if s.Width() <= 0 {
			return false
		}
		s.scrolled += abs(scrollX)
		s.SetKnobPosition(s.pos - float64(scrollX)/float64(s.Width()))
	}
	s.relayout()
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// HScrollbar scrolls content horizontally. Its parent is laid out again
// when the knob moves far enough.
type HScrollbar struct {
	scrollbar
}

// NewHScrollbar creates a horizontal scrollbar length cells wide.
func NewHScrollbar(length int) *HScrollbar {
	s := &HScrollbar{}
	s.init(s, false, length)
	return s
}

// VScrollbar scrolls content vertically. The knob starts at the top.
type VScrollbar struct {
	scrollbar
}

// NewVScrollbar creates a vertical scrollbar length cells tall.
func NewVScrollbar(length int) *VScrollbar {
	s := &VScrollbar{}
	s.init(s, true, length)
	return s
}
