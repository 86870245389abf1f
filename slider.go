package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/theme"
)

// SliderOption configures a HorizontalSlider.
type SliderOption func(*HorizontalSlider)

// WithRange sets the slider's bounds. The default is [0, 1].
func WithRange(minValue, maxValue float64) SliderOption {
	return func(s *HorizontalSlider) {
		s.min, s.max = minValue, maxValue
	}
}

// WithValue sets the initial value. The default is the minimum.
func WithValue(v float64) SliderOption {
	return func(s *HorizontalSlider) {
		s.value = v
		s.hasValue = true
	}
}

// WithSteps makes the slider snap to n equal steps when released and draws
// a marker at each step.
func WithSteps(n int) SliderOption {
	return func(s *HorizontalSlider) {
		s.steps = n
	}
}

// WithOnSet is called with every new value.
func WithOnSet(fn func(float64)) SliderOption {
	return func(s *HorizontalSlider) {
		s.onSet = fn
	}
}

// WithSliderWidth sets the minimum width of the bar. The default is 20.
func WithSliderWidth(w int) SliderOption {
	return func(s *HorizontalSlider) {
		s.minWidth = w
	}
}

// HorizontalSlider picks a value in a range by dragging a knob along a
// bar.
type HorizontalSlider struct {
	Viewer
	BaseController

	value    float64
	hasValue bool
	min, max float64
	steps    int
	minWidth int
	onSet    func(float64)

	bar     theme.Drawable
	knob    theme.Drawable
	markers []theme.Drawable

	padding    [4]int
	knobOffset Point
	stepOffset Point
}

// NewHorizontalSlider creates a slider. It panics when the range is empty
// or the initial value lies outside it.
func NewHorizontalSlider(opts ...SliderOption) *HorizontalSlider {
	s := &HorizontalSlider{max: 1, minWidth: 20}
	s.Self = s
	for _, opt := range opts {
		opt(s)
	}
	if s.max <= s.min {
		panic(fmt.Sprintf("gui: empty slider range [%g, %g]", s.min, s.max))
	}
	if !s.hasValue {
		s.value = s.min
	}
	if s.value < s.min || s.value > s.max {
		panic(fmt.Sprintf("gui: slider value %g outside [%g, %g]", s.value, s.min, s.max))
	}
	if s.steps < 0 {
		panic("gui: negative slider steps")
	}
	return s
}

func (s *HorizontalSlider) Path() []string { return []string{"slider"} }

// Value returns the current value.
func (s *HorizontalSlider) Value() float64 {
	return s.value
}

// SetValue moves the knob to v and reports it to the set callback. Values
// outside the range panic.
func (s *HorizontalSlider) SetValue(v float64) {
	if v < s.min || v > s.max {
		panic(fmt.Sprintf("gui: slider value %g outside [%g, %g]", v, s.min, s.max))
	}
	s.setValue(v)
	s.Self.Layout()
}

func (s *HorizontalSlider) setValue(v float64) {
	s.value = v
	if s.onSet != nil {
		s.onSet(v)
	}
}

// knobPos is the value as a fraction of the range.
func (s *HorizontalSlider) knobPos() float64 {
	return min(max((s.value-s.min)/(s.max-s.min), 0), 1)
}

// SetKnobPosition sets the value from a fraction of the range.
func (s *HorizontalSlider) SetKnobPosition(pos float64) {
	pos = min(max(pos, 0), 1)
	s.setValue(s.min + (s.max-s.min)*pos)
	s.placeKnob()
}

func (s *HorizontalSlider) snap() {
	pos := float64(int(s.knobPos()*float64(s.steps)+0.5)) / float64(s.steps)
	s.SetKnobPosition(pos)
}

func (s *HorizontalSlider) LoadGraphics() error {
	scope, err := s.ThemeScope()
	if err != nil {
		return fmt.Errorf("loading slider: %w", err)
	}
	pad, err := scope.Ints("bar", "padding")
	if err != nil {
		return fmt.Errorf("loading slider: %w", err)
	}
	if len(pad) != 4 {
		return fmt.Errorf("loading slider: bar padding wants 4 values, got %d", len(pad))
	}
	copy(s.padding[:], pad)
	if s.knobOffset, err = themePoint(scope, "knob", "offset"); err != nil {
		return fmt.Errorf("loading slider: %w", err)
	}

	if s.bar, err = generate(&s.Viewer, draw.LayerForeground, "gui_color", "bar", "image"); err != nil {
		return err
	}
	if s.knob, err = generate(&s.Viewer, draw.LayerHighlight, "gui_color", "knob", "image"); err != nil {
		return err
	}
	if s.steps == 0 {
		return nil
	}
	if s.stepOffset, err = themePoint(scope, "step", "offset"); err != nil {
		return fmt.Errorf("loading slider: %w", err)
	}
	for n := 0; n <= s.steps; n++ {
		m, err := generate(&s.Viewer, draw.LayerBackground, "gui_color", "step", "image")
		if err != nil {
			return err
		}
		s.markers = append(s.markers, m)
	}
	return nil
}

// themePoint reads a two-value offset.
func themePoint(scope *theme.Scope, path ...string) (Point, error) {
	v, err := scope.Ints(path...)
	if err != nil {
		return Point{}, err
	}
	if len(v) != 2 {
		return Point{}, fmt.Errorf("%v: want 2 values, got %d", path, len(v))
	}
	return Point{X: v[0], Y: v[1]}, nil
}

func (s *HorizontalSlider) UnloadGraphics() {
	if s.bar != nil {
		s.bar.Unload()
		s.bar = nil
	}
	if s.knob != nil {
		s.knob.Unload()
		s.knob = nil
	}
	for _, m := range s.markers {
		m.Unload()
	}
	s.markers = nil
}

func (s *HorizontalSlider) ComputeSize() (int, int) {
	if s.bar == nil {
		return s.Width(), s.Height()
	}
	w, h := s.bar.NeededSize(s.minWidth, 0)
	l, r, t, b := s.padding[0], s.padding[1], s.padding[2], s.padding[3]
	return w + l + r, h + t + b
}

func (s *HorizontalSlider) placeKnob() {
	if s.bar == nil || s.knob == nil {
		return
	}
	r := s.bar.ContentRegion()
	s.knob.Update(r.X+int(float64(r.Width)*s.knobPos())+s.knobOffset.X, r.Y+s.knobOffset.Y,
		s.knob.Width(), s.knob.Height())
}

func (s *HorizontalSlider) Layout() {
	if s.bar == nil {
		return
	}
	l, r, t, b := s.padding[0], s.padding[1], s.padding[2], s.padding[3]
	s.bar.Update(s.X()+l, s.Y()+b, s.Width()-l-r, s.Height()-t-b)
	s.placeKnob()

	if s.steps == 0 {
		return
	}
	region := s.bar.ContentRegion()
	step := float64(region.Width) / float64(s.steps)
	for n, m := range s.markers {
		m.Update(int(float64(region.X)+step*float64(n))+s.stepOffset.X, region.Y+s.stepOffset.Y,
			m.Width(), m.Height())
	}
}

func (s *HorizontalSlider) HitTest(x, y int) bool {
	return s.Contains(x, y)
}

func (s *HorizontalSlider) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	return s.OnMouseDrag(x, y, 0, 0, button, mod)
}

// OnMouseDrag moves the knob under the pointer.
func (s *HorizontalSlider) OnMouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool {
	if s.bar == nil {
		return false
	}
	r := s.bar.ContentRegion()
	if r.Width <= 0 {
		return true
	}
	s.SetKnobPosition(float64(x-r.X) / float64(r.Width))
	return true
}

// OnMouseRelease snaps the value to the nearest step.
func (s *HorizontalSlider) OnMouseRelease(x, y int, button MouseButton, mod Modifier) bool {
	if s.steps > 0 {
		s.snap()
	}
	return true
}
