package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/theme"
)

// Spacer is an invisible node with a minimum size that grows to fill any
// space its parent offers.
type Spacer struct {
	Viewer
	minWidth, minHeight int
}

// NewSpacer creates a spacer no smaller than minWidth x minHeight.
func NewSpacer(minWidth, minHeight int) *Spacer {
	s := &Spacer{minWidth: minWidth, minHeight: minHeight}
	s.Self = s
	return s
}

func (s *Spacer) IsExpandable() bool { return true }

func (s *Spacer) ComputeSize() (int, int) {
	return s.minWidth, s.minHeight
}

// Graphic shows the themed image at its path.
type Graphic struct {
	Viewer
	path       []string
	expandable bool
	graphic    theme.Drawable
	minSize    Size
}

// NewGraphic creates a graphic for the image at path. An expandable
// graphic stretches to the space its parent offers.
func NewGraphic(expandable bool, path ...string) *Graphic {
	g := &Graphic{path: path, expandable: expandable}
	g.Self = g
	return g
}

func (g *Graphic) Path() []string { return g.path }

func (g *Graphic) LoadGraphics() error {
	d, err := generate(&g.Viewer, draw.LayerBackground, "gui_color", "image")
	if err != nil {
		return err
	}
	g.graphic = d
	g.minSize = Size{Width: d.Width(), Height: d.Height()}
	return nil
}

func (g *Graphic) UnloadGraphics() {
	if g.graphic != nil {
		g.graphic.Unload()
		g.graphic = nil
	}
}

func (g *Graphic) IsExpandable() bool { return g.expandable }

func (g *Graphic) Expand(width, height int) {
	g.SetSize(width, height)
	g.Layout()
}

func (g *Graphic) ComputeSize() (int, int) {
	return g.minSize.Width, g.minSize.Height
}

func (g *Graphic) Layout() {
	if g.graphic != nil {
		g.graphic.Update(g.X(), g.Y(), g.Width(), g.Height())
	}
}

// LabelOption configures a Label.
type LabelOption func(*Label)

// WithLabelPath sets the theme path the label reads its style from.
func WithLabelPath(path ...string) LabelOption {
	return func(l *Label) {
		l.path = path
	}
}

// WithLabelColor overrides the themed text color.
func WithLabelColor(c draw.Color) LabelOption {
	return func(l *Label) {
		l.color = &c
	}
}

// WithLabelFont overrides the themed font and size.
func WithLabelFont(font string, size int) LabelOption {
	return func(l *Label) {
		l.style = text.Style{Font: font, Size: size}
	}
}

// Label is a single line of themed text.
type Label struct {
	Viewer
	text  string
	path  []string
	color *draw.Color
	style text.Style

	run *draw.Text
	box text.Box
}

// NewLabel creates a label showing s.
func NewLabel(s string, opts ...LabelOption) *Label {
	l := &Label{text: s}
	l.Self = l
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Label) Path() []string { return l.path }

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// SetText changes the text, reloading and re-measuring the label.
func (l *Label) SetText(s string) error {
	l.text = s
	if l.loaded {
		if err := l.Reload(); err != nil {
			return err
		}
	}
	l.ResetSize(true)
	return nil
}

// resolveStyle reads font, size and color from the theme, keeping any
// overrides.
func (l *Label) resolveStyle() (text.Style, draw.Color, error) {
	scope, err := l.ThemeScope()
	if err != nil {
		return text.Style{}, draw.Color{}, fmt.Errorf("loading label: %w", err)
	}
	st := l.style
	if st.Font == "" {
		if st.Font, err = scope.String("font"); err != nil {
			return text.Style{}, draw.Color{}, fmt.Errorf("loading label: %w", err)
		}
	}
	if st.Size == 0 {
		if st.Size, err = scope.Int("font_size"); err != nil {
			return text.Style{}, draw.Color{}, fmt.Errorf("loading label: %w", err)
		}
	}
	if l.color != nil {
		return st, *l.color, nil
	}
	c, err := scope.Color("text_color")
	if err != nil {
		return text.Style{}, draw.Color{}, fmt.Errorf("loading label: %w", err)
	}
	return st, c, nil
}

func (l *Label) LoadGraphics() error {
	st, c, err := l.resolveStyle()
	if err != nil {
		return err
	}
	l.box = l.host.Measurer().Measure(l.text, st)
	l.run = l.host.Target(draw.LayerForeground).Text(l.X(), l.Y()-l.box.Descent, l.text, c, st.Font, st.Size)
	return nil
}

func (l *Label) UnloadGraphics() {
	if l.run != nil {
		l.host.Target(draw.LayerForeground).Remove(l.run)
		l.run = nil
	}
}

// ComputeSize returns the measured text box. The height spans ascent to
// descent.
func (l *Label) ComputeSize() (int, int) {
	if l.run == nil {
		return l.Width(), l.Height()
	}
	return l.box.Width, l.box.Height()
}

// Layout puts the baseline above the bottom edge by the font's descent.
func (l *Label) Layout() {
	if l.run != nil {
		l.run.X = l.X()
		l.run.Y = l.Y() - l.box.Descent
	}
}
