package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/text"
)

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithDocumentHeight limits the visible height; longer text scrolls.
func WithDocumentHeight(rows int) DocumentOption {
	return func(d *Document) {
		d.maxHeight = rows
	}
}

// WithDocumentFixedHeight makes the document exactly rows tall however
// much text it holds.
func WithDocumentFixedHeight(rows int) DocumentOption {
	return func(d *Document) {
		d.maxHeight = rows
		d.fixedSize = true
	}
}

// Document shows multi-line text wrapped to a fixed width. When the text
// is taller than the document a vertical scrollbar appears on its right.
type Document struct {
	Viewer
	BaseController

	text      string
	width     int
	maxHeight int
	fixedSize bool

	lines     []string
	runs      []*draw.Text
	target    draw.Target
	box       text.Box
	scrollbar *VScrollbar
	view      Rect
}

var (
	_ Node       = (*Document)(nil)
	_ Controller = (*Document)(nil)
)

// NewDocument creates a document showing s wrapped to width.
func NewDocument(s string, width int, opts ...DocumentOption) *Document {
	d := &Document{text: s, width: width}
	d.Self = d
	for _, opt := range opts {
		opt(d)
	}
	if d.fixedSize && d.maxHeight <= 0 {
		panic("gui: fixed height document needs a height")
	}
	return d
}

// Text returns the document's text.
func (d *Document) Text() string {
	return d.text
}

// Lines returns the wrapped lines, or nil while unloaded.
func (d *Document) Lines() []string {
	return d.lines
}

// Scrollbar returns the scrollbar, or nil while the text fits.
func (d *Document) Scrollbar() *VScrollbar {
	return d.scrollbar
}

// SetText replaces the text, wrapping and resizing the document.
func (d *Document) SetText(s string) {
	d.text = s
	if d.loaded {
		if err := d.Reload(); err != nil {
			d.host.ReportError(err)
			return
		}
	}
	d.ResetSize(true)
}

func (d *Document) contentHeight() int {
	return len(d.lines) * d.box.Height()
}

func (d *Document) LoadGraphics() error {
	scope, err := d.ThemeScope()
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	st, c, err := themeText(scope)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	m := d.host.Measurer()
	d.box = m.Measure("A", st)
	d.lines = text.Wrap(m, st, d.text, d.width)

	bg := d.host.Target(draw.LayerBackground)
	d.target = draw.Target{Batch: bg.Batch, Group: draw.NewGroup(0, bg.Group)}
	for _, line := range d.lines {
		d.runs = append(d.runs, d.target.Text(0, 0, line, c, st.Font, st.Size))
	}
	return nil
}

func (d *Document) UnloadGraphics() {
	for _, r := range d.runs {
		d.target.Remove(r)
	}
	d.runs, d.lines = nil, nil
	if d.scrollbar != nil {
		d.scrollbar.Delete()
		d.scrollbar = nil
	}
}

// ComputeSize is the wrap width plus any scrollbar, by the text height
// capped at the maximum height.
func (d *Document) ComputeSize() (int, int) {
	if !d.loaded {
		return d.Width(), d.Height()
	}
	total := d.contentHeight()
	h := total
	if d.fixedSize || (d.maxHeight > 0 && total > d.maxHeight) {
		h = d.maxHeight
	}
	d.view.SetSize(d.width, h)

	d.updateScrollbar(h, total)
	if d.scrollbar == nil {
		return d.width, h
	}
	d.scrollbar.SetLength(h)
	d.scrollbar.SetKnobSize(h, total)
	d.scrollbar.SetSize(d.scrollbar.ComputeSize())
	return d.width + d.scrollbar.Width(), h
}

func (d *Document) updateScrollbar(visible, total int) {
	if total <= visible {
		if d.scrollbar != nil {
			d.scrollbar.Delete()
			d.scrollbar = nil
		}
		return
	}
	if d.scrollbar != nil {
		return
	}
	sb := NewVScrollbar(visible)
	sb.SetParent(d)
	sb.Attach(d.host)
	if err := sb.Load(); err != nil {
		d.host.ReportError(err)
		sb.Delete()
		return
	}
	d.scrollbar = sb
}

// Layout stacks the lines from the top, shifted by the scrollbar.
func (d *Document) Layout() {
	d.view.SetPosition(d.X(), d.Y())
	scroll := 0
	if d.scrollbar != nil {
		d.scrollbar.SetPosition(d.X()+d.width, d.Y())
		scroll = d.scrollbar.KnobOffset()
	}
	if d.target.Group != nil {
		d.target.Group.SetClip(d.view)
	}
	lineHeight := d.box.Height()
	top := d.Y() + d.Height() + scroll
	for i, r := range d.runs {
		r.X = d.X()
		r.Y = top - (i+1)*lineHeight - d.box.Descent
	}
}

// --- Controller ---

func (d *Document) HitTest(x, y int) bool {
	return d.view.Contains(x, y)
}

// OnGainHighlight sends the wheel to the scrollbar while the pointer is
// over the text.
func (d *Document) OnGainHighlight() {
	if d.scrollbar != nil && d.host != nil {
		d.host.SetWheelTarget(d.scrollbar)
	}
}

func (d *Document) OnLoseHighlight() {
	if d.host != nil {
		d.host.SetWheelTarget(nil)
	}
}
