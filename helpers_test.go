package gui

import (
	"fmt"
	"testing"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/theme"
)

// box is a node with a fixed preferred size that counts its layouts.
type box struct {
	Viewer
	w, h    int
	layouts int
}

func newBox(w, h int) *box {
	b := &box{w: w, h: h}
	b.Self = b
	return b
}

func (b *box) ComputeSize() (int, int) { return b.w, b.h }
func (b *box) Layout()                 { b.layouts++ }

// growBox is a box that accepts any size its parent offers.
type growBox struct {
	box
}

func newGrowBox(w, h int) *growBox {
	b := &growBox{box: box{w: w, h: h}}
	b.Self = b
	return b
}

func (b *growBox) IsExpandable() bool { return true }

// probe is a controller that records the callbacks it receives.
type probe struct {
	box
	BaseController

	name      string
	focusable bool
	consume   bool
	events    []string
}

func newProbe(name string, focusable bool) *probe {
	p := &probe{box: box{w: 10, h: 10}, name: name, focusable: focusable, consume: true}
	p.Self = p
	return p
}

func (p *probe) record(format string, args ...any) {
	p.events = append(p.events, fmt.Sprintf(format, args...))
}

func (p *probe) HitTest(x, y int) bool { return p.Contains(x, y) }
func (p *probe) IsFocusable() bool     { return p.focusable }

func (p *probe) OnGainHighlight() { p.record("gain highlight") }
func (p *probe) OnLoseHighlight() { p.record("lose highlight") }
func (p *probe) OnGainFocus()     { p.record("gain focus") }
func (p *probe) OnLoseFocus()     { p.record("lose focus") }

func (p *probe) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	p.record("press %d,%d", x, y)
	return p.consume
}

func (p *probe) OnMouseScroll(x, y, scrollX, scrollY int) bool {
	p.record("scroll %d,%d", scrollX, scrollY)
	return true
}

func (p *probe) OnKeyPress(key Key, mod Modifier) bool {
	p.record("key %s", key)
	return p.consume
}

func (p *probe) OnText(s string) bool {
	p.record("text %q", s)
	return true
}

// newTestManager shows content on a 640x480 desktop with the default theme.
func newTestManager(t *testing.T, content Node, opts ...ManagerOption) (*Manager, *Desktop) {
	t.Helper()
	d := NewDesktop(640, 480)
	opts = append([]ManagerOption{WithDesktop(d), WithBatch(draw.NewBatch())}, opts...)
	m, err := NewManager(content, theme.MustDefault(), opts...)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m, d
}

// quadNames lists the names of the quads in b in paint order.
func quadNames(b *draw.Batch) []string {
	var out []string
	for _, it := range b.Items() {
		if q, ok := it.(*draw.Quad); ok {
			out = append(out, q.Name)
		}
	}
	return out
}

// texts lists the text runs in b in paint order.
func texts(b *draw.Batch) []string {
	var out []string
	for _, it := range b.Items() {
		if r, ok := it.(*draw.Text); ok {
			out = append(out, r.Text)
		}
	}
	return out
}

// click moves the pointer to the bottom-left corner of n, then presses and
// releases the left button there.
func click(d *Desktop, n Node) {
	x, y := n.X(), n.Y()
	d.MouseMotion(x, y, 0, 0)
	d.MousePress(x, y, MouseLeft, ModNone)
	d.MouseRelease(x, y, MouseLeft, ModNone)
}
