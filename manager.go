package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/theme"
)

// Manager is the root of one dialog. It wraps the dialog's content, acts as
// the Host every node in it is attached to, routes the desktop's input to
// the dialog's controllers and keeps the dialog placed on the desktop by
// anchor and offset.
//
// Dragging the dialog by any point not claimed by a controller moves it
// when it is movable. Pointer motion over a dialog that is not on top
// raises it.
type Manager struct {
	Wrapper
	*EventRouter

	theme    *theme.Scope
	batch    *draw.Batch
	measurer text.Measurer

	parentGroup *draw.Group
	root        *draw.Group
	layers      map[draw.Layer]*draw.Group
	zorder      *ZOrder

	desktop  *Desktop
	screen   Rect
	offset   Point
	movable  bool
	dragging bool

	onError func(error)
	onKey   func(Key, Modifier) bool
	err     error
}

// NewManager creates a dialog showing content styled by th. The content is
// attached, loaded, measured and placed before NewManager returns.
func NewManager(content Node, th *theme.Scope, opts ...ManagerOption) (*Manager, error) {
	if th == nil {
		return nil, fmt.Errorf("manager requires a theme")
	}
	m := &Manager{
		EventRouter: NewEventRouter(),
		theme:       th,
		measurer:    text.CellMeasurer{},
		movable:     true,
	}
	m.Wrapper.init(m, content, newLayoutConfig(nil))

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if m.batch == nil {
		m.batch = draw.NewBatch()
	}
	if m.zorder == nil {
		if m.desktop != nil {
			m.zorder = m.desktop.ZOrder()
		} else {
			m.zorder = &ZOrder{}
		}
	}
	m.root = draw.NewGroup(m.zorder.Next(), m.parentGroup)
	m.layers = make(map[draw.Layer]*draw.Group, len(draw.Layers))
	for _, l := range draw.Layers {
		m.layers[l] = draw.NewGroup(int(l), m.root)
	}

	m.Attach(m)
	if err := m.Load(); err != nil {
		m.Attach(nil)
		return nil, fmt.Errorf("loading dialog: %w", err)
	}

	d := m.desktop
	m.desktop = nil
	m.SetDesktop(d)

	debug.Log("NewManager: content=%T size=%dx%d pos=(%d,%d) order=%d",
		m.content, m.Width(), m.Height(), m.X(), m.Y(), m.root.Order())
	return m, nil
}

// MustNewManager is like NewManager but panics on error.
func MustNewManager(content Node, th *theme.Scope, opts ...ManagerOption) *Manager {
	m, err := NewManager(content, th, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// --- Host ---

func (m *Manager) Theme() *theme.Scope { return m.theme }

func (m *Manager) Target(layer draw.Layer) draw.Target {
	return draw.Target{Batch: m.batch, Group: m.layers[layer]}
}

func (m *Manager) Measurer() text.Measurer { return m.measurer }
func (m *Manager) Desktop() *Desktop       { return m.desktop }
func (m *Manager) Manager() *Manager       { return m }

// ReportError passes err to the error handler. Without one the error is
// logged and kept for Err.
func (m *Manager) ReportError(err error) {
	if err == nil {
		return
	}
	if m.onError != nil {
		m.onError(err)
		return
	}
	debug.Log("Manager.ReportError: %v", err)
	m.err = err
}

// Err returns the last error reported without an error handler.
func (m *Manager) Err() error {
	return m.err
}

// --- Accessors ---

// Batch returns the batch the dialog draws into.
func (m *Manager) Batch() *draw.Batch { return m.batch }

// RootGroup returns the group holding the dialog's layers.
func (m *Manager) RootGroup() *draw.Group { return m.root }

// Screen returns the desktop bounds the dialog is placed against.
func (m *Manager) Screen() Rect { return m.screen }

// Offset returns the dialog's offset from its anchor point.
func (m *Manager) Offset() Point { return m.offset }

func (m *Manager) IsMovable() bool  { return m.movable }
func (m *Manager) IsDragging() bool { return m.dragging }

// --- Placement ---

// Position computes where the dialog belongs on the screen: its anchor
// point on the screen's anchor point, shifted by the offset. The offset is
// clamped so the dialog stays on screen, and the clamped value is kept.
func (m *Manager) Position() Point {
	p := RelativePoint(m.screen, m.anchor, Size{Width: m.Width(), Height: m.Height()}, m.anchor, Point{})
	maxX := m.screen.Width - m.Width() - p.X
	maxY := m.screen.Height - m.Height() - p.Y
	m.offset.X = max(min(m.offset.X, maxX), -p.X)
	m.offset.Y = max(min(m.offset.Y, maxY), -p.Y)
	return p.Add(m.offset)
}

func (m *Manager) reposition() {
	p := m.Position()
	m.SetPosition(p.X, p.Y)
}

// ResetSize re-measures the dialog. A change reported by the content
// repositions the dialog, since it has no parent to do so.
func (m *Manager) ResetSize(propagate bool) {
	if !propagate {
		m.Wrapper.ResetSize(false)
		return
	}
	m.Viewer.ResetSize(false)
	m.reposition()
}

// SetAnchor changes the anchor used both on the screen and for the content.
func (m *Manager) SetAnchor(a Anchor) {
	m.anchor = a
	m.reposition()
}

// SetOffset moves the dialog away from its anchor point.
func (m *Manager) SetOffset(dx, dy int) {
	m.offset = Point{X: dx, Y: dy}
	m.reposition()
}

// SetDesktop moves the dialog to d. A nil desktop leaves the dialog loaded
// but placed against an empty screen.
func (m *Manager) SetDesktop(d *Desktop) {
	if m.desktop != nil {
		m.desktop.RemoveHandler(m)
	}
	m.desktop = d
	if d == nil {
		m.screen = Rect{}
	} else {
		w, h := d.Size()
		m.screen = NewRect(0, 0, w, h)
		d.PushHandler(m)
	}
	m.ResetSize(false)
	m.reposition()
}

// IsOnTop reports whether the dialog holds the latest draw order.
func (m *Manager) IsOnTop() bool {
	return m.zorder.IsTop(m.root.Order())
}

// PopToTop draws the dialog above every other dialog of its z-order and
// moves its handler to the top of the desktop.
func (m *Manager) PopToTop() {
	m.root.SetOrder(m.zorder.Next())
	if m.desktop != nil {
		m.desktop.PushHandler(m)
	}
	debug.Log("Manager.PopToTop: order=%d", m.root.Order())
}

// Delete destroys the dialog and its content and leaves the desktop. It is
// safe to call from one of the dialog's own event handlers.
func (m *Manager) Delete() {
	if m.deleted() {
		return
	}
	m.Wrapper.Delete()
	if m.desktop != nil {
		m.desktop.RemoveHandler(m)
		m.desktop = nil
	}
	m.EventRouter.Reset()
	m.dragging = false
	debug.Log("Manager.Delete: order=%d", m.root.Order())
}

func (m *Manager) deleted() bool {
	return m.host == nil
}

// --- InputHandler ---

// HitTest reports whether (x, y) is inside the dialog.
func (m *Manager) HitTest(x, y int) bool {
	return !m.deleted() && m.Contains(x, y)
}

func (m *Manager) OnMouseMotion(x, y, dx, dy int) bool {
	m.EventRouter.OnMouseMotion(x, y, dx, dy)
	if !m.HitTest(x, y) {
		return false
	}
	if !m.IsOnTop() {
		m.PopToTop()
	}
	return true
}

func (m *Manager) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	consumed := m.EventRouter.OnMousePress(x, y, button, mod)
	if !consumed && m.HitTest(x, y) {
		m.dragging = true
		consumed = true
	}
	return consumed
}

func (m *Manager) OnMouseRelease(x, y int, button MouseButton, mod Modifier) bool {
	m.dragging = false
	return m.EventRouter.OnMouseRelease(x, y, button, mod)
}

func (m *Manager) OnMouseDrag(x, y, dx, dy int, buttons MouseButton, mod Modifier) bool {
	if m.EventRouter.OnMouseDrag(x, y, dx, dy, buttons, mod) {
		return true
	}
	if !m.movable || !m.dragging || m.deleted() {
		return false
	}
	m.offset = m.offset.Add(Point{X: dx, Y: dy})
	m.reposition()
	return true
}

// OnKeyPress gives the router the first chance at the key, then the key
// handler installed with WithKeyHandler.
func (m *Manager) OnKeyPress(key Key, mod Modifier) bool {
	if m.EventRouter.OnKeyPress(key, mod) {
		return true
	}
	if m.onKey != nil && !m.deleted() {
		return m.onKey(key, mod)
	}
	return false
}

// OnResize repositions the dialog when the desktop size changed. It never
// consumes the event so every dialog sees it.
func (m *Manager) OnResize(width, height int) bool {
	if m.screen.Width == width && m.screen.Height == height {
		return false
	}
	m.screen.SetSize(width, height)
	if !m.deleted() {
		m.reposition()
	}
	return false
}
