package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/text"
)

// ManagerOption is a functional option for configuring a Manager.
type ManagerOption func(*Manager) error

// WithDesktop shows the dialog on d. The dialog's handler is pushed on top
// of the desktop's stack.
func WithDesktop(d *Desktop) ManagerOption {
	return func(m *Manager) error {
		m.desktop = d
		return nil
	}
}

// WithBatch draws the dialog into b instead of a batch of its own. Dialogs
// sharing a batch are painted together.
func WithBatch(b *draw.Batch) ManagerOption {
	return func(m *Manager) error {
		if b == nil {
			return fmt.Errorf("batch cannot be nil")
		}
		m.batch = b
		return nil
	}
}

// WithParentGroup nests the dialog's root group under g.
func WithParentGroup(g *draw.Group) ManagerOption {
	return func(m *Manager) error {
		m.parentGroup = g
		return nil
	}
}

// WithAnchor sets the anchor the dialog is placed by. Default is
// AnchorCenter.
func WithAnchor(a Anchor) ManagerOption {
	return func(m *Manager) error {
		m.anchor = a
		return nil
	}
}

// WithOffset shifts the dialog away from its anchor point. The offset is
// clamped to keep the dialog on screen.
func WithOffset(dx, dy int) ManagerOption {
	return func(m *Manager) error {
		m.offset = Point{X: dx, Y: dy}
		return nil
	}
}

// WithMovable controls whether dragging the dialog moves it. Default is
// true.
func WithMovable(movable bool) ManagerOption {
	return func(m *Manager) error {
		m.movable = movable
		return nil
	}
}

// WithMeasurer sets the text metrics used by labels. Default is
// text.CellMeasurer.
func WithMeasurer(mr text.Measurer) ManagerOption {
	return func(m *Manager) error {
		if mr == nil {
			return fmt.Errorf("measurer cannot be nil")
		}
		m.measurer = mr
		return nil
	}
}

// WithErrorHandler receives errors raised while widgets handle events.
func WithErrorHandler(fn func(error)) ManagerOption {
	return func(m *Manager) error {
		m.onError = fn
		return nil
	}
}

// WithZOrder sets the order service used to stack the dialog. Default is
// the desktop's, or a private one without a desktop.
func WithZOrder(z *ZOrder) ManagerOption {
	return func(m *Manager) error {
		if z == nil {
			return fmt.Errorf("z-order cannot be nil")
		}
		m.zorder = z
		return nil
	}
}

// WithKeyHandler sets a handler for key presses no controller consumed.
// If the handler returns true, the event stops at this dialog.
func WithKeyHandler(fn func(Key, Modifier) bool) ManagerOption {
	return func(m *Manager) error {
		m.onKey = fn
		return nil
	}
}
