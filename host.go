package gui

import (
	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/theme"
)

// Host is what a node is attached to: the Manager of its dialog, or a
// Scrollable for nodes inside a scrolled region. It supplies the theme,
// draw targets and text metrics, and owns the EventRouter controllers
// register with.
type Host interface {
	Theme() *theme.Scope
	Target(layer draw.Layer) draw.Target
	Measurer() text.Measurer

	AddController(c Controller)
	RemoveController(c Controller)
	SetWheelTarget(c Controller)
	SetWheelHint(c Controller)

	// Desktop returns the desktop the dialog is shown on, or nil.
	Desktop() *Desktop
	// Manager returns the top-level Manager of the dialog.
	Manager() *Manager
	// ReportError delivers an error raised while handling an event.
	ReportError(err error)
}
