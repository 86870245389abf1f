// Package tcellwin shows a gui desktop in a terminal.
//
// A Window owns a tcell screen, a gui.Desktop sized to it and the
// draw.Batch the dialogs paint into. Terminal events are polled on a
// goroutine and handed to the goroutine running Run, which translates them
// into Desktop dispatch and repaints the batch after each one.
package tcellwin

import (
	"context"

	"github.com/gdamore/tcell/v2"

	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/internal/debug"
)

// Window connects a terminal screen to a Desktop.
type Window struct {
	screen     tcell.Screen
	batch      *draw.Batch
	desktop    *gui.Desktop
	border     BorderStyle
	background draw.Color

	// Pointer state between mouse events, in desktop coordinates.
	buttons  gui.MouseButton
	lastX    int
	lastY    int
	hasMouse bool
}

// Option configures a Window.
type Option func(*Window)

// WithBorder selects the box characters framed quads are outlined with.
func WithBorder(b BorderStyle) Option {
	return func(w *Window) {
		w.border = b
	}
}

// WithBackground sets the color the screen is cleared to before painting.
func WithBackground(c draw.Color) Option {
	return func(w *Window) {
		w.background = c
	}
}

// WithDesktop shows an existing desktop instead of creating one. The
// desktop is resized to the screen.
func WithDesktop(d *gui.Desktop) Option {
	return func(w *Window) {
		w.desktop = d
	}
}

// New creates a window over an initialized screen. Dialogs shown in it
// must draw into batch and be placed on Desktop().
func New(screen tcell.Screen, batch *draw.Batch, opts ...Option) *Window {
	w := &Window{
		screen:     screen,
		batch:      batch,
		border:     BorderRounded,
		background: draw.RGBA(0x1c, 0x1c, 0x1c, 0xff),
	}
	for _, opt := range opts {
		opt(w)
	}

	width, height := screen.Size()
	if w.desktop == nil {
		w.desktop = gui.NewDesktop(width, height)
	} else {
		w.desktop.Resize(width, height)
	}
	screen.EnableMouse()
	return w
}

// Desktop returns the desktop events are dispatched to.
func (w *Window) Desktop() *gui.Desktop {
	return w.desktop
}

// Batch returns the batch Paint renders.
func (w *Window) Batch() *draw.Batch {
	return w.batch
}

// Run paints the window and then handles terminal events until ctx is done,
// the screen is finalized, or Ctrl+C arrives unconsumed.
func (w *Window) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	w.Paint()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			consumed := w.HandleEvent(ev)
			if !consumed && isInterrupt(ev) {
				debug.Log("tcellwin: interrupted")
				return nil
			}
			w.Paint()
		}
	}
}

// HandleEvent dispatches one terminal event to the desktop and reports
// whether a handler consumed it.
func (w *Window) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return w.handleKey(ev)
	case *tcell.EventMouse:
		return w.handleMouse(ev)
	case *tcell.EventResize:
		width, height := ev.Size()
		debug.Log("tcellwin: resize %dx%d", width, height)
		w.desktop.Resize(width, height)
		w.screen.Sync()
		return false
	}
	return false
}

func isInterrupt(ev tcell.Event) bool {
	k, ok := ev.(*tcell.EventKey)
	return ok && k.Key() == tcell.KeyCtrlC
}
