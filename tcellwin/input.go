package tcellwin

import (
	"github.com/gdamore/tcell/v2"

	gui "github.com/grindlemire/go-gui"
)

// motionKey describes a key that moves the caret as well as being pressed.
type motionKey struct {
	key      gui.Key
	motion   gui.TextMotion
	ctrlMove gui.TextMotion
}

var motionKeys = map[tcell.Key]motionKey{
	tcell.KeyLeft:       {key: gui.KeyLeft, motion: gui.MotionLeft, ctrlMove: gui.MotionPreviousWord},
	tcell.KeyRight:      {key: gui.KeyRight, motion: gui.MotionRight, ctrlMove: gui.MotionNextWord},
	tcell.KeyUp:         {key: gui.KeyUp, motion: gui.MotionUp, ctrlMove: gui.MotionUp},
	tcell.KeyDown:       {key: gui.KeyDown, motion: gui.MotionDown, ctrlMove: gui.MotionDown},
	tcell.KeyHome:       {key: gui.KeyHome, motion: gui.MotionBeginningOfLine, ctrlMove: gui.MotionBeginningOfFile},
	tcell.KeyEnd:        {key: gui.KeyEnd, motion: gui.MotionEndOfLine, ctrlMove: gui.MotionEndOfFile},
	tcell.KeyPgUp:       {key: gui.KeyPageUp, motion: gui.MotionPreviousPage, ctrlMove: gui.MotionPreviousPage},
	tcell.KeyPgDn:       {key: gui.KeyPageDown, motion: gui.MotionNextPage, ctrlMove: gui.MotionNextPage},
	tcell.KeyBackspace:  {key: gui.KeyBackspace, motion: gui.MotionBackspace, ctrlMove: gui.MotionBackspace},
	tcell.KeyBackspace2: {key: gui.KeyBackspace, motion: gui.MotionBackspace, ctrlMove: gui.MotionBackspace},
	tcell.KeyDelete:     {key: gui.KeyDelete, motion: gui.MotionDelete, ctrlMove: gui.MotionDelete},
}

// ctrlAliases are control letters that double as Backspace, Tab and Enter.
var ctrlAliases = map[tcell.Key]bool{
	tcell.KeyCtrlH: true,
	tcell.KeyCtrlI: true,
	tcell.KeyCtrlM: true,
}

var plainKeys = map[tcell.Key]gui.Key{
	tcell.KeyTab:    gui.KeyTab,
	tcell.KeyEnter:  gui.KeyEnter,
	tcell.KeyEscape: gui.KeyEscape,
	tcell.KeyInsert: gui.KeyInsert,
}

// Terminals report no key releases, so every key is a press.
func (w *Window) handleKey(ev *tcell.EventKey) bool {
	mod := modifiers(ev.Modifiers())
	d := w.desktop

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		consumed := d.KeyPress(gui.KeyRune, mod)
		if mod.Has(gui.ModCtrl) || mod.Has(gui.ModAlt) {
			return consumed
		}
		return d.Text(string(ev.Rune())) || consumed
	case tcell.KeyBacktab:
		return d.KeyPress(gui.KeyTab, mod|gui.ModShift)
	default:
		if key, ok := plainKeys[k]; ok {
			return d.KeyPress(key, mod)
		}
		mk, ok := motionKeys[k]
		if !ok {
			if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && !ctrlAliases[k] {
				return d.KeyPress(gui.KeyRune, mod|gui.ModCtrl)
			}
			return false
		}
		consumed := d.KeyPress(mk.key, mod)
		motion := mk.motion
		if mod.Has(gui.ModCtrl) {
			motion = mk.ctrlMove
		}
		if mod.Has(gui.ModShift) && motion != gui.MotionBackspace && motion != gui.MotionDelete {
			return d.TextMotionSelect(motion) || consumed
		}
		return d.TextMotion(motion) || consumed
	}
}

func modifiers(m tcell.ModMask) gui.Modifier {
	var mod gui.Modifier
	if m&tcell.ModShift != 0 {
		mod |= gui.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= gui.ModCtrl
	}
	if m&tcell.ModAlt != 0 || m&tcell.ModMeta != 0 {
		mod |= gui.ModAlt
	}
	return mod
}

func pointerButtons(b tcell.ButtonMask) gui.MouseButton {
	var out gui.MouseButton
	if b&tcell.Button1 != 0 {
		out |= gui.MouseLeft
	}
	if b&tcell.Button3 != 0 {
		out |= gui.MouseMiddle
	}
	if b&tcell.Button2 != 0 {
		out |= gui.MouseRight
	}
	return out
}

// wheel converts wheel buttons into scroll deltas. Positive scrollY moves a
// vertical scrollbar towards its end; positive scrollX moves a horizontal
// one towards its start.
func wheel(b tcell.ButtonMask) (scrollX, scrollY int) {
	switch {
	case b&tcell.WheelUp != 0:
		return 0, -1
	case b&tcell.WheelDown != 0:
		return 0, 1
	case b&tcell.WheelLeft != 0:
		return 1, 0
	case b&tcell.WheelRight != 0:
		return -1, 0
	}
	return 0, 0
}

// handleMouse turns the button mask of a terminal mouse report into
// transitions. Movement is reported first, as a drag when buttons were
// already held and as a motion otherwise; then newly held buttons are
// pressed and newly freed ones released.
func (w *Window) handleMouse(ev *tcell.EventMouse) bool {
	col, row := ev.Position()
	_, height := w.screen.Size()
	x, y := col, height-1-row
	mod := modifiers(ev.Modifiers())
	d := w.desktop

	consumed := false
	moved := !w.hasMouse || x != w.lastX || y != w.lastY
	if moved {
		dx, dy := 0, 0
		if w.hasMouse {
			dx, dy = x-w.lastX, y-w.lastY
		}
		if w.buttons != 0 {
			consumed = d.MouseDrag(x, y, dx, dy, w.buttons, mod) || consumed
		} else {
			consumed = d.MouseMotion(x, y, dx, dy) || consumed
		}
		w.lastX, w.lastY, w.hasMouse = x, y, true
	}

	held := pointerButtons(ev.Buttons())
	for _, b := range []gui.MouseButton{gui.MouseLeft, gui.MouseMiddle, gui.MouseRight} {
		switch {
		case held&b != 0 && w.buttons&b == 0:
			w.buttons |= b
			consumed = d.MousePress(x, y, b, mod) || consumed
		case held&b == 0 && w.buttons&b != 0:
			w.buttons &^= b
			consumed = d.MouseRelease(x, y, b, mod) || consumed
		}
	}

	if sx, sy := wheel(ev.Buttons()); sx != 0 || sy != 0 {
		consumed = d.MouseScroll(x, y, sx, sy) || consumed
	}
	return consumed
}
