package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/theme"
)

// Node is an element of the widget tree. Concrete widgets embed Viewer,
// which implements the whole interface, and override the parts they need.
type Node interface {
	// Embed returns the Viewer holding the node's geometry and links.
	Embed() *Viewer

	// Path is the theme path the node reads its style from.
	Path() []string

	// Attach connects the node, and any nodes it owns, to h. Controllers
	// register with h's router. A nil h detaches.
	Attach(h Host)

	// Load acquires the node's drawables. It panics when the node is
	// already loaded or has no host.
	Load() error
	// Unload releases the node's drawables. It panics when the node is
	// not loaded.
	Unload()
	// Reload unloads then loads the node.
	Reload() error

	LoadGraphics() error
	UnloadGraphics()

	// Layout places the node's drawables and children inside its current
	// bounds.
	Layout()
	// ComputeSize measures the size the node wants without changing it.
	ComputeSize() (width, height int)
	// ResetSize recomputes the node's size. A changed size is reported to
	// the parent when propagate is true; an unchanged size lays the node
	// out again without touching the parent.
	ResetSize(propagate bool)

	IsExpandable() bool
	// Expand sets the node's size to exactly (width, height).
	Expand(width, height int)

	// Delete unloads the node, unregisters its controllers and detaches it.
	Delete()

	X() int
	Y() int
	Width() int
	Height() int
	SetPosition(x, y int)
	Parent() Node
	SetParent(p Node)
	IsLoaded() bool
}

// Viewer is the geometry and lifecycle core every Node embeds. Self must
// point at the embedding widget so that overridden methods are reached
// from the shared code paths.
type Viewer struct {
	Self Node

	rect   Rect
	parent Node
	host   Host
	loaded bool
}

func (v *Viewer) Embed() *Viewer { return v }

// Path returns nil, resolving style from the theme root.
func (v *Viewer) Path() []string { return nil }

func (v *Viewer) X() int      { return v.rect.X }
func (v *Viewer) Y() int      { return v.rect.Y }
func (v *Viewer) Width() int  { return v.rect.Width }
func (v *Viewer) Height() int { return v.rect.Height }

// Rect returns the node's bounds.
func (v *Viewer) Rect() Rect { return v.rect }

// Contains reports whether (x, y) is inside the node's bounds.
func (v *Viewer) Contains(x, y int) bool {
	return v.rect.Contains(x, y)
}

// SetSize changes the size without laying out.
func (v *Viewer) SetSize(width, height int) {
	v.rect.SetSize(width, height)
}

// SetPosition moves the node and lays it out.
func (v *Viewer) SetPosition(x, y int) {
	v.rect.SetPosition(x, y)
	v.Self.Layout()
}

func (v *Viewer) Parent() Node     { return v.parent }
func (v *Viewer) SetParent(p Node) { v.parent = p }
func (v *Viewer) Host() Host       { return v.host }
func (v *Viewer) IsLoaded() bool   { return v.loaded }

// Attach connects the node to h, moving its controller registration from
// the previous host if the node is a Controller.
func (v *Viewer) Attach(h Host) {
	if v.host == h {
		return
	}
	c, isController := v.Self.(Controller)
	if isController && v.host != nil {
		v.host.RemoveController(c)
	}
	v.host = h
	if isController && h != nil {
		h.AddController(c)
	}
}

// ThemeScope resolves the node's theme path against its host's theme.
func (v *Viewer) ThemeScope() (*theme.Scope, error) {
	if v.host == nil {
		panic("gui: theme accessed on detached node")
	}
	return v.host.Theme().Scope(v.Self.Path()...)
}

func (v *Viewer) Load() error {
	if v.loaded {
		panic(fmt.Sprintf("gui: Load called on loaded %T", v.Self))
	}
	if v.host == nil {
		panic(fmt.Sprintf("gui: Load called on detached %T", v.Self))
	}
	v.loaded = true
	if err := v.Self.LoadGraphics(); err != nil {
		v.Self.UnloadGraphics()
		v.loaded = false
		return err
	}
	return nil
}

func (v *Viewer) Unload() {
	if !v.loaded {
		panic(fmt.Sprintf("gui: Unload called on unloaded %T", v.Self))
	}
	v.loaded = false
	v.Self.UnloadGraphics()
}

func (v *Viewer) Reload() error {
	v.Self.Unload()
	return v.Self.Load()
}

func (v *Viewer) LoadGraphics() error { return nil }
func (v *Viewer) UnloadGraphics()     {}
func (v *Viewer) Layout()             {}

// ComputeSize returns the current size.
func (v *Viewer) ComputeSize() (int, int) {
	return v.rect.Width, v.rect.Height
}

func (v *Viewer) ResetSize(propagate bool) {
	w, h := v.Self.ComputeSize()
	if w == v.rect.Width && h == v.rect.Height {
		v.Self.Layout()
		return
	}
	v.rect.SetSize(w, h)
	if !propagate {
		return
	}
	if v.parent != nil {
		v.parent.ResetSize(true)
		return
	}
	v.Self.Layout()
}

func (v *Viewer) IsExpandable() bool { return false }

func (v *Viewer) Expand(width, height int) {
	v.rect.SetSize(width, height)
}

func (v *Viewer) Delete() {
	if v.loaded {
		v.Self.Unload()
	}
	if c, ok := v.Self.(Controller); ok && v.host != nil {
		v.host.RemoveController(c)
	}
	v.parent = nil
	v.host = nil
}
