package gui

import "golang.org/x/exp/slices"

type freeEntry struct {
	anchor Anchor
	offset Point
	node   Node
}

// FreeLayout places nodes freely relative to anchor points of its own
// bounds. Nodes may overlap. It grows to fill the space offered by its
// parent and is never smaller than its minimum size.
type FreeLayout struct {
	Viewer
	minWidth, minHeight int
	entries             []freeEntry
}

// NewFreeLayout creates an empty free layout with a minimum size.
func NewFreeLayout(minWidth, minHeight int) *FreeLayout {
	f := &FreeLayout{minWidth: minWidth, minHeight: minHeight}
	f.Self = f
	return f
}

// Add places node so that its anchor point sits at the same anchor point of
// the layout, shifted by (dx, dy).
func (f *FreeLayout) Add(anchor Anchor, dx, dy int, node Node) error {
	node.SetParent(f)
	f.entries = append(f.entries, freeEntry{anchor: anchor, offset: Point{X: dx, Y: dy}, node: node})
	if f.host != nil {
		node.Attach(f.host)
	}
	if !f.loaded {
		return nil
	}
	if err := node.Load(); err != nil {
		return err
	}
	node.ResetSize(false)
	f.Layout()
	return nil
}

// Remove deletes node from the layout.
func (f *FreeLayout) Remove(node Node) {
	idx := slices.IndexFunc(f.entries, func(e freeEntry) bool { return e.node == node })
	if idx < 0 {
		panic("gui: removing node that is not in the layout")
	}
	f.entries = slices.Delete(f.entries, idx, idx+1)
	node.Delete()
}

func (f *FreeLayout) nodes() []Node {
	out := make([]Node, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.node
	}
	return out
}

// Nodes returns the placed nodes in insertion order.
func (f *FreeLayout) Nodes() []Node {
	return f.nodes()
}

func (f *FreeLayout) Attach(h Host) {
	f.Viewer.Attach(h)
	attachAll(f.nodes(), h)
}

func (f *FreeLayout) Load() error {
	if err := f.Viewer.Load(); err != nil {
		return err
	}
	return loadAll(f, f.nodes())
}

func (f *FreeLayout) Unload() {
	unloadAll(f.nodes())
	f.Viewer.Unload()
}

func (f *FreeLayout) ResetSize(propagate bool) {
	if !propagate {
		resetAll(f.nodes())
	}
	f.Viewer.ResetSize(propagate)
}

func (f *FreeLayout) IsExpandable() bool { return true }

func (f *FreeLayout) ComputeSize() (int, int) {
	return f.minWidth, f.minHeight
}

func (f *FreeLayout) Layout() {
	for _, e := range f.entries {
		size := Size{Width: e.node.Width(), Height: e.node.Height()}
		p := RelativePoint(f.Rect(), e.anchor, size, e.anchor, e.offset)
		e.node.SetPosition(p.X, p.Y)
	}
}

func (f *FreeLayout) Delete() {
	if f.loaded {
		f.Unload()
	}
	deleteAll(f.nodes())
	f.entries = nil
	f.Viewer.Delete()
}
