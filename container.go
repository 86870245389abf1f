package gui

import (
	"golang.org/x/exp/slices"
)

// Helpers shared by every node that owns children.

func attachAll(children []Node, h Host) {
	for _, ch := range children {
		if ch != nil {
			ch.Attach(h)
		}
	}
}

// loadAll loads children in order. On failure self is unloaded, which in
// turn unloads the children that did load.
func loadAll(self Node, children []Node) error {
	for _, ch := range children {
		if ch == nil {
			continue
		}
		if err := ch.Load(); err != nil {
			self.Unload()
			return err
		}
	}
	return nil
}

func unloadAll(children []Node) {
	for _, ch := range children {
		if ch != nil && ch.IsLoaded() {
			ch.Unload()
		}
	}
}

func resetAll(children []Node) {
	for _, ch := range children {
		if ch != nil {
			ch.ResetSize(false)
		}
	}
}

func deleteAll(children []Node) {
	for _, ch := range children {
		if ch != nil {
			ch.Delete()
		}
	}
}

// detach releases a child without deleting it, so it can be reused.
func detach(ch Node) {
	if ch.IsLoaded() {
		ch.Unload()
	}
	ch.Attach(nil)
	ch.SetParent(nil)
}

// Container is a node holding an ordered list of children. Layout policies
// embed it and supply ComputeSize and Layout.
type Container struct {
	Viewer
	children []Node
}

// init sets the back-pointer and adopts children. Nil entries become
// Spacers.
func (c *Container) init(self Node, children []Node) {
	c.Self = self
	c.children = make([]Node, len(children))
	for i, ch := range children {
		c.children[i] = c.adopt(ch)
	}
}

func (c *Container) adopt(ch Node) Node {
	if ch == nil {
		ch = NewSpacer(0, 0)
	}
	ch.SetParent(c.Self)
	return ch
}

// Children returns a copy of the child list.
func (c *Container) Children() []Node {
	return slices.Clone(c.children)
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

func (c *Container) Attach(h Host) {
	c.Viewer.Attach(h)
	attachAll(c.children, h)
}

func (c *Container) Load() error {
	if err := c.Viewer.Load(); err != nil {
		return err
	}
	return loadAll(c.Self, c.children)
}

func (c *Container) Unload() {
	unloadAll(c.children)
	c.Viewer.Unload()
}

// Add appends item. A loaded container loads the item and re-measures,
// rippling the size change to its ancestors.
func (c *Container) Add(item Node) error {
	item = c.adopt(item)
	c.children = append(c.children, item)
	if c.host != nil {
		item.Attach(c.host)
	}
	if !c.loaded {
		return nil
	}
	if err := item.Load(); err != nil {
		return err
	}
	item.ResetSize(false)
	c.Self.ResetSize(true)
	return nil
}

// Remove takes item out of the container without deleting it. It panics
// when item is not a child.
func (c *Container) Remove(item Node) {
	idx := slices.IndexFunc(c.children, func(n Node) bool { return n == item })
	if idx < 0 {
		panic("gui: removing node that is not a child")
	}
	detach(item)
	c.children = slices.Delete(c.children, idx, idx+1)
	if c.loaded {
		c.Self.ResetSize(true)
	}
}

// Set replaces every child. The previous children are detached, not
// deleted.
func (c *Container) Set(children []Node) error {
	for _, ch := range c.children {
		detach(ch)
	}
	c.children = make([]Node, len(children))
	for i, ch := range children {
		c.children[i] = c.adopt(ch)
	}
	if c.host != nil {
		attachAll(c.children, c.host)
	}
	if !c.loaded {
		return nil
	}
	for _, ch := range c.children {
		if err := ch.Load(); err != nil {
			return err
		}
		ch.ResetSize(false)
	}
	c.Self.ResetSize(true)
	return nil
}

func (c *Container) ResetSize(propagate bool) {
	if !propagate {
		resetAll(c.children)
	}
	c.Viewer.ResetSize(propagate)
}

func (c *Container) Delete() {
	if c.loaded {
		c.Self.Unload()
	}
	deleteAll(c.children)
	c.children = nil
	c.Viewer.Delete()
}
