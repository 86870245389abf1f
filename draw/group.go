package draw

import "github.com/grindlemire/go-gui/internal/layout"

// Layer is the fixed order of the four groups every dialog draws into.
type Layer int

const (
	LayerPanel      Layer = 10
	LayerBackground Layer = 20
	LayerForeground Layer = 30
	LayerHighlight  Layer = 40
)

// Layers lists every Layer in paint order.
var Layers = []Layer{LayerPanel, LayerBackground, LayerForeground, LayerHighlight}

func (l Layer) String() string {
	switch l {
	case LayerPanel:
		return "panel"
	case LayerBackground:
		return "background"
	case LayerForeground:
		return "foreground"
	case LayerHighlight:
		return "highlight"
	}
	return "unknown"
}

// Group orders primitives. Groups form a tree; a group paints after every
// group whose order chain from the root compares lower, and after its own
// ancestors.
type Group struct {
	order  int
	parent *Group
	clip   *layout.Rect
}

// NewGroup creates a group with the given order below parent, which may be nil.
func NewGroup(order int, parent *Group) *Group {
	return &Group{order: order, parent: parent}
}

// Order returns the group's order among its siblings.
func (g *Group) Order() int {
	return g.order
}

// SetOrder changes the group's order among its siblings.
func (g *Group) SetOrder(order int) {
	g.order = order
}

// Parent returns the parent group, or nil for a root.
func (g *Group) Parent() *Group {
	return g.parent
}

// SetClip restricts everything in this group and its descendants to r.
func (g *Group) SetClip(r layout.Rect) {
	g.clip = &r
}

// ClearClip removes the group's own clip.
func (g *Group) ClearClip() {
	g.clip = nil
}

// Clip returns the effective clip of the group: the intersection of its own
// clip with every ancestor clip. ok is false when nothing clips the group.
func (g *Group) Clip() (r layout.Rect, ok bool) {
	for cur := g; cur != nil; cur = cur.parent {
		if cur.clip == nil {
			continue
		}
		if !ok {
			r, ok = *cur.clip, true
			continue
		}
		r = r.Intersect(*cur.clip)
	}
	return r, ok
}

// chain returns the orders from the root down to g.
func (g *Group) chain() []int {
	var orders []int
	for cur := g; cur != nil; cur = cur.parent {
		orders = append(orders, cur.order)
	}
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders
}

// compareGroups orders a before b when its chain compares lower; an
// ancestor sorts before its descendants.
func compareGroups(a, b *Group) int {
	if a == b {
		return 0
	}
	ca, cb := a.chain(), b.chain()
	for i := 0; i < len(ca) && i < len(cb); i++ {
		if ca[i] != cb[i] {
			if ca[i] < cb[i] {
				return -1
			}
			return 1
		}
	}
	return len(ca) - len(cb)
}
