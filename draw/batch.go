package draw

import (
	"golang.org/x/exp/slices"

	"github.com/grindlemire/go-gui/internal/layout"
)

// Item is a retained primitive owned by a Batch.
type Item interface {
	// Group returns the group the item paints in.
	Group() *Group
	seq() uint64
}

// Quad is a filled rectangle. Outline quads paint a frame border instead
// of a solid fill.
type Quad struct {
	Rect    layout.Rect
	Color   Color
	Outline bool
	// Name is the theme path the quad was generated from, used by backends
	// to pick a visual and by tests to find it.
	Name string

	group *Group
	n     uint64
}

func (q *Quad) Group() *Group { return q.group }
func (q *Quad) seq() uint64   { return q.n }

// Text is a run of text whose baseline starts at (X, Y).
type Text struct {
	X, Y  int
	Text  string
	Color Color
	Font  string
	Size  int

	group *Group
	n     uint64
}

func (t *Text) Group() *Group { return t.group }
func (t *Text) seq() uint64   { return t.n }

// Batch is an unordered set of primitives painted in group order.
type Batch struct {
	items []Item
	next  uint64
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// AddQuad adds a filled rectangle to g.
func (b *Batch) AddQuad(g *Group, r layout.Rect, c Color) *Quad {
	b.next++
	q := &Quad{Rect: r, Color: c, group: g, n: b.next}
	b.items = append(b.items, q)
	return q
}

// AddText adds a text run to g.
func (b *Batch) AddText(g *Group, x, y int, s string, c Color, font string, size int) *Text {
	b.next++
	t := &Text{X: x, Y: y, Text: s, Color: c, Font: font, Size: size, group: g, n: b.next}
	b.items = append(b.items, t)
	return t
}

// Remove deletes item from the batch. Removing an unknown item is a no-op.
func (b *Batch) Remove(item Item) {
	if i := slices.Index(b.items, item); i >= 0 {
		b.items = slices.Delete(b.items, i, i+1)
	}
}

// Len returns the number of live primitives.
func (b *Batch) Len() int {
	return len(b.items)
}

// Items returns the primitives in paint order: by group, then by insertion.
func (b *Batch) Items() []Item {
	items := slices.Clone(b.items)
	slices.SortStableFunc(items, func(x, y Item) bool {
		if c := compareGroups(x.Group(), y.Group()); c != 0 {
			return c < 0
		}
		return x.seq() < y.seq()
	})
	return items
}

// Target is where a widget adds its primitives.
type Target struct {
	Batch *Batch
	Group *Group
}

// Quad adds a filled rectangle to the target.
func (t Target) Quad(r layout.Rect, c Color) *Quad {
	return t.Batch.AddQuad(t.Group, r, c)
}

// Text adds a text run to the target.
func (t Target) Text(x, y int, s string, c Color, font string, size int) *Text {
	return t.Batch.AddText(t.Group, x, y, s, c, font, size)
}

// Remove deletes item from the target's batch. A nil item is ignored.
func (t Target) Remove(item Item) {
	if item == nil || t.Batch == nil {
		return
	}
	t.Batch.Remove(item)
}
