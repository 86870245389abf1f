package theme

import (
	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/internal/layout"
)

// Element is the Drawable generated by an Image.
type Element struct {
	rect   layout.Rect
	image  *Image
	quad   *draw.Quad
	target draw.Target
}

// Update moves and resizes the element.
func (e *Element) Update(x, y, width, height int) {
	e.rect = layout.NewRect(x, y, width, height)
	if e.quad != nil {
		e.quad.Rect = e.rect
	}
}

// ContentRegion returns the element's rect minus the image padding.
func (e *Element) ContentRegion() layout.Rect {
	l, r, t, b := e.image.padding[0], e.image.padding[1], e.image.padding[2], e.image.padding[3]
	return layout.NewRect(e.rect.X+l, e.rect.Y+b, e.rect.Width-l-r, e.rect.Height-t-b)
}

// ContentSize returns the content area left inside an outer size.
func (e *Element) ContentSize(width, height int) (int, int) {
	l, r, t, b := e.image.padding[0], e.image.padding[1], e.image.padding[2], e.image.padding[3]
	return width - l - r, height - t - b
}

// NeededSize returns the outer size required to hold content. A framed
// image never shrinks below its natural size; a plain image takes exactly
// the content size.
func (e *Element) NeededSize(contentWidth, contentHeight int) (int, int) {
	if !e.image.framed {
		return contentWidth, contentHeight
	}
	l, r, t, b := e.image.padding[0], e.image.padding[1], e.image.padding[2], e.image.padding[3]
	return max(contentWidth+l+r, e.image.size.Width), max(contentHeight+t+b, e.image.size.Height)
}

// Rect returns the element's current bounds.
func (e *Element) Rect() layout.Rect { return e.rect }

func (e *Element) Width() int  { return e.rect.Width }
func (e *Element) Height() int { return e.rect.Height }

// Quad returns the primitive backing the element, or nil once unloaded.
func (e *Element) Quad() *draw.Quad { return e.quad }

// Unload removes the element's primitive from its target.
func (e *Element) Unload() {
	if e.quad == nil {
		return
	}
	e.target.Remove(e.quad)
	e.quad = nil
}
