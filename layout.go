// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package gui

import "github.com/grindlemire/go-gui/internal/layout"

// Rect represents a rectangle with a bottom-left position and dimensions.
type Rect = layout.Rect

// Point represents an (X, Y) coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// VAlign is a vertical alignment.
type VAlign = layout.VAlign

const (
	VAlignTop    = layout.VAlignTop
	VAlignCenter = layout.VAlignCenter
	VAlignBottom = layout.VAlignBottom
)

// HAlign is a horizontal alignment.
type HAlign = layout.HAlign

const (
	HAlignLeft   = layout.HAlignLeft
	HAlignCenter = layout.HAlignCenter
	HAlignRight  = layout.HAlignRight
)

// Anchor names one of nine reference points of a box.
type Anchor = layout.Anchor

var (
	AnchorTopLeft     = layout.AnchorTopLeft
	AnchorTop         = layout.AnchorTop
	AnchorTopRight    = layout.AnchorTopRight
	AnchorLeft        = layout.AnchorLeft
	AnchorCenter      = layout.AnchorCenter
	AnchorRight       = layout.AnchorRight
	AnchorBottomLeft  = layout.AnchorBottomLeft
	AnchorBottom      = layout.AnchorBottom
	AnchorBottomRight = layout.AnchorBottomRight
)

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// RelativePoint returns where a child of the given size must be placed so
// that its childAnchor lands on parentAnchor of parent, shifted by offset.
func RelativePoint(parent Rect, parentAnchor Anchor, child Size, childAnchor Anchor, offset Point) Point {
	return layout.RelativePoint(parent, parentAnchor, child, childAnchor, offset)
}
