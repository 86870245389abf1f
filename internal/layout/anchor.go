package layout

// VAlign is a vertical alignment.
type VAlign int8

const (
	VAlignBottom VAlign = iota - 1
	VAlignCenter
	VAlignTop
)

// HAlign is a horizontal alignment.
type HAlign int8

const (
	HAlignLeft HAlign = iota - 1
	HAlignCenter
	HAlignRight
)

// Anchor names one of nine reference points of a box.
type Anchor struct {
	V VAlign
	H HAlign
}

var (
	AnchorTopLeft     = Anchor{V: VAlignTop, H: HAlignLeft}
	AnchorTop         = Anchor{V: VAlignTop, H: HAlignCenter}
	AnchorTopRight    = Anchor{V: VAlignTop, H: HAlignRight}
	AnchorLeft        = Anchor{V: VAlignCenter, H: HAlignLeft}
	AnchorCenter      = Anchor{V: VAlignCenter, H: HAlignCenter}
	AnchorRight       = Anchor{V: VAlignCenter, H: HAlignRight}
	AnchorBottomLeft  = Anchor{V: VAlignBottom, H: HAlignLeft}
	AnchorBottom      = Anchor{V: VAlignBottom, H: HAlignCenter}
	AnchorBottomRight = Anchor{V: VAlignBottom, H: HAlignRight}
)

// point returns the coordinates of the anchor on r.
func (a Anchor) point(r Rect) Point {
	var p Point
	switch a.V {
	case VAlignTop:
		p.Y = r.Y + r.Height
	case VAlignCenter:
		p.Y = r.Y + r.Height/2
	default:
		p.Y = r.Y
	}
	switch a.H {
	case HAlignLeft:
		p.X = r.X
	case HAlignCenter:
		p.X = r.X + r.Width/2
	default:
		p.X = r.X + r.Width
	}
	return p
}

// RelativePoint returns the bottom-left corner at which a child of the given
// size must be placed so that its childAnchor point lands on the
// parentAnchor point of parent, shifted by offset.
func RelativePoint(parent Rect, parentAnchor Anchor, child Size, childAnchor Anchor, offset Point) Point {
	p := parentAnchor.point(parent)
	p = p.Add(offset)

	switch childAnchor.V {
	case VAlignTop:
		p.Y -= child.Height
	case VAlignCenter:
		p.Y -= child.Height / 2
	}
	switch childAnchor.H {
	case HAlignCenter:
		p.X -= child.Width / 2
	case HAlignRight:
		p.X -= child.Width
	}
	return p
}
