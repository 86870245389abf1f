package gui

// VerticalLayout stacks its children top to bottom.
type VerticalLayout struct {
	Container
	align      HAlign
	padding    int
	expandable []Node
}

// NewVerticalLayout creates a vertical stack of children. Nil children
// become Spacers.
func NewVerticalLayout(children []Node, opts ...LayoutOption) *VerticalLayout {
	cfg := newLayoutConfig(opts)
	l := &VerticalLayout{align: cfg.halign, padding: cfg.padding}
	l.init(l, children)
	return l
}

// Padding returns the gap between children.
func (l *VerticalLayout) Padding() int {
	return l.padding
}

// Align returns the horizontal alignment of children.
func (l *VerticalLayout) Align() HAlign {
	return l.align
}

// ComputeSize sums the children's heights plus the padding between them.
// The width is the widest child.
func (l *VerticalLayout) ComputeSize() (int, int) {
	width, height := 0, 0
	l.expandable = l.expandable[:0]
	for i, ch := range l.children {
		if i > 0 {
			height += l.padding
		}
		height += ch.Height()
		width = max(width, ch.Width())
		if ch.IsExpandable() {
			l.expandable = append(l.expandable, ch)
		}
	}
	return width, height
}

func (l *VerticalLayout) IsExpandable() bool {
	return len(l.expandable) > 0
}

// Expand splits the extra height evenly over the expandable children. The
// remainder goes one unit each to the first of them.
func (l *VerticalLayout) Expand(width, height int) {
	if n := len(l.expandable); n > 0 {
		extra := height - l.Height()
		each := extra / n
		rem := extra - each*n
		for _, ch := range l.expandable {
			grow := each
			if rem > 0 {
				grow++
				rem--
			}
			ch.Expand(ch.Width(), ch.Height()+grow)
		}
	}
	l.SetSize(width, height)
}

func (l *VerticalLayout) Layout() {
	for _, ch := range l.children {
		if ch.IsExpandable() && ch.Width() < l.Width() {
			ch.Expand(l.Width(), ch.Height())
		}
	}

	top := l.Y() + l.Height()
	for _, ch := range l.children {
		var x int
		switch l.align {
		case HAlignLeft:
			x = l.X()
		case HAlignRight:
			x = l.X() + l.Width() - ch.Width()
		default:
			x = l.X() + l.Width()/2 - ch.Width()/2
		}
		ch.SetPosition(x, top-ch.Height())
		top -= ch.Height() + l.padding
	}
}

// HorizontalLayout places its children left to right.
type HorizontalLayout struct {
	Container
	align      VAlign
	padding    int
	expandable []Node
}

// NewHorizontalLayout creates a horizontal row of children. Nil children
// become Spacers.
func NewHorizontalLayout(children []Node, opts ...LayoutOption) *HorizontalLayout {
	cfg := newLayoutConfig(opts)
	l := &HorizontalLayout{align: cfg.valign, padding: cfg.padding}
	l.init(l, children)
	return l
}

// Padding returns the gap between children.
func (l *HorizontalLayout) Padding() int {
	return l.padding
}

// Align returns the vertical alignment of children.
func (l *HorizontalLayout) Align() VAlign {
	return l.align
}

func (l *HorizontalLayout) ComputeSize() (int, int) {
	width, height := 0, 0
	l.expandable = l.expandable[:0]
	for i, ch := range l.children {
		if i > 0 {
			width += l.padding
		}
		width += ch.Width()
		height = max(height, ch.Height())
		if ch.IsExpandable() {
			l.expandable = append(l.expandable, ch)
		}
	}
	return width, height
}

func (l *HorizontalLayout) IsExpandable() bool {
	return len(l.expandable) > 0
}

// Expand splits the extra width evenly over the expandable children.
func (l *HorizontalLayout) Expand(width, height int) {
	if n := len(l.expandable); n > 0 {
		extra := width - l.Width()
		each := extra / n
		rem := extra - each*n
		for _, ch := range l.expandable {
			grow := each
			if rem > 0 {
				grow++
				rem--
			}
			ch.Expand(ch.Width()+grow, ch.Height())
		}
	}
	l.SetSize(width, height)
}

func (l *HorizontalLayout) Layout() {
	for _, ch := range l.children {
		if ch.IsExpandable() && ch.Height() < l.Height() {
			ch.Expand(ch.Width(), l.Height())
		}
	}

	left := l.X()
	for _, ch := range l.children {
		var y int
		switch l.align {
		case VAlignTop:
			y = l.Y() + l.Height() - ch.Height()
		case VAlignBottom:
			y = l.Y()
		default:
			y = l.Y() + l.Height()/2 - ch.Height()/2
		}
		ch.SetPosition(left, y)
		left += ch.Width() + l.padding
	}
}
