package gui

// TitleFrame frames content below a title bar. The bar's end caps stretch
// to the width of the content.
type TitleFrame struct {
	VerticalLayout
}

// NewTitleFrame creates a frame titled title around content.
func NewTitleFrame(title string, content Node) *TitleFrame {
	bar := NewHorizontalLayout([]Node{
		NewGraphic(true, "titlebar", "left"),
		NewFrame(NewLabel(title, WithLabelPath("titlebar")), WithPath("titlebar", "center")),
		NewGraphic(true, "titlebar", "right"),
	}, WithVAlign(VAlignBottom), WithPadding(0))

	t := &TitleFrame{}
	t.padding = 0
	t.Container.init(t, []Node{
		bar,
		NewFrame(content, WithPath("titlebar", "frame"), WithExpandable(true)),
	})
	return t
}

// sectionCaps returns which end caps of a section header stretch for a
// title aligned by align.
func sectionCaps(align HAlign) (left, right bool) {
	switch align {
	case HAlignLeft:
		return false, true
	case HAlignRight:
		return true, false
	default:
		return true, true
	}
}

// SectionHeader is a horizontal rule with a title, used to divide a
// column of widgets.
type SectionHeader struct {
	HorizontalLayout
}

// NewSectionHeader creates a header titled title. align places the title
// along the rule.
func NewSectionHeader(title string, align HAlign) *SectionHeader {
	left, right := sectionCaps(align)
	h := &SectionHeader{}
	h.align = VAlignBottom
	h.padding = 0
	h.Container.init(h, []Node{
		NewGraphic(left, "section", "left"),
		NewFrame(NewLabel(title, WithLabelPath("section")), WithPath("section", "center")),
		NewGraphic(right, "section", "right"),
	})
	return h
}

// FoldingSection is a section header that shows or hides its content when
// clicked. The header carries an opened or closed icon.
type FoldingSection struct {
	VerticalLayout
	BaseController

	header  *HorizontalLayout
	book    *Graphic
	content Node
	open    bool
}

var _ Controller = (*FoldingSection)(nil)

// NewFoldingSection creates a section titled title folding content. The
// section starts open when open is true.
func NewFoldingSection(title string, content Node, open bool, align HAlign) *FoldingSection {
	if content == nil {
		content = NewSpacer(0, 0)
	}
	left, right := sectionCaps(align)
	f := &FoldingSection{content: content, open: open}
	f.book = NewGraphic(false, f.bookPath()...)
	f.header = NewHorizontalLayout([]Node{
		NewGraphic(left, "section", "left"),
		NewFrame(NewHorizontalLayout([]Node{
			f.book,
			NewLabel(title, WithLabelPath("section")),
		}), WithPath("section", "center")),
		NewGraphic(right, "section", "right"),
	}, WithVAlign(VAlignBottom), WithPadding(0))

	f.align = align
	f.padding = 5
	children := []Node{f.header}
	if open {
		children = append(children, content)
	}
	f.Container.init(f, children)
	return f
}

func (f *FoldingSection) bookPath() []string {
	if f.open {
		return []string{"section", "opened"}
	}
	return []string{"section", "closed"}
}

// IsOpen reports whether the content is shown.
func (f *FoldingSection) IsOpen() bool {
	return f.open
}

// Content returns the folded node.
func (f *FoldingSection) Content() Node {
	return f.content
}

// Toggle shows hidden content or hides shown content.
func (f *FoldingSection) Toggle() error {
	f.open = !f.open
	f.book.path = f.bookPath()
	if f.book.IsLoaded() {
		if err := f.book.Reload(); err != nil {
			return err
		}
	}
	if f.open {
		return f.Add(f.content)
	}
	f.Remove(f.content)
	return nil
}

// HitTest covers the header only.
func (f *FoldingSection) HitTest(x, y int) bool {
	return f.header.Contains(x, y)
}

func (f *FoldingSection) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	if err := f.Toggle(); err != nil && f.host != nil {
		f.host.ReportError(err)
	}
	return true
}

// Delete also deletes hidden content.
func (f *FoldingSection) Delete() {
	if !f.open {
		f.content.Delete()
	}
	f.VerticalLayout.Delete()
}
