package gui

// LayoutOption configures a layout node. Options that do not apply to the
// node they are passed to are ignored.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	padding    int
	halign     HAlign
	valign     VAlign
	anchor     Anchor
	offset     Point
	expandable bool
	path       []string
	imageKey   string
}

func newLayoutConfig(opts []LayoutOption) layoutConfig {
	cfg := layoutConfig{
		padding:  5,
		halign:   HAlignCenter,
		valign:   VAlignCenter,
		anchor:   AnchorCenter,
		imageKey: "image",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// --- Linear and grid options ---

// WithPadding sets the gap between children. Default is 5.
func WithPadding(padding int) LayoutOption {
	return func(c *layoutConfig) {
		c.padding = padding
	}
}

// WithHAlign sets how a VerticalLayout aligns children horizontally.
// Default is HAlignCenter.
func WithHAlign(align HAlign) LayoutOption {
	return func(c *layoutConfig) {
		c.halign = align
	}
}

// WithVAlign sets how a HorizontalLayout aligns children vertically.
// Default is VAlignCenter.
func WithVAlign(align VAlign) LayoutOption {
	return func(c *layoutConfig) {
		c.valign = align
	}
}

// --- Wrapper, frame and grid cell options ---

// WithContentAnchor sets the anchor used to place content: a Wrapper's
// content inside its bounds, or each GridLayout item inside its cell.
// Default is AnchorCenter for wrappers and AnchorTopLeft for grids.
func WithContentAnchor(anchor Anchor) LayoutOption {
	return func(c *layoutConfig) {
		c.anchor = anchor
	}
}

// WithContentOffset shifts content away from its anchor point.
func WithContentOffset(dx, dy int) LayoutOption {
	return func(c *layoutConfig) {
		c.offset = Point{X: dx, Y: dy}
	}
}

// WithExpandable lets a Wrapper or Frame grow to fill space offered by its
// parent.
func WithExpandable(expandable bool) LayoutOption {
	return func(c *layoutConfig) {
		c.expandable = expandable
	}
}

// WithPath sets the theme path a Frame reads its image from.
func WithPath(path ...string) LayoutOption {
	return func(c *layoutConfig) {
		c.path = path
	}
}

// WithImageKey sets the key of a Frame's image inside its theme path.
// Default is "image".
func WithImageKey(key string) LayoutOption {
	return func(c *layoutConfig) {
		c.imageKey = key
	}
}
