package theme

import (
	"github.com/pkg/errors"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/internal/layout"
)

// Template generates drawables of one visual.
type Template interface {
	// Generate adds a new drawable to t tinted with c.
	Generate(c draw.Color, t draw.Target) Drawable
	// Size returns the natural size of the visual.
	Size() layout.Size
}

// Drawable is a live visual owned by a single widget.
type Drawable interface {
	// Update moves and resizes the drawable.
	Update(x, y, width, height int)
	// ContentRegion is the area inside the drawable's padding.
	ContentRegion() layout.Rect
	// ContentSize converts an outer size into the size left for content.
	ContentSize(width, height int) (int, int)
	// NeededSize converts a content size into the outer size required to
	// hold it.
	NeededSize(contentWidth, contentHeight int) (int, int)
	Width() int
	Height() int
	// Unload removes the drawable from its target.
	Unload()
}

// Image is a rectangular visual with an optional nine-slice frame. A framed
// image can stretch to hold any content; its padding separates the frame
// from the content.
type Image struct {
	name    string
	size    layout.Size
	framed  bool
	margins [4]int // left, right, top, bottom
	padding [4]int // left, right, top, bottom
}

// NewImage creates a plain image template of the given natural size.
func NewImage(name string, width, height int) *Image {
	return &Image{name: name, size: layout.Size{Width: width, Height: height}}
}

// NewFrame creates a framed image template. frame is the inner stretchable
// region (x, y, width, height) of the natural size; padding is left, right,
// top, bottom.
func NewFrame(name string, width, height int, frame [4]int, padding [4]int) *Image {
	x, y, w, h := frame[0], frame[1], frame[2], frame[3]
	return &Image{
		name:    name,
		size:    layout.Size{Width: width, Height: height},
		framed:  true,
		margins: [4]int{x, width - w - x, height - h - y, y},
		padding: padding,
	}
}

// Name returns the path the template was parsed from.
func (im *Image) Name() string { return im.name }

// Size returns the natural size of the image.
func (im *Image) Size() layout.Size { return im.size }

// Framed reports whether the image carries a frame.
func (im *Image) Framed() bool { return im.framed }

// Margins returns the frame's left, right, top and bottom borders.
func (im *Image) Margins() [4]int { return im.margins }

// Padding returns the left, right, top and bottom content padding.
func (im *Image) Padding() [4]int { return im.padding }

// Generate adds a quad for the image to t.
func (im *Image) Generate(c draw.Color, t draw.Target) Drawable {
	q := t.Quad(layout.NewRect(0, 0, im.size.Width, im.size.Height), c)
	q.Name = im.name
	q.Outline = im.framed
	return &Element{
		rect:   q.Rect,
		image:  im,
		quad:   q,
		target: t,
	}
}

// parseImage reads an image spec: either a bare [width, height] list or an
// object {"size": [w, h], "frame": [x, y, w, h], "padding": [l, r, t, b]}.
func parseImage(name string, v any) (*Image, error) {
	if size, ok := toInts(v); ok {
		if len(size) != 2 {
			return nil, errors.Wrapf(ErrWrongType, "image %s: size must have 2 values", name)
		}
		return NewImage(name, size[0], size[1]), nil
	}

	spec, ok := v.(map[string]any)
	if !ok {
		return nil, errors.Wrapf(ErrWrongType, "image %s: unexpected %T", name, v)
	}
	size, ok := toInts(spec["size"])
	if !ok || len(size) != 2 {
		return nil, errors.Wrapf(ErrWrongType, "image %s: size must have 2 values", name)
	}

	rawFrame, hasFrame := spec["frame"]
	if !hasFrame {
		return NewImage(name, size[0], size[1]), nil
	}
	frame, ok := toInts(rawFrame)
	if !ok || len(frame) != 4 {
		return nil, errors.Wrapf(ErrWrongType, "image %s: frame must have 4 values", name)
	}
	padding := []int{0, 0, 0, 0}
	if rawPadding, ok := spec["padding"]; ok {
		padding, ok = toInts(rawPadding)
		if !ok || len(padding) != 4 {
			return nil, errors.Wrapf(ErrWrongType, "image %s: padding must have 4 values", name)
		}
	}
	return NewFrame(name, size[0], size[1],
		[4]int{frame[0], frame[1], frame[2], frame[3]},
		[4]int{padding[0], padding[1], padding[2], padding[3]}), nil
}
