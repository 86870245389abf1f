package draw

import "fmt"

// Color is a non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Transparent is the zero Color.
var Transparent = Color{}

// IsTransparent reports whether the color has no coverage.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
