package tcellwin

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/grindlemire/go-gui/draw"
	"github.com/grindlemire/go-gui/internal/layout"
)

// Paint clears the screen and renders every primitive of the batch in
// paint order. Desktop rows grow upwards, so desktop row y lands on screen
// row height-1-y.
func (w *Window) Paint() {
	width, height := w.screen.Size()
	base := tcell.StyleDefault.Background(toTcell(w.background))
	w.screen.SetStyle(base)
	w.screen.Clear()

	p := painter{w: w, height: height, screen: layout.NewRect(0, 0, width, height)}
	for _, it := range w.batch.Items() {
		area := p.screen
		if clip, ok := it.Group().Clip(); ok {
			area = area.Intersect(clip)
		}
		if area.IsEmpty() {
			continue
		}
		switch v := it.(type) {
		case *draw.Quad:
			p.quad(v, area)
		case *draw.Text:
			p.text(v, area)
		}
	}
	w.screen.Show()
}

type painter struct {
	w      *Window
	height int
	screen layout.Rect
}

func (p painter) row(y int) int {
	return p.height - 1 - y
}

// cell returns what is currently shown at desktop cell (x, y).
func (p painter) cell(x, y int) (rune, []rune, tcell.Style) {
	r, comb, style, _ := p.w.screen.GetContent(x, p.row(y))
	return r, comb, style
}

func (p painter) background(style tcell.Style) colorful.Color {
	_, bg, _ := style.Decompose()
	if c, ok := fromTcell(bg); ok {
		return c
	}
	return toColorful(p.w.background)
}

// quad fills the cells of q inside area. Translucent fills keep the runes
// underneath and only tint their background. Outline quads at least two
// cells wide and high also get a box border in a lighter shade.
func (p painter) quad(q *draw.Quad, area layout.Rect) {
	if q.Color.IsTransparent() {
		return
	}
	r := q.Rect.Intersect(area)
	if r.IsEmpty() {
		return
	}
	alpha := float64(q.Color.A) / 255
	outline := q.Outline && q.Rect.Width >= 2 && q.Rect.Height >= 2
	chars := p.w.border.Chars()

	for y := r.Y; y < r.Top(); y++ {
		for x := r.X; x < r.Right(); x++ {
			ch, comb, style := p.cell(x, y)
			fill := p.background(style).BlendRgb(toColorful(q.Color), alpha).Clamped()
			style = style.Background(fromColorful(fill))
			if alpha >= 1 {
				ch, comb = ' ', nil
			}
			if outline {
				if edge, ok := borderRune(chars, q.Rect, x, y); ok {
					ch, comb = edge, nil
					style = style.Foreground(fromColorful(fill.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.4).Clamped()))
				}
			}
			p.w.screen.SetContent(x, p.row(y), ch, comb, style)
		}
	}
}

// text writes t one grapheme cluster at a time on the row whose bottom is
// the baseline, keeping each cell's background.
func (p painter) text(t *draw.Text, area layout.Rect) {
	if t.Color.IsTransparent() || t.Y < area.Y || t.Y >= area.Top() {
		return
	}
	x := t.X
	g := uniseg.NewGraphemes(t.Text)
	for g.Next() {
		runes := g.Runes()
		cw := runewidth.StringWidth(g.Str())
		if cw == 0 {
			continue
		}
		if x >= area.Right() {
			return
		}
		if x >= area.X {
			_, _, style := p.cell(x, t.Y)
			bg := p.background(style)
			fg := bg.BlendRgb(toColorful(t.Color), float64(t.Color.A)/255).Clamped()
			style = style.Foreground(fromColorful(fg)).Background(fromColorful(bg))
			p.w.screen.SetContent(x, p.row(t.Y), runes[0], runes[1:], style)
		}
		x += cw
	}
}

// borderRune returns the box character for desktop cell (x, y) when it lies
// on the edge of r.
func borderRune(c BorderChars, r layout.Rect, x, y int) (rune, bool) {
	left, right := x == r.X, x == r.Right()-1
	bottom, top := y == r.Y, y == r.Top()-1
	switch {
	case top && left:
		return c.TopLeft, true
	case top && right:
		return c.TopRight, true
	case bottom && left:
		return c.BottomLeft, true
	case bottom && right:
		return c.BottomRight, true
	case top:
		return c.Top, true
	case bottom:
		return c.Bottom, true
	case left:
		return c.Left, true
	case right:
		return c.Right, true
	}
	return 0, false
}

func toColorful(c draw.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toTcell(c draw.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// fromTcell converts an RGB terminal color. Default and palette-less colors
// report false.
func fromTcell(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
