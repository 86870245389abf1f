package text

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Style selects the font a run is measured with.
type Style struct {
	Font string
	Size int
}

// Box is the measured extent of a run. Descent is zero or negative, the
// distance from the baseline down to the lowest glyph.
type Box struct {
	Width   int
	Ascent  int
	Descent int
}

// Height returns Ascent - Descent.
func (b Box) Height() int {
	return b.Ascent - b.Descent
}

// Measurer measures single-line text runs.
type Measurer interface {
	Measure(s string, st Style) Box
}

// CellMeasurer measures in terminal cells: every line is one cell high and
// a run is as wide as its display width.
type CellMeasurer struct{}

// Measure implements Measurer.
func (CellMeasurer) Measure(s string, _ Style) Box {
	return Box{Width: runewidth.StringWidth(s), Ascent: 1}
}

// BasicMeasurer measures with the fixed 7x13 bitmap face, independent of
// the requested style.
type BasicMeasurer struct{}

// Measure implements Measurer.
func (BasicMeasurer) Measure(s string, _ Style) Box {
	return measureFace(basicfont.Face7x13, s)
}

// FontMeasurer measures with the Go fonts. Faces are built on first use and
// cached per font and size.
type FontMeasurer struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[Style]font.Face
}

// NewFontMeasurer parses the bundled Go fonts, registered as "goregular"
// and "gomono".
func NewFontMeasurer() (*FontMeasurer, error) {
	m := &FontMeasurer{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[Style]font.Face),
	}
	for name, data := range map[string][]byte{
		"goregular": goregular.TTF,
		"gomono":    gomono.TTF,
	} {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", name)
		}
		m.fonts[name] = f
	}
	return m, nil
}

// Register adds a TrueType or OpenType font under name.
func (m *FontMeasurer) Register(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[name] = f
	for st := range m.faces {
		if st.Font == name {
			delete(m.faces, st)
		}
	}
	return nil
}

// Measure implements Measurer. Unknown fonts fall back to "goregular".
func (m *FontMeasurer) Measure(s string, st Style) Box {
	return measureFace(m.face(st), s)
}

func (m *FontMeasurer) face(st Style) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[st]; ok {
		return face
	}
	f, ok := m.fonts[st.Font]
	if !ok {
		f = m.fonts["goregular"]
	}
	size := st.Size
	if size <= 0 {
		size = 12
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = basicfont.Face7x13
	}
	m.faces[st] = face
	return face
}

func measureFace(face font.Face, s string) Box {
	metrics := face.Metrics()
	return Box{
		Width:   font.MeasureString(face, s).Ceil(),
		Ascent:  metrics.Ascent.Ceil(),
		Descent: -metrics.Descent.Ceil(),
	}
}

// Wrap splits s into lines no wider than width, breaking at spaces where
// possible. Explicit newlines are kept.
func Wrap(m Measurer, st Style, s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if m.Measure(candidate, st).Width > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
