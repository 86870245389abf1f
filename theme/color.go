package theme

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/grindlemire/go-gui/draw"
)

// Color resolves path to a color. Colors are written either as hex strings
// ("#rrggbb") or as [r, g, b, a] lists with components in 0..255.
func (s *Scope) Color(path ...string) (draw.Color, error) {
	v, err := s.Get(path...)
	if err != nil {
		return draw.Color{}, err
	}
	c, err := ParseColor(v)
	if err != nil {
		return draw.Color{}, errors.Wrapf(err, "path %q", path)
	}
	return c, nil
}

// ParseColor converts a decoded JSON value into a color.
func ParseColor(v any) (draw.Color, error) {
	switch c := v.(type) {
	case draw.Color:
		return c, nil
	case string:
		hex, err := colorful.Hex(c)
		if err != nil {
			return draw.Color{}, errors.Wrapf(ErrWrongType, "color %q: %v", c, err)
		}
		r, g, b := hex.RGB255()
		return draw.RGBA(r, g, b, 255), nil
	}
	ns, ok := toInts(v)
	if !ok || (len(ns) != 3 && len(ns) != 4) {
		return draw.Color{}, errors.Wrapf(ErrWrongType, "color %v", v)
	}
	if len(ns) == 3 {
		ns = append(ns, 255)
	}
	for _, n := range ns {
		if n < 0 || n > 255 {
			return draw.Color{}, errors.Wrapf(ErrWrongType, "color component %d out of range", n)
		}
	}
	return draw.RGBA(uint8(ns[0]), uint8(ns[1]), uint8(ns[2]), uint8(ns[3])), nil
}
