package gui

import "testing"

func TestScrollbar_KnobOffset(t *testing.T) {
	type tc struct {
		vertical bool
		length   int
		visible  int
		total    int
		pos      float64
		wantPos  float64
		want     int
	}

	tests := map[string]tc{
		"vertical starts at the top": {
			vertical: true, length: 10, visible: 10, total: 40,
			pos: 0, wantPos: 0.125, want: 0,
		},
		"vertical middle": {
			vertical: true, length: 10, visible: 10, total: 40,
			pos: 0.5, wantPos: 0.5, want: 15,
		},
		"vertical clamped at the bottom": {
			vertical: true, length: 10, visible: 10, total: 40,
			pos: 2, wantPos: 0.875, want: 30,
		},
		"horizontal middle": {
			length: 20, visible: 20, total: 80,
			pos: 0.5, wantPos: 0.5, want: 30,
		},
		"content fits": {
			length: 20, visible: 20, total: 10,
			pos: 0.9, wantPos: 0.5, want: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var sb *scrollbar
			if tt.vertical {
				v := NewVScrollbar(tt.length)
				v.SetSize(1, tt.length)
				sb = &v.scrollbar
			} else {
				h := NewHScrollbar(tt.length)
				h.SetSize(tt.length, 1)
				sb = &h.scrollbar
			}
			sb.SetKnobSize(tt.visible, tt.total)
			sb.SetKnobPosition(tt.pos)

			if sb.KnobPosition() != tt.wantPos {
				t.Errorf("KnobPosition() = %g, want %g", sb.KnobPosition(), tt.wantPos)
			}
			if got := sb.KnobOffset(); got != tt.want {
				t.Errorf("KnobOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScrollbar_Wheel(t *testing.T) {
	v := NewVScrollbar(10)
	v.SetSize(1, 10)
	v.SetKnobSize(10, 20)

	start := v.KnobPosition()
	v.OnMouseScroll(0, 0, 0, 1)
	if v.KnobPosition() <= start {
		t.Errorf("wheel down moved the knob from %g to %g, want further down", start, v.KnobPosition())
	}
	for i := 0; i < 20; i++ {
		v.OnMouseScroll(0, 0, 0, 1)
	}
	if v.KnobPosition() != 0.75 {
		t.Errorf("KnobPosition() = %g after scrolling past the end, want 0.75", v.KnobPosition())
	}

	h := NewHScrollbar(10)
	h.SetSize(10, 1)
	h.SetKnobSize(10, 20)
	h.SetKnobPosition(0.75)
	h.OnMouseScroll(0, 0, 1, 0)
	if h.KnobPosition() >= 0.75 {
		t.Errorf("wheel right moved the horizontal knob to %g, want left of 0.75", h.KnobPosition())
	}
}
