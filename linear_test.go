package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinearLayout_ComputeSize(t *testing.T) {
	type tc struct {
		vertical bool
		sizes    []Size
		padding  int
		want     Size
	}

	tests := map[string]tc{
		"vertical empty": {
			vertical: true,
			padding:  5,
			want:     Size{},
		},
		"vertical single child has no padding": {
			vertical: true,
			sizes:    []Size{{Width: 30, Height: 20}},
			padding:  5,
			want:     Size{Width: 30, Height: 20},
		},
		"vertical two children": {
			vertical: true,
			sizes:    []Size{{Width: 50, Height: 50}, {Width: 50, Height: 50}},
			padding:  5,
			want:     Size{Width: 50, Height: 105},
		},
		"vertical three children takes widest": {
			vertical: true,
			sizes:    []Size{{Width: 10, Height: 5}, {Width: 20, Height: 5}, {Width: 15, Height: 5}},
			padding:  2,
			want:     Size{Width: 20, Height: 19},
		},
		"horizontal two children": {
			sizes:   []Size{{Width: 10, Height: 5}, {Width: 20, Height: 8}},
			padding: 3,
			want:    Size{Width: 33, Height: 8},
		},
		"horizontal zero padding": {
			sizes:   []Size{{Width: 1, Height: 1}, {Width: 1, Height: 1}, {Width: 1, Height: 1}},
			padding: 0,
			want:    Size{Width: 3, Height: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var children []Node
			for _, s := range tt.sizes {
				children = append(children, newBox(s.Width, s.Height))
			}
			var l Node
			if tt.vertical {
				l = NewVerticalLayout(children, WithPadding(tt.padding))
			} else {
				l = NewHorizontalLayout(children, WithPadding(tt.padding))
			}
			l.ResetSize(false)

			got := Size{Width: l.Width(), Height: l.Height()}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("size mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVerticalLayout_CenteredInManager(t *testing.T) {
	a, b := newBox(50, 50), newBox(50, 50)
	l := NewVerticalLayout([]Node{a, b})
	m, _ := newTestManager(t, l)

	if got := (Size{Width: l.Width(), Height: l.Height()}); got != (Size{Width: 50, Height: 105}) {
		t.Errorf("layout size = %+v, want {50 105}", got)
	}
	// 640/2 - 50/2 and 480/2 - 105/2 with integer division
	if m.X() != 295 || m.Y() != 188 {
		t.Errorf("manager position = (%d, %d), want (295, 188)", m.X(), m.Y())
	}
	if l.X() != 295 || l.Y() != 188 {
		t.Errorf("layout position = (%d, %d), want (295, 188)", l.X(), l.Y())
	}
	if a.X() != 295 || a.Y() != l.Y()+l.Height()-50 {
		t.Errorf("first child at (%d, %d), want (295, %d)", a.X(), a.Y(), l.Y()+l.Height()-50)
	}
	if b.Y() != 188 {
		t.Errorf("second child y = %d, want 188", b.Y())
	}
}

func TestVerticalLayout_Align(t *testing.T) {
	type tc struct {
		align HAlign
		wantX int
	}

	tests := map[string]tc{
		"left":   {align: HAlignLeft, wantX: 0},
		"center": {align: HAlignCenter, wantX: 10},
		"right":  {align: HAlignRight, wantX: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			narrow, wide := newBox(10, 5), newBox(30, 5)
			l := NewVerticalLayout([]Node{narrow, wide}, WithHAlign(tt.align))
			l.ResetSize(false)
			l.SetPosition(0, 0)

			if narrow.X() != tt.wantX {
				t.Errorf("narrow child x = %d, want %d", narrow.X(), tt.wantX)
			}
			if wide.X() != 0 {
				t.Errorf("wide child x = %d, want 0", wide.X())
			}
		})
	}
}

func TestHorizontalLayout_Align(t *testing.T) {
	type tc struct {
		align VAlign
		wantY int
	}

	tests := map[string]tc{
		"bottom": {align: VAlignBottom, wantY: 0},
		"center": {align: VAlignCenter, wantY: 10},
		"top":    {align: VAlignTop, wantY: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			short, tall := newBox(5, 10), newBox(5, 30)
			l := NewHorizontalLayout([]Node{short, tall}, WithVAlign(tt.align), WithPadding(2))
			l.ResetSize(false)
			l.SetPosition(0, 0)

			if short.Y() != tt.wantY {
				t.Errorf("short child y = %d, want %d", short.Y(), tt.wantY)
			}
			if tall.X() != 7 {
				t.Errorf("second child x = %d, want 7", tall.X())
			}
		})
	}
}

func TestVerticalLayout_ExpandSplitsExtraSpace(t *testing.T) {
	a, b, c := newGrowBox(10, 10), newBox(10, 10), newGrowBox(10, 10)
	l := NewVerticalLayout([]Node{a, b, c}, WithPadding(0))
	l.ResetSize(false)

	if !l.IsExpandable() {
		t.Fatal("IsExpandable() = false with expandable children, want true")
	}
	l.Expand(20, 35)
	l.SetPosition(0, 0)

	got := []Rect{a.Rect(), b.Rect(), c.Rect()}
	want := []Rect{
		NewRect(0, 22, 20, 13),
		NewRect(5, 12, 10, 10),
		NewRect(0, 0, 20, 12),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("child rects mismatch (-want +got):\n%s", diff)
	}
}

func TestResetSize_Propagation(t *testing.T) {
	type tc struct {
		newHeight  int
		propagate  bool
		wantOuterH int
		wantAY     int
		wantLaidA  int
	}

	tests := map[string]tc{
		"changed size ripples to the root": {
			newHeight:  20,
			propagate:  true,
			wantOuterH: 35,
			wantAY:     15,
			wantLaidA:  1,
		},
		"changed size without propagation stays local": {
			newHeight:  20,
			propagate:  false,
			wantOuterH: 25,
			wantAY:     15,
			wantLaidA:  0,
		},
		"same size lays out the node only": {
			newHeight:  10,
			propagate:  true,
			wantOuterH: 25,
			wantAY:     15,
			wantLaidA:  1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, b := newBox(10, 10), newBox(10, 10)
			inner := NewVerticalLayout([]Node{a})
			outer := NewVerticalLayout([]Node{inner, b})
			outer.ResetSize(false)
			outer.SetPosition(0, 0)
			a.layouts, b.layouts = 0, 0

			a.h = tt.newHeight
			a.ResetSize(tt.propagate)

			if outer.Height() != tt.wantOuterH {
				t.Errorf("outer height = %d, want %d", outer.Height(), tt.wantOuterH)
			}
			if a.Y() != tt.wantAY {
				t.Errorf("a.Y() = %d, want %d", a.Y(), tt.wantAY)
			}
			if a.layouts != tt.wantLaidA {
				t.Errorf("a laid out %d times, want %d", a.layouts, tt.wantLaidA)
			}
			if a.Height() != tt.newHeight {
				t.Errorf("a height = %d, want %d", a.Height(), tt.newHeight)
			}
		})
	}
}

func TestLayout_Idempotent(t *testing.T) {
	a, b, c := newBox(10, 10), newGrowBox(5, 5), newBox(20, 7)
	row := NewHorizontalLayout([]Node{b, c})
	col := NewVerticalLayout([]Node{a, row}, WithHAlign(HAlignRight))
	m, _ := newTestManager(t, col)

	rects := func() []Rect {
		return []Rect{m.Rect(), col.Rect(), a.Rect(), row.Rect(), b.Rect(), c.Rect()}
	}
	first := rects()
	m.Layout()
	m.Layout()
	if diff := cmp.Diff(first, rects()); diff != "" {
		t.Errorf("repeated Layout moved nodes (-first +again):\n%s", diff)
	}
}

func TestContainer_AddRemove(t *testing.T) {
	a := newBox(10, 10)
	l := NewVerticalLayout([]Node{a})
	m, _ := newTestManager(t, l)

	b := newBox(10, 20)
	if err := l.Add(b); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !b.IsLoaded() || b.Parent() != l {
		t.Errorf("added child loaded = %v, parent = %v; want loaded child of the layout", b.IsLoaded(), b.Parent())
	}
	if l.Height() != 35 || m.Height() != 35 {
		t.Errorf("heights after Add = layout %d, manager %d; want 35", l.Height(), m.Height())
	}

	l.Remove(b)
	if b.IsLoaded() || b.Parent() != nil || b.Host() != nil {
		t.Error("removed child still loaded or linked")
	}
	if l.Height() != 10 || l.Len() != 1 {
		t.Errorf("after Remove height = %d, len = %d; want 10, 1", l.Height(), l.Len())
	}

	defer func() {
		if recover() == nil {
			t.Error("Remove() of a non-child did not panic")
		}
	}()
	l.Remove(b)
}

func TestContainer_NilChildBecomesSpacer(t *testing.T) {
	l := NewHorizontalLayout([]Node{newBox(1, 1), nil})
	if _, ok := l.Children()[1].(*Spacer); !ok {
		t.Errorf("nil child became %T, want *Spacer", l.Children()[1])
	}
}
