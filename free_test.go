package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreeLayout_Placement(t *testing.T) {
	type tc struct {
		anchor  Anchor
		dx, dy  int
		w, h    int
		wantRel Point
	}

	tests := map[string]tc{
		"top left":      {anchor: AnchorTopLeft, w: 10, h: 10, wantRel: Point{X: 0, Y: 40}},
		"center offset": {anchor: AnchorCenter, dx: 5, dy: -5, w: 20, h: 10, wantRel: Point{X: 45, Y: 15}},
		"bottom right":  {anchor: AnchorBottomRight, w: 10, h: 10, wantRel: Point{X: 90, Y: 0}},
		"top":           {anchor: AnchorTop, w: 4, h: 2, wantRel: Point{X: 48, Y: 48}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFreeLayout(100, 50)
			n := newBox(tt.w, tt.h)
			if err := f.Add(tt.anchor, tt.dx, tt.dy, n); err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			newTestManager(t, f)

			if f.Width() != 100 || f.Height() != 50 {
				t.Fatalf("layout size = %dx%d, want its minimum 100x50", f.Width(), f.Height())
			}
			got := Point{X: n.X() - f.X(), Y: n.Y() - f.Y()}
			if diff := cmp.Diff(tt.wantRel, got); diff != "" {
				t.Errorf("relative position mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFreeLayout_AddRemoveWhileLoaded(t *testing.T) {
	f := NewFreeLayout(30, 20)
	first := newBox(5, 5)
	if err := f.Add(AnchorBottomLeft, 1, 1, first); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	newTestManager(t, f)

	late := newBox(6, 4)
	if err := f.Add(AnchorTopRight, 0, 0, late); err != nil {
		t.Fatalf("Add() on a loaded layout error = %v", err)
	}
	if !late.IsLoaded() {
		t.Fatal("node added to a loaded layout was not loaded")
	}
	if got := (Point{X: late.X() - f.X(), Y: late.Y() - f.Y()}); got != (Point{X: 24, Y: 16}) {
		t.Errorf("late node at %+v, want {X:24 Y:16}", got)
	}

	f.Remove(late)
	if late.IsLoaded() || len(f.Nodes()) != 1 {
		t.Errorf("after Remove: loaded = %v, %d nodes; want unloaded and 1 node", late.IsLoaded(), len(f.Nodes()))
	}

	defer func() {
		if recover() == nil {
			t.Error("removing a node twice did not panic")
		}
	}()
	f.Remove(late)
}
