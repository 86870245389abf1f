package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

func TestButton_Toggle(t *testing.T) {
	var states []bool
	b := NewButton("Go", WithOnPress(func(p bool) { states = append(states, p) }))
	m, d := newTestManager(t, b)

	if !slices.Contains(texts(m.Batch()), "Go") {
		t.Errorf("label not drawn, texts = %v", texts(m.Batch()))
	}
	click(d, b)
	click(d, b)
	click(d, b)

	if diff := cmp.Diff([]bool{true, false, true}, states); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"button", "down"}, b.Path()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestButton_Keyboard(t *testing.T) {
	type tc struct {
		opts      []ButtonOption
		wantState bool
	}

	tests := map[string]tc{
		"plain button is not reachable": {
			wantState: false,
		},
		"focusable button toggles on enter": {
			opts:      []ButtonOption{WithFocus()},
			wantState: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewButton("Go", tt.opts...)
			_, d := newTestManager(t, b)

			d.KeyPress(KeyTab, ModNone)
			d.KeyPress(KeyEnter, ModNone)
			if b.IsPressed() != tt.wantState {
				t.Errorf("IsPressed() = %v, want %v", b.IsPressed(), tt.wantState)
			}
		})
	}
}

func TestOneTimeButton_Release(t *testing.T) {
	type tc struct {
		releaseInside bool
		wantFired     int
	}

	tests := map[string]tc{
		"release inside fires":     {releaseInside: true, wantFired: 1},
		"release outside does not": {releaseInside: false, wantFired: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fired := 0
			b := NewOneTimeButton("Ok", func() { fired++ })
			_, d := newTestManager(t, b)

			x, y := b.X(), b.Y()
			d.MouseMotion(x, y, 0, 0)
			d.MousePress(x, y, MouseLeft, ModNone)
			if !b.IsPressed() {
				t.Fatal("button not down while held")
			}
			if !tt.releaseInside {
				x, y = 0, 0
			}
			d.MouseRelease(x, y, MouseLeft, ModNone)

			if b.IsPressed() {
				t.Error("button still down after release")
			}
			if fired != tt.wantFired {
				t.Errorf("fired %d times, want %d", fired, tt.wantFired)
			}
		})
	}
}

func TestCheckbox(t *testing.T) {
	type tc struct {
		side     HAlign
		iconLeft bool
	}

	tests := map[string]tc{
		"label right": {side: HAlignRight, iconLeft: true},
		"label left":  {side: HAlignLeft, iconLeft: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCheckbox("Sound", tt.side)
			_, d := newTestManager(t, c)

			iconX := c.button.ContentRegion().X
			if got := iconX < c.run.X; got != tt.iconLeft {
				t.Errorf("icon at x %d, label at x %d", iconX, c.run.X)
			}
			if c.Width() != c.button.Width()+4+len("Sound") {
				t.Errorf("width = %d, want icon, gap and label", c.Width())
			}

			click(d, c)
			if !c.IsChecked() {
				t.Error("click did not check the box")
			}
			if diff := cmp.Diff([]string{"checkbox", "checked"}, c.Path()); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("centered label panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("NewCheckbox() with a centered label did not panic")
			}
		}()
		NewCheckbox("x", HAlignCenter)
	})
}
