package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocument_Wrap(t *testing.T) {
	type tc struct {
		text      string
		opts      []DocumentOption
		wantLines []string
		wantSize  Size
		wantBar   bool
	}

	tests := map[string]tc{
		"fits": {
			text:      "one two",
			wantLines: []string{"one two"},
			wantSize:  Size{Width: 9, Height: 1},
		},
		"wraps and grows": {
			text:      "one two three four five six",
			wantLines: []string{"one two", "three", "four five", "six"},
			wantSize:  Size{Width: 9, Height: 4},
		},
		"taller than its height scrolls": {
			text:      "one two three four five six",
			opts:      []DocumentOption{WithDocumentHeight(2)},
			wantLines: []string{"one two", "three", "four five", "six"},
			wantSize:  Size{Width: 10, Height: 2},
			wantBar:   true,
		},
		"fixed height": {
			text:      "one",
			opts:      []DocumentOption{WithDocumentFixedHeight(3)},
			wantLines: []string{"one"},
			wantSize:  Size{Width: 9, Height: 3},
		},
		"newlines kept": {
			text:      "a\n\nb",
			wantLines: []string{"a", "", "b"},
			wantSize:  Size{Width: 9, Height: 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := NewDocument(tt.text, 9, tt.opts...)
			newTestManager(t, doc)

			if diff := cmp.Diff(tt.wantLines, doc.Lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if got := (Size{Width: doc.Width(), Height: doc.Height()}); got != tt.wantSize {
				t.Errorf("size = %+v, want %+v", got, tt.wantSize)
			}
			if (doc.Scrollbar() != nil) != tt.wantBar {
				t.Errorf("scrollbar = %v, want %v", doc.Scrollbar() != nil, tt.wantBar)
			}
		})
	}
}

func TestDocument_Scroll(t *testing.T) {
	doc := NewDocument("one two three four five six", 9, WithDocumentHeight(2))
	m, d := newTestManager(t, doc)

	if doc.runs[0].Y != doc.Y()+1 || doc.runs[1].Y != doc.Y() {
		t.Fatalf("first lines at y %d and %d, want %d and %d", doc.runs[0].Y, doc.runs[1].Y, doc.Y()+1, doc.Y())
	}

	d.MouseMotion(doc.X(), doc.Y(), 0, 0)
	if m.WheelTarget() != doc.Scrollbar() {
		t.Fatal("hovering the text did not aim the wheel at the scrollbar")
	}
	doc.Scrollbar().SetKnobPosition(1)
	doc.Layout()
	if last := doc.runs[len(doc.runs)-1]; last.Y != doc.Y() {
		t.Errorf("last line at y %d when scrolled to the end, want %d", last.Y, doc.Y())
	}
}

func TestDocument_SetText(t *testing.T) {
	doc := NewDocument("one two three four five six", 9, WithDocumentHeight(2))
	m, _ := newTestManager(t, doc)
	if len(m.Controllers()) != 2 {
		t.Fatalf("%d controllers, want the document and its scrollbar", len(m.Controllers()))
	}

	doc.SetText("short")

	if diff := cmp.Diff([]string{"short"}, doc.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if doc.Scrollbar() != nil || len(m.Controllers()) != 1 {
		t.Error("scrollbar kept after the text shrank")
	}
	if doc.Height() != 1 || m.Height() != 1 {
		t.Errorf("heights = document %d, dialog %d; want 1", doc.Height(), m.Height())
	}
}
