package text

import "testing"

func TestEditor_Insert(t *testing.T) {
	type tc struct {
		start     string
		caret     int
		mark      int
		maxLength int
		insert    string
		want      string
		wantCaret int
	}

	tests := map[string]tc{
		"append": {
			start: "ab", caret: 2, mark: 2, insert: "c",
			want: "abc", wantCaret: 3,
		},
		"insert in middle": {
			start: "ac", caret: 1, mark: 1, insert: "b",
			want: "abc", wantCaret: 2,
		},
		"replace selection": {
			start: "hello world", caret: 0, mark: 5, insert: "bye",
			want: "bye world", wantCaret: 3,
		},
		"drops carriage returns": {
			start: "", insert: "a\rb\n",
			want: "ab", wantCaret: 2,
		},
		"max length truncates and moves caret to end": {
			start: "abc", caret: 0, mark: 0, maxLength: 4, insert: "xyz",
			want: "xyza", wantCaret: 4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEditor(tt.start)
			e.MaxLength = tt.maxLength
			e.SetCaret(tt.mark)
			e.Select(tt.caret)
			e.Insert(tt.insert)
			if e.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", e.Text(), tt.want)
			}
			if e.Caret() != tt.wantCaret || e.HasSelection() {
				t.Errorf("Caret() = %d (selection %v), want %d with no selection", e.Caret(), e.HasSelection(), tt.wantCaret)
			}
		})
	}
}

func TestEditor_Move(t *testing.T) {
	type tc struct {
		start     string
		caret     int
		motion    Motion
		want      string
		wantCaret int
	}

	// e followed by a combining acute accent is one grapheme cluster.
	accent := "ae\u0301b"

	tests := map[string]tc{
		"left":                {start: "abc", caret: 2, motion: MotionLeft, want: "abc", wantCaret: 1},
		"left at start":       {start: "abc", caret: 0, motion: MotionLeft, want: "abc", wantCaret: 0},
		"right over cluster":  {start: accent, caret: 1, motion: MotionRight, want: accent, wantCaret: 4},
		"left over cluster":   {start: accent, caret: 4, motion: MotionLeft, want: accent, wantCaret: 1},
		"backspace cluster":   {start: accent, caret: 4, motion: MotionBackspace, want: "ab", wantCaret: 1},
		"delete cluster":      {start: accent, caret: 1, motion: MotionDelete, want: "ab", wantCaret: 1},
		"backspace at start":  {start: "ab", caret: 0, motion: MotionBackspace, want: "ab", wantCaret: 0},
		"delete at end":       {start: "ab", caret: 2, motion: MotionDelete, want: "ab", wantCaret: 2},
		"home":                {start: "abc", caret: 2, motion: MotionBeginningOfLine, want: "abc", wantCaret: 0},
		"end":                 {start: "abc", caret: 0, motion: MotionEndOfLine, want: "abc", wantCaret: 3},
		"next word":           {start: "one two", caret: 1, motion: MotionNextWord, want: "one two", wantCaret: 4},
		"previous word":       {start: "one two", caret: 6, motion: MotionPreviousWord, want: "one two", wantCaret: 4},
		"previous word space": {start: "one two", caret: 4, motion: MotionPreviousWord, want: "one two", wantCaret: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEditor(tt.start)
			e.SetCaret(tt.caret)
			e.Move(tt.motion)
			if e.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", e.Text(), tt.want)
			}
			if e.Caret() != tt.wantCaret {
				t.Errorf("Caret() = %d, want %d", e.Caret(), tt.wantCaret)
			}
		})
	}
}

func TestEditor_MoveSelect(t *testing.T) {
	e := NewEditor("hello")
	e.SetCaret(1)
	e.MoveSelect(MotionRight)
	e.MoveSelect(MotionRight)
	if start, end := e.Selection(); start != 1 || end != 3 {
		t.Fatalf("Selection() = %d,%d, want 1,3", start, end)
	}
	e.Move(MotionBackspace)
	if e.Text() != "hlo" || e.Caret() != 1 {
		t.Errorf("after backspace Text() = %q caret %d, want %q caret 1", e.Text(), e.Caret(), "hlo")
	}

	e.MoveSelect(MotionEndOfLine)
	e.Insert("ey")
	if e.Text() != "hey" {
		t.Errorf("Text() = %q, want %q", e.Text(), "hey")
	}
}

func TestEditor_SetCaretSnapsToBoundary(t *testing.T) {
	e := NewEditor("ae\u0301b")
	e.SetCaret(2)
	if e.Caret() != 1 {
		t.Errorf("Caret() = %d, want 1", e.Caret())
	}
}

func TestIndexAt(t *testing.T) {
	type tc struct {
		x    int
		want int
	}

	tests := map[string]tc{
		"before start":     {x: -3, want: 0},
		"nearer left edge": {x: 3, want: 0},
		"nearer right":     {x: 4, want: 1},
		"exact boundary":   {x: 14, want: 2},
		"past end":         {x: 100, want: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IndexAt(BasicMeasurer{}, Style{}, "abc", tt.x); got != tt.want {
				t.Errorf("IndexAt(%d) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}
