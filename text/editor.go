package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Motion is a caret movement or deletion.
type Motion int

const (
	MotionUp Motion = iota + 1
	MotionDown
	MotionLeft
	MotionRight
	MotionNextWord
	MotionPreviousWord
	MotionBeginningOfLine
	MotionEndOfLine
	MotionNextPage
	MotionPreviousPage
	MotionBeginningOfFile
	MotionEndOfFile
	MotionBackspace
	MotionDelete
)

// Editor is a single-line text buffer with a caret and a selection mark.
// Positions are byte offsets that always fall on grapheme cluster
// boundaries.
type Editor struct {
	text  string
	caret int
	mark  int

	// MaxLength caps the buffer in grapheme clusters. Zero means no limit.
	MaxLength int
}

// NewEditor creates an editor holding s with the caret at the end.
func NewEditor(s string) *Editor {
	return &Editor{text: s, caret: len(s), mark: len(s)}
}

// Text returns the buffer contents.
func (e *Editor) Text() string {
	return e.text
}

// SetText replaces the buffer and moves the caret to the end.
func (e *Editor) SetText(s string) {
	e.text = s
	e.truncate()
	e.caret, e.mark = len(e.text), len(e.text)
}

// Caret returns the caret position.
func (e *Editor) Caret() int {
	return e.caret
}

// Mark returns the selection anchor. The selection is empty when the mark
// equals the caret.
func (e *Editor) Mark() int {
	return e.mark
}

// Selection returns the selected byte range, start <= end.
func (e *Editor) Selection() (start, end int) {
	return min(e.caret, e.mark), max(e.caret, e.mark)
}

// HasSelection reports whether any text is selected.
func (e *Editor) HasSelection() bool {
	return e.caret != e.mark
}

// SetCaret moves the caret to the nearest boundary at or before pos and
// clears the selection.
func (e *Editor) SetCaret(pos int) {
	e.caret = e.snap(pos)
	e.mark = e.caret
}

// Select extends the selection from the mark to pos.
func (e *Editor) Select(pos int) {
	e.caret = e.snap(pos)
}

// Insert replaces the selection with s. Carriage returns and newlines are
// dropped.
func (e *Editor) Insert(s string) {
	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\r' || r == '\n' {
			continue
		}
		clean = append(clean, r)
	}
	if len(clean) == 0 {
		return
	}
	start, end := e.Selection()
	ins := string(clean)
	e.text = e.text[:start] + ins + e.text[end:]
	e.caret, e.mark = start+len(ins), start+len(ins)
	if e.truncate() {
		e.caret, e.mark = len(e.text), len(e.text)
	}
}

// Move applies m, collapsing any selection.
func (e *Editor) Move(m Motion) {
	switch m {
	case MotionBackspace:
		if e.HasSelection() {
			e.deleteSelection()
			return
		}
		prev := e.prevBoundary(e.caret)
		e.text = e.text[:prev] + e.text[e.caret:]
		e.caret, e.mark = prev, prev
		return
	case MotionDelete:
		if e.HasSelection() {
			e.deleteSelection()
			return
		}
		next := e.nextBoundary(e.caret)
		e.text = e.text[:e.caret] + e.text[next:]
		e.mark = e.caret
		return
	}
	e.caret = e.target(m)
	e.mark = e.caret
}

// MoveSelect applies m, extending the selection.
func (e *Editor) MoveSelect(m Motion) {
	if m == MotionBackspace || m == MotionDelete {
		e.Move(m)
		return
	}
	e.caret = e.target(m)
}

func (e *Editor) target(m Motion) int {
	switch m {
	case MotionLeft:
		return e.prevBoundary(e.caret)
	case MotionRight:
		return e.nextBoundary(e.caret)
	case MotionPreviousWord:
		pos := e.caret
		for pos > 0 && e.spaceBefore(pos) {
			pos = e.prevBoundary(pos)
		}
		for pos > 0 && !e.spaceBefore(pos) {
			pos = e.prevBoundary(pos)
		}
		return pos
	case MotionNextWord:
		pos := e.caret
		for pos < len(e.text) && !e.spaceAt(pos) {
			pos = e.nextBoundary(pos)
		}
		for pos < len(e.text) && e.spaceAt(pos) {
			pos = e.nextBoundary(pos)
		}
		return pos
	case MotionBeginningOfLine, MotionBeginningOfFile, MotionUp, MotionPreviousPage:
		return 0
	case MotionEndOfLine, MotionEndOfFile, MotionDown, MotionNextPage:
		return len(e.text)
	}
	return e.caret
}

func (e *Editor) deleteSelection() {
	start, end := e.Selection()
	e.text = e.text[:start] + e.text[end:]
	e.caret, e.mark = start, start
}

// boundaries returns every grapheme cluster boundary including 0 and
// len(text).
func (e *Editor) boundaries() []int {
	bounds := []int{0}
	rest, state, pos := e.text, -1, 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		bounds = append(bounds, pos)
	}
	return bounds
}

func (e *Editor) snap(pos int) int {
	if pos <= 0 {
		return 0
	}
	snapped := 0
	for _, b := range e.boundaries() {
		if b > pos {
			break
		}
		snapped = b
	}
	return snapped
}

func (e *Editor) prevBoundary(pos int) int {
	prev := 0
	for _, b := range e.boundaries() {
		if b >= pos {
			break
		}
		prev = b
	}
	return prev
}

func (e *Editor) nextBoundary(pos int) int {
	for _, b := range e.boundaries() {
		if b > pos {
			return b
		}
	}
	return len(e.text)
}

func (e *Editor) spaceAt(pos int) bool {
	r, _ := utf8.DecodeRuneInString(e.text[pos:])
	return unicode.IsSpace(r)
}

func (e *Editor) spaceBefore(pos int) bool {
	r, _ := utf8.DecodeLastRuneInString(e.text[:pos])
	return unicode.IsSpace(r)
}

// truncate enforces MaxLength and reports whether text was cut.
func (e *Editor) truncate() bool {
	if e.MaxLength <= 0 {
		return false
	}
	bounds := e.boundaries()
	if len(bounds)-1 <= e.MaxLength {
		return false
	}
	e.text = e.text[:bounds[e.MaxLength]]
	return true
}

// IndexAt returns the grapheme boundary in s closest to x, measured from the
// start of the run.
func IndexAt(m Measurer, st Style, s string, x int) int {
	if x <= 0 {
		return 0
	}
	rest, state, pos, prevWidth := s, -1, 0, 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := pos + len(cluster)
		w := m.Measure(s[:next], st).Width
		if w >= x {
			if x-prevWidth < w-x {
				return pos
			}
			return next
		}
		pos, prevWidth = next, w
	}
	return len(s)
}
