package gui

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/grindlemire/go-gui/internal/debug"
)

// Selector keeps at most one of a set of named options selected. Selecting
// an option first deselects the current one, so each option changes state
// exactly once per selection.
type Selector struct {
	options  []*OptionButton
	selected int
	onSelect func(name string)
	// selected after the callback, by widgets that react to a choice
	after func()
}

func (s *Selector) init(names, labels []string, selected string, onSelect func(string)) {
	if len(names) == 0 {
		panic("gui: selector needs at least one option")
	}
	if labels == nil {
		labels = names
	}
	if len(labels) != len(names) {
		panic("gui: selector needs one label per option")
	}
	s.onSelect = onSelect
	s.selected = -1
	for i, name := range names {
		if slices.Contains(names[:i], name) {
			panic(fmt.Sprintf("gui: duplicate selector option %q", name))
		}
		o := &OptionButton{name: name, selector: s}
		o.init(o, labels[i], []ButtonOption{WithPressed(name == selected)})
		if name == selected {
			s.selected = i
		}
		s.options = append(s.options, o)
	}
	if selected != "" && s.selected < 0 {
		panic(fmt.Sprintf("gui: unknown selector option %q", selected))
	}
}

// Options returns the option buttons in order.
func (s *Selector) Options() []*OptionButton {
	return slices.Clone(s.options)
}

func (s *Selector) nodes() []Node {
	out := make([]Node, len(s.options))
	for i, o := range s.options {
		out[i] = o
	}
	return out
}

// Selected returns the selected option name, or "" when none is selected.
func (s *Selector) Selected() string {
	if s.selected < 0 {
		return ""
	}
	return s.options[s.selected].name
}

func (s *Selector) index(name string) int {
	return slices.IndexFunc(s.options, func(o *OptionButton) bool { return o.name == name })
}

// Select deselects the current option, then selects name and reports it
// to the select callback. Unknown names panic.
func (s *Selector) Select(name string) {
	idx := s.index(name)
	if idx < 0 {
		panic(fmt.Sprintf("gui: unknown selector option %q", name))
	}
	s.Deselect()
	s.selected = idx
	s.options[idx].ChangeState()
	debug.Log("Selector.Select: %q", name)
	if s.onSelect != nil {
		s.onSelect(name)
	}
	if s.after != nil {
		s.after()
	}
}

// Deselect clears the selection.
func (s *Selector) Deselect() {
	if s.selected >= 0 {
		s.options[s.selected].ChangeState()
	}
	s.selected = -1
}

// OptionButton is a button standing for one option of a Selector. It
// expands to the space its parent offers, so options in a column share one
// width.
type OptionButton struct {
	Button
	name     string
	selector *Selector
}

// Name returns the option the button stands for.
func (o *OptionButton) Name() string {
	return o.name
}

func (o *OptionButton) IsExpandable() bool { return true }

func (o *OptionButton) Expand(width, height int) {
	o.SetSize(width, height)
}

// IsFocusable lets TAB reach every option.
func (o *OptionButton) IsFocusable() bool { return true }

func (o *OptionButton) choose() {
	o.selector.Select(o.name)
	// choosing may have deleted the menu holding this option
	if p := o.Parent(); p != nil {
		p.Layout()
	}
}

func (o *OptionButton) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	o.choose()
	return true
}

func (o *OptionButton) OnKeyPress(key Key, mod Modifier) bool {
	if key != KeyEnter {
		return false
	}
	o.choose()
	return true
}

// VerticalButtonSelector shows every option as a button in a column.
type VerticalButtonSelector struct {
	VerticalLayout
	Selector
}

// NewVerticalButtonSelector creates a column of option buttons. labels may
// be nil to show the names. Nothing is selected initially. The default
// padding is 4.
func NewVerticalButtonSelector(names, labels []string, onSelect func(string), opts ...LayoutOption) *VerticalButtonSelector {
	cfg := newLayoutConfig(append([]LayoutOption{WithPadding(4)}, opts...))
	v := &VerticalButtonSelector{}
	v.Selector.init(names, labels, "", onSelect)
	v.align, v.padding = cfg.halign, cfg.padding
	v.Container.init(v, v.nodes())
	return v
}

// Dropdown is a button showing the selected option. Pressing it opens a
// pulldown dialog listing every option; choosing one closes it.
type Dropdown struct {
	OneTimeButton
	Selector

	maxHeight int
	below     bool
	pulldown  *Manager
}

// DropdownOption configures a Dropdown.
type DropdownOption func(*Dropdown)

// WithMaxHeight limits the pulldown's height; taller option lists scroll.
// Default is 20.
func WithMaxHeight(h int) DropdownOption {
	return func(d *Dropdown) {
		d.maxHeight = h
	}
}

// WithPulldownAbove opens the pulldown above the button instead of below.
func WithPulldownAbove() DropdownOption {
	return func(d *Dropdown) {
		d.below = false
	}
}

// NewDropdown creates a dropdown over names, showing labels (or the names
// when labels is nil). The first option starts selected.
func NewDropdown(names, labels []string, onSelect func(string), opts ...DropdownOption) *Dropdown {
	d := &Dropdown{maxHeight: 20, below: true}
	for _, opt := range opts {
		opt(d)
	}
	if len(names) == 0 {
		panic("gui: dropdown needs at least one option")
	}
	d.Selector.init(names, labels, names[0], onSelect)
	d.Selector.after = d.chosen
	d.OneTimeButton.init(d, "", nil)
	return d
}

func (d *Dropdown) Path() []string { return []string{"dropdown"} }

// IsOpen reports whether the pulldown is shown.
func (d *Dropdown) IsOpen() bool {
	return d.pulldown != nil
}

// Pulldown returns the open pulldown dialog, or nil.
func (d *Dropdown) Pulldown() *Manager {
	return d.pulldown
}

func (d *Dropdown) LoadGraphics() error {
	if d.selected >= 0 {
		d.label = d.options[d.selected].label
	}
	return d.OneTimeButton.LoadGraphics()
}

func (d *Dropdown) UnloadGraphics() {
	d.OneTimeButton.UnloadGraphics()
	d.closePulldown()
}

// Select picks an option, closes the pulldown and shows the new choice.
func (d *Dropdown) Select(name string) {
	d.Selector.Select(name)
}

func (d *Dropdown) chosen() {
	d.closePulldown()
	if d.loaded {
		if err := d.Reload(); err != nil {
			d.host.ReportError(err)
		}
	}
	d.ResetSize(true)
	d.Layout()
}

func (d *Dropdown) closePulldown() {
	if d.pulldown == nil {
		return
	}
	p := d.pulldown
	d.pulldown = nil
	p.Delete()
}

// OnMousePress toggles the pulldown.
func (d *Dropdown) OnMousePress(x, y int, button MouseButton, mod Modifier) bool {
	if d.pulldown != nil {
		d.closePulldown()
		return true
	}
	if err := d.openPulldown(); err != nil {
		d.host.ReportError(err)
	}
	return true
}

func (d *Dropdown) OnMouseRelease(x, y int, button MouseButton, mod Modifier) bool {
	return false
}

func (d *Dropdown) OnKeyPress(key Key, mod Modifier) bool {
	return false
}

func (d *Dropdown) openPulldown() error {
	m := d.host.Manager()
	screenHeight := m.Screen().Height

	anchor := AnchorTopLeft
	offset := Point{X: d.X(), Y: -(screenHeight - d.Y())}
	if !d.below {
		anchor = AnchorBottomLeft
		offset = Point{X: d.X(), Y: d.Y() + d.Height()}
	}

	content := NewFrame(
		NewScrollable(NewVerticalLayout(d.nodes()), WithMaxSize(0, d.maxHeight)),
		WithPath("dropdown", "pulldown"),
	)
	pulldown, err := NewManager(content, m.Theme(),
		WithDesktop(m.Desktop()),
		WithBatch(m.Batch()),
		WithParentGroup(m.RootGroup().Parent()),
		WithZOrder(m.zorder),
		WithMeasurer(m.Measurer()),
		WithErrorHandler(m.ReportError),
		WithMovable(false),
		WithAnchor(anchor),
		WithOffset(offset.X, offset.Y),
		WithKeyHandler(func(key Key, _ Modifier) bool {
			if key != KeyEscape {
				return false
			}
			d.closePulldown()
			return true
		}),
	)
	if err != nil {
		return fmt.Errorf("opening pulldown: %w", err)
	}
	d.pulldown = pulldown
	return nil
}

func (d *Dropdown) Delete() {
	d.closePulldown()
	d.OneTimeButton.Delete()
}
