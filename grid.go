package gui

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrCellOutOfRange is returned when a grid cell index is outside the
// matrix.
var ErrCellOutOfRange = errors.New("gui: grid cell out of range")

// GridLayout arranges nodes in a table. Every cell of a row is as tall as
// the row's tallest item and every cell of a column as wide as the
// column's widest item, each plus padding. Items are placed inside their
// cells by anchor, top-left by default.
type GridLayout struct {
	Viewer
	matrix  [][]Node
	anchor  Anchor
	offset  Point
	padding int

	rowHeights []int
	colWidths  []int
}

// NewGridLayout creates a grid from rows of nodes. Nil entries are empty
// cells.
func NewGridLayout(rows [][]Node, opts ...LayoutOption) *GridLayout {
	cfg := newLayoutConfig(append([]LayoutOption{WithContentAnchor(AnchorTopLeft)}, opts...))
	g := &GridLayout{anchor: cfg.anchor, offset: cfg.offset, padding: cfg.padding}
	g.Self = g
	for _, row := range rows {
		g.matrix = append(g.matrix, g.adopt(row))
	}
	g.measure()
	return g
}

func (g *GridLayout) adopt(row []Node) []Node {
	row = slices.Clone(row)
	for _, item := range row {
		if item != nil {
			item.SetParent(g)
		}
	}
	return row
}

// Rows returns the number of rows.
func (g *GridLayout) Rows() int {
	return len(g.matrix)
}

// Columns returns the length of the longest row.
func (g *GridLayout) Columns() int {
	n := 0
	for _, row := range g.matrix {
		n = max(n, len(row))
	}
	return n
}

// RowHeights returns the cached height of each row, padding included.
func (g *GridLayout) RowHeights() []int {
	return slices.Clone(g.rowHeights)
}

// ColumnWidths returns the cached width of each column, padding included.
func (g *GridLayout) ColumnWidths() []int {
	return slices.Clone(g.colWidths)
}

// Cell returns the node at (col, row), which may be nil for an empty cell.
func (g *GridLayout) Cell(col, row int) (Node, error) {
	if row < 0 || row >= len(g.matrix) || col < 0 || col >= len(g.matrix[row]) {
		return nil, fmt.Errorf("cell (%d, %d): %w", col, row, ErrCellOutOfRange)
	}
	return g.matrix[row][col], nil
}

// AddRow appends a row of nodes.
func (g *GridLayout) AddRow(row []Node) error {
	row = g.adopt(row)
	g.matrix = append(g.matrix, row)
	return g.mutated(row)
}

// AddColumn appends one node to the end of every row. The column must have
// exactly one entry per row.
func (g *GridLayout) AddColumn(column []Node) error {
	if len(column) != len(g.matrix) {
		return fmt.Errorf("column of %d items for %d rows: %w", len(column), len(g.matrix), ErrCellOutOfRange)
	}
	column = g.adopt(column)
	for i, item := range column {
		g.matrix[i] = append(g.matrix[i], item)
	}
	return g.mutated(column)
}

// Set replaces the node at (col, row). The row must exist; a column past
// the end of the row extends it with empty cells. The replaced node is
// detached, not deleted.
func (g *GridLayout) Set(col, row int, item Node) error {
	if row < 0 || row >= len(g.matrix) || col < 0 {
		return fmt.Errorf("cell (%d, %d): %w", col, row, ErrCellOutOfRange)
	}
	for len(g.matrix[row]) <= col {
		g.matrix[row] = append(g.matrix[row], nil)
	}
	if old := g.matrix[row][col]; old != nil {
		detach(old)
	}
	if item != nil {
		item.SetParent(g)
	}
	g.matrix[row][col] = item
	return g.mutated([]Node{item})
}

// RemoveRow takes row out of the grid, detaching its nodes.
func (g *GridLayout) RemoveRow(row int) error {
	if row < 0 || row >= len(g.matrix) {
		return fmt.Errorf("row %d: %w", row, ErrCellOutOfRange)
	}
	for _, item := range g.matrix[row] {
		if item != nil {
			detach(item)
		}
	}
	g.matrix = slices.Delete(g.matrix, row, row+1)
	g.measure()
	if g.loaded {
		g.ResetSize(true)
	}
	return nil
}

// mutated brings newly inserted items into the grid's state: attached,
// loaded and measured like their siblings. The row and column vectors are
// resized before it returns.
func (g *GridLayout) mutated(items []Node) error {
	if g.host != nil {
		attachAll(items, g.host)
	}
	if g.loaded {
		for _, item := range items {
			if item == nil {
				continue
			}
			if err := item.Load(); err != nil {
				return err
			}
			item.ResetSize(false)
		}
	}
	g.measure()
	if g.loaded {
		g.ResetSize(true)
	}
	return nil
}

func (g *GridLayout) cells() []Node {
	var out []Node
	for _, row := range g.matrix {
		out = append(out, row...)
	}
	return out
}

func (g *GridLayout) Attach(h Host) {
	g.Viewer.Attach(h)
	attachAll(g.cells(), h)
}

func (g *GridLayout) Load() error {
	if err := g.Viewer.Load(); err != nil {
		return err
	}
	return loadAll(g, g.cells())
}

func (g *GridLayout) Unload() {
	unloadAll(g.cells())
	g.Viewer.Unload()
}

func (g *GridLayout) ResetSize(propagate bool) {
	if !propagate {
		resetAll(g.cells())
	}
	g.Viewer.ResetSize(propagate)
}

func (g *GridLayout) Delete() {
	if g.loaded {
		g.Unload()
	}
	deleteAll(g.cells())
	g.matrix = nil
	g.rowHeights, g.colWidths = nil, nil
	g.Viewer.Delete()
}

// measure rebuilds the row and column vectors from the current cell sizes.
// Each entry starts at padding, so the totals carry one padding too many
// and ComputeSize subtracts it.
func (g *GridLayout) measure() {
	g.rowHeights = make([]int, len(g.matrix))
	g.colWidths = make([]int, g.Columns())
	for c := range g.colWidths {
		g.colWidths[c] = g.padding
	}
	for r, row := range g.matrix {
		height := g.padding
		for c, item := range row {
			w, h := 0, 0
			if item != nil {
				w, h = item.Width(), item.Height()
			}
			height = max(height, h+g.padding)
			g.colWidths[c] = max(g.colWidths[c], w+g.padding)
		}
		g.rowHeights[r] = height
	}
}

func (g *GridLayout) ComputeSize() (int, int) {
	g.measure()
	width, height := 0, 0
	if len(g.colWidths) > 0 {
		width = sum(g.colWidths) - g.padding
	}
	if len(g.rowHeights) > 0 {
		height = sum(g.rowHeights) - g.padding
	}
	return width, height
}

func (g *GridLayout) Layout() {
	top := g.Y() + g.Height()
	for r, row := range g.matrix {
		cell := Rect{X: g.X(), Height: g.rowHeights[r]}
		top -= cell.Height
		cell.Y = top
		for c, item := range row {
			cell.Width = g.colWidths[c]
			if item != nil {
				if item.IsExpandable() {
					item.Expand(cell.Width, cell.Height)
				}
				p := RelativePoint(cell, g.anchor, Size{Width: item.Width(), Height: item.Height()}, g.anchor, g.offset)
				item.SetPosition(p.X, p.Y)
			}
			cell.X += cell.Width
		}
	}
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}
