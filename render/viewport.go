package render

import (
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/parameter"
)

// Viewport maps between terminal cells and field units
// The bottom StatusBarHeight rows are not part of the field
type Viewport struct {
	Cols, Rows int
}

// NewViewport creates a viewport for a terminal of cols x rows
func NewViewport(cols, rows int) Viewport {
	return Viewport{Cols: cols, Rows: rows}
}

// FieldRows returns the rows available to the field
func (v Viewport) FieldRows() int {
	return max(v.Rows-parameter.StatusBarHeight, 0)
}

// FieldSize returns the field extent in units
func (v Viewport) FieldSize() (width, height int) {
	return v.Cols * parameter.CellWidth, v.FieldRows() * parameter.CellHeight
}

// ToField returns the unit point at the center of cell (col, row)
func (v Viewport) ToField(col, row int) core.Point {
	return core.Point{
		X: col*parameter.CellWidth + parameter.CellWidth/2,
		Y: row*parameter.CellHeight + parameter.CellHeight/2,
	}
}

// ToCell returns the cell containing p
func (v Viewport) ToCell(p core.Point) (col, row int) {
	return floorDiv(p.X, parameter.CellWidth), floorDiv(p.Y, parameter.CellHeight)
}

// CellRect returns the cell span covering r, at least one cell in each axis for nonzero r
func (v Viewport) CellRect(r core.Rect) (col, row, w, h int) {
	col, row = v.ToCell(core.Point{X: r.X, Y: r.Y})
	w = roundDiv(r.Width, parameter.CellWidth)
	h = roundDiv(r.Height, parameter.CellHeight)
	if r.Width > 0 {
		w = max(w, 1)
	}
	if r.Height > 0 {
		h = max(h, 1)
	}
	return col, row, w, h
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func roundDiv(a, b int) int {
	return (a + b/2) / b
}
