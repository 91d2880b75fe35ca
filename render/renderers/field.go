package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/render"
)

// FieldRenderer draws live field entities in store order, later ones on top
// The dragged entity is drawn bold
type FieldRenderer struct{}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// Render implements render.SystemRenderer
func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	size := ctx.Snapshot.ElementSize
	for _, f := range ctx.Snapshot.Field {
		col, row, w, h := ctx.View.CellRect(core.Square(f.Pos, size))
		render.DrawElementBox(buf, col, row, w, h, ctx.Icons.Icon(f.ElementID), ctx.Icons.Name(f.ElementID), 1)

		if f.Entity == ctx.Snapshot.Dragging {
			for y := row; y < row+h; y++ {
				for x := col; x < col+w; x++ {
					buf.SetAttrs(x, y, tcell.AttrBold)
				}
			}
		}
	}
}
