package renderers

import (
	"github.com/lixenwraith/alchemy/parameter"
	"github.com/lixenwraith/alchemy/render"
)

// TrashRenderer draws the discard zone
type TrashRenderer struct{}

func NewTrashRenderer() *TrashRenderer {
	return &TrashRenderer{}
}

// Render implements render.SystemRenderer
func (r *TrashRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	col, row, w, h := ctx.View.CellRect(ctx.Snapshot.Trash)
	buf.Fill(col, row, w, h, render.RgbTrash)

	// Left and right borders
	for y := row; y < row+h; y++ {
		buf.SetWithBg(col, y, '│', render.RgbTrashBorder, render.RgbTrash)
		buf.SetWithBg(col+w-1, y, '│', render.RgbTrashBorder, render.RgbTrash)
	}
	buf.TextCentered(col, row+h/2, w, parameter.TrashLabel, render.RgbTrashBorder)
}
