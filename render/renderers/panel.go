package renderers

import (
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/parameter"
	"github.com/lixenwraith/alchemy/render"
)

// PanelRenderer draws one box per catalog element; locked entries are masked
type PanelRenderer struct{}

func NewPanelRenderer() *PanelRenderer {
	return &PanelRenderer{}
}

// Render implements render.SystemRenderer
func (r *PanelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	size := ctx.Snapshot.ElementSize
	for _, entry := range ctx.Snapshot.Panel {
		col, row, w, h := ctx.View.CellRect(core.Square(entry.Pos, size))
		if !entry.Unlocked {
			buf.Fill(col, row, w, h, render.RgbLocked)
			buf.TextCentered(col, row, w, parameter.LockedGlyph, render.RgbLockedGlyph)
			continue
		}
		render.DrawElementBox(buf, col, row, w, h, ctx.Icons.Icon(entry.ElementID), ctx.Icons.Name(entry.ElementID), 1)
	}
}
