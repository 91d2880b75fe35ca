package renderers

import (
	"fmt"

	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/parameter"
	"github.com/lixenwraith/alchemy/render"
)

// BackgroundRenderer draws the panel backdrop, its title and the unlock counter
type BackgroundRenderer struct{}

func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements render.SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	panel := core.Rect{Width: parameter.PanelWidth, Height: ctx.Snapshot.Bounds.Height}
	col, row, w, h := ctx.View.CellRect(panel)
	buf.Fill(col, row, w, h, render.RgbPanel)

	buf.TextCentered(col, row, w, parameter.PanelTitle, render.RgbPanelTitle)
	counter := fmt.Sprintf("%d/%d", ctx.Snapshot.Unlocked, ctx.Snapshot.Total)
	buf.TextCentered(col, row+1, w, counter, render.RgbStatusText)
}
