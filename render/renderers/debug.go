package renderers

import (
	"github.com/lixenwraith/alchemy/render"
	"github.com/mattn/go-runewidth"
)

// DebugRenderer lists status registry metrics in the top right corner
type DebugRenderer struct{}

func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

// IsVisible implements render.VisibilityToggle
func (r *DebugRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Debug && ctx.Status != nil
}

// Render implements render.SystemRenderer
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := ctx.Status.Lines()
	if len(lines) == 0 {
		return
	}

	keyWidth, valWidth := 0, 0
	for _, l := range lines {
		keyWidth = max(keyWidth, runewidth.StringWidth(l.Key))
		valWidth = max(valWidth, runewidth.StringWidth(l.Value))
	}
	boxWidth := keyWidth + valWidth + 3

	width, _ := buf.Bounds()
	x := max(width-boxWidth, 0)
	buf.Fill(x, 0, boxWidth, len(lines), render.RgbDebugBg)
	for i, l := range lines {
		buf.Text(x+1, i, l.Key, render.RgbDebugKey, keyWidth)
		buf.Text(x+2+keyWidth, i, l.Value, render.RgbDebugValue, valWidth)
	}
}
