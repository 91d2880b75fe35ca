package renderers

import (
	"math"

	"github.com/lixenwraith/alchemy/asset"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/render"
)

// AnimationRenderer draws spawn and despawn transitions from their snapshots
// Box size follows scale around the anchor box center; color fades with opacity
type AnimationRenderer struct{}

func NewAnimationRenderer() *AnimationRenderer {
	return &AnimationRenderer{}
}

// Render implements render.SystemRenderer
func (r *AnimationRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	size := ctx.Snapshot.ElementSize
	for _, v := range ctx.Snapshot.Animations {
		col, row, w, h := ctx.View.CellRect(core.Square(v.Anchor, size))

		sw := int(math.Round(float64(w) * v.Scale))
		sh := int(math.Round(float64(h) * v.Scale))
		if sw <= 0 || sh <= 0 {
			continue
		}

		icon, ok := v.Subject.Icon.(*asset.Icon)
		if !ok || icon == nil {
			icon = ctx.Icons.Icon(v.Subject.ElementID)
		}
		render.DrawElementBox(buf, col+(w-sw)/2, row+(h-sh)/2, sw, sh, icon, v.Subject.Name, v.Opacity)
	}
}
