package render

import (
	"github.com/lixenwraith/alchemy/asset"
)

// DrawElementBox paints an element icon box: glyph on the first row, name on the second
// alpha blends the whole box toward the existing background
func DrawElementBox(buf *RenderBuffer, col, row, w, h int, icon *asset.Icon, name string, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	color := FromTcell(icon.Color, RgbIconFallback)
	boxBg := Scale(color, 0.35)

	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			buf.BlendBg(x, y, boxBg, alpha)
		}
	}

	under := buf.Get(col+w/2, row).Bg
	buf.TextCentered(col, row, w, icon.Glyph, Blend(under, color, alpha))
	if h >= 2 {
		under = buf.Get(col+w/2, row+1).Bg
		buf.TextCentered(col, row+1, w, name, Blend(under, RgbTextLight, alpha))
	}
}
