package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/alchemy/parameter"
	"github.com/lixenwraith/alchemy/render"
	"github.com/mattn/go-runewidth"
)

// StatusBarRenderer draws the bottom row: progress, audio state, key help and the discovery message
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements render.SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	width, height := buf.Bounds()
	if height == 0 {
		return
	}
	y := height - parameter.StatusBarHeight
	buf.Fill(0, y, width, parameter.StatusBarHeight, render.RgbStatusBar)

	x := 1
	progress := fmt.Sprintf("%s %d/%d ", parameter.PanelTitle, ctx.Snapshot.Unlocked, ctx.Snapshot.Total)
	x += buf.Text(x, y, progress, render.RgbStatusText, width-x)

	audio, audioColor := parameter.AudioStr, render.RgbAudioOn
	if ctx.Muted {
		audio, audioColor = parameter.MutedStr, render.RgbMuted
	}
	x += buf.Text(x, y, audio, audioColor, width-x)
	x += buf.Text(x, y, " "+parameter.HelpText, render.RgbStatusText, width-x)

	// Discovery message is right aligned and wins over help text when space is short
	if msg := ctx.Snapshot.Discovery; msg != "" {
		mw := runewidth.StringWidth(msg)
		start := max(width-mw-1, 1)
		buf.Fill(start-1, y, width-start+1, 1, render.RgbStatusBar)
		buf.Text(start, y, msg, render.RgbDiscovery, width-start)
		for i := start; i < start+mw && i < width; i++ {
			buf.SetAttrs(i, y, tcell.AttrBold)
		}
	}
}
