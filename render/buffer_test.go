package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferClearAndBounds(t *testing.T) {
	b := NewRenderBuffer(10, 4)
	b.SetWithBg(3, 2, 'x', RgbTextDark, RgbPanel)
	b.Clear()

	if c := b.Get(3, 2); c.Rune != ' ' || c.Bg != RgbBackground {
		t.Errorf("Expected cleared cell, got %+v", c)
	}
	if w, h := b.Bounds(); w != 10 || h != 4 {
		t.Errorf("Expected 10x4, got %dx%d", w, h)
	}

	// Out of bounds writes are ignored
	b.SetWithBg(-1, 0, 'x', RgbTextDark, RgbPanel)
	b.SetWithBg(10, 0, 'x', RgbTextDark, RgbPanel)
	if c := b.Get(99, 99); c != (Cell{}) {
		t.Errorf("Expected zero cell out of bounds, got %+v", c)
	}
}

func TestRenderBufferText(t *testing.T) {
	b := NewRenderBuffer(10, 1)

	n := b.Text(0, 0, "Hello World", RgbTextLight, 5)
	if n != 5 {
		t.Errorf("Expected text clipped to 5 cells, got %d", n)
	}
	if b.Get(4, 0).Rune != 'o' || b.Get(5, 0).Rune != ' ' {
		t.Errorf("Unexpected clipped text")
	}

	b.Clear()
	b.TextCentered(0, 0, 10, "ab", RgbTextLight)
	if b.Get(4, 0).Rune != 'a' || b.Get(5, 0).Rune != 'b' {
		t.Errorf("Expected centered text at 4-5")
	}
}

func TestRenderBufferWideRune(t *testing.T) {
	b := NewRenderBuffer(4, 1)
	if n := b.Text(0, 0, "🔥x", RgbTextLight, 4); n != 3 {
		t.Errorf("Expected wide rune to take 2 cells, got %d total", n)
	}
	if !b.Get(1, 0).Cont || b.Get(2, 0).Rune != 'x' {
		t.Errorf("Expected continuation cell then x")
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 1)

	b.FlushToScreen(screen)
	screen.Show()
	if r, _, _, _ := screen.GetContent(0, 0); r != '🔥' {
		t.Errorf("Expected wide rune on screen, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(2, 0); r != 'x' {
		t.Errorf("Expected x after wide rune, got %q", r)
	}
}

func TestRenderBufferBlendBg(t *testing.T) {
	b := NewRenderBuffer(1, 1)
	b.SetWithBg(0, 0, ' ', RgbTextLight, RGB{0, 0, 0})
	b.BlendBg(0, 0, RGB{200, 100, 0}, 0.5)
	if c := b.Get(0, 0); c.Bg != (RGB{100, 50, 0}) {
		t.Errorf("Expected half blend, got %+v", c.Bg)
	}
}
