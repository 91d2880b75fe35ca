package system

import (
	"testing"

	"github.com/lixenwraith/alchemy/audio"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/engine"
)

// recordingPlayer captures played sounds
type recordingPlayer struct {
	played []audio.SoundType
	muted  bool
}

func (p *recordingPlayer) Play(st audio.SoundType) bool {
	p.played = append(p.played, st)
	return true
}

func (p *recordingPlayer) ToggleMute() bool {
	p.muted = !p.muted
	return !p.muted
}

func (p *recordingPlayer) IsMuted() bool { return p.muted }

func (p *recordingPlayer) count(st audio.SoundType) int {
	n := 0
	for _, s := range p.played {
		if s == st {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T) (*engine.World, *engine.MockTimeProvider, *recordingPlayer) {
	t.Helper()
	w, clock := engine.NewTestWorld()
	player := &recordingPlayer{}
	RegisterAll(w, player)
	return w, clock, player
}

// panelPoint returns a point inside the panel slot of id
func panelPoint(t *testing.T, w *engine.World, id string) core.Point {
	t.Helper()
	idx := w.Catalog.Index(id)
	if idx < 0 {
		t.Fatalf("Element %s not in catalog", id)
	}
	slot := engine.PanelSlot(idx, w.ElementSize())
	return core.Point{X: slot.X + 5, Y: slot.Y + 5}
}

// drag queues a full press, move, release gesture
func drag(w *engine.World, from, to core.Point) {
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerPress, Pos: from})
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerMove, Pos: to})
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerRelease, Pos: to})
}

func countElement(w *engine.World, id string) int {
	n := 0
	for _, f := range w.Field.All() {
		if f.ElementID == id {
			n++
		}
	}
	return n
}

func newWorldWithoutAudio() (*engine.World, *engine.MockTimeProvider) {
	w, clock := engine.NewTestWorld()
	RegisterAll(w, nil)
	return w, clock
}
