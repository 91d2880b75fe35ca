package system

import (
	"testing"

	"github.com/lixenwraith/alchemy/audio"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/engine"
)

func TestPanelCloneIndependence(t *testing.T) {
	w, _, _ := newTestWorld(t)
	before := w.Panel.Entries(w.Inventory)

	targets := []core.Point{{X: 300, Y: 100}, {X: 400, Y: 200}, {X: 500, Y: 300}}
	for _, to := range targets {
		drag(w, panelPoint(t, w, "Air"), to)
		w.Tick()
	}

	all := w.Field.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 independent clones, got %d", len(all))
	}
	seen := make(map[core.Entity]bool)
	for i, f := range all {
		if f.ElementID != "Air" {
			t.Errorf("Expected Air clone, got %s", f.ElementID)
		}
		if f.Pos != targets[i] {
			t.Errorf("Clone %d: expected %v, got %v", i, targets[i], f.Pos)
		}
		if seen[f.Entity] {
			t.Errorf("Duplicate identity %d", f.Entity)
		}
		seen[f.Entity] = true
	}

	after := w.Panel.Entries(w.Inventory)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Panel entry %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestLockedPanelPressIsNoop(t *testing.T) {
	w, _, player := newTestWorld(t)

	drag(w, panelPoint(t, w, "Energy"), core.Point{X: 400, Y: 300})
	snap := w.Tick()

	if w.Field.Len() != 0 {
		t.Errorf("Expected no clone from locked entry, got %d entities", w.Field.Len())
	}
	if snap.Dragging != core.NoEntity {
		t.Errorf("Expected idle after locked press")
	}
	if player.count(audio.SoundError) != 1 {
		t.Errorf("Expected one error buzz, got %v", player.played)
	}
}

func TestFieldDragKeepsOffset(t *testing.T) {
	w, _, _ := newTestWorld(t)
	e := w.Field.Spawn("Water", core.Point{X: 300, Y: 300})

	w.PushPointer(engine.PointerEvent{Kind: engine.PointerPress, Pos: core.Point{X: 310, Y: 320}})
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerMove, Pos: core.Point{X: 400, Y: 400}})
	snap := w.Tick()

	if snap.Dragging != e {
		t.Errorf("Expected drag of %d, got %d", e, snap.Dragging)
	}
	f, _ := w.Field.Get(e)
	if f.Pos != (core.Point{X: 390, Y: 380}) {
		t.Errorf("Expected (390,380) after offset drag, got %v", f.Pos)
	}

	w.PushPointer(engine.PointerEvent{Kind: engine.PointerRelease, Pos: core.Point{X: 400, Y: 400}})
	if snap = w.Tick(); snap.Dragging != core.NoEntity {
		t.Errorf("Expected idle after release")
	}
	if w.Field.Len() != 1 {
		t.Errorf("Expected entity left in place, got %d entities", w.Field.Len())
	}
}

func TestPressPrefersTopmostFieldEntity(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.Field.Spawn("Water", core.Point{X: 300, Y: 300})
	top := w.Field.Spawn("Air", core.Point{X: 320, Y: 320})

	w.PushPointer(engine.PointerEvent{Kind: engine.PointerPress, Pos: core.Point{X: 330, Y: 330}})
	if snap := w.Tick(); snap.Dragging != top {
		t.Errorf("Expected most recent entity %d dragged, got %d", top, snap.Dragging)
	}
}

func TestPanelPressUnderFieldEntity(t *testing.T) {
	w, _, _ := newTestWorld(t)
	at := panelPoint(t, w, "Fire")
	e := w.Field.Spawn("Water", at)

	w.PushPointer(engine.PointerEvent{Kind: engine.PointerPress, Pos: at})
	if snap := w.Tick(); snap.Dragging != e {
		t.Errorf("Expected field entity above panel to win the hit test, got %d", snap.Dragging)
	}
	if w.Field.Len() != 1 {
		t.Errorf("Expected no clone, got %d entities", w.Field.Len())
	}
}

func TestPressWhileDraggingReleasesFirst(t *testing.T) {
	w, _, _ := newTestWorld(t)
	a := w.Field.Spawn("Water", core.Point{X: 300, Y: 100})
	b := w.Field.Spawn("Earth", core.Point{X: 600, Y: 100})

	w.PushPointer(engine.PointerEvent{Kind: engine.PointerPress, Pos: core.Point{X: 310, Y: 110}})
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerPress, Pos: core.Point{X: 610, Y: 110}})
	snap := w.Tick()

	if snap.Dragging != b {
		t.Errorf("Expected second press to start a new drag of %d, got %d", b, snap.Dragging)
	}
	if !w.Field.Has(a) {
		t.Errorf("Expected first entity left in place")
	}
}

func TestDiscardInsideTrash(t *testing.T) {
	w, _, player := newTestWorld(t)
	trash := w.Trash()
	inside := core.Point{X: trash.X + 10, Y: trash.Y + 10}

	drag(w, panelPoint(t, w, "Air"), inside)
	w.Tick()

	if w.Field.Len() != 0 {
		t.Errorf("Expected entity removed by discard, got %d", w.Field.Len())
	}
	if w.Animations.Len() != 1 || w.Animations.PendingSpawns() != 0 {
		t.Errorf("Expected exactly one despawn animation, got %d active", w.Animations.Len())
	}
	if player.count(audio.SoundWhoosh) != 1 {
		t.Errorf("Expected one whoosh, got %v", player.played)
	}
}

func TestReleaseOutsideTrashKeepsEntity(t *testing.T) {
	w, _, player := newTestWorld(t)
	trash := w.Trash()
	outside := core.Point{X: trash.X - 100, Y: trash.Y}

	drag(w, panelPoint(t, w, "Air"), outside)
	w.Tick()

	if w.Field.Len() != 1 {
		t.Errorf("Expected entity kept outside trash, got %d", w.Field.Len())
	}
	if w.Animations.Len() != 0 {
		t.Errorf("Expected no animation, got %d", w.Animations.Len())
	}
	if len(player.played) != 0 {
		t.Errorf("Expected no sound, got %v", player.played)
	}
}

func TestMoveAfterHeldEntityConsumed(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.Field.Spawn("Fire", core.Point{X: 300, Y: 300})

	// Drag Air onto Fire without releasing
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerPress, Pos: panelPoint(t, w, "Air")})
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerMove, Pos: core.Point{X: 310, Y: 310}})
	if snap := w.Tick(); snap.Dragging != core.NoEntity {
		t.Errorf("Expected drag ended when held entity was consumed, got %d", snap.Dragging)
	}

	// Strict world panics on an invalid move; nothing must be moved here
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerMove, Pos: core.Point{X: 400, Y: 400}})
	w.PushPointer(engine.PointerEvent{Kind: engine.PointerRelease, Pos: core.Point{X: 400, Y: 400}})
	w.Tick()
}
