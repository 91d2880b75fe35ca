package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/alchemy/component"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/event"
	"github.com/lixenwraith/alchemy/parameter"
)

type orderSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *orderSystem) Name() string { return s.name }
func (s *orderSystem) Priority() int { return s.priority }
func (s *orderSystem) Update(w *World) { *s.log = append(*s.log, s.name) }

func TestWorldSystemsRunInPriorityOrder(t *testing.T) {
	w, _ := NewTestWorld()
	var order []string
	w.AddSystem(&orderSystem{name: "status", priority: parameter.PriorityStatus, log: &order})
	w.AddSystem(&orderSystem{name: "input", priority: parameter.PriorityInput, log: &order})
	w.AddSystem(&orderSystem{name: "combine", priority: parameter.PriorityCombine, log: &order})

	w.Tick()

	expected := []string{"input", "combine", "status"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], order[i])
		}
	}
}

func TestWorldPointerCoalescing(t *testing.T) {
	w, _ := NewTestWorld()
	w.PushPointer(PointerEvent{Kind: PointerPress, Pos: core.Point{X: 1}})
	w.PushPointer(PointerEvent{Kind: PointerMove, Pos: core.Point{X: 2}})
	w.PushPointer(PointerEvent{Kind: PointerMove, Pos: core.Point{X: 3}})
	w.PushPointer(PointerEvent{Kind: PointerRelease, Pos: core.Point{X: 3}})

	events := w.DrainPointers()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events after coalescing, got %d", len(events))
	}
	if events[1].Kind != PointerMove || events[1].Pos.X != 3 {
		t.Errorf("Expected move coalesced to latest position, got %+v", events[1])
	}
	if w.DrainPointers() != nil {
		t.Errorf("Expected buffer empty after drain")
	}
}

func TestWorldPointerBufferBounded(t *testing.T) {
	w, _ := NewTestWorld()
	for i := 0; i < parameter.PointerBufferSize+10; i++ {
		kind := PointerPress
		if i%2 == 1 {
			kind = PointerRelease
		}
		w.PushPointer(PointerEvent{Kind: kind})
	}
	if n := len(w.DrainPointers()); n != parameter.PointerBufferSize {
		t.Errorf("Expected buffer capped at %d, got %d", parameter.PointerBufferSize, n)
	}
}

func TestWorldSnapshot(t *testing.T) {
	w, clock := NewTestWorld()
	w.Field.Spawn("Air", core.Point{X: 300, Y: 300})
	clock.Advance(time.Second)

	snap := w.Tick()

	if snap.Frame != 1 {
		t.Errorf("Expected frame 1, got %d", snap.Frame)
	}
	if !snap.Now.Equal(TestEpoch.Add(time.Second)) {
		t.Errorf("Expected tick time from clock, got %v", snap.Now)
	}
	if len(snap.Field) != 1 || snap.Field[0].ElementID != "Air" {
		t.Errorf("Expected one Air on field, got %+v", snap.Field)
	}
	if snap.Unlocked != 4 || snap.Total != 8 {
		t.Errorf("Expected 4/8 unlocked, got %d/%d", snap.Unlocked, snap.Total)
	}
	if snap.Trash != TrashZone(parameter.DefaultFieldWidth, parameter.DefaultFieldHeight) {
		t.Errorf("Unexpected trash zone %+v", snap.Trash)
	}
	if snap.Dragging != core.NoEntity {
		t.Errorf("Expected no drag, got %d", snap.Dragging)
	}
}

func TestWorldDiscoveryMessageExpires(t *testing.T) {
	w, clock := NewTestWorld()
	w.Emit(event.EventElementDiscovered, &event.DiscoveredPayload{ElementID: "Energy", Name: "Energy"})

	snap := w.Tick()
	if snap.Discovery != "New element discovered: Energy" {
		t.Errorf("Expected discovery message, got %q", snap.Discovery)
	}

	clock.Advance(parameter.DiscoveryMessageTimeout)
	if snap = w.Tick(); snap.Discovery != "" {
		t.Errorf("Expected discovery message expired, got %q", snap.Discovery)
	}
}

func TestWorldReset(t *testing.T) {
	w, clock := NewTestWorld()
	w.Field.Spawn("Air", core.Point{})
	calls := 0
	w.Animations.ScheduleSpawn(component.Subject{}, core.Point{}, func() { calls++ })
	w.Inventory.Unlock("Energy")
	w.Drag = &component.DragSession{Entity: 1}

	w.Reset()
	clock.Advance(time.Second)
	w.Tick()

	if w.Field.Len() != 0 || w.Animations.Len() != 0 || w.Drag != nil {
		t.Errorf("Expected field, animations and drag cleared")
	}
	if calls != 0 {
		t.Errorf("Expected reset not to finalize pending spawns")
	}
	if !w.Inventory.IsUnlocked("Energy") {
		t.Errorf("Expected inventory kept across reset")
	}
}

func TestWorldInvalidOperation(t *testing.T) {
	w, _ := NewTestWorld()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("Expected strict world to panic with ErrInvalidOperation, got %v", r)
		}
	}()
	w.InvalidOperation(w.Field.Move(42, core.Point{}))
}

func TestWorldSetBounds(t *testing.T) {
	w, _ := NewTestWorld()
	w.SetBounds(800, 400)
	if w.Trash() != TrashZone(800, 400) {
		t.Errorf("Expected trash recomputed on resize, got %+v", w.Trash())
	}
	if w.Bounds().Width != 800 || w.Bounds().Height != 400 {
		t.Errorf("Unexpected bounds %+v", w.Bounds())
	}
}
