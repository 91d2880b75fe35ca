package engine

import (
	"testing"

	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/parameter"
)

func TestPanelLayout(t *testing.T) {
	cfg := NewTestConfig()
	p := NewPanel(cfg.Catalog, parameter.ElementSize)
	inv := NewInventory(cfg.Base)

	entries := p.Entries(inv)
	if len(entries) != cfg.Catalog.Len() {
		t.Fatalf("Expected one entry per catalog element, got %d", len(entries))
	}

	for i, e := range entries {
		if e.Pos != PanelSlot(i, parameter.ElementSize) {
			t.Errorf("Entry %d not at its slot: %v", i, e.Pos)
		}
		box := core.Square(e.Pos, parameter.ElementSize)
		if box.X < 0 || box.X+box.Width > parameter.PanelWidth {
			t.Errorf("Entry %d outside panel width: %+v", i, box)
		}
	}

	if !entries[0].Unlocked || entries[4].Unlocked {
		t.Errorf("Expected base unlocked and products locked, got %+v", entries)
	}
}

func TestPanelEntryAt(t *testing.T) {
	cfg := NewTestConfig()
	p := NewPanel(cfg.Catalog, parameter.ElementSize)
	inv := NewInventory(cfg.Base)

	slot := PanelSlot(1, parameter.ElementSize)
	entry, ok := p.EntryAt(core.Point{X: slot.X + 1, Y: slot.Y + 1}, inv)
	if !ok || entry.ElementID != "Fire" {
		t.Errorf("Expected Fire at slot 1, got %q (found=%v)", entry.ElementID, ok)
	}

	if _, ok := p.EntryAt(core.Point{X: 500, Y: 300}, inv); ok {
		t.Errorf("Expected no entry in the play area")
	}
}

func TestTrashZone(t *testing.T) {
	trash := TrashZone(1000, 600)
	expected := core.Rect{X: 560, Y: 510, Width: 80, Height: 80}
	if trash != expected {
		t.Errorf("Expected %+v, got %+v", expected, trash)
	}
}
