package engine

import "testing"

func TestInventoryUnlock(t *testing.T) {
	inv := NewInventory([]string{"Air", "Fire", "Air"})

	if inv.Len() != 2 {
		t.Errorf("Expected duplicates in base ignored, got %d", inv.Len())
	}
	if !inv.IsUnlocked("Air") || inv.IsUnlocked("Energy") {
		t.Errorf("Unexpected unlock state")
	}

	if !inv.Unlock("Energy") {
		t.Errorf("Expected first unlock of Energy to report new")
	}
	if inv.Unlock("Energy") {
		t.Errorf("Expected repeat unlock to report false")
	}

	ids := inv.IDs()
	expected := []string{"Air", "Fire", "Energy"}
	if len(ids) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], ids[i])
		}
	}
}
