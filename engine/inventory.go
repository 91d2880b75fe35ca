package engine

// Inventory is the set of unlocked element ids
// It only grows during a session
type Inventory struct {
	ids []string
	set map[string]struct{}
}

// NewInventory creates an inventory seeded with base, duplicates ignored
func NewInventory(base []string) *Inventory {
	inv := &Inventory{set: make(map[string]struct{}, len(base))}
	for _, id := range base {
		inv.Unlock(id)
	}
	return inv
}

// IsUnlocked reports whether id is draggable from the panel
func (inv *Inventory) IsUnlocked(id string) bool {
	_, ok := inv.set[id]
	return ok
}

// Unlock adds id, returning true when it was newly added
func (inv *Inventory) Unlock(id string) bool {
	if _, ok := inv.set[id]; ok {
		return false
	}
	inv.set[id] = struct{}{}
	inv.ids = append(inv.ids, id)
	return true
}

// Len returns the number of unlocked ids
func (inv *Inventory) Len() int {
	return len(inv.ids)
}

// IDs returns the unlocked ids in unlock order
func (inv *Inventory) IDs() []string {
	out := make([]string, len(inv.ids))
	copy(out, inv.ids)
	return out
}
