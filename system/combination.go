package system

import (
	"log"

	"github.com/lixenwraith/alchemy/component"
	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/event"
	"github.com/lixenwraith/alchemy/parameter"
)

// CombinationSystem resolves at most one overlapping pair per tick against the rule table
// Pairs are scanned in store order; with several candidate pairs the earliest wins
type CombinationSystem struct{}

// NewCombinationSystem creates the resolver
func NewCombinationSystem() *CombinationSystem {
	return &CombinationSystem{}
}

func (s *CombinationSystem) Name() string { return "combination" }

// Priority returns the system's priority
func (s *CombinationSystem) Priority() int {
	return parameter.PriorityCombine
}

// Update scans for the first overlapping pair that has a rule
func (s *CombinationSystem) Update(w *engine.World) {
	for a, b := range w.Field.AllPairs() {
		if !w.Field.Overlaps(a, b) {
			continue
		}
		result, ok := w.Table.Lookup(a.ElementID, b.ElementID)
		if !ok {
			continue
		}
		s.combine(w, a, b, result)
		return
	}
}

// combine consumes both inputs immediately; the result appears when its spawn animation finalizes
func (s *CombinationSystem) combine(w *engine.World, a, b component.FieldEntity, result string) {
	discovered := w.Inventory.Unlock(result)

	w.Field.Remove(a.Entity)
	w.Field.Remove(b.Entity)
	if w.Drag != nil && (w.Drag.Entity == a.Entity || w.Drag.Entity == b.Entity) {
		w.Drag = nil
	}

	w.Animations.ScheduleDespawn(w.Subject(a.ElementID), a.Pos)
	w.Animations.ScheduleDespawn(w.Subject(b.ElementID), b.Pos)

	anchor := a.Pos
	w.Animations.ScheduleSpawn(w.Subject(result), anchor, func() {
		e := w.Field.Spawn(result, anchor)
		w.Emit(event.EventCombinationFinalized, &event.EntityPayload{Entity: e, ElementID: result, Pos: anchor})
	})

	w.Emit(event.EventEntitiesCombined, &event.CombinedPayload{
		First:  a.Entity,
		Second: b.Entity,
		Inputs: [2]string{a.ElementID, b.ElementID},
		Result: result,
		Anchor: anchor,
	})
	if discovered {
		w.Emit(event.EventElementDiscovered, &event.DiscoveredPayload{ElementID: result, Name: w.DisplayName(result)})
	}

	log.Printf("combined %s + %s = %s (new=%v)", a.ElementID, b.ElementID, result, discovered)
}
