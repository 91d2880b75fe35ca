package system

import (
	"log"

	"github.com/lixenwraith/alchemy/component"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/event"
	"github.com/lixenwraith/alchemy/parameter"
)

// DragSystem drives the Idle/Dragging state machine from buffered pointer events
// Panel entries are templates: pressing one clones it onto the field
type DragSystem struct{}

// NewDragSystem creates the pointer input system
func NewDragSystem() *DragSystem {
	return &DragSystem{}
}

func (s *DragSystem) Name() string { return "drag" }

// Priority returns the system's priority
func (s *DragSystem) Priority() int {
	return parameter.PriorityInput
}

// Update applies every pointer event buffered since the last tick, in arrival order
func (s *DragSystem) Update(w *engine.World) {
	s.dropStale(w)

	for _, ev := range w.DrainPointers() {
		switch ev.Kind {
		case engine.PointerPress:
			if w.Drag != nil {
				s.release(w, ev.Pos)
			}
			s.press(w, ev.Pos)
		case engine.PointerMove:
			s.move(w, ev.Pos)
		case engine.PointerRelease:
			s.release(w, ev.Pos)
		}
	}
}

// dropStale ends a session whose entity was consumed elsewhere
func (s *DragSystem) dropStale(w *engine.World) {
	if w.Drag != nil && !w.Field.Has(w.Drag.Entity) {
		w.Drag = nil
	}
}

func (s *DragSystem) press(w *engine.World, pos core.Point) {
	// Field entities are drawn above the panel, so they win the hit test
	if f, ok := w.Field.TopmostAt(pos); ok {
		s.begin(w, f.Entity, f.Pos.Sub(pos), false)
		return
	}

	entry, ok := w.Panel.EntryAt(pos, w.Inventory)
	if !ok {
		return
	}
	if !entry.Unlocked {
		w.Emit(event.EventPanelLocked, &event.PanelPayload{ElementID: entry.ElementID})
		return
	}

	e := w.Field.Spawn(entry.ElementID, pos)
	w.Emit(event.EventEntitySpawned, &event.EntityPayload{Entity: e, ElementID: entry.ElementID, Pos: pos})
	s.begin(w, e, core.Point{}, true)
}

func (s *DragSystem) begin(w *engine.World, e core.Entity, offset core.Point, fromPanel bool) {
	if err := w.Field.Hold(e); err != nil {
		w.InvalidOperation(err)
		return
	}
	w.Drag = &component.DragSession{Entity: e, Offset: offset, FromPanel: fromPanel}
}

func (s *DragSystem) move(w *engine.World, pos core.Point) {
	s.dropStale(w)
	if w.Drag == nil {
		return
	}
	if err := w.Field.Move(w.Drag.Entity, pos.Add(w.Drag.Offset)); err != nil {
		w.InvalidOperation(err)
	}
}

func (s *DragSystem) release(w *engine.World, pos core.Point) {
	drag := w.Drag
	w.Drag = nil
	w.Field.ReleaseHold()
	if drag == nil {
		return
	}

	f, ok := w.Field.Get(drag.Entity)
	if !ok {
		return
	}
	if !w.Trash().Contains(pos) {
		return
	}

	w.Animations.ScheduleDespawn(w.Subject(f.ElementID), f.Pos)
	w.Field.Remove(f.Entity)
	w.Emit(event.EventEntityDiscarded, &event.EntityPayload{Entity: f.Entity, ElementID: f.ElementID, Pos: f.Pos})
	log.Printf("discarded %s (entity %d)", f.ElementID, f.Entity)
}
