package system

import (
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/event"
	"github.com/lixenwraith/alchemy/parameter"
	"github.com/lixenwraith/alchemy/status"
)

// Metric keys published by StatusSystem
const (
	MetricFieldEntities = "field.entities"
	MetricAnimActive    = "anim.active"
	MetricInventorySize = "inventory.size"
	MetricEngineFrame   = "engine.frame"
	MetricCombinations  = "engine.combinations"
	MetricDiscoveryLast = "discovery.last"
	MetricRecipeLast    = "discovery.recipe"
)

// StatusSystem publishes world counters into the status registry for the debug overlay
type StatusSystem struct {
	entities     *atomic.Int64
	animations   *atomic.Int64
	inventory    *atomic.Int64
	frame        *atomic.Int64
	combinations *atomic.Int64
	lastFound    *status.AtomicString
	lastRecipe   *status.AtomicString
}

// NewStatusSystem caches metric pointers from the world's registry
func NewStatusSystem(w *engine.World) *StatusSystem {
	reg := w.Status
	return &StatusSystem{
		entities:     reg.Ints.Get(MetricFieldEntities),
		animations:   reg.Ints.Get(MetricAnimActive),
		inventory:    reg.Ints.Get(MetricInventorySize),
		frame:        reg.Ints.Get(MetricEngineFrame),
		combinations: reg.Ints.Get(MetricCombinations),
		lastFound:    reg.Strings.Get(MetricDiscoveryLast),
		lastRecipe:   reg.Strings.Get(MetricRecipeLast),
	}
}

func (s *StatusSystem) Name() string { return "status" }

// Priority returns the system's priority
func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

// Update stores the current counters
func (s *StatusSystem) Update(w *engine.World) {
	s.entities.Store(int64(w.Field.Len()))
	s.animations.Store(int64(w.Animations.Len()))
	s.inventory.Store(int64(w.Inventory.Len()))
	s.frame.Store(w.Frame())
}

// EventTypes returns the event types StatusSystem handles
func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntitiesCombined,
		event.EventElementDiscovered,
	}
}

// HandleEvent counts combinations and records the latest discovery with its recipes
func (s *StatusSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventEntitiesCombined:
		s.combinations.Add(1)
	case event.EventElementDiscovered:
		if p, ok := ev.Payload.(*event.DiscoveredPayload); ok {
			s.lastFound.Store(p.Name)
			s.lastRecipe.Store(recipeHint(w, p.ElementID))
		}
	}
}

// recipeHint lists every pair producing id, "Air+Fire, ..."
func recipeHint(w *engine.World, id string) string {
	pairs := w.Table.Recipes(id)
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
