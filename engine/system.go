package engine

import "github.com/lixenwraith/alchemy/event"

// System is run once per tick in Priority order
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(world *World)
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, after all systems updated
	HandleEvent(world *World, ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
