package engine

import "github.com/lixenwraith/alchemy/event"

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the tick goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events emitted by handlers are dispatched in the same pass
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// maxDispatchRounds bounds handler-emitted event cascades within one tick
const maxDispatchRounds = 4

// DispatchAll consumes all pending events and routes to handlers in FIFO order
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll(world *World) int {
	total := 0
	for round := 0; round < maxDispatchRounds; round++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(world, ev)
			}
		}
		total += len(events)
	}
	return total
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
