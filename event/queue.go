package event

import "github.com/lixenwraith/alchemy/parameter"

// EventQueue is a FIFO of game events for the tick thread
// Single producer set and single consumer, both on the tick goroutine; no locking
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
// Events pushed by handlers during dispatch land in the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
