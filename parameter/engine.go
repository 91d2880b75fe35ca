package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the target frame interval (~60 FPS), one simulation tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// PointerBufferSize bounds buffered pointer events between ticks
	PointerBufferSize = 256

	// EventQueueSize is the initial capacity of the per-tick game event queue
	EventQueueSize = 64
)

// System Execution Priorities (lower runs first)
// Order within a tick is part of the contract: input, resolve, animate, feedback
const (
	PriorityInput     = 10
	PriorityCombine   = 20
	PriorityAnimation = 30
	PriorityFeedback  = 40
	PriorityStatus    = 50
)
