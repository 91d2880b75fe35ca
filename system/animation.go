package system

import (
	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/parameter"
)

// AnimationSystem advances transitions with the tick time, running spawn finalizers
type AnimationSystem struct {
	completed uint64
}

// NewAnimationSystem creates the animation driver
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Name() string { return "animation" }

// Priority returns the system's priority
func (s *AnimationSystem) Priority() int {
	return parameter.PriorityAnimation
}

// Update finalizes animations whose progress reached 1
func (s *AnimationSystem) Update(w *engine.World) {
	s.completed += uint64(len(w.Animations.Advance(w.Now())))
}

// Completed returns the number of animations finished since creation
func (s *AnimationSystem) Completed() uint64 {
	return s.completed
}
