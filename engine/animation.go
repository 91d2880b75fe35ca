package engine

import (
	"time"

	"github.com/lixenwraith/alchemy/component"
	"github.com/lixenwraith/alchemy/core"
)

// AnimationView is the per-frame render parameters of one active animation
type AnimationView struct {
	ID       uint64
	Kind     component.AnimationKind
	Subject  component.Subject
	Anchor   core.Point
	Progress float64
	Scale    float64
	Opacity  float64
}

// AnimationEngine runs time-based, non-blocking visual transitions
// Animations own snapshots of what they draw; the field store is never consulted
type AnimationEngine struct {
	clock     TimeProvider
	duration  time.Duration
	nextID    uint64
	lastStart time.Time
	active    []*component.Animation
}

// NewAnimationEngine creates an engine whose animations last duration
func NewAnimationEngine(clock TimeProvider, duration time.Duration) *AnimationEngine {
	return &AnimationEngine{
		clock:    clock,
		duration: duration,
		active:   make([]*component.Animation, 0, 8),
	}
}

// ScheduleSpawn appends a grow-and-fade-in animation
// finalize runs exactly once when the animation completes
func (ae *AnimationEngine) ScheduleSpawn(subject component.Subject, anchor core.Point, finalize func()) uint64 {
	return ae.schedule(component.SpawnGrowFade, subject, anchor, finalize)
}

// ScheduleDespawn appends a shrink-and-fade-out animation
func (ae *AnimationEngine) ScheduleDespawn(subject component.Subject, anchor core.Point) uint64 {
	return ae.schedule(component.DespawnShrinkFade, subject, anchor, nil)
}

func (ae *AnimationEngine) schedule(kind component.AnimationKind, subject component.Subject, anchor core.Point, finalize func()) uint64 {
	start := ae.clock.Now()
	if start.Before(ae.lastStart) {
		start = ae.lastStart
	}
	ae.lastStart = start

	ae.nextID++
	ae.active = append(ae.active, &component.Animation{
		ID:       ae.nextID,
		Kind:     kind,
		Start:    start,
		Duration: ae.duration,
		Subject:  subject,
		Anchor:   anchor,
		Finalize: finalize,
	})
	return ae.nextID
}

// Advance finalizes and drops every animation whose progress reached 1 at now
// Returns the ids completed this call. Finalize actions may schedule new animations;
// those are kept and first advanced on the next call
func (ae *AnimationEngine) Advance(now time.Time) []uint64 {
	if len(ae.active) == 0 {
		return nil
	}

	var done []*component.Animation
	kept := ae.active[:0:0]
	for _, a := range ae.active {
		if a.Progress(now) >= 1 {
			done = append(done, a)
		} else {
			kept = append(kept, a)
		}
	}
	ae.active = kept

	ids := make([]uint64, 0, len(done))
	for _, a := range done {
		if fn := a.Finalize; fn != nil {
			a.Finalize = nil
			fn()
		}
		ids = append(ids, a.ID)
	}
	return ids
}

// Progress returns the progress of an active animation
func (ae *AnimationEngine) Progress(id uint64, now time.Time) (float64, bool) {
	for _, a := range ae.active {
		if a.ID == id {
			return a.Progress(now), true
		}
	}
	return 0, false
}

// Views returns render parameters for every active animation in schedule order
// Pure: never runs finalize actions
func (ae *AnimationEngine) Views(now time.Time) []AnimationView {
	out := make([]AnimationView, 0, len(ae.active))
	for _, a := range ae.active {
		p := a.Progress(now)
		out = append(out, AnimationView{
			ID:       a.ID,
			Kind:     a.Kind,
			Subject:  a.Subject,
			Anchor:   a.Anchor,
			Progress: p,
			Scale:    a.Scale(p),
			Opacity:  a.Opacity(p),
		})
	}
	return out
}

// Len returns the number of active animations
func (ae *AnimationEngine) Len() int {
	return len(ae.active)
}

// PendingSpawns returns the number of active spawn animations still holding a finalize
func (ae *AnimationEngine) PendingSpawns() int {
	n := 0
	for _, a := range ae.active {
		if a.Finalize != nil {
			n++
		}
	}
	return n
}

// Clear drops every animation without running finalize actions
func (ae *AnimationEngine) Clear() {
	ae.active = ae.active[:0]
}
