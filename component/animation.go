package component

import (
	"time"

	"github.com/lixenwraith/alchemy/core"
)

// AnimationKind selects the transition curve
type AnimationKind int

const (
	// SpawnGrowFade scales and fades in, then finalizes
	SpawnGrowFade AnimationKind = iota
	// DespawnShrinkFade scales and fades out
	DespawnShrinkFade
)

func (k AnimationKind) String() string {
	switch k {
	case SpawnGrowFade:
		return "spawn"
	case DespawnShrinkFade:
		return "despawn"
	default:
		return "unknown"
	}
}

// Subject is the snapshot of what an animation draws
// Copied at schedule time, never a reference into the field store
type Subject struct {
	ElementID string
	Name      string
	Icon      any // Opaque icon handle from the asset resolver
}

// Animation is a transient visual transition record
type Animation struct {
	ID       uint64
	Kind     AnimationKind
	Start    time.Time
	Duration time.Duration
	Subject  Subject
	Anchor   core.Point

	// Finalize runs once when a spawn animation completes, nil for despawn
	Finalize func()
}

// Progress is clamp((now-start)/duration, 0, 1)
func (a *Animation) Progress(now time.Time) float64 {
	if a.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.Start)) / float64(a.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Scale is the visual size factor at progress p
func (a *Animation) Scale(p float64) float64 {
	if a.Kind == DespawnShrinkFade {
		return 1 - p
	}
	return p
}

// Opacity is the visual alpha at progress p, same curve as Scale
func (a *Animation) Opacity(p float64) float64 {
	return a.Scale(p)
}
