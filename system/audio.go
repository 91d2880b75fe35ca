package system

import (
	"github.com/lixenwraith/alchemy/audio"
	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/event"
	"github.com/lixenwraith/alchemy/parameter"
)

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(audio.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioSystem maps game events to sound effects
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	player AudioPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player AudioPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Name() string { return "audio" }

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityFeedback
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventElementDiscovered,
		event.EventEntitiesCombined,
		event.EventEntityDiscarded,
		event.EventPanelLocked,
	}
}

// HandleEvent plays the effect for the event
func (s *AudioSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if s.player == nil {
		return
	}
	switch ev.Type {
	case event.EventElementDiscovered:
		s.player.Play(audio.SoundBell)
	case event.EventEntitiesCombined:
		s.player.Play(audio.SoundCoin)
	case event.EventEntityDiscarded:
		s.player.Play(audio.SoundWhoosh)
	case event.EventPanelLocked:
		s.player.Play(audio.SoundError)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update(w *engine.World) {}
