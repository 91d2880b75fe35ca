package system

import "github.com/lixenwraith/alchemy/engine"

// RegisterAll adds the gameplay systems to w in their standard configuration
// player may be nil to run without sound
func RegisterAll(w *engine.World, player AudioPlayer) {
	w.AddSystem(NewDragSystem())
	w.AddSystem(NewCombinationSystem())
	w.AddSystem(NewAnimationSystem())
	w.AddSystem(NewAudioSystem(player))
	w.AddSystem(NewStatusSystem(w))
}
