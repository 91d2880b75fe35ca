package renderers

import "github.com/lixenwraith/alchemy/render"

// RegisterAll installs the standard layers on o
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewPanelRenderer(), render.PriorityPanel)
	o.Register(NewTrashRenderer(), render.PriorityTrash)
	o.Register(NewFieldRenderer(), render.PriorityEntities)
	o.Register(NewAnimationRenderer(), render.PriorityAnimation)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewDebugRenderer(), render.PriorityDebug)
}
