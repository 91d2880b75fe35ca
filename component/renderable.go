package component

import "github.com/lixenwraith/alchemy/core"

// Renderable is shared by panel entries and field entities
// Panel entries are templates; only field entities are ever moved or removed
type Renderable interface {
	Element() string
	Anchor() core.Point
}
