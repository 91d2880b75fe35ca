package component

import "github.com/lixenwraith/alchemy/core"

// DragSession is the entity held by the pointer
// Offset is entity anchor minus pointer, captured at press
type DragSession struct {
	Entity    core.Entity
	Offset    core.Point
	FromPanel bool // Clone spawned from a panel entry by this press
}
