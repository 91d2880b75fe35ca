package component

import "github.com/lixenwraith/alchemy/core"

// FieldEntity is a placed instance of an element on the play field
// Two entities may share an element id; Entity is the identity
type FieldEntity struct {
	Entity    core.Entity
	ElementID string
	Pos       core.Point // Top-left anchor
}

func (f FieldEntity) Element() string    { return f.ElementID }
func (f FieldEntity) Anchor() core.Point { return f.Pos }

// Bounds returns the square bounding box of side size
func (f FieldEntity) Bounds(size int) core.Rect {
	return core.Square(f.Pos, size)
}
