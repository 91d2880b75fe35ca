package engine

import (
	"github.com/lixenwraith/alchemy/component"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/element"
	"github.com/lixenwraith/alchemy/parameter"
)

// Panel is the fixed grid of catalog elements on the left
// Slot positions never change; unlocked state is read from the inventory
type Panel struct {
	size  int
	ids   []string
	slots []core.Point
}

// NewPanel lays out one slot per catalog element in catalog order
func NewPanel(catalog *element.Catalog, size int) *Panel {
	defs := catalog.All()
	p := &Panel{
		size:  size,
		ids:   make([]string, len(defs)),
		slots: make([]core.Point, len(defs)),
	}
	for i, d := range defs {
		p.ids[i] = d.ID
		p.slots[i] = PanelSlot(i, size)
	}
	return p
}

// PanelSlot returns the anchor of the i-th panel slot
func PanelSlot(i, size int) core.Point {
	col := i % parameter.PanelColumns
	row := i / parameter.PanelColumns
	return core.Point{
		X: parameter.PanelPadding + col*parameter.PanelColumnWidth + (parameter.PanelColumnWidth-size)/2,
		Y: parameter.PanelTop + row*(size+parameter.PanelRowGap),
	}
}

// Entries returns every slot with its unlocked state
func (p *Panel) Entries(inv *Inventory) []component.PanelEntry {
	out := make([]component.PanelEntry, len(p.ids))
	for i, id := range p.ids {
		out[i] = component.PanelEntry{ElementID: id, Pos: p.slots[i], Unlocked: inv.IsUnlocked(id)}
	}
	return out
}

// EntryAt hit-tests pt against slot boxes
func (p *Panel) EntryAt(pt core.Point, inv *Inventory) (component.PanelEntry, bool) {
	for i, slot := range p.slots {
		if core.Square(slot, p.size).Contains(pt) {
			return component.PanelEntry{ElementID: p.ids[i], Pos: slot, Unlocked: inv.IsUnlocked(p.ids[i])}, true
		}
	}
	return component.PanelEntry{}, false
}

// Bounds returns the panel area for a field of the given height
func (p *Panel) Bounds(height int) core.Rect {
	return core.Rect{X: 0, Y: 0, Width: parameter.PanelWidth, Height: height}
}

// TrashZone returns the discard box for a field of the given size
// Centered horizontally in the play area right of the panel, near the bottom
func TrashZone(width, height int) core.Rect {
	return core.Rect{
		X:      (width+parameter.PanelWidth)/2 - parameter.TrashSize/2,
		Y:      height - parameter.TrashSize - parameter.TrashBottomMargin,
		Width:  parameter.TrashSize,
		Height: parameter.TrashSize,
	}
}
