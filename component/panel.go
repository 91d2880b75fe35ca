package component

import "github.com/lixenwraith/alchemy/core"

// PanelEntry is a fixed panel slot for one catalog element
type PanelEntry struct {
	ElementID string
	Pos       core.Point
	Unlocked  bool
}

func (p PanelEntry) Element() string    { return p.ElementID }
func (p PanelEntry) Anchor() core.Point { return p.Pos }
