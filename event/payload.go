package event

import "github.com/lixenwraith/alchemy/core"

// EntityPayload identifies one field entity
type EntityPayload struct {
	Entity    core.Entity
	ElementID string
	Pos       core.Point
}

// CombinedPayload describes a successful combination
type CombinedPayload struct {
	First, Second core.Entity
	Inputs        [2]string
	Result        string
	Anchor        core.Point
}

// DiscoveredPayload names a newly unlocked element
type DiscoveredPayload struct {
	ElementID string
	Name      string
}

// PanelPayload identifies a panel entry
type PanelPayload struct {
	ElementID string
}
