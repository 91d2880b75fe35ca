package engine

import (
	"time"

	"github.com/lixenwraith/alchemy/component"
	"github.com/lixenwraith/alchemy/core"
)

// Snapshot is the renderable state after a tick
// Slices are copies; the renderer may keep them
type Snapshot struct {
	Frame       int64
	Now         time.Time
	Bounds      core.Rect
	Trash       core.Rect
	ElementSize int

	Panel      []component.PanelEntry
	Inventory  []string
	Field      []component.FieldEntity
	Animations []AnimationView

	Dragging  core.Entity // NoEntity when idle
	Discovery string      // Recent discovery message, empty once expired
	Unlocked  int
	Total     int
}
