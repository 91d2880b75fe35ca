package engine

import "github.com/lixenwraith/alchemy/core"

// PointerKind is the phase of a pointer event
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	default:
		return "unknown"
	}
}

// PointerEvent is a device-agnostic pointer sample in field units
type PointerEvent struct {
	Kind PointerKind
	Pos  core.Point
}
