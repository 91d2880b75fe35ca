package parameter

import "time"

// ElementSize is the side of the square bounding box of every element, in field units
const ElementSize = 50

// AnimationDuration is the length of spawn and despawn transitions
const AnimationDuration = 300 * time.Millisecond

// BaseElements are unlocked at session start when the config names none
var BaseElements = []string{"Air", "Fire", "Earth", "Water"}

// Trash Zone
const (
	// TrashSize is the side of the discard zone
	TrashSize = 80

	// TrashBottomMargin is the gap between the discard zone and the bottom edge
	TrashBottomMargin = 10
)

// DiscoveryMessageTimeout is how long the last discovery stays in the status bar
const DiscoveryMessageTimeout = 3 * time.Second
