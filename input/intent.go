package input

import "github.com/lixenwraith/alchemy/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C, Esc
	IntentToggleMute // m
	IntentReset      // r
	IntentDebug      // d
	IntentResize     // Terminal resize event

	// Mouse
	IntentPointer // Button 1 press, drag or release
)

var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "mute",
	IntentReset:      "reset",
	IntentDebug:      "debug",
	IntentResize:     "resize",
	IntentPointer:    "pointer",
}

func (t IntentType) String() string {
	if n, ok := intentNames[t]; ok {
		return n
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine state
type Intent struct {
	Type    IntentType
	Pointer engine.PointerEvent // Valid for IntentPointer
}
