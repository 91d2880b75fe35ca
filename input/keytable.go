package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Plain rune bindings, matched only without Ctrl
	Runes map[rune]IntentType

	// Rune bindings with Ctrl held, for terminals reporting Ctrl+letter as a rune
	CtrlRunes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			'r': IntentReset,
			'd': IntentDebug,
		},
		CtrlRunes: map[rune]IntentType{
			'c': IntentQuit,
		},
	}
}

// Lookup returns the intent bound to ev, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		return kt.CtrlRunes[ev.Rune()]
	}
	return kt.Runes[ev.Rune()]
}
