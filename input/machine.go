package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/render"
)

// Machine is the input state machine
// Parses tcell events into semantic Intent; button 1 transitions become pointer events
type Machine struct {
	keyTable *KeyTable
	view     render.Viewport

	pressed bool // Button 1 currently down
	lastCol int
	lastRow int
}

// NewMachine creates a new input machine for the given viewport
func NewMachine(view render.Viewport) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		view:     view,
	}
}

// SetViewport updates the cell to field mapping after a resize
func (m *Machine) SetViewport(view render.Viewport) {
	m.view = view
}

// Pressed reports whether button 1 is held
func (m *Machine) Pressed() bool {
	return m.pressed
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		if t := m.keyTable.Lookup(ev); t != IntentNone {
			return &Intent{Type: t}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	col, row := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	var kind engine.PointerKind
	switch {
	case down && !m.pressed:
		kind = engine.PointerPress
	case down && m.pressed:
		if col == m.lastCol && row == m.lastRow {
			return nil
		}
		kind = engine.PointerMove
	case !down && m.pressed:
		kind = engine.PointerRelease
	default:
		return nil
	}

	m.pressed = down
	m.lastCol, m.lastRow = col, row
	return &Intent{
		Type:    IntentPointer,
		Pointer: engine.PointerEvent{Kind: kind, Pos: m.view.ToField(col, row)},
	}
}
