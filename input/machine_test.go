package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/render"
)

func newMachine() *Machine {
	return NewMachine(render.NewViewport(100, 25))
}

func TestMouseButtonTransitions(t *testing.T) {
	m := newMachine()

	steps := []struct {
		x, y    int
		buttons tcell.ButtonMask
		want    *engine.PointerKind
	}{
		{10, 4, tcell.Button1, kindPtr(engine.PointerPress)},
		{10, 4, tcell.Button1, nil}, // Same cell while held
		{12, 5, tcell.Button1, kindPtr(engine.PointerMove)},
		{12, 5, tcell.ButtonNone, kindPtr(engine.PointerRelease)},
		{20, 5, tcell.ButtonNone, nil}, // Hover
		{20, 5, tcell.Button2, nil},    // Other buttons ignored
	}

	for i, s := range steps {
		intent := m.Process(tcell.NewEventMouse(s.x, s.y, s.buttons, tcell.ModNone))
		if s.want == nil {
			if intent != nil {
				t.Errorf("Step %d: expected no intent, got %+v", i, intent)
			}
			continue
		}
		if intent == nil || intent.Type != IntentPointer {
			t.Fatalf("Step %d: expected pointer intent, got %+v", i, intent)
		}
		if intent.Pointer.Kind != *s.want {
			t.Errorf("Step %d: expected %s, got %s", i, *s.want, intent.Pointer.Kind)
		}
	}
	if m.Pressed() {
		t.Error("Expected button released after sequence")
	}
}

func TestMousePositionInFieldUnits(t *testing.T) {
	m := newMachine()
	intent := m.Process(tcell.NewEventMouse(10, 4, tcell.Button1, tcell.ModNone))
	if intent == nil {
		t.Fatal("Expected press intent")
	}
	want := core.Point{X: 105, Y: 112}
	if intent.Pointer.Pos != want {
		t.Errorf("Expected %v, got %v", want, intent.Pointer.Pos)
	}
}

func TestKeyBindings(t *testing.T) {
	m := newMachine()
	cases := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReset},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), IntentDebug},
	}
	for _, c := range cases {
		intent := m.Process(c.ev)
		if intent == nil || intent.Type != c.want {
			t.Errorf("Expected %s, got %+v", c.want, intent)
		}
	}

	if intent := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); intent != nil {
		t.Errorf("Expected unbound key to produce nothing, got %+v", intent)
	}
}

func TestResizeIntent(t *testing.T) {
	m := newMachine()
	if intent := m.Process(tcell.NewEventResize(80, 24)); intent == nil || intent.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", intent)
	}
}

func kindPtr(k engine.PointerKind) *engine.PointerKind {
	return &k
}
