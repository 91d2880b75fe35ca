package engine

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/lixenwraith/alchemy/component"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/element"
	"github.com/lixenwraith/alchemy/event"
	"github.com/lixenwraith/alchemy/parameter"
	"github.com/lixenwraith/alchemy/status"
)

// IconFunc resolves the opaque icon handle for an element, captured into animation snapshots
type IconFunc func(def element.Definition) any

// Options configures a World; zero fields take parameter defaults
type Options struct {
	Clock             TimeProvider
	ElementSize       int
	AnimationDuration time.Duration
	Width, Height     int  // Field bounds in field units
	Strict            bool // Panic on invalid operations instead of logging
	Icons             IconFunc
	Status            *status.Registry
}

// World is the single simulation context passed to every system
// All fields are owned by the tick goroutine
type World struct {
	Catalog    *element.Catalog
	Table      *element.Table
	Inventory  *Inventory
	Field      *FieldStore
	Animations *AnimationEngine
	Panel      *Panel
	Events     *event.EventQueue
	Status     *status.Registry

	// Drag is the active drag session, nil when idle
	Drag *component.DragSession

	clock    TimeProvider
	router   *EventRouter
	systems  []System
	pointers []PointerEvent

	bounds core.Rect
	trash  core.Rect
	size   int
	strict bool
	icons  IconFunc

	frame int64
	now   time.Time

	discovery   string
	discoveryAt time.Time
}

// NewWorld builds a world from validated config
func NewWorld(cfg *element.Config, opts Options) *World {
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.ElementSize <= 0 {
		opts.ElementSize = parameter.ElementSize
	}
	if opts.AnimationDuration <= 0 {
		opts.AnimationDuration = parameter.AnimationDuration
	}
	if opts.Width <= 0 {
		opts.Width = parameter.DefaultFieldWidth
	}
	if opts.Height <= 0 {
		opts.Height = parameter.DefaultFieldHeight
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	queue := event.NewEventQueue()
	w := &World{
		Catalog:    cfg.Catalog,
		Table:      cfg.Table,
		Inventory:  NewInventory(cfg.Base),
		Field:      NewFieldStore(opts.ElementSize),
		Animations: NewAnimationEngine(opts.Clock, opts.AnimationDuration),
		Panel:      NewPanel(cfg.Catalog, opts.ElementSize),
		Events:     queue,
		Status:     opts.Status,
		clock:      opts.Clock,
		router:     NewEventRouter(queue),
		pointers:   make([]PointerEvent, 0, parameter.PointerBufferSize),
		size:       opts.ElementSize,
		strict:     opts.Strict,
		icons:      opts.Icons,
		now:        opts.Clock.Now(),
	}
	w.SetBounds(opts.Width, opts.Height)
	w.router.Register(discoveryHandler{})
	return w
}

// AddSystem registers a system, keeping priority order stable for equal priorities
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(EventHandler); ok {
		w.router.Register(h)
	}
}

// RegisterHandler adds an event handler that is not a system
func (w *World) RegisterHandler(h EventHandler) {
	w.router.Register(h)
}

// Systems returns the registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// SetBounds resizes the field and recomputes the trash zone
func (w *World) SetBounds(width, height int) {
	w.bounds = core.Rect{Width: width, Height: height}
	w.trash = TrashZone(width, height)
}

// Bounds returns the field area
func (w *World) Bounds() core.Rect { return w.bounds }

// Trash returns the discard zone
func (w *World) Trash() core.Rect { return w.trash }

// ElementSize returns the bounding box side of every element
func (w *World) ElementSize() int { return w.size }

// Now returns the time captured at the start of the current tick
func (w *World) Now() time.Time { return w.now }

// Frame returns the current tick number
func (w *World) Frame() int64 { return w.frame }

// PushPointer buffers a pointer event for the next tick
// Consecutive moves coalesce to the latest position
func (w *World) PushPointer(ev PointerEvent) {
	if n := len(w.pointers); n > 0 && ev.Kind == PointerMove && w.pointers[n-1].Kind == PointerMove {
		w.pointers[n-1] = ev
		return
	}
	if len(w.pointers) >= parameter.PointerBufferSize {
		log.Printf("pointer buffer full, dropping %s at %v", ev.Kind, ev.Pos)
		return
	}
	w.pointers = append(w.pointers, ev)
}

// DrainPointers returns and clears the buffered pointer events
func (w *World) DrainPointers() []PointerEvent {
	if len(w.pointers) == 0 {
		return nil
	}
	out := make([]PointerEvent, len(w.pointers))
	copy(out, w.pointers)
	w.pointers = w.pointers[:0]
	return out
}

// Emit pushes a game event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: w.frame})
}

// Tick advances the simulation one step: systems in priority order, then event dispatch
func (w *World) Tick() Snapshot {
	w.frame++
	w.now = w.clock.Now()

	for _, s := range w.systems {
		s.Update(w)
	}
	w.router.DispatchAll(w)

	return w.Snapshot()
}

// Snapshot copies the renderable state without advancing
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:       w.frame,
		Now:         w.now,
		Bounds:      w.bounds,
		Trash:       w.trash,
		ElementSize: w.size,
		Panel:       w.Panel.Entries(w.Inventory),
		Inventory:   w.Inventory.IDs(),
		Field:       w.Field.All(),
		Animations:  w.Animations.Views(w.now),
		Unlocked:    w.Inventory.Len(),
		Total:       w.Catalog.Len(),
	}
	if w.Drag != nil {
		snap.Dragging = w.Drag.Entity
	}
	if w.discovery != "" && w.now.Sub(w.discoveryAt) < parameter.DiscoveryMessageTimeout {
		snap.Discovery = w.discovery
	}
	return snap
}

// Reset clears field, animations and drag; the inventory is kept
func (w *World) Reset() {
	w.Field.Clear()
	w.Animations.Clear()
	w.Drag = nil
	w.pointers = w.pointers[:0]
	w.Emit(event.EventFieldReset, nil)
}

// Subject snapshots what an animation of id draws
func (w *World) Subject(id string) component.Subject {
	def, ok := w.Catalog.Get(id)
	if !ok {
		def = element.Definition{ID: id, Name: id}
	}
	subj := component.Subject{ElementID: def.ID, Name: def.Name}
	if w.icons != nil {
		subj.Icon = w.icons(def)
	}
	return subj
}

// DisplayName returns the element name, or id when undefined
func (w *World) DisplayName(id string) string {
	if def, ok := w.Catalog.Get(id); ok {
		return def.Name
	}
	return id
}

// InvalidOperation reports a programmer error: panic in strict mode, log otherwise
func (w *World) InvalidOperation(err error) {
	if w.strict {
		panic(err)
	}
	log.Printf("ignored: %v", err)
}

// discoveryHandler keeps the last discovery message for the status bar
type discoveryHandler struct{}

func (discoveryHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventElementDiscovered}
}

func (discoveryHandler) HandleEvent(w *World, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.DiscoveredPayload)
	if !ok {
		return
	}
	w.discovery = fmt.Sprintf(parameter.DiscoveryFmt, p.Name)
	w.discoveryAt = w.now
	log.Print(w.discovery)
}
