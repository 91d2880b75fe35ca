package event

// EventType represents the type of game event
type EventType int

const (
	// EventEntitySpawned signals a panel clone placed on the field
	// Trigger: DragSystem press on unlocked panel entry
	// Consumer: none by default | Payload: *EntityPayload
	EventEntitySpawned EventType = iota

	// EventEntityDiscarded signals an entity dropped into the trash
	// Trigger: DragSystem release inside trash zone
	// Consumer: AudioSystem | Payload: *EntityPayload
	EventEntityDiscarded

	// EventEntitiesCombined signals two inputs consumed by a rule
	// Trigger: CombinationSystem
	// Consumer: AudioSystem | Payload: *CombinedPayload
	EventEntitiesCombined

	// EventElementDiscovered signals a result unlocked for the first time
	// Trigger: CombinationSystem
	// Consumer: AudioSystem, World discovery message | Payload: *DiscoveredPayload
	EventElementDiscovered

	// EventCombinationFinalized signals the result entity inserted after its spawn animation
	// Trigger: AnimationEngine finalize
	// Consumer: none by default | Payload: *EntityPayload
	EventCombinationFinalized

	// EventPanelLocked signals a press on a locked panel entry
	// Trigger: DragSystem
	// Consumer: AudioSystem | Payload: *PanelPayload
	EventPanelLocked

	// EventFieldReset signals the field cleared by the player
	// Trigger: World.Reset
	// Consumer: none by default | Payload: nil
	EventFieldReset
)

func (t EventType) String() string {
	switch t {
	case EventEntitySpawned:
		return "EntitySpawned"
	case EventEntityDiscarded:
		return "EntityDiscarded"
	case EventEntitiesCombined:
		return "EntitiesCombined"
	case EventElementDiscovered:
		return "ElementDiscovered"
	case EventCombinationFinalized:
		return "CombinationFinalized"
	case EventPanelLocked:
		return "PanelLocked"
	case EventFieldReset:
		return "FieldReset"
	default:
		return "Unknown"
	}
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick number at emission
}
