package engine

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/alchemy/component"
	"github.com/lixenwraith/alchemy/core"
)

// FieldStore owns the live field entities
// Iteration order is spawn order; later entities are drawn on top
type FieldStore struct {
	size     int
	nextID   core.Entity
	entities map[core.Entity]component.FieldEntity
	order    []core.Entity
	held     core.Entity // Entity of the active drag session, NoEntity when idle
}

// NewFieldStore creates a store whose entities have square bounds of side size
func NewFieldStore(size int) *FieldStore {
	return &FieldStore{
		size:     size,
		entities: make(map[core.Entity]component.FieldEntity),
		order:    make([]core.Entity, 0, 64),
	}
}

// Size returns the bounding box side
func (s *FieldStore) Size() int {
	return s.size
}

// Spawn creates and inserts a new entity
func (s *FieldStore) Spawn(elementID string, pos core.Point) core.Entity {
	s.nextID++
	e := s.nextID
	s.entities[e] = component.FieldEntity{Entity: e, ElementID: elementID, Pos: pos}
	s.order = append(s.order, e)
	return e
}

// Remove deletes an entity, returning false if it was already gone
// Removing the held entity ends the hold
func (s *FieldStore) Remove(e core.Entity) bool {
	if _, exists := s.entities[e]; !exists {
		return false
	}
	delete(s.entities, e)

	// Order-preserving compaction keeps pair enumeration and z-order stable
	for i, id := range s.order {
		if id == e {
			copy(s.order[i:], s.order[i+1:])
			s.order = s.order[:len(s.order)-1]
			break
		}
	}

	if s.held == e {
		s.held = core.NoEntity
	}
	return true
}

// Get returns the entity value
func (s *FieldStore) Get(e core.Entity) (component.FieldEntity, bool) {
	f, ok := s.entities[e]
	return f, ok
}

// Has reports whether e is live
func (s *FieldStore) Has(e core.Entity) bool {
	_, ok := s.entities[e]
	return ok
}

// Hold marks e as the subject of the drag session
func (s *FieldStore) Hold(e core.Entity) error {
	if !s.Has(e) {
		return fmt.Errorf("%w: hold of missing entity %d", ErrInvalidOperation, e)
	}
	s.held = e
	return nil
}

// ReleaseHold clears the drag subject
func (s *FieldStore) ReleaseHold() {
	s.held = core.NoEntity
}

// Held returns the drag subject, NoEntity when none
func (s *FieldStore) Held() core.Entity {
	return s.held
}

// Move updates the position of the held entity in place
func (s *FieldStore) Move(e core.Entity, pos core.Point) error {
	f, ok := s.entities[e]
	if !ok {
		return fmt.Errorf("%w: move of missing entity %d", ErrInvalidOperation, e)
	}
	if e != s.held {
		return fmt.Errorf("%w: move of entity %d not held by a drag", ErrInvalidOperation, e)
	}
	f.Pos = pos
	s.entities[e] = f
	return nil
}

// All returns the entities in spawn order
func (s *FieldStore) All() []component.FieldEntity {
	out := make([]component.FieldEntity, 0, len(s.order))
	for _, e := range s.order {
		out = append(out, s.entities[e])
	}
	return out
}

// Len returns the number of live entities
func (s *FieldStore) Len() int {
	return len(s.order)
}

// Clear removes all entities; identities are never reused
func (s *FieldStore) Clear() {
	s.entities = make(map[core.Entity]component.FieldEntity)
	s.order = s.order[:0]
	s.held = core.NoEntity
}

// AllPairs yields each unordered pair of live entities once, in store order
// Membership is read fresh on every call; a pair whose member was removed
// while iterating is skipped
func (s *FieldStore) AllPairs() iter.Seq2[component.FieldEntity, component.FieldEntity] {
	return func(yield func(component.FieldEntity, component.FieldEntity) bool) {
		ids := make([]core.Entity, len(s.order))
		copy(ids, s.order)

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, okA := s.entities[ids[i]]
				if !okA {
					break
				}
				b, okB := s.entities[ids[j]]
				if !okB {
					continue
				}
				if !yield(a, b) {
					return
				}
			}
		}
	}
}

// Overlaps reports whether two distinct entities' boxes intersect with nonzero area
func (s *FieldStore) Overlaps(a, b component.FieldEntity) bool {
	if a.Entity == b.Entity {
		return false
	}
	return a.Bounds(s.size).Intersects(b.Bounds(s.size))
}

// TopmostAt returns the most recently spawned entity whose box contains p
func (s *FieldStore) TopmostAt(p core.Point) (component.FieldEntity, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		f := s.entities[s.order[i]]
		if f.Bounds(s.size).Contains(p) {
			return f, true
		}
	}
	return component.FieldEntity{}, false
}
