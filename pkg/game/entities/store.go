package entities

import (
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// Store keeps the entities of one level in spawn order
type Store struct {
	nextID   int
	entities []*Entity
	byPos    map[world.Position][]*Entity
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		nextID: 1,
		byPos:  make(map[world.Position][]*Entity),
	}
}

// Add assigns an id to e (unless it already has one) and stores it
func (s *Store) Add(e *Entity) *Entity {
	if e.ID == 0 {
		e.ID = s.nextID
		s.nextID++
	}
	s.entities = append(s.entities, e)
	s.byPos[e.Position] = append(s.byPos[e.Position], e)
	return e
}

// Len returns the number of stored entities
func (s *Store) Len() int {
	return len(s.entities)
}

// All returns every entity in spawn order
func (s *Store) All() []*Entity {
	return s.entities
}

// At returns the entities standing at pos
func (s *Store) At(pos world.Position) []*Entity {
	return s.byPos[pos]
}

// IsBlocked reports whether any entity at pos blocks movement
func (s *Store) IsBlocked(pos world.Position) bool {
	for _, e := range s.byPos[pos] {
		if e.BlocksMovement() {
			return true
		}
	}
	return false
}

// OfKind returns the entities of the given kind in spawn order
func (s *Store) OfKind(kind Kind) []*Entity {
	var result []*Entity
	for _, e := range s.entities {
		if e.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

// Clear removes every entity. Ids keep increasing across levels.
func (s *Store) Clear() {
	s.entities = nil
	s.byPos = make(map[world.Position][]*Entity)
}
