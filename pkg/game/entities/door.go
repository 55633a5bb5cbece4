package entities

import (
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// NewDoor creates a closed door at pos
func NewDoor(pos world.Position) *Entity {
	return &Entity{
		Kind:     KindDoor,
		Name:     "door",
		Position: pos,
		Closed:   true,
	}
}

// Open opens the door
func (e *Entity) Open() {
	if e.Kind == KindDoor {
		e.Closed = false
	}
}

// Close closes the door
func (e *Entity) Close() {
	if e.Kind == KindDoor {
		e.Closed = true
	}
}
