// Package entities holds the things spawned into a generated level:
// the player, doors and monsters.
package entities

import (
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

// Kind classifies an entity
type Kind int

const (
	KindPlayer Kind = iota
	KindDoor
	KindMonster
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindDoor:
		return "door"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Entity is anything occupying a cell of a level
type Entity struct {
	ID       int
	Kind     Kind
	Name     string
	Position world.Position
	Closed   bool
}

// NewPlayer creates the player entity. Its position is set by the level generator.
func NewPlayer(name string) *Entity {
	return &Entity{Kind: KindPlayer, Name: name}
}

// NewMonster creates a monster standing at pos
func NewMonster(name string, pos world.Position) *Entity {
	return &Entity{Kind: KindMonster, Name: name, Position: pos}
}

// BlocksMovement reports whether the entity occupies its cell exclusively
func (e *Entity) BlocksMovement() bool {
	switch e.Kind {
	case KindDoor:
		return e.Closed
	default:
		return true
	}
}
