// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-okay/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	IsActive() bool
	Render(r Renderer)
}

// BaseEntity contains common functionality for moving entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// IsActive reports whether the entity is currently simulated and drawn
func (e *BaseEntity) IsActive() bool {
	return e.Active
}

var lastID atomic.Uint64

// GenerateID returns a process-wide unique, non-zero entity ID
func GenerateID() ID {
	return ID(lastID.Add(1))
}

func (b *Ball) Render(r Renderer) {
	r.RenderBall(b)
}

func (t *Target) Render(r Renderer) {
	r.RenderTarget(t)
}
