// pkg/entity/ball.go
package entity

import (
	"github.com/opd-ai/go-okay/pkg/physics"
)

// Ball is the projectile the player drags and releases.
// Radius and Speed are fixed at construction; the ball is reused for every shot.
type Ball struct {
	BaseEntity
	Radius float64
	Speed  float64
}

// NewBall creates an inactive ball
func NewBall(id ID, radius, speed float64) *Ball {
	return &Ball{
		BaseEntity: BaseEntity{ID: id},
		Radius:     radius,
		Speed:      speed,
	}
}

// Launch places the ball at position, at rest, and makes it active
func (b *Ball) Launch(position physics.Vector2D) {
	b.Position = position
	b.Velocity = physics.Vector2D{}
	b.Active = true
}

// SetVelocity aims the ball from start towards end.
// Only the direction of the drag matters: the ball always moves at Speed.
// A zero-length drag leaves the ball at rest.
func (b *Ball) SetVelocity(start, end physics.Vector2D) {
	direction := end.Sub(start)
	if direction.Length() == 0 {
		b.Velocity = physics.Vector2D{}
		return
	}
	b.Velocity = direction.Normalize().Scale(b.Speed)
}

// Integrate advances the ball by one tick of its velocity
func (b *Ball) Integrate() {
	b.Position = b.Position.Add(b.Velocity)
}

// CollidesWith reports whether the ball centre is in one of rect's edge hit
// bands and, if so, reflects the matching velocity component: dy for the
// top and bottom bands, dx for the left and right bands.
func (b *Ball) CollidesWith(rect physics.Rect, offset float64) bool {
	return b.Collide(rect, offset) != physics.EdgeNone
}

// Collide is CollidesWith reporting which band was hit
func (b *Ball) Collide(rect physics.Rect, offset float64) physics.Edge {
	edge := physics.EdgeHit(b.Position, rect, offset)
	switch edge {
	case physics.EdgeHorizontal:
		b.Velocity.Y = -b.Velocity.Y
	case physics.EdgeVertical:
		b.Velocity.X = -b.Velocity.X
	}
	return edge
}

// IsOutOfBounds reports whether the ball centre left [0,width] x [0,height]
func (b *Ball) IsOutOfBounds(width, height float64) bool {
	return b.Position.X < 0 || b.Position.X > width ||
		b.Position.Y < 0 || b.Position.Y > height
}
