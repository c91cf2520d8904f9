// pkg/entity/target.go
package entity

import (
	"github.com/opd-ai/go-okay/pkg/physics"
)

// Target is a stationary rectangle the ball can knock out.
// An inactive target is neither drawn nor collided with.
type Target struct {
	ID     ID
	Rect   physics.Rect
	Active bool
}

// NewTarget creates an active target covering rect
func NewTarget(id ID, rect physics.Rect) *Target {
	return &Target{
		ID:     id,
		Rect:   rect,
		Active: true,
	}
}

// GetID returns the target's unique identifier
func (t *Target) GetID() ID {
	return t.ID
}

// IsActive reports whether the target is standing
func (t *Target) IsActive() bool {
	return t.Active
}

// LaunchZone is the area around the target a shot may not start from
func (t *Target) LaunchZone(offset float64) physics.Rect {
	return t.Rect.Expand(offset)
}
