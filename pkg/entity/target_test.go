package entity

import (
	"testing"

	"github.com/opd-ai/go-okay/pkg/physics"
)

func TestNewTarget_StartsActive(t *testing.T) {
	rect := physics.Rect{X: 551, Y: 278, Width: 367, Height: 55}
	target := NewTarget(3, rect)

	if !target.IsActive() {
		t.Error("new target should be active")
	}
	if target.GetID() != 3 {
		t.Errorf("GetID() = %d, want 3", target.GetID())
	}
	if target.Rect != rect {
		t.Errorf("Rect = %v, want %v", target.Rect, rect)
	}
}

func TestTarget_LaunchZone(t *testing.T) {
	target := NewTarget(1, physics.Rect{X: 100, Y: 100, Width: 50, Height: 20})
	zone := target.LaunchZone(10)

	if !zone.Contains(physics.Vector2D{X: 90, Y: 90}) {
		t.Error("launch zone should include the expanded corner")
	}
	if zone.Contains(physics.Vector2D{X: 89.5, Y: 100}) {
		t.Error("launch zone should not extend past the offset")
	}
	if target.Rect != (physics.Rect{X: 100, Y: 100, Width: 50, Height: 20}) {
		t.Error("LaunchZone must not modify the target rect")
	}
}
