// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-okay/pkg/physics"
)

// Camera maps window pixels to game coordinates. The engo camera stays at
// its default, centred on the game area with zoom 1, so the mapping is a
// plain scale between the window and the game size.
type Camera struct {
	gameWidth  float32
	gameHeight float32
}

// NewCamera creates a camera for a game area of the given size
func NewCamera(gameWidth, gameHeight float32) *Camera {
	return &Camera{gameWidth: gameWidth, gameHeight: gameHeight}
}

// ScreenToWorld converts a window position to game coordinates
func (c *Camera) ScreenToWorld(screenPos engo.Point, windowWidth, windowHeight float32) physics.Vector2D {
	scaleX, scaleY := float32(1), float32(1)
	if windowWidth > 0 {
		scaleX = c.gameWidth / windowWidth
	}
	if windowHeight > 0 {
		scaleY = c.gameHeight / windowHeight
	}
	return physics.Vector2D{
		X: float64(screenPos.X * scaleX),
		Y: float64(screenPos.Y * scaleY),
	}
}

// WorldToScreen converts game coordinates to an engo position
func (c *Camera) WorldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{X: float32(worldPos.X), Y: float32(worldPos.Y)}
}

// Mouse returns the current cursor position in game coordinates
func (c *Camera) Mouse() physics.Vector2D {
	return c.ScreenToWorld(
		engo.Point{X: engo.Input.Mouse.X, Y: engo.Input.Mouse.Y},
		engo.WindowWidth(), engo.WindowHeight(),
	)
}
