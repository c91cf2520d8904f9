// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-okay/pkg/engine"
	"github.com/opd-ai/go-okay/pkg/physics"
)

// System priorities; higher runs first within a frame
const (
	inputPriority      = 20
	simulationPriority = 10
)

// InputSystem turns left mouse button presses and releases into gestures
type InputSystem struct {
	game   *engine.Game
	camera *Camera
}

// NewInputSystem creates a new input system
func NewInputSystem(game *engine.Game, camera *Camera) *InputSystem {
	return &InputSystem{game: game, camera: camera}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Priority makes input run before the simulation step
func (is *InputSystem) Priority() int {
	return inputPriority
}

// Update applies this frame's mouse action to the game
func (is *InputSystem) Update(dt float32) {
	mouse := engo.Input.Mouse
	if gesture, ok := gestureFor(mouse.Action, mouse.Button, is.camera.Mouse()); ok {
		is.game.Apply(gesture)
	}
}

// gestureFor maps an engo mouse action to a gesture. Only the left button
// counts.
func gestureFor(action engo.Action, button engo.MouseButton, point physics.Vector2D) (engine.Gesture, bool) {
	if button != engo.MouseButtonLeft {
		return engine.Gesture{}, false
	}
	switch action {
	case engo.Press:
		return engine.Gesture{Kind: engine.GestureBegin, Point: point}, true
	case engo.Release:
		return engine.Gesture{Kind: engine.GestureEnd, Point: point}, true
	}
	return engine.Gesture{}, false
}

// SimulationSystem advances the game one tick per frame and redraws it
type SimulationSystem struct {
	game     *engine.Game
	renderer *EngoRenderer
}

// NewSimulationSystem creates a new simulation system
func NewSimulationSystem(game *engine.Game, renderer *EngoRenderer) *SimulationSystem {
	return &SimulationSystem{game: game, renderer: renderer}
}

// Remove satisfies the ecs.System interface
func (ss *SimulationSystem) Remove(basic ecs.BasicEntity) {}

// Priority makes the simulation run after input and before rendering
func (ss *SimulationSystem) Priority() int {
	return simulationPriority
}

// Update runs one game tick
func (ss *SimulationSystem) Update(dt float32) {
	ss.game.Update()
	ss.game.Render(ss.renderer)
}
