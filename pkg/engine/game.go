// pkg/engine/game.go
package engine

import (
	"github.com/opd-ai/go-okay/pkg/config"
	"github.com/opd-ai/go-okay/pkg/entity"
	"github.com/opd-ai/go-okay/pkg/event"
	"github.com/opd-ai/go-okay/pkg/physics"
)

// Game owns the ball, the two targets and the launch gesture, and advances
// them one tick at a time. It is not safe for concurrent use: a single
// driver (Loop or a front-end update callback) must make every call.
type Game struct {
	Config      *config.GameConfig
	Ball        *entity.Ball
	Targets     []*entity.Target
	EventBus    *event.Bus
	CurrentTick uint64

	width        float64
	height       float64
	offset       float64
	pendingStart *physics.Vector2D
}

// NewGame creates a new game with the specified configuration.
// The configuration is expected to have passed config.Validate.
func NewGame(cfg *config.GameConfig) *Game {
	game := &Game{
		Config:   cfg,
		Ball:     entity.NewBall(entity.GenerateID(), cfg.Ball.Radius, cfg.Ball.Speed),
		EventBus: event.NewEventBus(),
		width:    float64(cfg.Screen.Width),
		height:   float64(cfg.Screen.Height),
		offset:   cfg.CollisionOffset,
	}
	game.initTargets()
	return game
}

// initTargets creates the targets from the configuration, all standing.
func (g *Game) initTargets() {
	g.Targets = make([]*entity.Target, 0, len(g.Config.Targets))
	for _, tc := range g.Config.Targets {
		g.Targets = append(g.Targets, entity.NewTarget(entity.GenerateID(), tc.Rect()))
	}
}

// CanLaunchFrom reports whether a shot may start at point: it must lie
// outside every target's launch zone, whether or not the target is standing.
func (g *Game) CanLaunchFrom(point physics.Vector2D) bool {
	for _, target := range g.Targets {
		if target.LaunchZone(g.offset).Contains(point) {
			return false
		}
	}
	return true
}

// OnGestureBegin places the ball at point and starts aiming, unless point is
// too close to a target, in which case the gesture is ignored.
func (g *Game) OnGestureBegin(point physics.Vector2D) {
	if !g.CanLaunchFrom(point) {
		g.EventBus.Publish(event.NewGestureEvent(event.GestureRejected, g, point))
		return
	}

	g.Ball.Launch(point)
	start := point
	g.pendingStart = &start

	g.EventBus.Publish(event.NewBallEvent(event.BallLaunched, g, uint64(g.Ball.ID), g.Ball.Position, g.Ball.Velocity))
}

// OnGestureEnd releases the ball towards point. Without a pending start
// point (a release with no accepted press) it does nothing.
func (g *Game) OnGestureEnd(point physics.Vector2D) {
	if g.pendingStart == nil {
		return
	}

	g.Ball.SetVelocity(*g.pendingStart, point)
	g.pendingStart = nil

	g.EventBus.Publish(event.NewBallEvent(event.BallReleased, g, uint64(g.Ball.ID), g.Ball.Position, g.Ball.Velocity))
}

// Tick returns the number of updates run so far
func (g *Game) Tick() uint64 {
	return g.CurrentTick
}

// Aiming reports whether a gesture has started and not yet been released
func (g *Game) Aiming() bool {
	return g.pendingStart != nil
}

// Update advances the game state by one tick: motion, then collisions, then
// the bounds check.
func (g *Game) Update() {
	if g.Ball.Active {
		g.Ball.Integrate()
		g.processCollisions()
	}
	g.checkBounds()
	g.CurrentTick++
}

// processCollisions knocks out every standing target the ball is touching.
// Targets are checked in order, so a ball touching both reflects twice.
func (g *Game) processCollisions() {
	for _, target := range g.Targets {
		if !target.Active {
			continue
		}
		edge := g.Ball.Collide(target.Rect, g.offset)
		if edge == physics.EdgeNone {
			continue
		}
		target.Active = false
		g.EventBus.Publish(event.NewTargetEvent(g, uint64(target.ID), uint64(g.Ball.ID), edge))
	}
}

// checkBounds ends the shot once the ball leaves the screen. Every target
// comes back, not only the ones this shot knocked out.
func (g *Game) checkBounds() {
	if !g.Ball.IsOutOfBounds(g.width, g.height) {
		return
	}

	wasActive := g.Ball.Active
	restored := g.resetTargets()
	g.Ball.Active = false

	if len(restored) > 0 {
		g.EventBus.Publish(event.NewResetEvent(g, restored))
	}
	if wasActive {
		g.EventBus.Publish(event.NewBallEvent(event.BallLost, g, uint64(g.Ball.ID), g.Ball.Position, g.Ball.Velocity))
	}
}

// resetTargets stands every target up and returns the IDs that were down.
func (g *Game) resetTargets() []uint64 {
	var restored []uint64
	for _, target := range g.Targets {
		if !target.Active {
			restored = append(restored, uint64(target.ID))
		}
		target.Active = true
	}
	return restored
}

// Render draws the standing targets and, when in flight, the ball
func (g *Game) Render(r entity.Renderer) {
	r.Clear()
	for _, target := range g.Targets {
		if target.Active {
			target.Render(r)
		}
	}
	if g.Ball.Active {
		g.Ball.Render(r)
	}
	r.Present()
}

// GetGameState returns a snapshot of the current game state
func (g *Game) GetGameState() *GameState {
	targets := make([]TargetState, 0, len(g.Targets))
	for _, target := range g.Targets {
		targets = append(targets, TargetState{
			ID:     target.ID,
			Rect:   target.Rect,
			Active: target.Active,
		})
	}

	return &GameState{
		Tick:   g.CurrentTick,
		Width:  g.width,
		Height: g.height,
		Ball: BallState{
			ID:       g.Ball.ID,
			Position: g.Ball.Position,
			Velocity: g.Ball.Velocity,
			Radius:   g.Ball.Radius,
			Active:   g.Ball.Active,
		},
		Targets: targets,
		Aiming:  g.Aiming(),
	}
}

// GameState represents a snapshot of the game state
type GameState struct {
	Tick    uint64
	Width   float64
	Height  float64
	Ball    BallState
	Targets []TargetState
	Aiming  bool
}

// BallState represents a snapshot of the ball
type BallState struct {
	ID       entity.ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
	Active   bool
}

// TargetState represents a snapshot of a target
type TargetState struct {
	ID     entity.ID
	Rect   physics.Rect
	Active bool
}
