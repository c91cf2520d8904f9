// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-okay/pkg/engine"
	"github.com/opd-ai/go-okay/pkg/logging"
	"github.com/opd-ai/go-okay/pkg/render"
)

// sceneType names the only scene of the game
const sceneType = "OkayScene"

// GameScene represents the main game scene in Engo
type GameScene struct {
	game    *engine.Game
	palette render.Palette
	logger  *logging.Logger
	ctx     context.Context

	camera   *Camera
	renderer *EngoRenderer
}

// NewGameScene creates a new game scene. ctx carries the session ID used in
// log lines.
func NewGameScene(ctx context.Context, game *engine.Game, palette render.Palette, logger *logging.Logger) *GameScene {
	return &GameScene{
		game:    game,
		palette: palette,
		logger:  logger,
		ctx:     ctx,
		camera:  NewCamera(float32(game.Config.Screen.Width), float32(game.Config.Screen.Height)),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return sceneType
}

// Preload is called before the scene starts (required by Engo).
// Every drawable is a generated shape, so there is nothing to load.
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Warn(scene.ctx, "unexpected updater, scene not set up")
		return
	}

	common.SetBackground(scene.palette.Background)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.renderer = NewEngoRenderer(renderSystem, scene.camera, scene.palette)
	world.AddSystem(NewInputSystem(scene.game, scene.camera))
	world.AddSystem(NewSimulationSystem(scene.game, scene.renderer))

	scene.game.Render(scene.renderer)
	scene.logger.Info(scene.ctx, "scene ready", "scene", sceneType, "targets", len(scene.game.Targets))
}

// Exit is called when the window closes
func (scene *GameScene) Exit() {
	scene.logger.Info(scene.ctx, "window closed", "tick", scene.game.CurrentTick)
	engo.Exit()
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// It must be called from the main goroutine.
func Run(ctx context.Context, game *engine.Game, palette render.Palette, fullscreen bool, logger *logging.Logger) {
	screen := game.Config.Screen

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			engo.Exit()
		case <-done:
		}
	}()

	engo.Run(engo.RunOptions{
		Title:        screen.Title,
		Width:        screen.Width,
		Height:       screen.Height,
		Fullscreen:   fullscreen,
		NotResizable: true,
		FPSLimit:     screen.FPS,
	}, NewGameScene(ctx, game, palette, logger))
}
