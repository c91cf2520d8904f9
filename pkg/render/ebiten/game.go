// Package ebiten runs the game in an ebiten window.
package ebiten

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-okay/pkg/engine"
	"github.com/opd-ai/go-okay/pkg/entity"
	"github.com/opd-ai/go-okay/pkg/logging"
	"github.com/opd-ai/go-okay/pkg/physics"
	"github.com/opd-ai/go-okay/pkg/render"
)

// Game adapts engine.Game to ebiten.Game. Ebiten calls Update once per tick
// at the configured TPS, so the simulation runs at the configured FPS.
type Game struct {
	ctx     context.Context
	game    *engine.Game
	palette render.Palette
	logger  *logging.Logger
}

// NewGame wraps a game for ebiten. Cancelling ctx closes the window.
func NewGame(ctx context.Context, game *engine.Game, palette render.Palette, logger *logging.Logger) *Game {
	return &Game{ctx: ctx, game: game, palette: palette, logger: logger}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info(g.ctx, "window closing", "tick", g.game.CurrentTick)
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	gestures := mouseGestures(
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		physics.Vector2D{X: float64(x), Y: float64(y)},
	)
	for _, gesture := range gestures {
		g.game.Apply(gesture)
	}

	g.game.Update()
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.game.Render(&imageRenderer{dst: screen, palette: g.palette})
}

// Layout implements ebiten.Game. The logical screen is always the
// configured play area; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.game.Config.Screen.Width, g.game.Config.Screen.Height
}

// mouseGestures maps this tick's left button edges to gestures. A click
// shorter than one tick yields both, press first.
func mouseGestures(justPressed, justReleased bool, point physics.Vector2D) []engine.Gesture {
	var gestures []engine.Gesture
	if justPressed {
		gestures = append(gestures, engine.Gesture{Kind: engine.GestureBegin, Point: point})
	}
	if justReleased {
		gestures = append(gestures, engine.Gesture{Kind: engine.GestureEnd, Point: point})
	}
	return gestures
}

// imageRenderer implements entity.Renderer for one ebiten frame
type imageRenderer struct {
	dst     *ebiten.Image
	palette render.Palette
}

func (r *imageRenderer) Clear() {
	r.dst.Fill(r.palette.Background)
}

func (r *imageRenderer) Present() {}

func (r *imageRenderer) RenderBall(ball *entity.Ball) {
	vector.DrawFilledCircle(r.dst,
		float32(ball.Position.X), float32(ball.Position.Y), float32(ball.Radius),
		r.palette.Ball, true)
}

func (r *imageRenderer) RenderTarget(target *entity.Target) {
	vector.DrawFilledRect(r.dst,
		float32(target.Rect.X), float32(target.Rect.Y),
		float32(target.Rect.Width), float32(target.Rect.Height),
		r.palette.Target, false)
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx is cancelled. It must be called from the main goroutine.
func Run(ctx context.Context, game *engine.Game, palette render.Palette, fullscreen bool, logger *logging.Logger) error {
	screen := game.Config.Screen
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(screen.Title)
	ebiten.SetWindowIcon([]image.Image{render.NewIcon(palette)})
	ebiten.SetTPS(screen.FPS)
	ebiten.SetFullscreen(fullscreen)

	logger.Info(ctx, "opening window", "width", screen.Width, "height", screen.Height, "tps", screen.FPS)
	return ebiten.RunGame(NewGame(ctx, game, palette, logger))
}
