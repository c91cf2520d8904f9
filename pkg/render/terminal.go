// pkg/render/terminal.go
package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-okay/pkg/engine"
	"github.com/opd-ai/go-okay/pkg/entity"
	"github.com/opd-ai/go-okay/pkg/logging"
	"github.com/opd-ai/go-okay/pkg/physics"
)

// Glyphs used by the terminal renderer
const (
	ballRune   = '●'
	targetRune = '█'
)

// Viewport maps the world onto a grid of terminal cells
type Viewport struct {
	WorldWidth  float64
	WorldHeight float64
	Cols        int
	Rows        int
}

// NewViewport creates a viewport; a grid smaller than one cell is clamped.
func NewViewport(worldWidth, worldHeight float64, cols, rows int) Viewport {
	return Viewport{
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
		Cols:        max(cols, 1),
		Rows:        max(rows, 1),
	}
}

func (v Viewport) cellSize() (float64, float64) {
	return v.WorldWidth / float64(v.Cols), v.WorldHeight / float64(v.Rows)
}

// ToCell converts world coordinates to the cell containing them.
// The result may fall outside the grid.
func (v Viewport) ToCell(pos physics.Vector2D) (int, int) {
	cw, ch := v.cellSize()
	return int(math.Floor(pos.X / cw)), int(math.Floor(pos.Y / ch))
}

// ToWorld converts a cell to the world coordinates of its centre
func (v Viewport) ToWorld(col, row int) physics.Vector2D {
	cw, ch := v.cellSize()
	return physics.Vector2D{
		X: (float64(col) + 0.5) * cw,
		Y: (float64(row) + 0.5) * ch,
	}
}

// InGrid reports whether a cell is on screen
func (v Viewport) InGrid(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// cellScreen is the part of tcell.Screen the renderer draws on
type cellScreen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

type cell struct {
	r     rune
	style tcell.Style
}

// TerminalRenderer draws the game into a cell buffer and flushes it to a
// tcell screen on Present.
type TerminalRenderer struct {
	screen   cellScreen
	viewport Viewport
	buffer   [][]cell

	background tcell.Style
	ball       tcell.Style
	target     tcell.Style
}

// NewTerminalRenderer creates a terminal renderer for a world of the given
// size shown on cols x rows cells.
func NewTerminalRenderer(screen cellScreen, palette Palette, worldWidth, worldHeight float64, cols, rows int) *TerminalRenderer {
	bg := tcellColor(palette.Background)
	r := &TerminalRenderer{
		screen:     screen,
		background: tcell.StyleDefault.Background(bg).Foreground(bg),
		ball:       tcell.StyleDefault.Background(bg).Foreground(tcellColor(palette.Ball)),
		target:     tcell.StyleDefault.Background(bg).Foreground(tcellColor(palette.Target)),
	}
	r.Resize(NewViewport(worldWidth, worldHeight, cols, rows))
	return r
}

// Viewport returns the current world to cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.viewport
}

// Resize reallocates the buffer for a new grid
func (r *TerminalRenderer) Resize(v Viewport) {
	r.viewport = v
	r.buffer = make([][]cell, v.Rows)
	for i := range r.buffer {
		r.buffer[i] = make([]cell, v.Cols)
	}
	r.Clear()
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = cell{r: ' ', style: r.background}
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	for y, row := range r.buffer {
		for x, c := range row {
			r.screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
	r.screen.Show()
}

// RenderTarget implements entity.Renderer
func (r *TerminalRenderer) RenderTarget(target *entity.Target) {
	x0, y0 := r.viewport.ToCell(physics.Vector2D{X: target.Rect.X, Y: target.Rect.Y})
	x1, y1 := r.viewport.ToCell(physics.Vector2D{X: target.Rect.Right(), Y: target.Rect.Bottom()})

	for y := max(y0, 0); y <= min(y1, r.viewport.Rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.viewport.Cols-1); x++ {
			r.buffer[y][x] = cell{r: targetRune, style: r.target}
		}
	}
}

// RenderBall implements entity.Renderer
func (r *TerminalRenderer) RenderBall(ball *entity.Ball) {
	x, y := r.viewport.ToCell(ball.Position)
	if r.viewport.InGrid(x, y) {
		r.buffer[y][x] = cell{r: ballRune, style: r.ball}
	}
}

// cellAt returns the rune drawn at a cell, for tests and debugging
func (r *TerminalRenderer) cellAt(x, y int) rune {
	if !r.viewport.InGrid(x, y) {
		return 0
	}
	return r.buffer[y][x].r
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RunTerminal plays the game in the terminal until the user quits or ctx is
// cancelled.
func RunTerminal(ctx context.Context, game *engine.Game, palette Palette, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcellColor(palette.Background)))
	screen.Clear()

	width, height := float64(game.Config.Screen.Width), float64(game.Config.Screen.Height)
	cols, rows := screen.Size()
	renderer := NewTerminalRenderer(screen, palette, width, height, cols, rows)
	input := NewTerminalInput(renderer.Viewport())
	loop := engine.NewLoop(game, game.Config.Screen.FPS)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resized := make(chan Viewport, 1)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			gestures, quit := input.Translate(ev)
			if quit {
				cancel()
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				select {
				case <-resized:
				default:
				}
				resized <- input.Viewport()
			}
			for _, g := range gestures {
				if err := loop.Submit(ctx, g); err != nil {
					return
				}
				logger.Debug(ctx, "gesture queued", "kind", g.Kind.String(), "x", g.Point.X, "y", g.Point.Y)
			}
		}
	}()

	err = loop.Run(ctx, func(g *engine.Game) {
		select {
		case v := <-resized:
			renderer.Resize(v)
			screen.Sync()
		default:
		}
		g.Render(renderer)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
